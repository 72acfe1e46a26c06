package request

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FromDocument decodes a YAML document (JSON is accepted as well) and
// flattens it into a MapData. Mappings become dotted keys, sequences become
// indexed keys:
//
//	server:
//	  port: 8080        -> server.port
//	items:
//	  - name: a         -> items[0].name
//	tags: [x, y]        -> tags (the whole list), tags[0], tags[1]
//
// An empty document yields an empty source.
func FromDocument(source string, r io.Reader) (*MapData, error) {
	var root any
	if err := yaml.NewDecoder(r).Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode %s: %w", source, err)
	}

	values := make(map[string]any)
	if root != nil {
		if err := flatten(values, "", root); err != nil {
			return nil, fmt.Errorf("failed to flatten %s: %w", source, err)
		}
	}
	return NewMapData(source, values), nil
}

func flatten(out map[string]any, key string, node any) error {
	switch n := node.(type) {
	case map[string]any:
		for k, v := range n {
			if err := flatten(out, join(key, k), v); err != nil {
				return err
			}
		}
	case map[any]any:
		for k, v := range n {
			if err := flatten(out, join(key, fmt.Sprint(k)), v); err != nil {
				return err
			}
		}
	case []any:
		if key == "" {
			return errors.New("top-level sequences are not supported")
		}
		if isScalarList(n) {
			out[key] = n
		}
		for i, v := range n {
			if err := flatten(out, key+"["+strconv.Itoa(i)+"]", v); err != nil {
				return err
			}
		}
	default:
		if key == "" {
			return errors.New("top-level scalars are not supported")
		}
		out[key] = n
	}
	return nil
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func isScalarList(list []any) bool {
	for _, v := range list {
		switch v.(type) {
		case map[string]any, map[any]any, []any:
			return false
		}
	}
	return true
}
