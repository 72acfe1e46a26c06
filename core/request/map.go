package request

import (
	"sort"
	"strings"
)

// MapData is an in-memory Data backed by a flat map.
type MapData struct {
	source string
	values map[string]any
}

// NewMapData creates a source labelled source over values.
// The map is copied; later changes to values are not visible.
func NewMapData(source string, values map[string]any) *MapData {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &MapData{source: source, values: copied}
}

// Value implements Data.
func (m *MapData) Value(key string) (BindingValue, bool) {
	v, ok := m.values[key]
	if !ok {
		return BindingValue{}, false
	}
	return BindingValue{RawKey: key, RawValue: v, Source: m.source}, true
}

// HasAnyValuePrefixedWith implements Data.
func (m *MapData) HasAnyValuePrefixedWith(prefix string) bool {
	for k := range m.values {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// SubRequest implements Data.
func (m *MapData) SubRequest(prefix string) Data {
	return newPrefixed(m, prefix)
}

// Keys returns all keys in sorted order.
func (m *MapData) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Source returns the label given at construction.
func (m *MapData) Source() string {
	return m.source
}
