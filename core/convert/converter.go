package convert

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Converter turns a raw value into a value of the target type.
type Converter interface {
	// CanConvert reports whether t is a target this converter handles.
	CanConvert(t reflect.Type) bool
	// Convert returns raw as a value of type t.
	Convert(raw any, t reflect.Type) (any, error)
}

// Func converts a raw value for one registered family.
type Func func(raw any) (any, error)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// ObjectConverter is the default Converter.
type ObjectConverter struct {
	families map[reflect.Type]Func
}

// New creates an ObjectConverter with the time.Duration and time.Time
// families registered.
func New() *ObjectConverter {
	c := &ObjectConverter{families: make(map[reflect.Type]Func)}
	Register(c, cast.ToDurationE)
	Register(c, cast.ToTimeE)
	return c
}

// Register adds a family converting into T. A later registration for the
// same type replaces the earlier one.
func Register[T any](c *ObjectConverter, fn func(raw any) (T, error)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	c.families[t] = func(raw any) (any, error) {
		return fn(raw)
	}
}

// CanConvert implements Converter.
func (c *ObjectConverter) CanConvert(t reflect.Type) bool {
	if _, ok := c.families[t]; ok {
		return true
	}
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Pointer, reflect.Slice:
		return c.CanConvert(t.Elem())
	}
	return false
}

// Convert implements Converter.
func (c *ObjectConverter) Convert(raw any, t reflect.Type) (any, error) {
	if b, ok := raw.([]byte); ok && !(t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8) {
		raw = string(b)
	}

	if fn, ok := c.families[t]; ok {
		v, err := fn(raw)
		if err != nil {
			return nil, NewConversionError(raw, t, err)
		}
		return v, nil
	}

	if raw != nil && reflect.TypeOf(raw) == t {
		return raw, nil
	}

	if t.Kind() == reflect.Pointer {
		v, err := c.Convert(raw, t.Elem())
		if err != nil {
			return nil, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(reflect.ValueOf(v))
		return ptr.Interface(), nil
	}

	if s, ok := raw.(string); ok && reflect.PointerTo(t).Implements(textUnmarshalerType) {
		ptr := reflect.New(t)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return nil, NewConversionError(raw, t, err)
		}
		return ptr.Elem().Interface(), nil
	}

	out := reflect.New(t).Elem()
	var err error
	switch t.Kind() {
	case reflect.String:
		var s string
		if s, err = cast.ToStringE(raw); err == nil {
			out.SetString(s)
		}
	case reflect.Bool:
		var b bool
		if b, err = cast.ToBoolE(raw); err == nil {
			out.SetBool(b)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		if n, err = toInt64(raw, t.Bits()); err == nil {
			if out.OverflowInt(n) {
				err = fmt.Errorf("%d overflows %s", n, t)
			} else {
				out.SetInt(n)
			}
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var n uint64
		if n, err = toUint64(raw, t.Bits()); err == nil {
			if out.OverflowUint(n) {
				err = fmt.Errorf("%d overflows %s", n, t)
			} else {
				out.SetUint(n)
			}
		}
	case reflect.Float32, reflect.Float64:
		var f float64
		if f, err = cast.ToFloat64E(raw); err == nil {
			if out.OverflowFloat(f) {
				err = fmt.Errorf("%g overflows %s", f, t)
			} else {
				out.SetFloat(f)
			}
		}
	case reflect.Slice:
		return c.convertSlice(raw, t)
	default:
		return nil, NewUnsupportedTypeError(t)
	}
	if err != nil {
		return nil, NewConversionError(raw, t, err)
	}
	return out.Interface(), nil
}

// toInt64 reads strings as base 10 so "0123" is 123, not octal. Floats
// must be integral.
func toInt64(raw any, bits int) (int64, error) {
	switch v := raw.(type) {
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 10, bits)
	case float32:
		return integral(float64(v))
	case float64:
		return integral(v)
	}
	return cast.ToInt64E(raw)
}

func toUint64(raw any, bits int) (uint64, error) {
	switch v := raw.(type) {
	case string:
		return strconv.ParseUint(strings.TrimSpace(v), 10, bits)
	case float32, float64:
		n, err := integral(cast.ToFloat64(v))
		if err != nil {
			return 0, err
		}
		if n < 0 {
			return 0, fmt.Errorf("%d is negative", n)
		}
		return uint64(n), nil
	}
	return cast.ToUint64E(raw)
}

func integral(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%g is not an integer", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%g overflows int64", f)
	}
	return int64(f), nil
}

// convertSlice accepts a list value or a comma-separated string.
func (c *ObjectConverter) convertSlice(raw any, t reflect.Type) (any, error) {
	if s, ok := raw.(string); ok && t.Elem().Kind() == reflect.Uint8 {
		return reflect.ValueOf([]byte(s)).Convert(t).Interface(), nil
	}

	var items []any
	switch v := raw.(type) {
	case nil:
	case string:
		if strings.TrimSpace(v) != "" {
			for _, part := range strings.Split(v, ",") {
				items = append(items, strings.TrimSpace(part))
			}
		}
	default:
		rv := reflect.ValueOf(raw)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			items = []any{raw}
			break
		}
		for i := 0; i < rv.Len(); i++ {
			items = append(items, rv.Index(i).Interface())
		}
	}

	out := reflect.MakeSlice(t, 0, len(items))
	for _, item := range items {
		v, err := c.Convert(item, t.Elem())
		if err != nil {
			return nil, err
		}
		out = reflect.Append(out, reflect.ValueOf(v))
	}
	return out.Interface(), nil
}
