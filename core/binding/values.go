package binding

import (
	"fmt"
	"reflect"

	"model-binder/core/convert"
	"model-binder/core/request"
)

// Values answers "what is the value for property P" over the input,
// trying each naming candidate in order.
type Values struct {
	data      request.Data
	naming    Naming
	converter convert.Converter
}

// NewValues combines a source, a naming chain and a converter.
func NewValues(data request.Data, naming Naming, converter convert.Converter) *Values {
	return &Values{data: data, naming: naming, converter: converter}
}

// Lookup returns the raw value under the first candidate key present.
func (v *Values) Lookup(name string) (request.BindingValue, bool) {
	for _, key := range v.naming.Candidates(name) {
		if value, ok := v.data.Value(key); ok {
			return value, true
		}
	}
	return request.BindingValue{}, false
}

// Has reports whether any candidate key for name is present.
func (v *Values) Has(name string) bool {
	_, ok := v.Lookup(name)
	return ok
}

// ValueFor looks name up and converts the raw value to t.
// A missing value is not an error: it returns (nil, false, nil).
func (v *Values) ValueFor(name string, t reflect.Type) (any, bool, error) {
	raw, ok := v.Lookup(name)
	if !ok {
		return nil, false, nil
	}
	converted, err := v.converter.Convert(raw.RawValue, t)
	if err != nil {
		return nil, true, err
	}
	return converted, true, nil
}

// ValueAs is the typed form of Values.ValueFor. A converter returning a
// value that is not a T is reported as a conversion error.
func ValueAs[T any](v *Values, name string) (T, bool, error) {
	var zero T
	converted, ok, err := v.ValueFor(name, reflect.TypeFor[T]())
	if err != nil || !ok {
		return zero, ok, err
	}
	typed, isT := converted.(T)
	if !isT {
		return zero, true, convert.NewConversionError(converted, reflect.TypeFor[T](), fmt.Errorf("converter returned %T", converted))
	}
	return typed, true, nil
}
