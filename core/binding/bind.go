package binding

import (
	"reflect"

	"model-binder/core/request"

	"go.uber.org/zap"
)

// Bind creates a Context over data and binds a T from it. The returned
// error is only ever a construction error; field faults are reported in
// the problem list.
func Bind[T any](data request.Data, logger *zap.Logger, opts ...Option) (T, []Problem, error) {
	var out T
	c, err := New(data, logger, opts...)
	if err != nil {
		return out, nil, err
	}
	c.BindObject(c.Data(), reflect.TypeFor[T](), func(v any) {
		if typed, ok := v.(T); ok {
			out = typed
		}
	})
	return out, c.Problems(), nil
}

// BindType is the reflective form of Bind for callers that only know the
// target type at runtime.
func BindType(data request.Data, t reflect.Type, logger *zap.Logger, opts ...Option) (any, []Problem, error) {
	c, err := New(data, logger, opts...)
	if err != nil {
		return nil, nil, err
	}
	var out any
	c.BindObject(c.Data(), t, func(v any) { out = v })
	return out, c.Problems(), nil
}
