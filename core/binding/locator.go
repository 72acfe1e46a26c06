package binding

import "reflect"

// Locator hands out service instances by type.
type Locator interface {
	Resolve(t reflect.Type) (any, bool)
}

// MapLocator is a Locator backed by a map.
type MapLocator map[reflect.Type]any

// NewMapLocator creates an empty MapLocator.
func NewMapLocator() MapLocator {
	return make(MapLocator)
}

// Provide registers instance as the service for T.
func Provide[T any](l MapLocator, instance T) {
	l[reflect.TypeFor[T]()] = instance
}

// Resolve implements Locator.
func (l MapLocator) Resolve(t reflect.Type) (any, bool) {
	v, ok := l[t]
	return v, ok
}

func locate[T any](l Locator) (T, bool) {
	var zero T
	if l == nil {
		return zero, false
	}
	v, ok := l.Resolve(reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}
