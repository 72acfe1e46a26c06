package binding

import (
	"reflect"
	"strings"

	"model-binder/core/request"
)

// Property is a field under consideration. Name is the key used to look
// its value up, Field the struct field it came from.
type Property struct {
	Name  string              `json:"name"`
	Field reflect.StructField `json:"-"`
}

// NewProperty derives the lookup name from the field's tags.
func NewProperty(field reflect.StructField) Property {
	name, _ := fieldKey(field)
	return Property{Name: name, Field: field}
}

// fieldKey returns the key for a field: the `bind` tag, then the
// `mapstructure` tag, then the Go field name. skip is true for "-".
func fieldKey(field reflect.StructField) (name string, skip bool) {
	for _, tagName := range []string{"bind", "mapstructure"} {
		tag, ok := field.Tag.Lookup(tagName)
		if !ok {
			continue
		}
		name, _, _ = strings.Cut(tag, ",")
		if name == "-" {
			return "", true
		}
		if name != "" {
			return name, false
		}
	}
	return field.Name, false
}

// PropertyContext is handed to the action run by Context.ForProperty.
type PropertyContext struct {
	ctx  *Context
	prop Property
}

// Property returns the property being bound.
func (p *PropertyContext) Property() Property {
	return p.prop
}

// Context returns the owning binding context.
func (p *PropertyContext) Context() *Context {
	return p.ctx
}

// Value converts the property's input value to t.
func (p *PropertyContext) Value(t reflect.Type) (any, bool, error) {
	return p.ctx.Values().ValueFor(p.prop.Name, t)
}

// RawValue returns the property's unconverted input value.
func (p *PropertyContext) RawValue() (request.BindingValue, bool) {
	return p.ctx.Values().Lookup(p.prop.Name)
}
