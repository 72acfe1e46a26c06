package binding

import (
	"encoding/json"
	"fmt"
	"reflect"

	"model-binder/core/request"
)

// Problem records one binding fault.
type Problem struct {
	// ExceptionText is the rendered fault.
	ExceptionText string `json:"exception_text"`
	// Item is the object being populated when the fault was recorded.
	// Nil when recorded outside any object scope.
	Item any `json:"-"`
	// Property is the field being bound, if any.
	Property *Property `json:"property,omitempty"`
	// Value is the raw input involved, if it could be found.
	Value *request.BindingValue `json:"value,omitempty"`
}

// ItemType returns the Go type of Item, or "" when there is none.
func (p Problem) ItemType() string {
	if p.Item == nil {
		return ""
	}
	return reflect.TypeOf(p.Item).String()
}

// String renders the problem on one line.
func (p Problem) String() string {
	switch {
	case p.Property != nil && p.Value != nil:
		return fmt.Sprintf("%s (%s=%v): %s", p.Property.Name, p.Value.RawKey, p.Value.RawValue, p.ExceptionText)
	case p.Property != nil:
		return fmt.Sprintf("%s: %s", p.Property.Name, p.ExceptionText)
	default:
		return p.ExceptionText
	}
}

// MarshalJSON encodes the problem as a flat object: exception_text,
// item_type, property, key, raw_value and source. Fields without a value
// are omitted.
func (p Problem) MarshalJSON() ([]byte, error) {
	flat := struct {
		ExceptionText string `json:"exception_text"`
		ItemType      string `json:"item_type,omitempty"`
		Property      string `json:"property,omitempty"`
		Key           string `json:"key,omitempty"`
		RawValue      any    `json:"raw_value,omitempty"`
		Source        string `json:"source,omitempty"`
	}{
		ExceptionText: p.ExceptionText,
		ItemType:      p.ItemType(),
	}
	if p.Property != nil {
		flat.Property = p.Property.Name
	}
	if p.Value != nil {
		flat.Key = p.Value.RawKey
		flat.RawValue = p.Value.RawValue
		flat.Source = p.Value.Source
	}
	return json.Marshal(flat)
}
