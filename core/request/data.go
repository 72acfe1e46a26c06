package request

// BindingValue is a raw, unconverted value found in a source.
type BindingValue struct {
	// RawKey is the full key the value was found under.
	RawKey string `json:"key"`
	// RawValue is the value exactly as the source stored it.
	RawValue any `json:"raw_value"`
	// Source names the source the value came from (e.g. "env", "query").
	Source string `json:"source"`
}

// Data is a keyed lookup of raw values.
type Data interface {
	// Value returns the raw value stored under key, if any.
	Value(key string) (BindingValue, bool)
	// HasAnyValuePrefixedWith reports whether at least one key starts with prefix.
	HasAnyValuePrefixedWith(prefix string) bool
	// SubRequest returns a view restricted to keys under prefix.
	// Keys passed to the view are relative to prefix.
	SubRequest(prefix string) Data
}
