package request

// prefixedData is a view over inner restricted to keys under prefix.
type prefixedData struct {
	inner  Data
	prefix string
}

func newPrefixed(inner Data, prefix string) Data {
	return &prefixedData{inner: inner, prefix: prefix}
}

func (p *prefixedData) Value(key string) (BindingValue, bool) {
	return p.inner.Value(p.prefix + key)
}

func (p *prefixedData) HasAnyValuePrefixedWith(prefix string) bool {
	return p.inner.HasAnyValuePrefixedWith(p.prefix + prefix)
}

func (p *prefixedData) SubRequest(prefix string) Data {
	return newPrefixed(p.inner, p.prefix+prefix)
}

// Prefixed returns a sub-view of any Data. Sources that have no special
// prefix handling can use it to implement SubRequest.
func Prefixed(inner Data, prefix string) Data {
	return newPrefixed(inner, prefix)
}
