package request

// Composite searches several sources in order. The first source holding a
// key wins.
type Composite []Data

// NewComposite creates a Composite over sources, skipping nil entries.
func NewComposite(sources ...Data) Composite {
	c := make(Composite, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			c = append(c, s)
		}
	}
	return c
}

// Value implements Data.
func (c Composite) Value(key string) (BindingValue, bool) {
	for _, s := range c {
		if v, ok := s.Value(key); ok {
			return v, true
		}
	}
	return BindingValue{}, false
}

// HasAnyValuePrefixedWith implements Data.
func (c Composite) HasAnyValuePrefixedWith(prefix string) bool {
	for _, s := range c {
		if s.HasAnyValuePrefixedWith(prefix) {
			return true
		}
	}
	return false
}

// SubRequest implements Data.
func (c Composite) SubRequest(prefix string) Data {
	subs := make(Composite, len(c))
	for i, s := range c {
		subs[i] = s.SubRequest(prefix)
	}
	return subs
}
