package request

import (
	"strings"

	"github.com/spf13/viper"
)

// SourceViper labels values read through viper.
const SourceViper = "viper"

// ViperData reads from a viper instance. Viper keys are case-insensitive,
// so lookups are lower-cased.
type ViperData struct {
	v *viper.Viper
}

// FromViper wraps v as a Data.
func FromViper(v *viper.Viper) *ViperData {
	return &ViperData{v: v}
}

// Value implements Data. Keys that name a whole section are not values.
func (d *ViperData) Value(key string) (BindingValue, bool) {
	k := strings.ToLower(key)
	if !d.v.IsSet(k) {
		return BindingValue{}, false
	}
	raw := d.v.Get(k)
	switch raw.(type) {
	case map[string]any, map[any]any:
		return BindingValue{}, false
	}
	return BindingValue{RawKey: k, RawValue: raw, Source: SourceViper}, true
}

// HasAnyValuePrefixedWith implements Data.
func (d *ViperData) HasAnyValuePrefixedWith(prefix string) bool {
	p := strings.ToLower(prefix)
	for _, k := range d.v.AllKeys() {
		if strings.HasPrefix(k, p) {
			return true
		}
	}
	return false
}

// SubRequest implements Data.
func (d *ViperData) SubRequest(prefix string) Data {
	return newPrefixed(d, prefix)
}
