// Package convert turns raw input values into typed Go values.
//
// The ObjectConverter handles scalar kinds (strings, bools, signed and
// unsigned integers, floats), time.Duration, time.Time, any type
// implementing encoding.TextUnmarshaler, pointers to those, and slices of
// those. Scalar parsing is delegated to spf13/cast; integer results are
// checked for overflow against the target type.
//
// # Families
//
// Additional target types are supported by registering a family:
//
//	conv := convert.New()
//	convert.Register(conv, func(raw any) (Color, error) {
//	    return ParseColor(cast.ToString(raw))
//	})
//
// Families take precedence over the built-in rules.
package convert
