package convert_test

import (
	"errors"
	"net"
	"reflect"
	"strings"
	"testing"
	"time"

	"model-binder/core/convert"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type level string

type color struct{ R, G, B uint8 }

func TestObjectConverter_Convert(t *testing.T) {
	conv := convert.New()

	tests := []struct {
		name   string
		raw    any
		target reflect.Type
		want   any
	}{
		{"string", 42, reflect.TypeOf(""), "42"},
		{"named string", "debug", reflect.TypeOf(level("")), level("debug")},
		{"bool", "true", reflect.TypeOf(false), true},
		{"bool from int", 1, reflect.TypeOf(false), true},
		{"int", "8080", reflect.TypeOf(0), 8080},
		{"int8", "-12", reflect.TypeOf(int8(0)), int8(-12)},
		{"int from bytes", []byte("7"), reflect.TypeOf(0), 7},
		{"uint16", 443, reflect.TypeOf(uint16(0)), uint16(443)},
		{"zero padded int", "0123", reflect.TypeOf(0), 123},
		{"zero padded eight", "08", reflect.TypeOf(0), 8},
		{"padded with spaces", " 42 ", reflect.TypeOf(0), 42},
		{"zero padded uint", "0123", reflect.TypeOf(uint(0)), uint(123)},
		{"integral float", 7.0, reflect.TypeOf(0), 7},
		{"integral float to uint", 9.0, reflect.TypeOf(uint8(0)), uint8(9)},
		{"float", "1.5", reflect.TypeOf(0.0), 1.5},
		{"duration", "1m30s", reflect.TypeOf(time.Duration(0)), 90 * time.Second},
		{"same type", 3, reflect.TypeOf(0), 3},
		{"bytes", "abc", reflect.TypeOf([]byte(nil)), []byte("abc")},
		{"string slice", "a, b", reflect.TypeOf([]string(nil)), []string{"a", "b"}},
		{"int slice", []any{"1", 2}, reflect.TypeOf([]int(nil)), []int{1, 2}},
		{"empty slice", "", reflect.TypeOf([]int(nil)), []int{}},
		{"text unmarshaler", "127.0.0.1", reflect.TypeOf(net.IP(nil)), net.ParseIP("127.0.0.1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.Convert(tt.raw, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObjectConverter_IntegerRejects(t *testing.T) {
	conv := convert.New()

	tests := []struct {
		name   string
		raw    any
		target reflect.Type
	}{
		{"fractional float", 7.9, reflect.TypeOf(0)},
		{"fractional float to uint", 2.5, reflect.TypeOf(uint(0))},
		{"negative float to uint", -3.0, reflect.TypeOf(uint(0))},
		{"hex string", "0x10", reflect.TypeOf(0)},
		{"out of range", "300", reflect.TypeOf(int8(0))},
		{"negative uint", "-1", reflect.TypeOf(uint(0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.Convert(tt.raw, tt.target)
			assert.ErrorContains(t, err, convert.ErrMsgConversionFailed)
			assert.Nil(t, got)
		})
	}
}

func TestObjectConverter_Pointer(t *testing.T) {
	got, err := convert.New().Convert("5", reflect.TypeOf((*int)(nil)))
	require.NoError(t, err)
	ptr, ok := got.(*int)
	require.True(t, ok)
	assert.Equal(t, 5, *ptr)
}

func TestObjectConverter_Time(t *testing.T) {
	got, err := convert.New().Convert("2024-05-01T10:00:00Z", reflect.TypeOf(time.Time{}))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), got.(time.Time).UTC())
}

func TestObjectConverter_Errors(t *testing.T) {
	conv := convert.New()

	t.Run("parse failure", func(t *testing.T) {
		_, err := conv.Convert("abc", reflect.TypeOf(0))
		require.Error(t, err)
		assert.Contains(t, err.Error(), convert.ErrMsgConversionFailed)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		target, ok := customErr.GetMetadata(convert.MetaKeyTargetType)
		assert.True(t, ok)
		assert.Equal(t, "int", target)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := conv.Convert("300", reflect.TypeOf(int8(0)))
		assert.Error(t, err)
		_, err = conv.Convert(70000, reflect.TypeOf(uint16(0)))
		assert.Error(t, err)
	})

	t.Run("slice element failure", func(t *testing.T) {
		_, err := conv.Convert("1,x", reflect.TypeOf([]int(nil)))
		assert.Error(t, err)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := conv.Convert("x", reflect.TypeOf(map[string]int{}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), convert.ErrMsgUnsupportedType)
	})
}

func TestObjectConverter_CanConvert(t *testing.T) {
	conv := convert.New()

	assert.True(t, conv.CanConvert(reflect.TypeOf("")))
	assert.True(t, conv.CanConvert(reflect.TypeOf((*int)(nil))))
	assert.True(t, conv.CanConvert(reflect.TypeOf([]float64(nil))))
	assert.True(t, conv.CanConvert(reflect.TypeOf(time.Time{})))
	assert.True(t, conv.CanConvert(reflect.TypeOf(net.IP(nil))))
	assert.False(t, conv.CanConvert(reflect.TypeOf(color{})))
	assert.False(t, conv.CanConvert(reflect.TypeOf(map[string]string{})))
}

func TestRegister(t *testing.T) {
	conv := convert.New()
	convert.Register(conv, func(raw any) (color, error) {
		s, _ := raw.(string)
		if !strings.HasPrefix(s, "#") {
			return color{}, errors.New("expected #rgb")
		}
		return color{R: 1, G: 2, B: 3}, nil
	})

	assert.True(t, conv.CanConvert(reflect.TypeOf(color{})))

	got, err := conv.Convert("#010203", reflect.TypeOf(color{}))
	require.NoError(t, err)
	assert.Equal(t, color{R: 1, G: 2, B: 3}, got)

	_, err = conv.Convert("red", reflect.TypeOf(color{}))
	assert.Error(t, err)
}
