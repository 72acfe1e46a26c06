package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapData(t *testing.T) {
	src := map[string]any{
		"name":            "Ada",
		"home.city":       "London",
		"items[0].name":   "first",
		"items[0].detail": "x",
	}
	data := NewMapData("test", src)
	src["late"] = "not visible"

	t.Run("Value", func(t *testing.T) {
		v, ok := data.Value("name")
		require.True(t, ok)
		assert.Equal(t, BindingValue{RawKey: "name", RawValue: "Ada", Source: "test"}, v)

		_, ok = data.Value("late")
		assert.False(t, ok)
	})

	t.Run("prefix probe", func(t *testing.T) {
		assert.True(t, data.HasAnyValuePrefixedWith("home."))
		assert.True(t, data.HasAnyValuePrefixedWith("items[0]."))
		assert.False(t, data.HasAnyValuePrefixedWith("items[1]."))
	})

	t.Run("SubRequest", func(t *testing.T) {
		items := data.SubRequest("items[0].")
		v, ok := items.Value("name")
		require.True(t, ok)
		assert.Equal(t, "items[0].name", v.RawKey)
		assert.True(t, items.HasAnyValuePrefixedWith("det"))
		assert.False(t, items.HasAnyValuePrefixedWith("city"))

		nested := data.SubRequest("items").SubRequest("[0].")
		_, ok = nested.Value("detail")
		assert.True(t, ok)
	})

	t.Run("Keys", func(t *testing.T) {
		assert.Equal(t, []string{"home.city", "items[0].detail", "items[0].name", "name"}, data.Keys())
		assert.Equal(t, "test", data.Source())
	})
}

func TestComposite(t *testing.T) {
	first := NewMapData("first", map[string]any{"a": 1, "shared": "first"})
	second := NewMapData("second", map[string]any{"b": 2, "shared": "second", "sub.x": 3})
	c := NewComposite(first, nil, second)

	require.Len(t, c, 2)

	v, ok := c.Value("shared")
	require.True(t, ok)
	assert.Equal(t, "first", v.Source)

	v, ok = c.Value("b")
	require.True(t, ok)
	assert.Equal(t, "second", v.Source)

	assert.True(t, c.HasAnyValuePrefixedWith("sub."))
	_, ok = c.SubRequest("sub.").Value("x")
	assert.True(t, ok)

	_, ok = c.Value("missing")
	assert.False(t, ok)
}

func TestFromRecord(t *testing.T) {
	data := FromRecord(map[string]any{"name": []byte("Ada"), "id": int64(1)})

	v, ok := data.Value("name")
	require.True(t, ok)
	assert.Equal(t, "Ada", v.RawValue)
	assert.Equal(t, SourceRecord, v.Source)

	v, _ = data.Value("id")
	assert.Equal(t, int64(1), v.RawValue)
}
