package binding

import (
	"net"
	"testing"
	"time"

	"model-binder/core/convert"
	"model-binder/core/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type address struct {
	Street string `bind:"street"`
	City   string `bind:"city"`
	Zip    int    `bind:"zip"`
}

type friend struct {
	Name string `bind:"name"`
	Age  int    `bind:"age"`
}

type Audit struct {
	CreatedBy string `bind:"created_by"`
}

type person struct {
	Audit
	FirstName string        `bind:"first_name"`
	Age       int           `bind:"age"`
	Active    bool          `bind:"active"`
	Timeout   time.Duration `bind:"timeout"`
	Nickname  *string       `bind:"nickname"`
	Home      address       `bind:"home"`
	Work      *address      `bind:"work"`
	Tags      []string      `bind:"tags"`
	Scores    []int         `bind:"scores"`
	Friends   []friend      `bind:"friends"`
	Addr      net.IP        `bind:"ip"`
	Secret    string        `bind:"-"`
	Legacy    string        `mapstructure:"legacy_name"`
	Plain     string
	Extras    map[string]string `bind:"extras"`
	hidden    string
}

func bindPerson(t *testing.T, values map[string]any) (person, []Problem) {
	t.Helper()
	p, problems, err := Bind[person](request.NewMapData("test", values), zap.NewNop())
	require.NoError(t, err)
	return p, problems
}

func TestObjectResolver_Scalars(t *testing.T) {
	p, problems := bindPerson(t, map[string]any{
		"first-name":  "Ada",
		"age":         "36",
		"active":      "true",
		"timeout":     "5s",
		"nickname":    "countess",
		"ip":          "10.0.0.1",
		"created_by":  "admin",
		"legacy_name": "old",
		"Plain":       "plain",
		"secret":      "must not bind",
	})

	assert.Empty(t, problems)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, 36, p.Age)
	assert.True(t, p.Active)
	assert.Equal(t, 5*time.Second, p.Timeout)
	require.NotNil(t, p.Nickname)
	assert.Equal(t, "countess", *p.Nickname)
	assert.Equal(t, "10.0.0.1", p.Addr.String())
	assert.Equal(t, "admin", p.CreatedBy)
	assert.Equal(t, "old", p.Legacy)
	assert.Equal(t, "plain", p.Plain)
	assert.Empty(t, p.Secret)
}

func TestObjectResolver_FaultIsolation(t *testing.T) {
	p, problems := bindPerson(t, map[string]any{
		"first_name": "Ada",
		"age":        "thirty",
		"active":     "true",
	})

	require.Len(t, problems, 1)
	assert.Equal(t, "age", problems[0].Property.Name)
	assert.Equal(t, "thirty", problems[0].Value.RawValue)
	assert.IsType(t, &person{}, problems[0].Item)
	assert.Equal(t, "Ada", p.FirstName)
	assert.True(t, p.Active)
	assert.Zero(t, p.Age)
}

func TestObjectResolver_NestedObjects(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		p, problems := bindPerson(t, map[string]any{
			"home.street": "1 Main St",
			"home.city":   "London",
			"work.city":   "Cambridge",
		})

		assert.Empty(t, problems)
		assert.Equal(t, address{Street: "1 Main St", City: "London"}, p.Home)
		require.NotNil(t, p.Work)
		assert.Equal(t, "Cambridge", p.Work.City)
	})

	t.Run("absent optional child stays nil", func(t *testing.T) {
		p, _ := bindPerson(t, map[string]any{"home.city": "London"})
		assert.Nil(t, p.Work)
	})

	t.Run("child problems are attributed to the child", func(t *testing.T) {
		_, problems := bindPerson(t, map[string]any{
			"home.zip": "abc",
			"age":      "x",
		})

		require.Len(t, problems, 2)
		byProperty := map[string]Problem{}
		for _, pr := range problems {
			byProperty[pr.Property.Name] = pr
		}
		assert.IsType(t, &address{}, byProperty["zip"].Item)
		assert.IsType(t, &person{}, byProperty["age"].Item)
	})

	t.Run("prefix found through naming", func(t *testing.T) {
		type outer struct {
			HomeAddress address `bind:"home_address"`
		}
		o, problems, err := Bind[outer](request.NewMapData("test", map[string]any{
			"home-address.city": "Paris",
		}), zap.NewNop())
		require.NoError(t, err)
		assert.Empty(t, problems)
		assert.Equal(t, "Paris", o.HomeAddress.City)
	})
}

func TestObjectResolver_Collections(t *testing.T) {
	t.Run("structs are bound greedily", func(t *testing.T) {
		p, problems := bindPerson(t, map[string]any{
			"friends[0].name": "Bob",
			"friends[1].name": "Eve",
			"friends[1].age":  "x",
			"friends[3].name": "unreachable",
		})

		require.Len(t, p.Friends, 2)
		assert.Equal(t, "Bob", p.Friends[0].Name)
		assert.Equal(t, "Eve", p.Friends[1].Name)
		require.Len(t, problems, 1)
		assert.Equal(t, "age", problems[0].Property.Name)
	})

	t.Run("scalars from a delimited string", func(t *testing.T) {
		p, problems := bindPerson(t, map[string]any{"tags": "a, b,c"})
		assert.Empty(t, problems)
		assert.Equal(t, []string{"a", "b", "c"}, p.Tags)
	})

	t.Run("scalars from a list", func(t *testing.T) {
		p, _ := bindPerson(t, map[string]any{"scores": []any{1, "2", 3}})
		assert.Equal(t, []int{1, 2, 3}, p.Scores)
	})

	t.Run("scalars from indexed keys", func(t *testing.T) {
		p, _ := bindPerson(t, map[string]any{"scores[0]": "4", "scores[1]": "5"})
		assert.Equal(t, []int{4, 5}, p.Scores)
	})

	t.Run("no data leaves nil", func(t *testing.T) {
		p, _ := bindPerson(t, map[string]any{})
		assert.Nil(t, p.Friends)
		assert.Nil(t, p.Tags)
	})
}

func TestObjectResolver_UnsupportedField(t *testing.T) {
	_, problems := bindPerson(t, map[string]any{})
	assert.Empty(t, problems, "unsupported fields without data are ignored")

	_, problems = bindPerson(t, map[string]any{"extras": "x"})
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].ExceptionText, ErrMsgUnsupportedField)
}

func TestObjectResolver_UnsupportedModel(t *testing.T) {
	v, problems, err := Bind[int](request.NewMapData("test", nil), zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, v)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].ExceptionText, ErrMsgUnsupportedModel)
}

type exploding string

func TestObjectResolver_PanickingConverter(t *testing.T) {
	type target struct {
		Bomb exploding `bind:"bomb"`
		Name string    `bind:"name"`
	}
	conv := convert.New()
	convert.Register(conv, func(raw any) (exploding, error) { panic("kaboom") })

	v, problems, err := Bind[*target](request.NewMapData("test", map[string]any{
		"bomb": "x",
		"name": "survivor",
	}), zap.NewNop(), WithConverter(conv))

	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "survivor", v.Name)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].ExceptionText, "kaboom")
	assert.Equal(t, "bomb", problems[0].Property.Name)
}
