package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropertiesKeepDocumentOrder(t *testing.T) {
	require := require.New(t)

	var p Properties
	require.NoError(json.Unmarshal([]byte(`{"c": 3, "a": 1, "b": {"x": [1, "y", null]}}`), &p))
	require.Equal([]string{"c", "a", "b"}, p.Keys())

	v, ok := p.Get("c")
	require.True(ok)
	require.Equal(json.Number("3"), v)

	out, err := json.Marshal(p)
	require.NoError(err)
	require.Equal(`{"c":3,"a":1,"b":{"x":[1,"y",null]}}`, string(out))
}

func TestPropertiesZeroValue(t *testing.T) {
	require := require.New(t)

	var p Properties
	require.True(p.IsEmpty())
	require.Empty(p.Keys())
	_, ok := p.Get("a")
	require.False(ok)
	p.Delete("a")

	out, err := json.Marshal(p)
	require.NoError(err)
	require.Equal(`{}`, string(out))

	p.Set("a", 1)
	require.Equal(1, p.Len())
}

func TestPropertiesSetKeepsPosition(t *testing.T) {
	p := NewProperties(Property{"a", 1}, Property{"b", 2})
	p.Set("a", 3)
	require.Equal(t, []string{"a", "b"}, p.Keys())
	v, _ := p.Get("a")
	require.Equal(t, 3, v)
}

func TestPropertiesCloneIsDeep(t *testing.T) {
	require := require.New(t)

	nested := map[string]any{"k": []any{"v"}}
	p := NewProperties(Property{"a", nested})
	clone := p.Clone()
	require.True(clone.Equal(p))

	nested["k"].([]any)[0] = "changed"
	nested["extra"] = true
	v, _ := clone.Get("a")
	require.Equal(map[string]any{"k": []any{"v"}}, v)
	require.False(clone.Equal(p))
}

func TestPropertiesWithout(t *testing.T) {
	p := NewProperties(Property{"qg_id", "n0"}, Property{"kg_id", "X"}, Property{"score", 1})
	rest := p.Without("qg_id", "kg_id")
	require.Equal(t, []string{"score"}, rest.Keys())
	require.Equal(t, 3, p.Len())
}

func TestPropertiesEqualIsOrderSensitive(t *testing.T) {
	require := require.New(t)
	a := NewProperties(Property{"a", 1}, Property{"b", 2})
	b := NewProperties(Property{"b", 2}, Property{"a", 1})
	require.False(a.Equal(b))
	require.True(a.Equal(a.Clone()))
	require.True(Properties{}.Equal(NewProperties()))
}
