package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldsTakeAndRest(t *testing.T) {
	require := require.New(t)

	fields, err := DecodeObject([]byte(`{"id": "n0", "type": null, "a": 1, "b": "two"}`))
	require.NoError(err)

	var id string
	var typ *string
	var missing *string
	require.NoError(fields.Take("id", &id))
	require.NoError(fields.Take("type", &typ))
	require.NoError(fields.Take("name", &missing))
	require.Equal("n0", id)
	require.Nil(typ)
	require.Nil(missing)

	rest, err := fields.Rest()
	require.NoError(err)
	require.Equal([]string{"a", "b"}, rest.Keys())
}

func TestFieldsTakeReportsMember(t *testing.T) {
	fields, err := DecodeObject([]byte(`{"id": 3}`))
	require.NoError(t, err)
	var id string
	require.ErrorContains(t, fields.Take("id", &id), `"id"`)
}

func TestDecodeObjectNull(t *testing.T) {
	require := require.New(t)
	fields, err := DecodeObject([]byte(" null "))
	require.NoError(err)
	rest, err := fields.Rest()
	require.NoError(err)
	require.True(rest.IsEmpty())

	_, err = DecodeObject([]byte(`[1]`))
	require.Error(err)
}

func TestObjectEncoderDeclaredFieldsWin(t *testing.T) {
	enc := NewObjectEncoder().Set("id", "n0").Set("category", "biolink:Disease")
	SetOptional[string](enc, "name", nil)
	enc.Merge(NewProperties(Property{"category", "shadowed"}, Property{"a", 1}))

	out, err := json.Marshal(enc)
	require.NoError(t, err)
	require.Equal(t, `{"id":"n0","category":"biolink:Disease","a":1}`, string(out))
}

func TestTakeMap(t *testing.T) {
	require := require.New(t)

	fields, err := DecodeObject([]byte(`{"nodes": {"b": "x", "a": "y"}, "edges": null}`))
	require.NoError(err)

	nodes, err := TakeMap[string](fields, "nodes")
	require.NoError(err)
	require.Equal(2, nodes.Len())
	require.Equal("b", nodes.Oldest().Key)

	edges, err := TakeMap[string](fields, "edges")
	require.NoError(err)
	require.Nil(edges)

	absent, err := TakeMap[string](fields, "results")
	require.NoError(err)
	require.Nil(absent)
	require.Equal(0, MapOrEmpty(absent).Len())

	rest, err := fields.Rest()
	require.NoError(err)
	require.True(rest.IsEmpty())
}
