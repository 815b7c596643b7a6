package v0

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageJSONPreservesDocument(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "query graph with extras",
			data: `{"query_graph":{"nodes":[{"id":"n0","type":"disease","curie":"MONDO:0005737","is_set":false},{"id":"n1","type":"gene"}],"edges":[{"id":"e01","source_id":"n0","target_id":"n1","type":["related_to","affects"],"x":{"y":[1,2.5]}}]}}`,
		},
		{
			name: "knowledge graph and results",
			data: `{"knowledge_graph":{"nodes":[{"id":"MONDO:0005737","type":["disease"],"name":"Ebola hemorrhagic fever","a":1}],"edges":[{"id":"xxx","source_id":"MONDO:0005737","target_id":"HGNC:4897","type":"related_to","relation":"RO:0002410"}]},"results":[{"node_bindings":[{"qg_id":"n0","kg_id":["MONDO:0005737"]}],"edge_bindings":[{"qg_id":"e01","kg_id":"xxx","b":2}],"score":0.5}],"custom":"kept"}`,
		},
		{
			name: "empty",
			data: `{}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			var msg Message
			require.NoError(json.Unmarshal([]byte(tt.data), &msg))
			out, err := json.Marshal(msg)
			require.NoError(err)
			require.Equal(tt.data, string(out))
		})
	}
}

func TestNullMembersAreDropped(t *testing.T) {
	require := require.New(t)

	var node Node
	require.NoError(json.Unmarshal([]byte(`{"id":"XXX:YYY","type":null,"name":null}`), &node))
	require.Nil(node.Type)
	require.Nil(node.Name)
	require.True(node.AdditionalProperties.IsEmpty())

	out, err := json.Marshal(node)
	require.NoError(err)
	require.Equal(`{"id":"XXX:YYY"}`, string(out))
}

func TestBindingKeepsKgIDForm(t *testing.T) {
	require := require.New(t)

	var b NodeBinding
	require.NoError(json.Unmarshal([]byte(`{"qg_id":"n0","kg_id":["a","b"],"score":1}`), &b))
	require.Equal("n0", b.QgID)
	require.True(b.KgID.IsList())
	require.Equal([]string{"a", "b"}, b.KgID.Values())
	require.Equal([]string{"score"}, b.AdditionalProperties.Keys())
}

func TestQueryMessageNull(t *testing.T) {
	require := require.New(t)
	var q Query
	require.NoError(json.Unmarshal([]byte(`{"message":null,"a":1}`), &q))
	require.Nil(q.Message)
	require.Equal([]string{"a"}, q.AdditionalProperties.Keys())
}
