package v1

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
			data: `{"query_graph":{"nodes":{"n1":{"category":"biolink:Gene"},"n0":{"category":["biolink:Disease"],"id":"MONDO:0005737","is_set":false}},"edges":{"e01":{"subject":"n0","object":"n1","predicate":["biolink:related_to"],"x":1}}}}`,
		},
		{
			name: "knowledge graph and results",
			data: `{"knowledge_graph":{"nodes":{"MONDO:0005737":{"category":["biolink:Disease"],"name":"Ebola hemorrhagic fever","attributes":[{"name":"a","type":"EDAM:data_0006","value":1}]}},"edges":{"xxx":{"subject":"MONDO:0005737","object":"HGNC:4897","predicate":"biolink:related_to"}}},"results":[{"node_bindings":{"n0":[{"id":"MONDO:0005737"}]},"edge_bindings":{"e01":[{"id":"xxx","b":2}]},"score":0.5}],"custom":"kept"}`,
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

func TestAttributeValueKeepsNumbers(t *testing.T) {
	require := require.New(t)
	var attr Attribute
	require.NoError(json.Unmarshal([]byte(`{"type":"EDAM:data_0006","value":12345678901234567890}`), &attr))
	require.Equal(json.Number("12345678901234567890"), attr.Value)
	require.Nil(attr.Name)
}

func TestNullMembersAreDropped(t *testing.T) {
	require := require.New(t)

	var node Node
	require.NoError(json.Unmarshal([]byte(`{"category":null,"name":null,"attributes":null}`), &node))
	require.Equal(Node{}, node)

	var qnode QNode
	require.NoError(json.Unmarshal([]byte(`{"category":null,"id":null}`), &qnode))
	require.Nil(qnode.Category)
	require.Nil(qnode.ID)

	out, err := json.Marshal(qnode)
	require.NoError(err)
	require.Equal(`{}`, string(out))
}

func TestGraphMapsKeepOrder(t *testing.T) {
	require := require.New(t)
	var kg KnowledgeGraph
	require.NoError(json.Unmarshal([]byte(`{"nodes":{"b":{},"a":{},"c":{}},"edges":{}}`), &kg))

	var keys []string
	for pair := kg.Nodes.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	require.Equal([]string{"b", "a", "c"}, keys)
	require.Equal(0, kg.Edges.Len())
}
