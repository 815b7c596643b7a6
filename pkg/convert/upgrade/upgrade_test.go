package upgrade

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	apiv0 "github.com/translator-tools/reasoner-converter/api/v0"
	"github.com/translator-tools/reasoner-converter/pkg/rcerrors"
)

func decode[T any](t *testing.T, data string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(data), &v))
	return v
}

func encode(t *testing.T, v any) string {
	t.Helper()
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return string(out)
}

func TestNode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "type and name",
			in:   `{"id":"MONDO:0005737","type":["disease"],"name":"Ebola hemorrhagic fever"}`,
			want: `{"category":["biolink:Disease"],"name":"Ebola hemorrhagic fever"}`,
		},
		{
			name: "type already a curie",
			in:   `{"id":"MONDO:0005737","type":["biolink:Disease"]}`,
			want: `{"category":["biolink:Disease"]}`,
		},
		{
			name: "extras become attributes",
			in:   `{"id":"XXX:YYY","a":1,"b":"two","c":{"d":[3]}}`,
			want: `{"attributes":[{"name":"a","type":"EDAM:data_0006","value":1},{"name":"b","type":"EDAM:data_0006","value":"two"},{"name":"c","type":"EDAM:data_0006","value":{"d":[3]}}]}`,
		},
		{
			name: "nulls",
			in:   `{"id":"XXX:YYY","type":null,"name":null}`,
			want: `{}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Node(decode[apiv0.Node](t, tt.in))
			require.NoError(t, err)
			require.Equal(t, tt.want, encode(t, got))
		})
	}
}

func TestEdge(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "snake type",
			in:   `{"id":"xxx","source_id":"MONDO:0005737","target_id":"HGNC:4897","type":"related_to","relation":"RO:0002410"}`,
			want: `{"subject":"MONDO:0005737","object":"HGNC:4897","predicate":"biolink:related_to","relation":"RO:0002410"}`,
		},
		{
			name: "type already a curie",
			in:   `{"id":"xxx","type":"biolink:related_to","source_id":"MONDO:0005737","target_id":"HGNC:4897"}`,
			want: `{"subject":"MONDO:0005737","object":"HGNC:4897","predicate":"biolink:related_to"}`,
		},
		{
			name: "no type",
			in:   `{"id":"xxx","source_id":"MONDO:0005737","target_id":"HGNC:4897"}`,
			want: `{"subject":"MONDO:0005737","object":"HGNC:4897"}`,
		},
		{
			name: "null type",
			in:   `{"id":"xxx","type":null,"source_id":"MONDO:0005737","target_id":"HGNC:4897"}`,
			want: `{"subject":"MONDO:0005737","object":"HGNC:4897"}`,
		},
		{
			name: "extras become attributes",
			in:   `{"id":"xxx","source_id":"XXX:YYY","target_id":"XXX:ZZZ","a":1}`,
			want: `{"subject":"XXX:YYY","object":"XXX:ZZZ","attributes":[{"name":"a","type":"EDAM:data_0006","value":1}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Edge(decode[apiv0.Edge](t, tt.in))
			require.NoError(t, err)
			require.Equal(t, tt.want, encode(t, got))
		})
	}
}

func TestQNode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "type and curie",
			in:   `{"id":"n0","type":"disease","curie":"MONDO:0005737"}`,
			want: `{"category":"biolink:Disease","id":"MONDO:0005737"}`,
		},
		{
			name: "curie list",
			in:   `{"id":"n0","curie":["MONDO:0005737","MONDO:0005738"]}`,
			want: `{"id":["MONDO:0005737","MONDO:0005738"]}`,
		},
		{
			name: "extras carried",
			in:   `{"id":"n0","a":1,"b":2}`,
			want: `{"a":1,"b":2}`,
		},
		{
			name: "renamed members win over extras",
			in:   `{"id":"n0","type":"gene","category":"stale"}`,
			want: `{"category":"biolink:Gene"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QNode(decode[apiv0.QNode](t, tt.in))
			require.NoError(t, err)
			require.Equal(t, tt.want, encode(t, got))
		})
	}
}

func TestQEdge(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "scalar type",
			in:   `{"id":"e01","source_id":"n0","target_id":"n1","type":"treats"}`,
			want: `{"subject":"n0","object":"n1","predicate":"biolink:treats"}`,
		},
		{
			name: "type list keeps arity",
			in:   `{"id":"e01","source_id":"n0","target_id":"n1","type":["affects","biolink:related_to"]}`,
			want: `{"subject":"n0","object":"n1","predicate":["biolink:affects","biolink:related_to"]}`,
		},
		{
			name: "relation and extras",
			in:   `{"id":"e01","source_id":"n0","target_id":"n1","relation":"RO:0002410","a":1}`,
			want: `{"subject":"n0","object":"n1","relation":"RO:0002410","a":1}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QEdge(decode[apiv0.QEdge](t, tt.in))
			require.NoError(t, err)
			require.Equal(t, tt.want, encode(t, got))
		})
	}
}

func TestBindingExpansion(t *testing.T) {
	require := require.New(t)

	nb, err := NodeBinding(decode[apiv0.NodeBinding](t, `{"qg_id":"n0","kg_id":["A:1","A:2"],"score":1}`))
	require.NoError(err)
	require.Equal(`[{"id":"A:1","score":1},{"id":"A:2","score":1}]`, encode(t, nb))

	eb, err := EdgeBinding(decode[apiv0.EdgeBinding](t, `{"qg_id":"e01","kg_id":"xxx"}`))
	require.NoError(err)
	require.Equal(`[{"id":"xxx"}]`, encode(t, eb))

	empty, err := NodeBinding(decode[apiv0.NodeBinding](t, `{"qg_id":"n0","kg_id":[]}`))
	require.NoError(err)
	require.Empty(empty)
}

func TestExpandedBindingsDoNotShareProperties(t *testing.T) {
	nb, err := NodeBinding(decode[apiv0.NodeBinding](t, `{"qg_id":"n0","kg_id":["A:1","A:2"],"x":{"y":1}}`))
	require.NoError(t, err)
	require.Len(t, nb, 2)

	nb[0].AdditionalProperties.Set("x", "changed")
	v, _ := nb[1].AdditionalProperties.Get("x")
	require.Equal(t, map[string]any{"y": json.Number("1")}, v)
}

func TestResult(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "extras on bindings",
			in:   `{"node_bindings":[{"qg_id":"n0","kg_id":"XXX:YYY","a":1}],"edge_bindings":[{"qg_id":"e01","kg_id":"xxx","b":2}]}`,
			want: `{"node_bindings":{"n0":[{"id":"XXX:YYY","a":1}]},"edge_bindings":{"e01":[{"id":"xxx","b":2}]}}`,
		},
		{
			name: "grouping keeps first-seen order",
			in:   `{"node_bindings":[{"qg_id":"n1","kg_id":"B"},{"qg_id":"n0","kg_id":["A","C"]},{"qg_id":"n1","kg_id":"D"}],"edge_bindings":[],"score":0.9}`,
			want: `{"node_bindings":{"n1":[{"id":"B"},{"id":"D"}],"n0":[{"id":"A"},{"id":"C"}]},"edge_bindings":{},"score":0.9}`,
		},
		{
			name: "empty kg_id list creates an empty group",
			in:   `{"node_bindings":[{"qg_id":"n0","kg_id":[]}],"edge_bindings":[]}`,
			want: `{"node_bindings":{"n0":[]},"edge_bindings":{}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Result(decode[apiv0.Result](t, tt.in))
			require.NoError(t, err)
			require.Equal(t, tt.want, encode(t, got))
		})
	}
}

func TestGraphs(t *testing.T) {
	require := require.New(t)

	qg, err := QueryGraph(decode[apiv0.QueryGraph](t, `{"nodes":[{"id":"n1","type":"gene"},{"id":"n0","curie":"MONDO:0005737"}],"edges":[{"id":"e01","source_id":"n0","target_id":"n1"}]}`))
	require.NoError(err)
	require.Equal(`{"nodes":{"n1":{"category":"biolink:Gene"},"n0":{"id":"MONDO:0005737"}},"edges":{"e01":{"subject":"n0","object":"n1"}}}`, encode(t, qg))

	kg, err := KnowledgeGraph(decode[apiv0.KnowledgeGraph](t, `{"nodes":[{"id":"MONDO:0005737","type":["disease"]}],"edges":[]}`))
	require.NoError(err)
	require.Equal(`{"nodes":{"MONDO:0005737":{"category":["biolink:Disease"]}},"edges":{}}`, encode(t, kg))
}

func TestMessageAndQuery(t *testing.T) {
	require := require.New(t)

	msg, err := Message(apiv0.Message{})
	require.NoError(err)
	require.Equal(`{}`, encode(t, msg))

	msg, err = Message(decode[apiv0.Message](t, `{"query_graph":null,"knowledge_graph":null,"results":null,"logs":[]}`))
	require.NoError(err)
	require.Equal(`{"logs":[]}`, encode(t, msg))

	q, err := Query(decode[apiv0.Query](t, `{"message":{},"a":1,"b":2,"c":3}`))
	require.NoError(err)
	require.Equal(`{"message":{},"a":1,"b":2,"c":3}`, encode(t, q))
}

func TestMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{name: "node id", run: func() error { _, err := Node(apiv0.Node{}); return err }},
		{name: "empty node id", run: func() error {
			_, err := Node(decode[apiv0.Node](t, `{"id":""}`))
			return err
		}},
		{name: "empty qedge source", run: func() error {
			_, err := QEdge(decode[apiv0.QEdge](t, `{"id":"e","source_id":"","target_id":"b"}`))
			return err
		}},
		{name: "edge source", run: func() error {
			_, err := Edge(apiv0.Edge{ID: "e", TargetID: "b"})
			return err
		}},
		{name: "qedge target", run: func() error {
			_, err := QEdge(apiv0.QEdge{ID: "e", SourceID: "a"})
			return err
		}},
		{name: "binding kg_id", run: func() error {
			_, err := NodeBinding(apiv0.NodeBinding{QgID: "n0"})
			return err
		}},
		{name: "binding qg_id", run: func() error {
			_, err := EdgeBinding(decode[apiv0.EdgeBinding](t, `{"kg_id":"x"}`))
			return err
		}},
		{name: "result bindings", run: func() error { _, err := Result(apiv0.Result{}); return err }},
		{name: "graph nodes", run: func() error {
			_, err := KnowledgeGraph(apiv0.KnowledgeGraph{Edges: []apiv0.Edge{}})
			return err
		}},
		{name: "nested node id", run: func() error {
			_, err := Message(decode[apiv0.Message](t, `{"query_graph":{"nodes":[{"type":"gene"}],"edges":[]}}`))
			return err
		}},
		{name: "query message", run: func() error { _, err := Query(apiv0.Query{}); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.run(), rcerrors.ErrMissingRequiredField)
		})
	}
}

func TestNestedErrorsNameTheirPath(t *testing.T) {
	_, err := Query(decode[apiv0.Query](t, `{"message":{"results":[{"node_bindings":[],"edge_bindings":[{"qg_id":"e0"}]}]}}`))
	require.ErrorIs(t, err, rcerrors.ErrMissingRequiredField)
	require.ErrorContains(t, err, "message: results[0]: edge_bindings[0]")
}
