package downgrade_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	apiv0 "github.com/translator-tools/reasoner-converter/api/v0"
	apiv1 "github.com/translator-tools/reasoner-converter/api/v1"
	"github.com/translator-tools/reasoner-converter/pkg/convert/downgrade"
	"github.com/translator-tools/reasoner-converter/pkg/convert/upgrade"
)

func decode[T any](t *testing.T, data string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(data), &v))
	return v
}

func TestEntityRoundTrips(t *testing.T) {
	t.Run("node attributes", func(t *testing.T) {
		in := decode[apiv0.Node](t, `{"id":"XXX:YYY","a":1,"b":2,"c":3}`)
		up, err := upgrade.Node(in)
		require.NoError(t, err)
		out, err := downgrade.Node(in.ID, up)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(in, out))
	})

	t.Run("edge attributes", func(t *testing.T) {
		in := decode[apiv0.Edge](t, `{"id":"xxx","source_id":"XXX:YYY","target_id":"XXX:ZZZ","a":1,"b":2,"c":3}`)
		up, err := upgrade.Edge(in)
		require.NoError(t, err)
		out, err := downgrade.Edge(in.ID, up)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(in, out))
	})

	t.Run("qnode extras", func(t *testing.T) {
		in := decode[apiv0.QNode](t, `{"id":"n0","type":"chemical_substance","curie":["CHEBI:1"],"a":1,"b":2}`)
		up, err := upgrade.QNode(in)
		require.NoError(t, err)
		out, err := downgrade.QNode(in.ID, up)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(in, out))
	})

	t.Run("qedge extras", func(t *testing.T) {
		in := decode[apiv0.QEdge](t, `{"id":"e01","source_id":"n0","target_id":"n1","type":"treats","a":1,"b":2}`)
		up, err := upgrade.QEdge(in)
		require.NoError(t, err)
		out, err := downgrade.QEdge(in.ID, up)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(in, out))
	})

	t.Run("qedge type list", func(t *testing.T) {
		in := decode[apiv0.QEdge](t, `{"id":"e01","source_id":"n0","target_id":"n1","type":["treats"]}`)
		up, err := upgrade.QEdge(in)
		require.NoError(t, err)
		out, err := downgrade.QEdge(in.ID, up)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(in, out))
	})

	t.Run("attributes named after fields", func(t *testing.T) {
		in := decode[apiv1.Node](t, `{"name":"n1","attributes":[{"name":"id","type":"foo:bar","value":"OTHER:1"},{"type":"foo:bar","value":1},{"name":"name","type":"foo:bar","value":"n2"}]}`)
		down, err := downgrade.Node("A:1", in)
		require.NoError(t, err)
		up, err := upgrade.Node(down)
		require.NoError(t, err)
		require.Equal(t, "n1", *up.Name)
		require.NotNil(t, up.Attributes)
		require.Len(t, *up.Attributes, 1)
		require.Equal(t, "attribute01", *(*up.Attributes)[0].Name)
	})

	t.Run("result extras", func(t *testing.T) {
		in := decode[apiv0.Result](t, `{"node_bindings":[{"qg_id":"n0","kg_id":"XXX:YYY"}],"edge_bindings":[{"qg_id":"e01","kg_id":"xxx"}],"a":1,"b":2}`)
		up, err := upgrade.Result(in)
		require.NoError(t, err)
		out, err := downgrade.Result(up)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(in, out))
	})

	t.Run("query extras", func(t *testing.T) {
		in := decode[apiv0.Query](t, `{"message":{},"a":1,"b":2,"c":3}`)
		up, err := upgrade.Query(in)
		require.NoError(t, err)
		out, err := downgrade.Query(up)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(in, out))
	})
}

func TestMessageRoundTrip(t *testing.T) {
	const doc = `{"query_graph":{"nodes":[{"id":"n0","type":"disease","curie":"MONDO:0005737"},{"id":"n1","type":"gene"}],"edges":[{"id":"e01","source_id":"n0","target_id":"n1","type":"related_to"}]},"knowledge_graph":{"nodes":[{"id":"MONDO:0005737","type":["disease"],"name":"Ebola hemorrhagic fever"},{"id":"HGNC:4897","type":["gene"],"name":"HBB","symbol":"HBB"}],"edges":[{"id":"xxx","source_id":"MONDO:0005737","target_id":"HGNC:4897","type":"related_to","relation":"RO:0002410","publications":["PMID:1"]}]},"results":[{"node_bindings":[{"qg_id":"n0","kg_id":"MONDO:0005737"},{"qg_id":"n1","kg_id":"HGNC:4897"}],"edge_bindings":[{"qg_id":"e01","kg_id":"xxx"}],"score":0.9}]}`

	in := decode[apiv0.Message](t, doc)
	up, err := upgrade.Message(in)
	require.NoError(t, err)
	out, err := downgrade.Message(up)
	require.NoError(t, err)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	require.Equal(t, doc, string(data))
}

func TestNewFormatRoundTrip(t *testing.T) {
	const doc = `{"message":{"query_graph":{"nodes":{"n0":{"category":"biolink:Disease","id":"MONDO:0005737"},"n1":{"category":"biolink:Gene"}},"edges":{"e01":{"subject":"n0","object":"n1","predicate":"biolink:related_to"}}},"results":[{"node_bindings":{"n0":[{"id":"MONDO:0005737"}],"n1":[{"id":"HGNC:4897"}]},"edge_bindings":{"e01":[{"id":"xxx"}]}}]}}`

	in := decode[apiv1.Query](t, doc)
	down, err := downgrade.Query(in)
	require.NoError(t, err)
	out, err := upgrade.Query(down)
	require.NoError(t, err)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	require.Equal(t, doc, string(data))
}
