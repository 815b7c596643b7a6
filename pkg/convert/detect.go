package convert

import (
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/translator-tools/reasoner-converter/pkg/rcerrors"
)

// Members whose JSON shape differs between the releases: TRAPI 0.9.2 lists
// graph elements and bindings in arrays, TRAPI 1.0.0 keys them in objects.
var shapedMembers = [][]string{
	{"query_graph", "nodes"},
	{"query_graph", "edges"},
	{"knowledge_graph", "nodes"},
	{"knowledge_graph", "edges"},
	{"nodes"},
	{"edges"},
	{"node_bindings"},
	{"edge_bindings"},
}

// DetectVersion reports which release a JSON document is written in. It
// accepts a query, a message, a graph or a result. Documents that carry no
// shaped member, or that mix both shapes, fail with rcerrors.ErrUndetectable.
func DetectVersion(data []byte) (Version, error) {
	doc := data
	if msg, typ, _, err := jsonparser.Get(data, "message"); err == nil && typ == jsonparser.Object {
		doc = msg
	}

	var tally shapeTally
	for _, path := range shapedMembers {
		_, typ, _, _ := jsonparser.Get(doc, path...)
		tally.add(typ)
	}
	_, _ = jsonparser.ArrayEach(doc, func(result []byte, typ jsonparser.ValueType, _ int, _ error) {
		if typ != jsonparser.Object {
			return
		}
		for _, key := range []string{"node_bindings", "edge_bindings"} {
			_, typ, _, _ := jsonparser.Get(result, key)
			tally.add(typ)
		}
	}, "results")

	return tally.decide()
}

type shapeTally struct {
	arrays  int
	objects int
}

func (t *shapeTally) add(typ jsonparser.ValueType) {
	switch typ {
	case jsonparser.Array:
		t.arrays++
	case jsonparser.Object:
		t.objects++
	}
}

func (t shapeTally) decide() (Version, error) {
	switch {
	case t.arrays > 0 && t.objects > 0:
		return "", fmt.Errorf("document mixes %d list-shaped and %d map-shaped members: %w", t.arrays, t.objects, rcerrors.ErrUndetectable)
	case t.arrays > 0:
		return V0, nil
	case t.objects > 0:
		return V1, nil
	default:
		return "", fmt.Errorf("document has no graph or binding members: %w", rcerrors.ErrUndetectable)
	}
}
