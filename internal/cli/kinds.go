package cli

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/buger/jsonparser"
	"github.com/stoewer/go-strcase"
	"github.com/translator-tools/reasoner-converter/pkg/convert"
	"github.com/translator-tools/reasoner-converter/pkg/convert/downgrade"
	"github.com/translator-tools/reasoner-converter/pkg/convert/upgrade"
)

const (
	queryKind   = "query"
	messageKind = "message"
)

// convertFunc converts a JSON document. id is the map key of the entity for
// kinds whose old-format form carries its own identifier.
type convertFunc func(data []byte, id string) (interface{}, error)

type documentKind struct {
	// entity is the schema component name, e.g. QueryGraph.
	entity    string
	upgrade   convertFunc
	downgrade convertFunc
	// keyed kinds need --id to downgrade.
	keyed bool
}

func kindName(entity string) string {
	return strcase.KebabCase(entity)
}

func documentKinds(conv convert.Converter) map[string]documentKind {
	kinds := []documentKind{
		{entity: "Query", upgrade: decoded(conv.UpgradeQuery), downgrade: decoded(conv.DowngradeQuery)},
		{entity: "Message", upgrade: decoded(conv.UpgradeMessage), downgrade: decoded(conv.DowngradeMessage)},
		{entity: "QueryGraph", upgrade: decoded(upgrade.QueryGraph), downgrade: decoded(downgrade.QueryGraph)},
		{entity: "KnowledgeGraph", upgrade: decoded(upgrade.KnowledgeGraph), downgrade: decoded(downgrade.KnowledgeGraph)},
		{entity: "Result", upgrade: decoded(upgrade.Result), downgrade: decoded(downgrade.Result)},
		{entity: "QNode", upgrade: decoded(upgrade.QNode), downgrade: keyed(downgrade.QNode), keyed: true},
		{entity: "QEdge", upgrade: decoded(upgrade.QEdge), downgrade: keyed(downgrade.QEdge), keyed: true},
		{entity: "Node", upgrade: decoded(upgrade.Node), downgrade: keyed(downgrade.Node), keyed: true},
		{entity: "Edge", upgrade: decoded(upgrade.Edge), downgrade: keyed(downgrade.Edge), keyed: true},
		{entity: "NodeBinding", upgrade: decoded(upgrade.NodeBinding), downgrade: keyed(downgrade.NodeBinding), keyed: true},
		{entity: "EdgeBinding", upgrade: decoded(upgrade.EdgeBinding), downgrade: keyed(downgrade.EdgeBinding), keyed: true},
	}
	out := make(map[string]documentKind, len(kinds))
	for _, k := range kinds {
		out[kindName(k.entity)] = k
	}
	return out
}

func kindNames(kinds map[string]documentKind) []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// unkeyedKindNames lists the kinds that carry their own identifier in both
// versions.
func unkeyedKindNames(kinds map[string]documentKind) []string {
	names := []string{}
	for _, name := range kindNames(kinds) {
		if !kinds[name].keyed {
			names = append(names, name)
		}
	}
	return names
}

func decoded[In, Out any](fn func(In) (Out, error)) convertFunc {
	return func(data []byte, _ string) (interface{}, error) {
		var in In
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("decoding input: %w", err)
		}
		return fn(in)
	}
}

func keyed[In, Out any](fn func(string, In) (Out, error)) convertFunc {
	return func(data []byte, id string) (interface{}, error) {
		var in In
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("decoding input: %w", err)
		}
		return fn(id, in)
	}
}

// detectKind tells a Query (which wraps a message) from a bare Message.
func detectKind(data []byte) string {
	if _, typ, _, err := jsonparser.Get(data, "message"); err == nil && typ == jsonparser.Object {
		return queryKind
	}
	return messageKind
}

// converterFor returns the conversion from one format version to the other.
func (k documentKind) converterFor(from convert.Version) convertFunc {
	if from == convert.V0 {
		return k.upgrade
	}
	return k.downgrade
}
