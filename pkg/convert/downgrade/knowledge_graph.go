package downgrade

import (
	"fmt"

	"github.com/mohae/deepcopy"
	"github.com/samber/lo"
	"github.com/translator-tools/reasoner-converter/api/common"
	apiv0 "github.com/translator-tools/reasoner-converter/api/v0"
	apiv1 "github.com/translator-tools/reasoner-converter/api/v1"
	"github.com/translator-tools/reasoner-converter/pkg/biolink"
	"github.com/translator-tools/reasoner-converter/pkg/rcerrors"
)

var (
	nodeFields = []string{"id", "type", "name"}
	edgeFields = []string{"id", "type", "source_id", "target_id", "relation"}
)

// Node converts the knowledge graph node stored under id. Attributes become
// top-level members named after the attribute.
func Node(id string, node apiv1.Node) (apiv0.Node, error) {
	if id == "" {
		return apiv0.Node{}, rcerrors.MissingField("Node", "id")
	}
	out := apiv0.Node{
		ID:   id,
		Name: common.ClonePtr(node.Name),
	}
	if isSet(node.Category) {
		out.Type = lo.ToPtr(biolink.DowngradeEntities(*node.Category).Values())
	}
	if node.Attributes != nil {
		out.AdditionalProperties = expandAttributes(*node.Attributes, nodeFields)
	}
	return out, nil
}

// Edge converts the knowledge graph edge stored under id.
func Edge(id string, edge apiv1.Edge) (apiv0.Edge, error) {
	switch {
	case id == "":
		return apiv0.Edge{}, rcerrors.MissingField("Edge", "id")
	case edge.Subject == "":
		return apiv0.Edge{}, rcerrors.MissingField("Edge", "subject")
	case edge.Object == "":
		return apiv0.Edge{}, rcerrors.MissingField("Edge", "object")
	}
	out := apiv0.Edge{
		ID:       id,
		SourceID: edge.Subject,
		TargetID: edge.Object,
		Type:     biolink.DowngradePredicate(edge.Predicate),
		Relation: common.ClonePtr(edge.Relation),
	}
	if edge.Attributes != nil {
		out.AdditionalProperties = expandAttributes(*edge.Attributes, edgeFields)
	}
	return out, nil
}

// KnowledgeGraph flattens the node and edge maps into lists, in map order.
func KnowledgeGraph(kg apiv1.KnowledgeGraph) (apiv0.KnowledgeGraph, error) {
	if kg.Nodes == nil {
		return apiv0.KnowledgeGraph{}, rcerrors.MissingField("KnowledgeGraph", "nodes")
	}
	if kg.Edges == nil {
		return apiv0.KnowledgeGraph{}, rcerrors.MissingField("KnowledgeGraph", "edges")
	}
	out := apiv0.KnowledgeGraph{
		Nodes: make([]apiv0.Node, 0, kg.Nodes.Len()),
		Edges: make([]apiv0.Edge, 0, kg.Edges.Len()),
	}
	for pair := kg.Nodes.Oldest(); pair != nil; pair = pair.Next() {
		n, err := Node(pair.Key, pair.Value)
		if err != nil {
			return apiv0.KnowledgeGraph{}, fmt.Errorf("nodes[%q]: %w", pair.Key, err)
		}
		out.Nodes = append(out.Nodes, n)
	}
	for pair := kg.Edges.Oldest(); pair != nil; pair = pair.Next() {
		e, err := Edge(pair.Key, pair.Value)
		if err != nil {
			return apiv0.KnowledgeGraph{}, fmt.Errorf("edges[%q]: %w", pair.Key, err)
		}
		out.Edges = append(out.Edges, e)
	}
	return out, nil
}

// expandAttributes turns attributes into members keyed by attribute name. A
// nameless attribute is keyed attributeNN after its position in attrs.
// Attributes named after a declared field are dropped.
func expandAttributes(attrs []apiv1.Attribute, declared []string) common.Properties {
	props := common.Properties{}
	for i, attr := range attrs {
		name := fmt.Sprintf("attribute%02d", i)
		if attr.Name != nil {
			name = *attr.Name
		}
		if lo.Contains(declared, name) {
			continue
		}
		props.Set(name, deepcopy.Copy(attr.Value))
	}
	return props
}

func isSet[T any](v *common.OneOrMany[T]) bool {
	return v != nil && !v.IsZero()
}
