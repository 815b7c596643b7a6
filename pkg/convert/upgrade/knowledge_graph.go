package upgrade

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/translator-tools/reasoner-converter/api/common"
	apiv0 "github.com/translator-tools/reasoner-converter/api/v0"
	apiv1 "github.com/translator-tools/reasoner-converter/api/v1"
	"github.com/translator-tools/reasoner-converter/pkg/biolink"
	"github.com/translator-tools/reasoner-converter/pkg/rcerrors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Node converts a knowledge graph node. The node's id is not part of the
// result; callers store the result under it. Members other than type and name
// become attributes.
func Node(node apiv0.Node) (apiv1.Node, error) {
	if node.ID == "" {
		return apiv1.Node{}, rcerrors.MissingField("Node", "id")
	}
	out := apiv1.Node{
		Name:       common.ClonePtr(node.Name),
		Attributes: attributes(node.AdditionalProperties),
	}
	if node.Type != nil {
		out.Category = lo.ToPtr(biolink.UpgradeEntities(common.Many(*node.Type...)))
	}
	return out, nil
}

// Edge converts a knowledge graph edge. Members other than type and relation
// become attributes.
func Edge(edge apiv0.Edge) (apiv1.Edge, error) {
	switch {
	case edge.ID == "":
		return apiv1.Edge{}, rcerrors.MissingField("Edge", "id")
	case edge.SourceID == "":
		return apiv1.Edge{}, rcerrors.MissingField("Edge", "source_id")
	case edge.TargetID == "":
		return apiv1.Edge{}, rcerrors.MissingField("Edge", "target_id")
	}
	return apiv1.Edge{
		Subject:    edge.SourceID,
		Object:     edge.TargetID,
		Predicate:  biolink.UpgradePredicate(edge.Type),
		Relation:   common.ClonePtr(edge.Relation),
		Attributes: attributes(edge.AdditionalProperties),
	}, nil
}

// KnowledgeGraph converts a knowledge graph, keying nodes and edges by id in
// their original order.
func KnowledgeGraph(kg apiv0.KnowledgeGraph) (apiv1.KnowledgeGraph, error) {
	if kg.Nodes == nil {
		return apiv1.KnowledgeGraph{}, rcerrors.MissingField("KnowledgeGraph", "nodes")
	}
	if kg.Edges == nil {
		return apiv1.KnowledgeGraph{}, rcerrors.MissingField("KnowledgeGraph", "edges")
	}
	nodes := orderedmap.New[string, apiv1.Node]()
	for i, n := range kg.Nodes {
		converted, err := Node(n)
		if err != nil {
			return apiv1.KnowledgeGraph{}, fmt.Errorf("nodes[%d]: %w", i, err)
		}
		nodes.Set(n.ID, converted)
	}
	edges := orderedmap.New[string, apiv1.Edge]()
	for i, e := range kg.Edges {
		converted, err := Edge(e)
		if err != nil {
			return apiv1.KnowledgeGraph{}, fmt.Errorf("edges[%d]: %w", i, err)
		}
		edges.Set(e.ID, converted)
	}
	return apiv1.KnowledgeGraph{Nodes: nodes, Edges: edges}, nil
}

// attributes folds free-form members into generic data attributes, or returns
// nil when there are none.
func attributes(props common.Properties) *[]apiv1.Attribute {
	if props.IsEmpty() {
		return nil
	}
	attrs := make([]apiv1.Attribute, 0, props.Len())
	for k, v := range props.Clone().All() {
		attrs = append(attrs, apiv1.Attribute{
			Name:  lo.ToPtr(k),
			Type:  apiv1.DefaultAttributeType,
			Value: v,
		})
	}
	return &attrs
}
