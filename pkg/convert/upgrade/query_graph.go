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

// QNode converts a query node: type becomes category and curie becomes id.
// Other members are carried over as they are.
func QNode(qnode apiv0.QNode) (apiv1.QNode, error) {
	if qnode.ID == "" {
		return apiv1.QNode{}, rcerrors.MissingField("QNode", "id")
	}
	out := apiv1.QNode{
		ID:                   common.CloneOneOrMany(qnode.Curie),
		AdditionalProperties: qnode.AdditionalProperties.Clone(),
	}
	if qnode.Type != nil {
		out.Category = lo.ToPtr(common.One(biolink.UpgradeEntity(*qnode.Type)))
	}
	return out, nil
}

// QEdge converts a query edge. A list of types stays a list of predicates.
func QEdge(qedge apiv0.QEdge) (apiv1.QEdge, error) {
	switch {
	case qedge.ID == "":
		return apiv1.QEdge{}, rcerrors.MissingField("QEdge", "id")
	case qedge.SourceID == "":
		return apiv1.QEdge{}, rcerrors.MissingField("QEdge", "source_id")
	case qedge.TargetID == "":
		return apiv1.QEdge{}, rcerrors.MissingField("QEdge", "target_id")
	}
	out := apiv1.QEdge{
		Subject:              qedge.SourceID,
		Object:               qedge.TargetID,
		Relation:             common.ClonePtr(qedge.Relation),
		AdditionalProperties: qedge.AdditionalProperties.Clone(),
	}
	if qedge.Type != nil {
		out.Predicate = lo.ToPtr(biolink.UpgradePredicates(*qedge.Type))
	}
	return out, nil
}

// QueryGraph converts a query graph, keying nodes and edges by id in their
// original order.
func QueryGraph(qg apiv0.QueryGraph) (apiv1.QueryGraph, error) {
	if qg.Nodes == nil {
		return apiv1.QueryGraph{}, rcerrors.MissingField("QueryGraph", "nodes")
	}
	if qg.Edges == nil {
		return apiv1.QueryGraph{}, rcerrors.MissingField("QueryGraph", "edges")
	}
	nodes := orderedmap.New[string, apiv1.QNode]()
	for i, n := range qg.Nodes {
		converted, err := QNode(n)
		if err != nil {
			return apiv1.QueryGraph{}, fmt.Errorf("nodes[%d]: %w", i, err)
		}
		nodes.Set(n.ID, converted)
	}
	edges := orderedmap.New[string, apiv1.QEdge]()
	for i, e := range qg.Edges {
		converted, err := QEdge(e)
		if err != nil {
			return apiv1.QueryGraph{}, fmt.Errorf("edges[%d]: %w", i, err)
		}
		edges.Set(e.ID, converted)
	}
	return apiv1.QueryGraph{Nodes: nodes, Edges: edges}, nil
}
