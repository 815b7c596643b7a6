package downgrade

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/translator-tools/reasoner-converter/api/common"
	apiv0 "github.com/translator-tools/reasoner-converter/api/v0"
	apiv1 "github.com/translator-tools/reasoner-converter/api/v1"
	"github.com/translator-tools/reasoner-converter/pkg/biolink"
	"github.com/translator-tools/reasoner-converter/pkg/rcerrors"
)

// QNode converts the query node stored under id. TRAPI 0.9.2 has room for a
// single type only, so more than one category is an error.
func QNode(id string, qnode apiv1.QNode) (apiv0.QNode, error) {
	if id == "" {
		return apiv0.QNode{}, rcerrors.MissingField("QNode", "id")
	}
	out := apiv0.QNode{
		ID:                   id,
		Curie:                common.CloneOneOrMany(qnode.ID),
		AdditionalProperties: qnode.AdditionalProperties.Clone(),
	}
	if isSet(qnode.Category) {
		category, err := single(*qnode.Category, rcerrors.ErrMultipleCategories)
		if err != nil {
			return apiv0.QNode{}, err
		}
		if category != nil {
			out.Type = lo.ToPtr(biolink.DowngradeEntity(*category))
		}
	}
	return out, nil
}

// QEdge converts the query edge stored under id. More than one predicate is an
// error; a one-element list stays a list.
func QEdge(id string, qedge apiv1.QEdge) (apiv0.QEdge, error) {
	switch {
	case id == "":
		return apiv0.QEdge{}, rcerrors.MissingField("QEdge", "id")
	case qedge.Subject == "":
		return apiv0.QEdge{}, rcerrors.MissingField("QEdge", "subject")
	case qedge.Object == "":
		return apiv0.QEdge{}, rcerrors.MissingField("QEdge", "object")
	}
	out := apiv0.QEdge{
		ID:                   id,
		SourceID:             qedge.Subject,
		TargetID:             qedge.Object,
		Relation:             common.ClonePtr(qedge.Relation),
		AdditionalProperties: qedge.AdditionalProperties.Clone(),
	}
	if isSet(qedge.Predicate) {
		if _, err := single(*qedge.Predicate, rcerrors.ErrMultiplePredicates); err != nil {
			return apiv0.QEdge{}, err
		}
		if qedge.Predicate.Len() > 0 {
			out.Type = lo.ToPtr(biolink.DowngradePredicates(*qedge.Predicate))
		}
	}
	return out, nil
}

// single unwraps a term that may be a scalar or a list of at most one term. An
// empty list yields nil.
func single(terms common.OneOrMany[string], tooMany error) (*string, error) {
	if terms.Len() > 1 {
		return nil, fmt.Errorf("%w: got %v", tooMany, terms.Values())
	}
	term, ok := terms.First()
	if !ok {
		return nil, nil
	}
	return &term, nil
}

// QueryGraph flattens the query node and edge maps into lists, in map order.
func QueryGraph(qg apiv1.QueryGraph) (apiv0.QueryGraph, error) {
	if qg.Nodes == nil {
		return apiv0.QueryGraph{}, rcerrors.MissingField("QueryGraph", "nodes")
	}
	if qg.Edges == nil {
		return apiv0.QueryGraph{}, rcerrors.MissingField("QueryGraph", "edges")
	}
	out := apiv0.QueryGraph{
		Nodes: make([]apiv0.QNode, 0, qg.Nodes.Len()),
		Edges: make([]apiv0.QEdge, 0, qg.Edges.Len()),
	}
	for pair := qg.Nodes.Oldest(); pair != nil; pair = pair.Next() {
		n, err := QNode(pair.Key, pair.Value)
		if err != nil {
			return apiv0.QueryGraph{}, fmt.Errorf("nodes[%q]: %w", pair.Key, err)
		}
		out.Nodes = append(out.Nodes, n)
	}
	for pair := qg.Edges.Oldest(); pair != nil; pair = pair.Next() {
		e, err := QEdge(pair.Key, pair.Value)
		if err != nil {
			return apiv0.QueryGraph{}, fmt.Errorf("edges[%q]: %w", pair.Key, err)
		}
		out.Edges = append(out.Edges, e)
	}
	return out, nil
}
