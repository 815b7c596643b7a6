package downgrade

import (
	"fmt"

	"github.com/translator-tools/reasoner-converter/api/common"
	apiv0 "github.com/translator-tools/reasoner-converter/api/v0"
	apiv1 "github.com/translator-tools/reasoner-converter/api/v1"
	"github.com/translator-tools/reasoner-converter/pkg/rcerrors"
)

// NodeBinding converts a node binding grouped under qgID.
func NodeBinding(qgID string, nb apiv1.NodeBinding) (apiv0.NodeBinding, error) {
	if err := checkBinding("NodeBinding", qgID, nb.ID); err != nil {
		return apiv0.NodeBinding{}, err
	}
	return apiv0.NodeBinding{
		QgID:                 qgID,
		KgID:                 common.One(nb.ID),
		AdditionalProperties: nb.AdditionalProperties.Clone(),
	}, nil
}

// EdgeBinding converts an edge binding grouped under qgID.
func EdgeBinding(qgID string, eb apiv1.EdgeBinding) (apiv0.EdgeBinding, error) {
	if err := checkBinding("EdgeBinding", qgID, eb.ID); err != nil {
		return apiv0.EdgeBinding{}, err
	}
	return apiv0.EdgeBinding{
		QgID:                 qgID,
		KgID:                 common.One(eb.ID),
		AdditionalProperties: eb.AdditionalProperties.Clone(),
	}, nil
}

func checkBinding(entity, qgID, id string) error {
	if qgID == "" {
		return rcerrors.MissingField(entity, "qg_id")
	}
	if id == "" {
		return rcerrors.MissingField(entity, "id")
	}
	return nil
}

// Result flattens the binding groups of a result, in group order.
func Result(result apiv1.Result) (apiv0.Result, error) {
	if result.NodeBindings == nil {
		return apiv0.Result{}, rcerrors.MissingField("Result", "node_bindings")
	}
	if result.EdgeBindings == nil {
		return apiv0.Result{}, rcerrors.MissingField("Result", "edge_bindings")
	}
	out := apiv0.Result{
		NodeBindings:         []apiv0.NodeBinding{},
		EdgeBindings:         []apiv0.EdgeBinding{},
		AdditionalProperties: result.AdditionalProperties.Clone(),
	}
	for pair := result.NodeBindings.Oldest(); pair != nil; pair = pair.Next() {
		for i, nb := range pair.Value {
			converted, err := NodeBinding(pair.Key, nb)
			if err != nil {
				return apiv0.Result{}, fmt.Errorf("node_bindings[%q][%d]: %w", pair.Key, i, err)
			}
			out.NodeBindings = append(out.NodeBindings, converted)
		}
	}
	for pair := result.EdgeBindings.Oldest(); pair != nil; pair = pair.Next() {
		for i, eb := range pair.Value {
			converted, err := EdgeBinding(pair.Key, eb)
			if err != nil {
				return apiv0.Result{}, fmt.Errorf("edge_bindings[%q][%d]: %w", pair.Key, i, err)
			}
			out.EdgeBindings = append(out.EdgeBindings, converted)
		}
	}
	return out, nil
}
