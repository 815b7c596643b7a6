package upgrade

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/translator-tools/reasoner-converter/api/common"
	apiv0 "github.com/translator-tools/reasoner-converter/api/v0"
	apiv1 "github.com/translator-tools/reasoner-converter/api/v1"
	"github.com/translator-tools/reasoner-converter/pkg/rcerrors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NodeBinding expands a node binding into one binding per bound knowledge
// graph id. The result is empty when kg_id is an empty list.
func NodeBinding(nb apiv0.NodeBinding) ([]apiv1.NodeBinding, error) {
	if err := checkBinding("NodeBinding", nb.QgID, nb.KgID); err != nil {
		return nil, err
	}
	return lo.Map(nb.KgID.Values(), func(id string, _ int) apiv1.NodeBinding {
		return apiv1.NodeBinding{ID: id, AdditionalProperties: bindingProperties(nb.AdditionalProperties)}
	}), nil
}

// EdgeBinding expands an edge binding into one binding per bound knowledge
// graph id.
func EdgeBinding(eb apiv0.EdgeBinding) ([]apiv1.EdgeBinding, error) {
	if err := checkBinding("EdgeBinding", eb.QgID, eb.KgID); err != nil {
		return nil, err
	}
	return lo.Map(eb.KgID.Values(), func(id string, _ int) apiv1.EdgeBinding {
		return apiv1.EdgeBinding{ID: id, AdditionalProperties: bindingProperties(eb.AdditionalProperties)}
	}), nil
}

func checkBinding(entity, qgID string, kgID common.OneOrMany[string]) error {
	if qgID == "" {
		return rcerrors.MissingField(entity, "qg_id")
	}
	if kgID.IsZero() {
		return rcerrors.MissingField(entity, "kg_id")
	}
	return nil
}

// bindingProperties gives every expanded binding its own copy of the members.
func bindingProperties(props common.Properties) common.Properties {
	return props.Without("qg_id", "kg_id")
}

// Result converts a result, grouping bindings by query graph id. Groups appear
// in the order their id is first seen and keep the source order of bindings.
func Result(result apiv0.Result) (apiv1.Result, error) {
	if result.NodeBindings == nil {
		return apiv1.Result{}, rcerrors.MissingField("Result", "node_bindings")
	}
	if result.EdgeBindings == nil {
		return apiv1.Result{}, rcerrors.MissingField("Result", "edge_bindings")
	}
	nodeBindings := orderedmap.New[string, []apiv1.NodeBinding]()
	for i, nb := range result.NodeBindings {
		converted, err := NodeBinding(nb)
		if err != nil {
			return apiv1.Result{}, fmt.Errorf("node_bindings[%d]: %w", i, err)
		}
		group, _ := nodeBindings.Get(nb.QgID)
		nodeBindings.Set(nb.QgID, append(nonNil(group), converted...))
	}
	edgeBindings := orderedmap.New[string, []apiv1.EdgeBinding]()
	for i, eb := range result.EdgeBindings {
		converted, err := EdgeBinding(eb)
		if err != nil {
			return apiv1.Result{}, fmt.Errorf("edge_bindings[%d]: %w", i, err)
		}
		group, _ := edgeBindings.Get(eb.QgID)
		edgeBindings.Set(eb.QgID, append(nonNil(group), converted...))
	}
	return apiv1.Result{
		NodeBindings:         nodeBindings,
		EdgeBindings:         edgeBindings,
		AdditionalProperties: result.AdditionalProperties.Clone(),
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
