package v0

import (
	"errors"

	"github.com/translator-tools/reasoner-converter/api/common"
)

func (n Node) MarshalJSON() ([]byte, error) {
	enc := common.NewObjectEncoder().Set("id", n.ID)
	common.SetOptional(enc, "type", n.Type)
	common.SetOptional(enc, "name", n.Name)
	return enc.Merge(n.AdditionalProperties).MarshalJSON()
}

func (n *Node) UnmarshalJSON(data []byte) error {
	fields, err := common.DecodeObject(data)
	if err != nil {
		return err
	}
	var out Node
	if err := errors.Join(
		fields.Take("id", &out.ID),
		fields.Take("type", &out.Type),
		fields.Take("name", &out.Name),
	); err != nil {
		return err
	}
	if out.AdditionalProperties, err = fields.Rest(); err != nil {
		return err
	}
	*n = out
	return nil
}

func (e Edge) MarshalJSON() ([]byte, error) {
	enc := common.NewObjectEncoder().
		Set("id", e.ID).
		Set("source_id", e.SourceID).
		Set("target_id", e.TargetID)
	common.SetOptional(enc, "type", e.Type)
	common.SetOptional(enc, "relation", e.Relation)
	return enc.Merge(e.AdditionalProperties).MarshalJSON()
}

func (e *Edge) UnmarshalJSON(data []byte) error {
	fields, err := common.DecodeObject(data)
	if err != nil {
		return err
	}
	var out Edge
	if err := errors.Join(
		fields.Take("id", &out.ID),
		fields.Take("source_id", &out.SourceID),
		fields.Take("target_id", &out.TargetID),
		fields.Take("type", &out.Type),
		fields.Take("relation", &out.Relation),
	); err != nil {
		return err
	}
	if out.AdditionalProperties, err = fields.Rest(); err != nil {
		return err
	}
	*e = out
	return nil
}

func (g KnowledgeGraph) MarshalJSON() ([]byte, error) {
	return common.NewObjectEncoder().
		Set("nodes", nonNil(g.Nodes)).
		Set("edges", nonNil(g.Edges)).
		MarshalJSON()
}

func (q QNode) MarshalJSON() ([]byte, error) {
	enc := common.NewObjectEncoder().Set("id", q.ID)
	common.SetOptional(enc, "type", q.Type)
	common.SetOptional(enc, "curie", q.Curie)
	return enc.Merge(q.AdditionalProperties).MarshalJSON()
}

func (q *QNode) UnmarshalJSON(data []byte) error {
	fields, err := common.DecodeObject(data)
	if err != nil {
		return err
	}
	var out QNode
	if err := errors.Join(
		fields.Take("id", &out.ID),
		fields.Take("type", &out.Type),
		fields.Take("curie", &out.Curie),
	); err != nil {
		return err
	}
	if out.AdditionalProperties, err = fields.Rest(); err != nil {
		return err
	}
	*q = out
	return nil
}

func (q QEdge) MarshalJSON() ([]byte, error) {
	enc := common.NewObjectEncoder().
		Set("id", q.ID).
		Set("source_id", q.SourceID).
		Set("target_id", q.TargetID)
	common.SetOptional(enc, "type", q.Type)
	common.SetOptional(enc, "relation", q.Relation)
	return enc.Merge(q.AdditionalProperties).MarshalJSON()
}

func (q *QEdge) UnmarshalJSON(data []byte) error {
	fields, err := common.DecodeObject(data)
	if err != nil {
		return err
	}
	var out QEdge
	if err := errors.Join(
		fields.Take("id", &out.ID),
		fields.Take("source_id", &out.SourceID),
		fields.Take("target_id", &out.TargetID),
		fields.Take("type", &out.Type),
		fields.Take("relation", &out.Relation),
	); err != nil {
		return err
	}
	if out.AdditionalProperties, err = fields.Rest(); err != nil {
		return err
	}
	*q = out
	return nil
}

func (g QueryGraph) MarshalJSON() ([]byte, error) {
	return common.NewObjectEncoder().
		Set("nodes", nonNil(g.Nodes)).
		Set("edges", nonNil(g.Edges)).
		MarshalJSON()
}

func (b NodeBinding) MarshalJSON() ([]byte, error) {
	return marshalBinding(b.QgID, b.KgID, b.AdditionalProperties)
}

func (b *NodeBinding) UnmarshalJSON(data []byte) error {
	qgID, kgID, props, err := unmarshalBinding(data)
	if err != nil {
		return err
	}
	*b = NodeBinding{QgID: qgID, KgID: kgID, AdditionalProperties: props}
	return nil
}

func (b EdgeBinding) MarshalJSON() ([]byte, error) {
	return marshalBinding(b.QgID, b.KgID, b.AdditionalProperties)
}

func (b *EdgeBinding) UnmarshalJSON(data []byte) error {
	qgID, kgID, props, err := unmarshalBinding(data)
	if err != nil {
		return err
	}
	*b = EdgeBinding{QgID: qgID, KgID: kgID, AdditionalProperties: props}
	return nil
}

func marshalBinding(qgID string, kgID common.OneOrMany[string], props common.Properties) ([]byte, error) {
	return common.NewObjectEncoder().
		Set("qg_id", qgID).
		Set("kg_id", kgID).
		Merge(props).
		MarshalJSON()
}

func unmarshalBinding(data []byte) (string, common.OneOrMany[string], common.Properties, error) {
	var (
		qgID string
		kgID common.OneOrMany[string]
	)
	fields, err := common.DecodeObject(data)
	if err != nil {
		return "", kgID, common.Properties{}, err
	}
	if err := errors.Join(
		fields.Take("qg_id", &qgID),
		fields.Take("kg_id", &kgID),
	); err != nil {
		return "", kgID, common.Properties{}, err
	}
	props, err := fields.Rest()
	if err != nil {
		return "", kgID, common.Properties{}, err
	}
	return qgID, kgID, props, nil
}

func (r Result) MarshalJSON() ([]byte, error) {
	return common.NewObjectEncoder().
		Set("node_bindings", nonNil(r.NodeBindings)).
		Set("edge_bindings", nonNil(r.EdgeBindings)).
		Merge(r.AdditionalProperties).
		MarshalJSON()
}

func (r *Result) UnmarshalJSON(data []byte) error {
	fields, err := common.DecodeObject(data)
	if err != nil {
		return err
	}
	var out Result
	if err := errors.Join(
		fields.Take("node_bindings", &out.NodeBindings),
		fields.Take("edge_bindings", &out.EdgeBindings),
	); err != nil {
		return err
	}
	if out.AdditionalProperties, err = fields.Rest(); err != nil {
		return err
	}
	*r = out
	return nil
}

func (m Message) MarshalJSON() ([]byte, error) {
	enc := common.NewObjectEncoder()
	common.SetOptional(enc, "query_graph", m.QueryGraph)
	common.SetOptional(enc, "knowledge_graph", m.KnowledgeGraph)
	common.SetOptional(enc, "results", m.Results)
	return enc.Merge(m.AdditionalProperties).MarshalJSON()
}

func (m *Message) UnmarshalJSON(data []byte) error {
	fields, err := common.DecodeObject(data)
	if err != nil {
		return err
	}
	var out Message
	if err := errors.Join(
		fields.Take("query_graph", &out.QueryGraph),
		fields.Take("knowledge_graph", &out.KnowledgeGraph),
		fields.Take("results", &out.Results),
	); err != nil {
		return err
	}
	if out.AdditionalProperties, err = fields.Rest(); err != nil {
		return err
	}
	*m = out
	return nil
}

func (q Query) MarshalJSON() ([]byte, error) {
	return common.NewObjectEncoder().
		Set("message", q.Message).
		Merge(q.AdditionalProperties).
		MarshalJSON()
}

func (q *Query) UnmarshalJSON(data []byte) error {
	fields, err := common.DecodeObject(data)
	if err != nil {
		return err
	}
	var out Query
	if err := fields.Take("message", &out.Message); err != nil {
		return err
	}
	if out.AdditionalProperties, err = fields.Rest(); err != nil {
		return err
	}
	*q = out
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
