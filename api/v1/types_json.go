package v1

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/translator-tools/reasoner-converter/api/common"
)

// UnmarshalJSON keeps numeric values as json.Number, matching how additional
// properties are decoded.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	type plain Attribute
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out plain
	if err := dec.Decode(&out); err != nil {
		return err
	}
	*a = Attribute(out)
	return nil
}

func (g KnowledgeGraph) MarshalJSON() ([]byte, error) {
	return common.NewObjectEncoder().
		Set("nodes", common.MapOrEmpty(g.Nodes)).
		Set("edges", common.MapOrEmpty(g.Edges)).
		MarshalJSON()
}

func (g *KnowledgeGraph) UnmarshalJSON(data []byte) error {
	fields, err := common.DecodeObject(data)
	if err != nil {
		return err
	}
	var out KnowledgeGraph
	if out.Nodes, err = common.TakeMap[Node](fields, "nodes"); err != nil {
		return err
	}
	if out.Edges, err = common.TakeMap[Edge](fields, "edges"); err != nil {
		return err
	}
	*g = out
	return nil
}

func (q QNode) MarshalJSON() ([]byte, error) {
	enc := common.NewObjectEncoder()
	common.SetOptional(enc, "category", q.Category)
	common.SetOptional(enc, "id", q.ID)
	return enc.Merge(q.AdditionalProperties).MarshalJSON()
}

func (q *QNode) UnmarshalJSON(data []byte) error {
	fields, err := common.DecodeObject(data)
	if err != nil {
		return err
	}
	var out QNode
	if err := errors.Join(
		fields.Take("category", &out.Category),
		fields.Take("id", &out.ID),
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
		Set("subject", q.Subject).
		Set("object", q.Object)
	common.SetOptional(enc, "predicate", q.Predicate)
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
		fields.Take("subject", &out.Subject),
		fields.Take("object", &out.Object),
		fields.Take("predicate", &out.Predicate),
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
		Set("nodes", common.MapOrEmpty(g.Nodes)).
		Set("edges", common.MapOrEmpty(g.Edges)).
		MarshalJSON()
}

func (g *QueryGraph) UnmarshalJSON(data []byte) error {
	fields, err := common.DecodeObject(data)
	if err != nil {
		return err
	}
	var out QueryGraph
	if out.Nodes, err = common.TakeMap[QNode](fields, "nodes"); err != nil {
		return err
	}
	if out.Edges, err = common.TakeMap[QEdge](fields, "edges"); err != nil {
		return err
	}
	*g = out
	return nil
}

func (b NodeBinding) MarshalJSON() ([]byte, error) {
	return common.NewObjectEncoder().Set("id", b.ID).Merge(b.AdditionalProperties).MarshalJSON()
}

func (b *NodeBinding) UnmarshalJSON(data []byte) error {
	id, props, err := unmarshalBinding(data)
	if err != nil {
		return err
	}
	*b = NodeBinding{ID: id, AdditionalProperties: props}
	return nil
}

func (b EdgeBinding) MarshalJSON() ([]byte, error) {
	return common.NewObjectEncoder().Set("id", b.ID).Merge(b.AdditionalProperties).MarshalJSON()
}

func (b *EdgeBinding) UnmarshalJSON(data []byte) error {
	id, props, err := unmarshalBinding(data)
	if err != nil {
		return err
	}
	*b = EdgeBinding{ID: id, AdditionalProperties: props}
	return nil
}

func unmarshalBinding(data []byte) (string, common.Properties, error) {
	fields, err := common.DecodeObject(data)
	if err != nil {
		return "", common.Properties{}, err
	}
	var id string
	if err := fields.Take("id", &id); err != nil {
		return "", common.Properties{}, err
	}
	props, err := fields.Rest()
	if err != nil {
		return "", common.Properties{}, err
	}
	return id, props, nil
}

func (r Result) MarshalJSON() ([]byte, error) {
	return common.NewObjectEncoder().
		Set("node_bindings", common.MapOrEmpty(r.NodeBindings)).
		Set("edge_bindings", common.MapOrEmpty(r.EdgeBindings)).
		Merge(r.AdditionalProperties).
		MarshalJSON()
}

func (r *Result) UnmarshalJSON(data []byte) error {
	fields, err := common.DecodeObject(data)
	if err != nil {
		return err
	}
	var out Result
	if out.NodeBindings, err = common.TakeMap[[]NodeBinding](fields, "node_bindings"); err != nil {
		return err
	}
	if out.EdgeBindings, err = common.TakeMap[[]EdgeBinding](fields, "edge_bindings"); err != nil {
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
