package v0

import "github.com/translator-tools/reasoner-converter/api/common"

// Node is a knowledge graph node.
type Node struct {
	ID   string    `json:"id"`
	Type *[]string `json:"type,omitempty"`
	Name *string   `json:"name,omitempty"`

	AdditionalProperties common.Properties `json:"-"`
}

// Edge is a knowledge graph edge.
type Edge struct {
	ID       string  `json:"id"`
	SourceID string  `json:"source_id"`
	TargetID string  `json:"target_id"`
	Type     *string `json:"type,omitempty"`
	Relation *string `json:"relation,omitempty"`

	AdditionalProperties common.Properties `json:"-"`
}

// KnowledgeGraph is the set of nodes and edges a reasoner knows about.
type KnowledgeGraph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// QNode is a query graph node.
type QNode struct {
	ID    string                     `json:"id"`
	Type  *string                    `json:"type,omitempty"`
	Curie *common.OneOrMany[string] `json:"curie,omitempty"`

	AdditionalProperties common.Properties `json:"-"`
}

// QEdge is a query graph edge.
type QEdge struct {
	ID       string                     `json:"id"`
	SourceID string                     `json:"source_id"`
	TargetID string                     `json:"target_id"`
	Type     *common.OneOrMany[string] `json:"type,omitempty"`
	Relation *string                    `json:"relation,omitempty"`

	AdditionalProperties common.Properties `json:"-"`
}

// QueryGraph is the graph pattern a query asks to be matched.
type QueryGraph struct {
	Nodes []QNode `json:"nodes"`
	Edges []QEdge `json:"edges"`
}

// NodeBinding binds a query node to one or more knowledge graph nodes.
type NodeBinding struct {
	QgID string                    `json:"qg_id"`
	KgID common.OneOrMany[string] `json:"kg_id"`

	AdditionalProperties common.Properties `json:"-"`
}

// EdgeBinding binds a query edge to one or more knowledge graph edges.
type EdgeBinding struct {
	QgID string                    `json:"qg_id"`
	KgID common.OneOrMany[string] `json:"kg_id"`

	AdditionalProperties common.Properties `json:"-"`
}

// Result is one answer to a query.
type Result struct {
	NodeBindings []NodeBinding `json:"node_bindings"`
	EdgeBindings []EdgeBinding `json:"edge_bindings"`

	AdditionalProperties common.Properties `json:"-"`
}

// Message carries a query graph and, in responses, the knowledge graph and results.
type Message struct {
	QueryGraph     *QueryGraph     `json:"query_graph,omitempty"`
	KnowledgeGraph *KnowledgeGraph `json:"knowledge_graph,omitempty"`
	Results        *[]Result       `json:"results,omitempty"`

	AdditionalProperties common.Properties `json:"-"`
}

// Query is the top-level request envelope.
type Query struct {
	Message *Message `json:"message"`

	AdditionalProperties common.Properties `json:"-"`
}
