package v1

import (
	"github.com/translator-tools/reasoner-converter/api/common"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Attribute describes a property of a knowledge graph node or edge.
type Attribute struct {
	Name   *string `json:"name,omitempty"`
	Type   string  `json:"type"`
	Value  any     `json:"value"`
	URL    *string `json:"url,omitempty"`
	Source *string `json:"source,omitempty"`
}

// Node is a knowledge graph node. Its identifier is the key it is stored under.
type Node struct {
	Category   *common.OneOrMany[string] `json:"category,omitempty"`
	Name       *string                    `json:"name,omitempty"`
	Attributes *[]Attribute               `json:"attributes,omitempty"`
}

// Edge is a knowledge graph edge. Its identifier is the key it is stored under.
type Edge struct {
	Subject    string       `json:"subject"`
	Object     string       `json:"object"`
	Predicate  *string      `json:"predicate,omitempty"`
	Relation   *string      `json:"relation,omitempty"`
	Attributes *[]Attribute `json:"attributes,omitempty"`
}

// KnowledgeGraph is the set of nodes and edges a reasoner knows about.
type KnowledgeGraph struct {
	Nodes *orderedmap.OrderedMap[string, Node] `json:"nodes"`
	Edges *orderedmap.OrderedMap[string, Edge] `json:"edges"`
}

// QNode is a query graph node.
type QNode struct {
	Category *common.OneOrMany[string] `json:"category,omitempty"`
	ID       *common.OneOrMany[string] `json:"id,omitempty"`

	AdditionalProperties common.Properties `json:"-"`
}

// QEdge is a query graph edge.
type QEdge struct {
	Subject   string                     `json:"subject"`
	Object    string                     `json:"object"`
	Predicate *common.OneOrMany[string] `json:"predicate,omitempty"`
	Relation  *string                    `json:"relation,omitempty"`

	AdditionalProperties common.Properties `json:"-"`
}

// QueryGraph is the graph pattern a query asks to be matched.
type QueryGraph struct {
	Nodes *orderedmap.OrderedMap[string, QNode] `json:"nodes"`
	Edges *orderedmap.OrderedMap[string, QEdge] `json:"edges"`
}

// NodeBinding binds the query node it is grouped under to a knowledge graph node.
type NodeBinding struct {
	ID string `json:"id"`

	AdditionalProperties common.Properties `json:"-"`
}

// EdgeBinding binds the query edge it is grouped under to a knowledge graph edge.
type EdgeBinding struct {
	ID string `json:"id"`

	AdditionalProperties common.Properties `json:"-"`
}

// Result is one answer to a query, with bindings grouped by query graph id.
type Result struct {
	NodeBindings *orderedmap.OrderedMap[string, []NodeBinding] `json:"node_bindings"`
	EdgeBindings *orderedmap.OrderedMap[string, []EdgeBinding] `json:"edge_bindings"`

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

// Response shares the Query envelope: a message plus free-form members.
type Response = Query
