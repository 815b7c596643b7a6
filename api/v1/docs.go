// Package v1 holds the TRAPI 1.0.0 message types.
//
// Graph elements are ordered maps keyed by identifier, vocabulary terms carry
// the biolink prefix, and knowledge graph nodes and edges describe anything
// beyond their declared fields with Attributes.
package v1

// Version is the TRAPI release these types describe.
const Version = "1.0.0"

// DefaultAttributeType is the EDAM term for generic data, used as the type of
// attributes that have no better description.
const DefaultAttributeType = "EDAM:data_0006"
