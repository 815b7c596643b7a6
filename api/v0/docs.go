// Package v0 holds the TRAPI 0.9.2 message types.
//
// Graph elements are arrays of objects that carry their own identifiers, and
// any member not declared here is kept verbatim in AdditionalProperties.
package v0

// Version is the TRAPI release these types describe.
const Version = "0.9.2"
