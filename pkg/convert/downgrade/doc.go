// Package downgrade converts TRAPI 1.0.0 messages into TRAPI 0.9.2 messages.
//
// TRAPI 1.0.0 stores graph elements and bindings under their identifiers, so
// the element-level functions take that identifier as an argument. A null
// member is treated exactly like a missing one: neither produces output.
package downgrade
