// Package upgrade converts TRAPI 0.9.2 messages into TRAPI 1.0.0 messages.
//
// Every function is a pure mapping from its argument to a new value: inputs are
// never modified and outputs never share mutable state with them.
package upgrade
