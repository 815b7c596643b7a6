// Package convert is the entry point for translating TRAPI documents between
// version 0.9.2 and version 1.0.0.
//
// The per-entity rules live in the upgrade and downgrade subpackages. This
// package bundles them behind the Converter interface, parses version names
// and recognises which version a raw document is written in.
package convert
