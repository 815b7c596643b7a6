// Package display contains helpers for printing converted documents in the
// supported CLI output formats.
package display

import (
	"io"
)

// OutputFormat represents the different output formats supported
type OutputFormat string

const (
	JSONFormat  OutputFormat = "json"
	YAMLFormat  OutputFormat = "yaml"
	TableFormat OutputFormat = "table"
)

// FormatOptions contains options for formatting output
type FormatOptions struct {
	// Indent is the JSON indentation width; zero prints compact JSON.
	Indent int
	Writer io.Writer
}

// OutputFormatter defines the interface for formatting and displaying data
type OutputFormatter interface {
	Format(data interface{}, options FormatOptions) error
}

// NewFormatter creates a new formatter based on the output format
func NewFormatter(format OutputFormat) OutputFormatter {
	switch format {
	case YAMLFormat:
		return &YAMLFormatter{}
	case TableFormat:
		return &TableFormatter{}
	default:
		return &JSONFormatter{}
	}
}
