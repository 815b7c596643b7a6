package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// JSONFormatter handles JSON output formatting
type JSONFormatter struct{}

// Format outputs the data in JSON format. Documents keep the member order
// produced by their MarshalJSON methods.
func (f *JSONFormatter) Format(data interface{}, options FormatOptions) error {
	marshalled, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshalling document: %w", err)
	}
	if options.Indent > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, marshalled, "", strings.Repeat(" ", options.Indent)); err != nil {
			return fmt.Errorf("indenting document: %w", err)
		}
		marshalled = buf.Bytes()
	}
	_, err = fmt.Fprintf(options.Writer, "%s\n", string(marshalled))
	return err
}
