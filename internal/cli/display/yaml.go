package display

import (
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"
)

// YAMLFormatter handles YAML output formatting
type YAMLFormatter struct{}

// Format outputs the data in YAML format. The value goes through its JSON
// encoding first so custom MarshalJSON methods apply.
func (f *YAMLFormatter) Format(data interface{}, options FormatOptions) error {
	doc, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshalling document: %w", err)
	}
	marshalled, err := yaml.JSONToYAML(doc)
	if err != nil {
		return fmt.Errorf("marshalling document: %w", err)
	}
	_, err = fmt.Fprint(options.Writer, string(marshalled))
	return err
}
