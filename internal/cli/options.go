package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/translator-tools/reasoner-converter/internal/cli/display"
	"sigs.k8s.io/yaml"
)

const stdinFilename = "-"

var (
	legalDocumentOutputTypes = []string{string(display.JSONFormat), string(display.YAMLFormat)}
)

// InputOptions selects the document a command reads.
type InputOptions struct {
	Filename string
}

func (o *InputOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Filename, "filename", "f", o.Filename, "JSON or YAML document to read, or - for stdin.")
}

func (o *InputOptions) Validate(args []string) error {
	if o.Filename == "" {
		return fmt.Errorf("a document must be given with -f FILE or -f -")
	}
	return nil
}

// Read returns the input document as JSON. YAML input is converted.
func (o *InputOptions) Read(cmd *cobra.Command) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if o.Filename == stdinFilename {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(o.Filename)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", o.Filename, err)
	}
	if json.Valid(data) {
		return data, nil
	}
	doc, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s is neither JSON nor YAML: %w", o.Filename, err)
	}
	return doc, nil
}

// OutputOptions selects how a command prints documents. Unset fields take
// their value from the configuration file.
type OutputOptions struct {
	Output string

	indent int
}

func (o *OutputOptions) Bind(fs *pflag.FlagSet, legal []string) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legal, ", ")))
}

func (o *OutputOptions) Complete(g *GlobalOptions) {
	if o.Output == "" {
		o.Output = g.config.Output.Format
	}
	o.indent = g.config.Output.Indent
}

func (o *OutputOptions) Validate(legal []string) error {
	if !slices.Contains(legal, o.Output) {
		return fmt.Errorf("output format must be one of (%s)", strings.Join(legal, ", "))
	}
	return nil
}

func (o *OutputOptions) Print(w io.Writer, data interface{}) error {
	return display.NewFormatter(display.OutputFormat(o.Output)).Format(data, display.FormatOptions{
		Indent: o.indent,
		Writer: w,
	})
}
