package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/translator-tools/reasoner-converter/internal/compliance"
	"github.com/translator-tools/reasoner-converter/pkg/convert"
)

type ValidateOptions struct {
	GlobalOptions
	InputOptions

	Version string
	Kind    string
	Schema  string
}

func DefaultValidateOptions() *ValidateOptions {
	return &ValidateOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdValidate() *cobra.Command {
	o := DefaultValidateOptions()
	cmd := &cobra.Command{
		Use:   "validate -f FILE",
		Short: "Check a document against the TRAPI OpenAPI component schemas.",
		Long: `Check a document against the TRAPI OpenAPI component schemas.

The schema document comes from --schema, then from schemas.v0 or schemas.v1 in
the configuration file, and finally from the copy bundled with the binary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd, args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ValidateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.InputOptions.Bind(fs)
	fs.StringVar(&o.Version, "version", o.Version, fmt.Sprintf("TRAPI version of the document. One of: (%s). Detected when empty.", joinVersions()))
	fs.StringVar(&o.Kind, "kind", o.Kind, "Schema component in kebab case, e.g. query, q-node or biolink-entity. Detected as query or message when empty.")
	fs.StringVar(&o.Schema, "schema", o.Schema, "Path or http(s) URL of the OpenAPI document to validate against.")
}

func (o *ValidateOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *ValidateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if err := o.InputOptions.Validate(args); err != nil {
		return err
	}
	if o.Version != "" {
		if _, err := convert.ParseVersion(o.Version); err != nil {
			return err
		}
	}
	return nil
}

func (o *ValidateOptions) Run(cmd *cobra.Command, args []string) error {
	data, err := o.Read(cmd)
	if err != nil {
		return err
	}

	version, err := o.version(data)
	if err != nil {
		return err
	}
	validator, err := o.validator(cmd.Context(), version)
	if err != nil {
		return err
	}
	component, err := o.component(validator, data)
	if err != nil {
		return err
	}

	if err := validator.Validate(component, json.RawMessage(data)); err != nil {
		return fmt.Errorf("%s: %w", o.Filename, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid TRAPI %s %s\n", o.Filename, version, component)
	return nil
}

func (o *ValidateOptions) version(data []byte) (convert.Version, error) {
	if o.Version != "" {
		return convert.ParseVersion(o.Version)
	}
	version, err := convert.DetectVersion(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w, use --version", o.Filename, err)
	}
	return version, nil
}

func (o *ValidateOptions) validator(ctx context.Context, version convert.Version) (*compliance.Validator, error) {
	location := o.Schema
	if location == "" {
		location = o.config.SchemaLocation(version)
	}
	if location == "" {
		return compliance.LoadEmbedded(version)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o.log.WithField("schema", location).Debug("loading OpenAPI document")
	return compliance.Load(ctx, location)
}

func (o *ValidateOptions) component(v *compliance.Validator, data []byte) (string, error) {
	kind := o.Kind
	if kind == "" {
		kind = detectKind(data)
	}
	components := v.Components()
	for _, name := range components {
		if kindName(name) == kind {
			return name, nil
		}
	}
	names := make([]string, 0, len(components))
	for _, name := range components {
		names = append(names, kindName(name))
	}
	return "", fmt.Errorf("unknown kind %q for TRAPI %s, must be one of (%s)", kind, v.Version(), strings.Join(names, ", "))
}
