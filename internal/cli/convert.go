package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/translator-tools/reasoner-converter/pkg/convert"
)

type ConvertOptions struct {
	GlobalOptions
	InputOptions
	OutputOptions

	Kind string
	ID   string
	To   string

	// from is fixed by upgrade and downgrade; convert detects it.
	from   convert.Version
	target convert.Version
	kinds  map[string]documentKind
}

func DefaultConvertOptions(from convert.Version) *ConvertOptions {
	return &ConvertOptions{
		GlobalOptions: DefaultGlobalOptions(),
		from:          from,
	}
}

func NewCmdUpgrade() *cobra.Command {
	o := DefaultConvertOptions(convert.V0)
	cmd := &cobra.Command{
		Use:          "upgrade -f FILE",
		Short:        fmt.Sprintf("Convert a TRAPI %s document to TRAPI %s.", convert.V0, convert.V1),
		Args:         cobra.NoArgs,
		RunE:         o.runE,
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func NewCmdDowngrade() *cobra.Command {
	o := DefaultConvertOptions(convert.V1)
	cmd := &cobra.Command{
		Use:          "downgrade -f FILE",
		Short:        fmt.Sprintf("Convert a TRAPI %s document to TRAPI %s.", convert.V1, convert.V0),
		Args:         cobra.NoArgs,
		RunE:         o.runE,
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	fs := cmd.Flags()
	fs.StringVar(&o.ID, "id", o.ID, "Identifier of the entity, for kinds that are keyed by their identifier in TRAPI "+convert.V1.String()+".")
	return cmd
}

func NewCmdConvert() *cobra.Command {
	o := DefaultConvertOptions("")
	cmd := &cobra.Command{
		Use:   "convert -f FILE --to VERSION",
		Short: "Detect the TRAPI version of a document and convert it to the requested one.",
		Long: `Detect the TRAPI version of a document and convert it to the requested one.

Documents already in the requested version are printed unchanged. Kinds keyed
by their identifier, such as q-node, are converted with upgrade or downgrade.`,
		Args:         cobra.NoArgs,
		RunE:         o.runE,
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	cmd.Flags().StringVar(&o.To, "to", o.To, fmt.Sprintf("Target version. One of: (%s).", joinVersions()))
	return cmd
}

func (o *ConvertOptions) runE(cmd *cobra.Command, args []string) error {
	if err := o.Complete(cmd, args); err != nil {
		return err
	}
	if err := o.Validate(args); err != nil {
		return err
	}
	return o.Run(cmd, args)
}

func (o *ConvertOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.InputOptions.Bind(fs)
	o.OutputOptions.Bind(fs, legalDocumentOutputTypes)
	fs.StringVar(&o.Kind, "kind", o.Kind, "Kind of the document, e.g. query, message or query-graph. Detected as query or message when empty.")
}

func (o *ConvertOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.OutputOptions.Complete(&o.GlobalOptions)
	o.kinds = documentKinds(convert.NewConverter(o.log))
	if o.from == "" {
		if o.To == "" {
			return fmt.Errorf("--to is required")
		}
		target, err := convert.ParseVersion(o.To)
		if err != nil {
			return err
		}
		o.target = target
	} else {
		o.target = o.from.Other()
	}
	return nil
}

func (o *ConvertOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if err := o.InputOptions.Validate(args); err != nil {
		return err
	}
	if err := o.OutputOptions.Validate(legalDocumentOutputTypes); err != nil {
		return err
	}
	if o.Kind == "" {
		return nil
	}
	names := kindNames(o.kinds)
	if o.from == "" {
		// convert has no --id, so keyed kinds cannot be downgraded.
		names = unkeyedKindNames(o.kinds)
	}
	if !slices.Contains(names, o.Kind) {
		return fmt.Errorf("unknown kind %q, must be one of (%s)", o.Kind, strings.Join(names, ", "))
	}
	return nil
}

func (o *ConvertOptions) Run(cmd *cobra.Command, args []string) error {
	data, err := o.Read(cmd)
	if err != nil {
		return err
	}

	kind := o.Kind
	if kind == "" {
		kind = detectKind(data)
	}

	from := o.from
	if from == "" {
		if from, err = convert.DetectVersion(data); err != nil {
			return fmt.Errorf("%s: %w", o.Filename, err)
		}
		if from == o.target {
			o.log.Debugf("%s is already TRAPI %s", o.Filename, from)
			return o.Print(cmd.OutOrStdout(), json.RawMessage(data))
		}
	}

	k := o.kinds[kind]
	if k.keyed && from == convert.V1 && o.ID == "" {
		return fmt.Errorf("--id is required to convert a %s to TRAPI %s", kind, convert.V0)
	}

	o.log.WithField("kind", kind).Debugf("converting TRAPI %s to %s", from, from.Other())
	out, err := k.converterFor(from)(data, o.ID)
	if err != nil {
		return fmt.Errorf("converting %s from TRAPI %s: %w", kind, from, err)
	}
	return o.Print(cmd.OutOrStdout(), out)
}

func joinVersions() string {
	names := make([]string, 0, len(convert.Versions))
	for _, v := range convert.Versions {
		names = append(names, v.String())
	}
	return strings.Join(names, ", ")
}
