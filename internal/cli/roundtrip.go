package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/translator-tools/reasoner-converter/pkg/convert"
)

var errLossy = errors.New("document does not survive the round trip")

type RoundTripOptions struct {
	GlobalOptions
	InputOptions
	OutputOptions

	Kind string

	kinds map[string]documentKind
}

func DefaultRoundTripOptions() *RoundTripOptions {
	return &RoundTripOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdRoundTrip() *cobra.Command {
	o := DefaultRoundTripOptions()
	cmd := &cobra.Command{
		Use:   "roundtrip -f FILE",
		Short: "Convert a document to the other TRAPI version and back, and print what changed.",
		Long: `Convert a document to the other TRAPI version and back, and print what changed.

The difference is printed as a JSON merge patch (RFC 7386) from the input to the
restored document. The command fails when the patch is not empty.`,
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

func (o *RoundTripOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.InputOptions.Bind(fs)
	o.OutputOptions.Bind(fs, legalDocumentOutputTypes)
	fs.StringVar(&o.Kind, "kind", o.Kind, "Kind of the document: query, message, query-graph, knowledge-graph or result. Detected as query or message when empty.")
}

func (o *RoundTripOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.OutputOptions.Complete(&o.GlobalOptions)
	o.kinds = documentKinds(convert.NewConverter(o.log))
	return nil
}

func (o *RoundTripOptions) Validate(args []string) error {
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
	k, ok := o.kinds[o.Kind]
	if !ok || k.keyed {
		return fmt.Errorf("unknown kind %q, must be one of (%s)", o.Kind, strings.Join(unkeyedKindNames(o.kinds), ", "))
	}
	return nil
}

func (o *RoundTripOptions) Run(cmd *cobra.Command, args []string) error {
	data, err := o.Read(cmd)
	if err != nil {
		return err
	}
	kind := o.Kind
	if kind == "" {
		kind = detectKind(data)
	}
	from, err := convert.DetectVersion(data)
	if err != nil {
		return fmt.Errorf("%s: %w", o.Filename, err)
	}

	k := o.kinds[kind]
	converted, err := k.converterFor(from)(data, "")
	if err != nil {
		return fmt.Errorf("converting %s from TRAPI %s: %w", kind, from, err)
	}
	intermediate, err := json.Marshal(converted)
	if err != nil {
		return err
	}
	restored, err := k.converterFor(from.Other())(intermediate, "")
	if err != nil {
		return fmt.Errorf("converting %s back from TRAPI %s: %w", kind, from.Other(), err)
	}
	final, err := json.Marshal(restored)
	if err != nil {
		return err
	}

	patch, err := jsonpatch.CreateMergePatch(data, final)
	if err != nil {
		return fmt.Errorf("comparing documents: %w", err)
	}
	if err := o.Print(cmd.OutOrStdout(), json.RawMessage(patch)); err != nil {
		return err
	}
	if string(patch) != "{}" {
		return fmt.Errorf("%s: %w", o.Filename, errLossy)
	}
	o.log.Debugf("%s survives TRAPI %s and back", o.Filename, from.Other())
	return nil
}
