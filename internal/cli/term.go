package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/translator-tools/reasoner-converter/internal/cli/display"
	"github.com/translator-tools/reasoner-converter/pkg/biolink"
	"github.com/translator-tools/reasoner-converter/pkg/convert"
)

const (
	entityTerm    = "entity"
	predicateTerm = "predicate"
)

var (
	legalTermKinds       = []string{entityTerm, predicateTerm}
	legalTermOutputTypes = []string{string(display.TableFormat), string(display.JSONFormat), string(display.YAMLFormat)}
)

type TermOptions struct {
	GlobalOptions
	OutputOptions

	Kind string
	To   string

	target convert.Version
}

type termResult struct {
	Term      string `json:"term"`
	Converted string `json:"converted"`
}

func DefaultTermOptions() *TermOptions {
	return &TermOptions{
		GlobalOptions: DefaultGlobalOptions(),
		OutputOptions: OutputOptions{Output: string(display.TableFormat)},
		Kind:          entityTerm,
		To:            convert.V1.String(),
	}
}

func NewCmdTerm() *cobra.Command {
	o := DefaultTermOptions()
	cmd := &cobra.Command{
		Use:   "term TERM...",
		Short: "Transcode biolink vocabulary terms between TRAPI versions.",
		Example: `  reasoner-converter term chemical_substance gene
  reasoner-converter term --kind predicate --to 0.9.2 biolink:related_to`,
		Args: cobra.MinimumNArgs(1),
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

func (o *TermOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.OutputOptions.Bind(fs, legalTermOutputTypes)
	fs.StringVar(&o.Kind, "kind", o.Kind, fmt.Sprintf("Kind of the terms. One of: (%s).", strings.Join(legalTermKinds, ", ")))
	fs.StringVar(&o.To, "to", o.To, fmt.Sprintf("Target version. One of: (%s).", joinVersions()))
}

func (o *TermOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.OutputOptions.Complete(&o.GlobalOptions)
	target, err := convert.ParseVersion(o.To)
	if err != nil {
		return err
	}
	o.target = target
	return nil
}

func (o *TermOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if err := o.OutputOptions.Validate(legalTermOutputTypes); err != nil {
		return err
	}
	if !slices.Contains(legalTermKinds, o.Kind) {
		return fmt.Errorf("kind must be one of (%s)", strings.Join(legalTermKinds, ", "))
	}
	return nil
}

func (o *TermOptions) Run(cmd *cobra.Command, args []string) error {
	transcode := o.transcoder()
	results := lo.Map(args, func(term string, _ int) termResult {
		return termResult{Term: term, Converted: transcode(term)}
	})

	if o.Output != string(display.TableFormat) {
		return o.Print(cmd.OutOrStdout(), results)
	}
	table := display.Table{Headers: []string{"TERM", "TRAPI " + o.target.String()}}
	for _, r := range results {
		table.Rows = append(table.Rows, []string{r.Term, r.Converted})
	}
	return o.Print(cmd.OutOrStdout(), table)
}

func (o *TermOptions) transcoder() func(string) string {
	switch {
	case o.Kind == entityTerm && o.target == convert.V1:
		return biolink.UpgradeEntity
	case o.Kind == entityTerm:
		return biolink.DowngradeEntity
	case o.target == convert.V1:
		return func(term string) string { return *biolink.UpgradePredicate(&term) }
	default:
		return func(term string) string { return *biolink.DowngradePredicate(&term) }
	}
}
