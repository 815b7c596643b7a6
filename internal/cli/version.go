package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/translator-tools/reasoner-converter/internal/cli/display"
	"github.com/translator-tools/reasoner-converter/pkg/convert"
	"github.com/translator-tools/reasoner-converter/pkg/version"
	"sigs.k8s.io/yaml"
)

var (
	legalVersionOutputTypes = []string{string(display.JSONFormat), string(display.YAMLFormat)}
)

type VersionOptions struct {
	Output string
}

const (
	cliVersionTitle     = appName + " CLI version"
	formatVersionsTitle = "supported TRAPI versions"
)

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{
		Output: "",
	}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print reasoner-converter version information.",
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

func (o *VersionOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalVersionOutputTypes, ", ")))
}

func (o *VersionOptions) Complete(cmd *cobra.Command, args []string) error {
	return nil
}

func (o *VersionOptions) Validate(args []string) error {
	if len(o.Output) > 0 && !slices.Contains(legalVersionOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of (%s)", strings.Join(legalVersionOutputTypes, ", "))
	}
	return nil
}

func (o *VersionOptions) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cliVersion := version.Get()
	versions := map[string]interface{}{
		cliVersionTitle:     &cliVersion,
		formatVersionsTitle: convert.Versions,
	}

	switch o.Output {
	case "":
		fmt.Fprintf(out, "%s: %s\n", cliVersionTitle, cliVersion.String())
		fmt.Fprintf(out, "%s: %s\n", formatVersionsTitle, joinVersions())
	case string(display.YAMLFormat):
		marshalled, err := yaml.Marshal(&versions)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(marshalled))
	case string(display.JSONFormat):
		marshalled, err := json.MarshalIndent(&versions, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(marshalled))
	default:
		// There is a bug in the program if we hit this case.
		// However, we follow a policy of never panicking.
		return fmt.Errorf("VersionOptions were not validated: --output=%q should have been rejected", o.Output)
	}

	return nil
}
