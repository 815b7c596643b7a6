package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

var (
	validCompletionArgs = []string{"bash", "zsh", "fish", "powershell"}
)

type CompletionOptions struct {
	Shell string
}

func DefaultCompletionOptions() *CompletionOptions {
	return &CompletionOptions{
		Shell: "bash",
	}
}

func NewCmdCompletion() *cobra.Command {
	o := DefaultCompletionOptions()
	cmd := &cobra.Command{
		Use:          "completion [bash|zsh|fish|powershell]",
		Short:        "Generate autocompletion script",
		SilenceUsage: true,
		ValidArgs:    validCompletionArgs,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch o.Shell {
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return cmd.Root().GenBashCompletionV2(out, true)
			}
		},
	}

	return cmd
}

func (o *CompletionOptions) Complete(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		o.Shell = args[0]
	}
	return nil
}

func (o *CompletionOptions) Validate(args []string) error {
	if !slices.Contains(validCompletionArgs, o.Shell) {
		return fmt.Errorf("autocompletion for shell %v not supported by Cobra", o.Shell)
	}
	return nil
}
