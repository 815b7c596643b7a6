package cli

import (
	"github.com/spf13/cobra"
)

func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: appName + " converts Translator Reasoner API documents between TRAPI 0.9.2 and 1.0.0.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	cmd.AddCommand(NewCmdUpgrade())
	cmd.AddCommand(NewCmdDowngrade())
	cmd.AddCommand(NewCmdConvert())
	cmd.AddCommand(NewCmdValidate())
	cmd.AddCommand(NewCmdRoundTrip())
	cmd.AddCommand(NewCmdTerm())
	cmd.AddCommand(NewCmdVersion())
	cmd.AddCommand(NewCmdCompletion())
	return cmd
}
