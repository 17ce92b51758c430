package console

import (
	"github.com/spf13/cobra"

	"github.com/ryancormack/aws-console-share-extension/internal/consoleurl"
)

func NewInspectCommand(deps ConsoleDependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <console-url>",
		Short: "Show what the tool can derive from a console URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			raw := args[0]

			cmd.Printf("Console URL   : %s\n", yesNo(consoleurl.ValidateConsoleURL(raw)))
			cmd.Printf("Multi-account : %s\n", yesNo(consoleurl.IsMultiAccountURL(raw)))
			cmd.Printf("Account Id    : %s\n", orDash(consoleurl.AccountIDFromURL(raw)))
			cmd.Printf("Region        : %s\n", orDash(consoleurl.ExtractRegionFromURL(raw)))

			if result := consoleurl.CleanURL(raw); result.Success {
				cmd.Printf("Clean URL     : %s\n", result.URL)
			} else {
				cmd.Printf("Clean URL     : - (%s)\n", result.Error)
			}
			return nil
		},
	}

	return cmd
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
