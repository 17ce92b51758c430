package console

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryancormack/aws-console-share-extension/internal/consoleurl"
)

func NewCleanCommand(deps ConsoleDependencies) *cobra.Command {
	var copyToClipboard, openBrowser bool

	cmd := &cobra.Command{
		Use:   "clean <console-url>",
		Short: "Strip the account prefix from a multi-account console URL",
		Long: `Rewrites an AWS Console URL into its shareable form by removing the
account-specific hostname prefix that cross-account access flows add.
Already-clean console URLs are printed unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			result := consoleurl.CleanURL(args[0])
			if !result.Success {
				return fmt.Errorf("could not clean URL: %s", result.Error)
			}

			cmd.Println(result.URL)
			return deliver(deps, cmd, result.URL, copyToClipboard, openBrowser)
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the cleaned URL to the clipboard")
	cmd.Flags().BoolVar(&openBrowser, "open", false, "Open the cleaned URL in the default browser")

	return cmd
}
