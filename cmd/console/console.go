package console

import (
	"github.com/spf13/cobra"

	"github.com/ryancormack/aws-console-share-extension/internal/session"
	"github.com/ryancormack/aws-console-share-extension/models"
	commonutils "github.com/ryancormack/aws-console-share-extension/utils/common"
	generalutils "github.com/ryancormack/aws-console-share-extension/utils/general"
)

// ConsoleDependencies is everything the URL commands need beyond the pure
// transformation logic.
type ConsoleDependencies struct {
	Config   *models.ExtensionConfig
	Resolver session.Resolver
	Output   commonutils.OutputHandler
	General  generalutils.GeneralUtilsInterface
}

// NewConsoleCommands builds the clean, deeplink and inspect commands.
func NewConsoleCommands(deps ConsoleDependencies) []*cobra.Command {
	return []*cobra.Command{
		NewCleanCommand(deps),
		NewDeepLinkCommand(deps),
		NewInspectCommand(deps),
	}
}

// deliver handles the --copy/--open flags shared by clean and deeplink.
func deliver(deps ConsoleDependencies, cmd *cobra.Command, url string, copyToClipboard, openBrowser bool) error {
	if copyToClipboard {
		if err := deps.Output.CopyToClipboard(url); err != nil {
			return err
		}
		cmd.Println("Copied to clipboard.")
	}
	if openBrowser {
		if err := deps.Output.OpenInBrowser(url); err != nil {
			return err
		}
	}
	return nil
}
