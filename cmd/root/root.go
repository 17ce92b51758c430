package root

import (
	"fmt"

	"github.com/spf13/cobra"

	cmdConfigure "github.com/ryancormack/aws-console-share-extension/cmd/configure"
	cmdConsole "github.com/ryancormack/aws-console-share-extension/cmd/console"
	"github.com/ryancormack/aws-console-share-extension/internal/config"
	"github.com/ryancormack/aws-console-share-extension/internal/session"
	"github.com/ryancormack/aws-console-share-extension/models"
	commonutils "github.com/ryancormack/aws-console-share-extension/utils/common"
	generalutils "github.com/ryancormack/aws-console-share-extension/utils/general"
	promptutils "github.com/ryancormack/aws-console-share-extension/utils/prompt"
)

var RootCmd = &cobra.Command{
	Use:   "aws-console-share",
	Short: "Shareable AWS Console URLs and SSO deep links",
	Long: `Rewrites AWS Console URLs into share-friendly forms: a clean URL with the
account-specific hostname prefix removed, or an AWS SSO deep link that logs
a teammate straight into the right account and role at the same page.`,
	Args: cobra.MaximumNArgs(1),
}

func init() {
	store := config.NewStore()
	cfg, err := store.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		cfg = config.Defaults()
	}

	prompter := promptutils.NewPrompt()
	deps := cmdConsole.ConsoleDependencies{
		Config:   cfg,
		Resolver: session.NewResolver(cfg, prompter),
		Output:   commonutils.NewOutputHandler(),
		General:  generalutils.NewGeneralUtilsManager(),
	}

	RootCmd.AddCommand(cmdConsole.NewConsoleCommands(deps)...)
	RootCmd.AddCommand(cmdConfigure.NewConfigCommands(cmdConfigure.ConfigDependencies{
		Store:    store,
		Prompter: prompter,
	}))

	// A bare URL argument runs the configured default action, the way the
	// extension's toolbar button did.
	RootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println("No subcommand provided. Showing help...")
			return cmd.Help()
		}
		return runDefaultAction(cmd, cfg, args)
	}
}

func runDefaultAction(cmd *cobra.Command, cfg *models.ExtensionConfig, args []string) error {
	action := cfg.DefaultAction
	if action == "" {
		action = models.ActionClean
	}

	for _, sub := range cmd.Commands() {
		if sub.Name() == action {
			if err := sub.ParseFlags(nil); err != nil {
				return err
			}
			return sub.RunE(sub, args)
		}
	}
	return fmt.Errorf("default action %q has no matching command", action)
}
