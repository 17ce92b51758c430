package configure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ryancormack/aws-console-share-extension/internal/config"
	"github.com/ryancormack/aws-console-share-extension/internal/consoleurl"
	"github.com/ryancormack/aws-console-share-extension/models"
	promptutils "github.com/ryancormack/aws-console-share-extension/utils/prompt"
)

// ConfigStore is the subset of the config store the commands use.
type ConfigStore interface {
	Load() (*models.ExtensionConfig, error)
	Save(cfg *models.ExtensionConfig) error
	Exists() bool
	Path() string
}

type ConfigDependencies struct {
	Store    ConfigStore
	Prompter promptutils.Prompter
}

func NewConfigCommands(deps ConfigDependencies) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the tool's settings",
		Long:  "Show or initialize the settings file that drives deep link generation.",
	}

	configCmd.AddCommand(ShowCmd(deps))
	configCmd.AddCommand(InitCmd(deps))

	return configCmd
}

func ShowCmd(deps ConfigDependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration and any problems with it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := deps.Store.Load()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}

			cmd.Printf("# %s\n", deps.Store.Path())
			cmd.Print(string(data))

			if v := consoleurl.ValidateExtensionConfig(cfg); !v.Valid {
				cmd.Println()
				for _, problem := range v.Errors {
					cmd.Println("problem:", problem)
				}
				return fmt.Errorf("configuration has %d problem(s)", len(v.Errors))
			}
			return nil
		},
	}
}

func InitCmd(deps ConfigDependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a fresh settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if deps.Store.Exists() {
				if !deps.Prompter.PromptForConfirmation("Config file exists, overwrite") {
					cmd.Println("Keeping existing configuration.")
					return nil
				}
			}

			subdomain, err := deps.Prompter.PromptRequired("AWS SSO subdomain (the NAME in NAME.awsapps.com)")
			if err != nil {
				if errors.Is(err, promptutils.ErrInterrupted) {
					return err
				}
				return fmt.Errorf("subdomain not provided: %w", err)
			}

			cfg := config.Defaults()
			cfg.SSOSubdomain = strings.TrimSpace(subdomain)

			if v := consoleurl.ValidateExtensionConfig(cfg); !v.Valid {
				return fmt.Errorf("refusing to save: %s", strings.Join(v.Errors, "; "))
			}

			if err := deps.Store.Save(cfg); err != nil {
				return err
			}
			cmd.Printf("Configuration written to %s\n", deps.Store.Path())
			return nil
		},
	}
}
