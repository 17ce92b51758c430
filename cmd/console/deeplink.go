package console

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryancormack/aws-console-share-extension/internal/consoleurl"
	"github.com/ryancormack/aws-console-share-extension/internal/session"
)

func NewDeepLinkCommand(deps ConsoleDependencies) *cobra.Command {
	var (
		accountID       string
		roleName        string
		region          string
		copyToClipboard bool
		openBrowser     bool
		verifyRegion    bool
		showDetails     bool
	)

	cmd := &cobra.Command{
		Use:   "deeplink <console-url>",
		Short: "Generate an AWS SSO deep link for a console URL",
		Long: `Builds a federated-login URL on the configured SSO portal that drops an
authenticated visitor into the right account and role at the given console
destination. Account ID and role are taken from the flags when set,
otherwise derived from the URL, the configured role-selection strategy, or
an interactive prompt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			info, err := deps.Resolver.Resolve(session.ResolveOptions{
				RawURL:    args[0],
				AccountID: accountID,
				RoleName:  roleName,
				Region:    region,
			})
			if err != nil {
				return err
			}

			if v := consoleurl.ValidateSessionInfo(info); !v.Valid {
				for _, problem := range v.Errors {
					cmd.Println("session:", problem)
				}
				return fmt.Errorf("session information is invalid")
			}
			if v := consoleurl.ValidateExtensionConfig(deps.Config); !v.Valid {
				for _, problem := range v.Errors {
					cmd.Println("config:", problem)
				}
				return fmt.Errorf("configuration is invalid, fix it with the config command")
			}

			if verifyRegion && !deps.General.IsRegionValid(info.Region) {
				return fmt.Errorf("region %q is not a known AWS region", info.Region)
			}

			result := consoleurl.GenerateDeepLink(*info, *deps.Config)
			if !result.Success {
				return fmt.Errorf("could not generate deep link: %s", result.Error)
			}

			if showDetails {
				deps.General.PrintSessionDetails(*info, consoleurl.ResolveRoleName(*info, *deps.Config))
			}

			cmd.Println(result.URL)
			return deliver(deps, cmd, result.URL, copyToClipboard, openBrowser)
		},
	}

	cmd.Flags().StringVar(&accountID, "account-id", "", "AWS account ID to embed (default: derived from the URL)")
	cmd.Flags().StringVar(&roleName, "role", "", "IAM role name to embed (default: per configured strategy)")
	cmd.Flags().StringVar(&region, "region", "", "Region override (default: extracted from the URL)")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the deep link to the clipboard")
	cmd.Flags().BoolVar(&openBrowser, "open", false, "Open the deep link in the default browser")
	cmd.Flags().BoolVar(&verifyRegion, "verify-region", false, "Verify the region against the live region list")
	cmd.Flags().BoolVar(&showDetails, "details", false, "Print the session the link was built from")

	return cmd
}
