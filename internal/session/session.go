package session

import (
	"fmt"
	"strings"

	"github.com/ryancormack/aws-console-share-extension/internal/consoleurl"
	"github.com/ryancormack/aws-console-share-extension/models"
	promptutils "github.com/ryancormack/aws-console-share-extension/utils/prompt"
)

// DefaultRegion is used when a console URL carries no region at all, which
// happens on global-service pages like IAM.
const DefaultRegion = "us-east-1"

// ResolveOptions are the caller-supplied overrides. Everything left empty
// is derived from the URL, the config, or an interactive prompt.
type ResolveOptions struct {
	RawURL    string
	AccountID string
	RoleName  string
	Region    string
}

type Resolver interface {
	Resolve(opts ResolveOptions) (*models.SessionInfo, error)
}

// ConsoleResolver builds a SessionInfo the way the browser extension's
// content script would, except the inputs come from flags and prompts
// instead of scraped console markup.
type ConsoleResolver struct {
	Config   *models.ExtensionConfig
	Prompter promptutils.Prompter
}

func NewResolver(cfg *models.ExtensionConfig, prompter promptutils.Prompter) *ConsoleResolver {
	return &ConsoleResolver{Config: cfg, Prompter: prompter}
}

func (r *ConsoleResolver) Resolve(opts ResolveOptions) (*models.SessionInfo, error) {
	raw := strings.TrimSpace(opts.RawURL)
	if raw == "" {
		return nil, fmt.Errorf("console URL is required")
	}
	if !consoleurl.ValidateConsoleURL(raw) {
		return nil, fmt.Errorf("%q is not an https AWS Console URL", raw)
	}

	info := models.SessionInfo{
		CurrentURL:     raw,
		IsMultiAccount: consoleurl.IsMultiAccountURL(raw),
	}

	accountID, err := r.resolveAccountID(opts, raw)
	if err != nil {
		return nil, err
	}
	info.AccountID = accountID

	roleName, err := r.resolveRoleName(opts, accountID)
	if err != nil {
		return nil, err
	}
	info.RoleName = roleName

	region, err := resolveRegion(opts, raw)
	if err != nil {
		return nil, err
	}
	info.Region = region

	return &info, nil
}

func (r *ConsoleResolver) resolveAccountID(opts ResolveOptions, raw string) (string, error) {
	if accountID := strings.TrimSpace(opts.AccountID); accountID != "" {
		return accountID, nil
	}
	if accountID := consoleurl.AccountIDFromURL(raw); accountID != "" {
		return accountID, nil
	}

	accountID, err := r.Prompter.PromptRequired("AWS account ID")
	if err != nil {
		return "", fmt.Errorf("account ID not provided: %w", err)
	}
	return accountID, nil
}

// resolveRoleName only prompts when neither the flags nor the configured
// strategy can produce a role on their own.
func (r *ConsoleResolver) resolveRoleName(opts ResolveOptions, accountID string) (string, error) {
	if roleName := strings.TrimSpace(opts.RoleName); roleName != "" {
		return roleName, nil
	}

	seed := models.SessionInfo{AccountID: accountID}
	if fromConfig := consoleurl.ResolveRoleName(seed, *r.Config); strings.TrimSpace(fromConfig) != "" {
		return fromConfig, nil
	}

	roleName, err := r.Prompter.PromptRequired("IAM role name")
	if err != nil {
		return "", fmt.Errorf("role name not provided: %w", err)
	}
	return roleName, nil
}

func resolveRegion(opts ResolveOptions, raw string) (string, error) {
	if region := strings.TrimSpace(opts.Region); region != "" {
		if !consoleurl.IsValidRegionFormat(region) {
			return "", fmt.Errorf("region %q does not look like an AWS region code", region)
		}
		return region, nil
	}
	if region := consoleurl.ExtractRegionFromURL(raw); region != "" {
		return region, nil
	}
	return DefaultRegion, nil
}
