package consoleurl

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ryancormack/aws-console-share-extension/models"
)

// GenerateDeepLink builds an AWS SSO federated-login URL that drops the
// visitor into the session's account and role at the cleaned destination.
// The role embedded in the link is the one ResolveRoleName picks, which is
// not necessarily the session's own role.
func GenerateDeepLink(info models.SessionInfo, cfg models.ExtensionConfig) models.URLResult {
	subdomain := strings.TrimSpace(cfg.SSOSubdomain)
	if subdomain == "" {
		return deepLinkFailure("AWS SSO subdomain not configured")
	}

	if strings.TrimSpace(info.AccountID) == "" ||
		strings.TrimSpace(info.RoleName) == "" ||
		strings.TrimSpace(info.CurrentURL) == "" {
		return deepLinkFailure("missing session information")
	}

	cleaned := CleanURL(info.CurrentURL)
	if !cleaned.Success {
		return deepLinkFailure("failed to clean destination URL: " + cleaned.Error)
	}

	params := url.Values{}
	params.Set("account_id", strings.TrimSpace(info.AccountID))
	params.Set("role_name", ResolveRoleName(info, cfg))
	params.Set("destination", cleaned.URL)

	// The fragment is assembled by hand: url.URL.String would re-escape the
	// percent-encoded destination inside it.
	deepLink := fmt.Sprintf("https://%s.awsapps.com/start/#/console?%s", subdomain, params.Encode())

	return models.URLResult{
		Success: true,
		URL:     deepLink,
		Type:    models.ResultTypeDeepLink,
	}
}

// ResolveRoleName applies the configured role-selection strategy. It always
// returns a role: explicit account mapping first, then the configured
// default, then the session's own role. An empty DefaultRoleName counts as
// absent, and unknown strategies behave like "current".
func ResolveRoleName(info models.SessionInfo, cfg models.ExtensionConfig) string {
	switch cfg.RoleSelectionStrategy {
	case models.StrategyDefault:
		if strings.TrimSpace(cfg.DefaultRoleName) != "" {
			return cfg.DefaultRoleName
		}
		return info.RoleName
	case models.StrategyAccountMap:
		if role, ok := cfg.AccountRoleMap[info.AccountID]; ok {
			return role
		}
		if strings.TrimSpace(cfg.DefaultRoleName) != "" {
			return cfg.DefaultRoleName
		}
		return info.RoleName
	default:
		return info.RoleName
	}
}

func deepLinkFailure(message string) models.URLResult {
	return models.URLResult{
		Success: false,
		Error:   message,
		Type:    models.ResultTypeDeepLink,
	}
}
