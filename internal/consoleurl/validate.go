package consoleurl

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ryancormack/aws-console-share-extension/models"
)

var (
	// AWS account IDs are canonically 12 digits, but scraped values from
	// sandbox and test consoles can be shorter, so field validation accepts
	// 6-12. Hostname matching stays strict 12 because AWS generates those.
	accountIDRegex = regexp.MustCompile(`^\d{6,12}$`)

	mapAccountIDRegex = regexp.MustCompile(`^\d{12}$`)

	// IAM role-name charset.
	roleNameRegex = regexp.MustCompile(`^[a-zA-Z0-9+=,.@_-]+$`)

	// DNS label: alphanumeric, internal hyphens only.
	ssoSubdomainRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)
)

const maxRoleNameLength = 64

// ValidateSessionInfo checks every SessionInfo field independently and
// collects all problems, so a caller can show the user the full list
// instead of fixing one at a time.
func ValidateSessionInfo(info *models.SessionInfo) models.Validation {
	if info == nil {
		return invalid("session info is missing")
	}

	var errs []string

	accountID := strings.TrimSpace(info.AccountID)
	switch {
	case accountID == "":
		errs = append(errs, "account ID is required")
	case !accountIDRegex.MatchString(accountID):
		errs = append(errs, "account ID must be 6-12 digits")
	}

	errs = append(errs, roleNameErrors("role name", info.RoleName, true)...)

	currentURL := strings.TrimSpace(info.CurrentURL)
	switch {
	case currentURL == "":
		errs = append(errs, "current URL is required")
	default:
		parsed, err := url.Parse(currentURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			errs = append(errs, "current URL is not a valid absolute URL")
		} else if !strings.Contains(parsed.Host, ConsoleDomain) {
			errs = append(errs, "current URL is not an AWS Console URL")
		}
	}

	if info.Region != "" && !regionFormatRegex.MatchString(info.Region) {
		errs = append(errs, "region must look like eu-west-1")
	}

	return validation(errs)
}

// ValidateExtensionConfig checks the persisted settings. The subdomain is
// only validated when set: an empty subdomain is a legitimate fresh-install
// state that GenerateDeepLink reports on its own.
func ValidateExtensionConfig(cfg *models.ExtensionConfig) models.Validation {
	if cfg == nil {
		return invalid("extension config is missing")
	}

	var errs []string

	subdomain := strings.TrimSpace(cfg.SSOSubdomain)
	if subdomain != "" {
		if len(subdomain) < 2 || len(subdomain) > 63 {
			errs = append(errs, "SSO subdomain must be 2-63 characters")
		} else if !ssoSubdomainRegex.MatchString(subdomain) {
			errs = append(errs, "SSO subdomain must be alphanumeric with internal hyphens only")
		}
	}

	switch cfg.RoleSelectionStrategy {
	case models.StrategyCurrent, models.StrategyDefault, models.StrategyAccountMap:
	default:
		errs = append(errs, fmt.Sprintf("role selection strategy %q is not one of current, default, account-map", cfg.RoleSelectionStrategy))
	}

	if cfg.DefaultRoleName != "" {
		errs = append(errs, roleNameErrors("default role name", cfg.DefaultRoleName, false)...)
	}

	for accountID, role := range cfg.AccountRoleMap {
		if !mapAccountIDRegex.MatchString(accountID) {
			errs = append(errs, fmt.Sprintf("account role map key %q must be a 12-digit account ID", accountID))
		}
		if len(roleNameErrors("", role, true)) > 0 {
			errs = append(errs, fmt.Sprintf("account role map entry for %q has an invalid role name", accountID))
		}
	}

	if cfg.DefaultAction != "" &&
		cfg.DefaultAction != models.ActionClean &&
		cfg.DefaultAction != models.ActionDeepLink {
		errs = append(errs, fmt.Sprintf("default action %q is not one of clean, deeplink", cfg.DefaultAction))
	}

	return validation(errs)
}

func roleNameErrors(field, value string, required bool) []string {
	name := strings.TrimSpace(value)
	label := field
	if label == "" {
		label = "role name"
	}
	switch {
	case name == "":
		if required {
			return []string{label + " is required"}
		}
		return nil
	case len(name) > maxRoleNameLength:
		return []string{fmt.Sprintf("%s must be at most %d characters", label, maxRoleNameLength)}
	case !roleNameRegex.MatchString(name):
		return []string{label + " contains characters outside the IAM role-name set"}
	}
	return nil
}

func invalid(message string) models.Validation {
	return models.Validation{Valid: false, Errors: []string{message}}
}

func validation(errs []string) models.Validation {
	return models.Validation{Valid: len(errs) == 0, Errors: errs}
}
