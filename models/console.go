package models

// Role selection strategies for deep link generation.
const (
	StrategyCurrent    = "current"
	StrategyDefault    = "default"
	StrategyAccountMap = "account-map"
)

// Result types reported in URLResult.Type.
const (
	ResultTypeClean    = "clean"
	ResultTypeDeepLink = "deeplink"
)

// Default actions for the CLI when no subcommand flag says otherwise.
const (
	ActionClean    = "clean"
	ActionDeepLink = "deeplink"
)

// SessionInfo describes the console session a URL was captured from.
// It is built once per invocation and treated as read-only afterwards.
type SessionInfo struct {
	AccountID      string `json:"accountId" yaml:"accountId"`
	RoleName       string `json:"roleName" yaml:"roleName"`
	CurrentURL     string `json:"currentUrl" yaml:"currentUrl"`
	IsMultiAccount bool   `json:"isMultiAccount" yaml:"isMultiAccount"`
	Region         string `json:"region" yaml:"region"`
}

// ExtensionConfig holds the persisted user settings. Loading code fills
// every field before the value reaches the transformation logic.
type ExtensionConfig struct {
	SSOSubdomain          string            `json:"ssoSubdomain" yaml:"ssoSubdomain"`
	RoleSelectionStrategy string            `json:"roleSelectionStrategy" yaml:"roleSelectionStrategy"`
	DefaultRoleName       string            `json:"defaultRoleName" yaml:"defaultRoleName"`
	AccountRoleMap        map[string]string `json:"accountRoleMap" yaml:"accountRoleMap"`
	DefaultAction         string            `json:"defaultAction" yaml:"defaultAction"`
	ShowNotifications     bool              `json:"showNotifications" yaml:"showNotifications"`
	AutoClosePopup        bool              `json:"autoClosePopup" yaml:"autoClosePopup"`
}

// URLResult is the outcome of a URL transformation. URL is set iff Success
// is true, Error iff it is false.
type URLResult struct {
	Success bool   `json:"success" yaml:"success"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
	Type    string `json:"type" yaml:"type"`
}

// Validation collects every problem found in a value, not just the first.
type Validation struct {
	Valid  bool     `json:"valid" yaml:"valid"`
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}
