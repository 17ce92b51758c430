package consoleurl

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/ryancormack/aws-console-share-extension/models"
)

// ConsoleDomain is the host substring every AWS Console URL carries.
const ConsoleDomain = "console.aws.amazon.com"

var (
	// Multi-account hosts look like 123456789012-a1b2c3.eu-west-1.console.aws.amazon.com.
	// The suffix segment is lowercase only; anything else is passed through untouched.
	multiAccountHostRegex = regexp.MustCompile(`^(\d{12})-[a-z0-9]+\.(.+)$`)

	regionHostRegex   = regexp.MustCompile(`([a-z]{2}-[a-z]+-\d+)\.console\.aws\.amazon\.com`)
	regionFormatRegex = regexp.MustCompile(`^[a-z]{2}-[a-z]+-\d+$`)
)

// CleanURL strips the account-specific hostname prefix from a multi-account
// console URL. Already-clean console URLs come back unchanged, so the
// operation is idempotent. Only the host is rewritten; scheme, path, query
// and fragment are preserved as-is.
func CleanURL(raw string) models.URLResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return cleanFailure("URL is empty")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return cleanFailure("invalid URL format")
	}

	if !strings.Contains(parsed.Host, ConsoleDomain) {
		return cleanFailure("not an AWS Console URL")
	}

	if match := multiAccountHostRegex.FindStringSubmatch(parsed.Host); match != nil {
		parsed.Host = match[2]
	}

	return models.URLResult{
		Success: true,
		URL:     parsed.String(),
		Type:    models.ResultTypeClean,
	}
}

// IsMultiAccountURL reports whether the URL's host carries the
// account-specific prefix that CleanURL strips. Unparseable input is
// simply not multi-account.
func IsMultiAccountURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" {
		return false
	}
	return multiAccountHostRegex.MatchString(parsed.Host)
}

// ValidateConsoleURL reports whether the URL is an https AWS Console URL.
func ValidateConsoleURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return parsed.Scheme == "https" && strings.Contains(parsed.Host, ConsoleDomain)
}

// ExtractRegionFromURL pulls the region out of a console URL, preferring
// the regional host segment over the region query parameter. Returns ""
// when neither yields a well-formed region code.
func ExtractRegionFromURL(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}

	if match := regionHostRegex.FindStringSubmatch(parsed.Host); match != nil {
		return match[1]
	}

	if region := parsed.Query().Get("region"); regionFormatRegex.MatchString(region) {
		return region
	}

	return ""
}

// AccountIDFromURL returns the 12-digit account ID embedded in a
// multi-account console host, or "" for clean URLs.
func AccountIDFromURL(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	if match := multiAccountHostRegex.FindStringSubmatch(parsed.Host); match != nil {
		return match[1]
	}
	return ""
}

// IsValidRegionFormat reports whether a string looks like an AWS region
// code such as eu-west-1.
func IsValidRegionFormat(region string) bool {
	return regionFormatRegex.MatchString(region)
}

func cleanFailure(message string) models.URLResult {
	return models.URLResult{
		Success: false,
		Error:   message,
		Type:    models.ResultTypeClean,
	}
}
