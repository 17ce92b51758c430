package consoleurl

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanURL(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantSuccess bool
		wantURL     string
		wantErrPart string
	}{
		{
			name:        "strips multi-account prefix",
			input:       "https://123456789012-abc123def.eu-west-1.console.aws.amazon.com/cloudwatch/home?region=eu-west-1",
			wantSuccess: true,
			wantURL:     "https://eu-west-1.console.aws.amazon.com/cloudwatch/home?region=eu-west-1",
		},
		{
			name:        "already clean URL unchanged",
			input:       "https://eu-west-1.console.aws.amazon.com/cloudwatch/home?region=eu-west-1",
			wantSuccess: true,
			wantURL:     "https://eu-west-1.console.aws.amazon.com/cloudwatch/home?region=eu-west-1",
		},
		{
			name:        "global console URL unchanged",
			input:       "https://console.aws.amazon.com/iam/home",
			wantSuccess: true,
			wantURL:     "https://console.aws.amazon.com/iam/home",
		},
		{
			name:        "preserves fragment",
			input:       "https://123456789012-x1y2z3.us-east-1.console.aws.amazon.com/s3/buckets?region=us-east-1#section",
			wantSuccess: true,
			wantURL:     "https://us-east-1.console.aws.amazon.com/s3/buckets?region=us-east-1#section",
		},
		{
			name:        "uppercase suffix is not multi-account",
			input:       "https://123456789012-ABC123.eu-west-1.console.aws.amazon.com/home",
			wantSuccess: true,
			wantURL:     "https://123456789012-ABC123.eu-west-1.console.aws.amazon.com/home",
		},
		{
			name:        "short account ID prefix is not stripped",
			input:       "https://123456-abc.eu-west-1.console.aws.amazon.com/home",
			wantSuccess: true,
			wantURL:     "https://123456-abc.eu-west-1.console.aws.amazon.com/home",
		},
		{
			name:        "empty input",
			input:       "",
			wantSuccess: false,
			wantErrPart: "empty",
		},
		{
			name:        "whitespace only input",
			input:       "   ",
			wantSuccess: false,
			wantErrPart: "empty",
		},
		{
			name:        "unparseable input",
			input:       "not a url",
			wantSuccess: false,
			wantErrPart: "invalid URL format",
		},
		{
			name:        "wrong domain",
			input:       "https://example.com/console",
			wantSuccess: false,
			wantErrPart: "not an AWS Console URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanURL(tt.input)

			assert.Equal(t, tt.wantSuccess, result.Success)
			assert.Equal(t, "clean", result.Type)
			if tt.wantSuccess {
				assert.Equal(t, tt.wantURL, result.URL)
				assert.Empty(t, result.Error)
			} else {
				assert.Contains(t, result.Error, tt.wantErrPart)
				assert.Empty(t, result.URL)
			}
		})
	}
}

func TestCleanURLIdempotent(t *testing.T) {
	first := CleanURL("https://123456789012-a1b2c3.ap-southeast-2.console.aws.amazon.com/ec2/home?region=ap-southeast-2")
	require.True(t, first.Success)

	second := CleanURL(first.URL)
	require.True(t, second.Success)
	assert.Equal(t, first.URL, second.URL)
}

func TestCleanURLRewritesHostOnly(t *testing.T) {
	input := "https://123456789012-a1b2c3.eu-west-1.console.aws.amazon.com/cloudwatch/home?region=eu-west-1&tab=alarms#metrics"

	result := CleanURL(input)
	require.True(t, result.Success)

	in, err := url.Parse(input)
	require.NoError(t, err)
	out, err := url.Parse(result.URL)
	require.NoError(t, err)

	assert.Equal(t, in.Scheme, out.Scheme)
	assert.Equal(t, in.Path, out.Path)
	assert.Equal(t, in.RawQuery, out.RawQuery)
	assert.Equal(t, in.Fragment, out.Fragment)
	assert.NotEqual(t, in.Host, out.Host)
	assert.Equal(t, "eu-west-1.console.aws.amazon.com", out.Host)
}

func TestIsMultiAccountURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"multi-account host", "https://123456789012-abc123.eu-west-1.console.aws.amazon.com/home", true},
		{"clean regional host", "https://eu-west-1.console.aws.amazon.com/x", false},
		{"global host", "https://console.aws.amazon.com/iam", false},
		{"uppercase suffix", "https://123456789012-ABC.eu-west-1.console.aws.amazon.com/x", false},
		{"eleven digit prefix", "https://12345678901-abc.eu-west-1.console.aws.amazon.com/x", false},
		{"unparseable", "::::", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMultiAccountURL(tt.input))
		})
	}
}

// A multi-account console URL is detected exactly when cleaning changes it.
func TestMultiAccountDetectionMatchesCleaning(t *testing.T) {
	urls := []string{
		"https://123456789012-abc123.eu-west-1.console.aws.amazon.com/home",
		"https://eu-west-1.console.aws.amazon.com/home",
		"https://console.aws.amazon.com/iam/home",
		"https://123456789012-ABC.eu-west-1.console.aws.amazon.com/home",
	}

	for _, raw := range urls {
		result := CleanURL(raw)
		require.True(t, result.Success, raw)
		assert.Equal(t, IsMultiAccountURL(raw), result.URL != raw, raw)
	}
}

func TestValidateConsoleURL(t *testing.T) {
	assert.True(t, ValidateConsoleURL("https://eu-west-1.console.aws.amazon.com/ec2"))
	assert.True(t, ValidateConsoleURL("https://console.aws.amazon.com/"))
	assert.False(t, ValidateConsoleURL("http://eu-west-1.console.aws.amazon.com/ec2"), "scheme must be https")
	assert.False(t, ValidateConsoleURL("https://example.com/"))
	assert.False(t, ValidateConsoleURL("::::"))
	assert.False(t, ValidateConsoleURL(""))
}

func TestExtractRegionFromURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"region from host", "https://eu-west-1.console.aws.amazon.com/ec2", "eu-west-1"},
		{"region from multi-account host", "https://123456789012-abc.us-east-2.console.aws.amazon.com/ec2", "us-east-2"},
		{"region from query param", "https://console.aws.amazon.com/x?region=us-west-2", "us-west-2"},
		{"host wins over query param", "https://ap-south-1.console.aws.amazon.com/x?region=us-west-2", "ap-south-1"},
		{"malformed query region ignored", "https://console.aws.amazon.com/x?region=US-WEST-2", ""},
		{"no region anywhere", "https://console.aws.amazon.com/iam/home", ""},
		{"unparseable", "::::", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRegionFromURL(tt.input))
		})
	}
}

func TestIsValidRegionFormat(t *testing.T) {
	assert.True(t, IsValidRegionFormat("us-east-1"))
	assert.True(t, IsValidRegionFormat("ap-southeast-2"))
	assert.False(t, IsValidRegionFormat("useast1"))
	assert.False(t, IsValidRegionFormat("US-EAST-1"))
	assert.False(t, IsValidRegionFormat(""))
}
