package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/ryancormack/aws-console-share-extension/models"
)

const (
	configDirName  = "aws-console-share"
	configFileName = "config.yml"
)

// Store loads and saves the persisted settings. The filesystem is injected
// so tests run against an in-memory fs.
type Store struct {
	fs   afero.Fs
	path string
}

// fileConfig is the on-disk shape. It carries the legacy ssoStartUrl key
// from early versions that stored the full start URL instead of the
// subdomain.
type fileConfig struct {
	models.ExtensionConfig `yaml:",inline"`
	LegacySSOStartURL      string `json:"ssoStartUrl,omitempty" yaml:"ssoStartUrl,omitempty"`
}

func NewStore() *Store {
	return &Store{fs: afero.NewOsFs(), path: DefaultPath()}
}

func NewStoreWithFs(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// DefaultPath is ~/.config/aws-console-share/config.yml, or the current
// directory when the home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", configFileName)
	}
	return filepath.Join(home, ".config", configDirName, configFileName)
}

func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a config file is already on disk.
func (s *Store) Exists() bool {
	exists, err := afero.Exists(s.fs, s.path)
	return err == nil && exists
}

// Load reads the config file, filling defaults so the returned value is
// fully specified. A missing file is not an error: it yields the defaults.
func (s *Store) Load() (*models.ExtensionConfig, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		// Early versions persisted JSON.
		if jsonErr := json.Unmarshal(data, &fc); jsonErr != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", s.path, err)
		}
	}

	cfg := fc.ExtensionConfig
	migrateLegacyStartURL(&cfg, fc.LegacySSOStartURL)
	applyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config as YAML, creating the parent directory if needed.
func (s *Store) Save(cfg *models.ExtensionConfig) error {
	if cfg == nil {
		return fmt.Errorf("nothing to save: config is nil")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", s.path, err)
	}
	return nil
}

// Defaults is the fresh-install configuration. The SSO subdomain has no
// sensible default and stays empty until the user sets it.
func Defaults() *models.ExtensionConfig {
	return &models.ExtensionConfig{
		SSOSubdomain:          "",
		RoleSelectionStrategy: models.StrategyCurrent,
		DefaultRoleName:       "",
		AccountRoleMap:        map[string]string{},
		DefaultAction:         models.ActionClean,
		ShowNotifications:     true,
		AutoClosePopup:        true,
	}
}

func applyDefaults(cfg *models.ExtensionConfig) {
	if cfg.RoleSelectionStrategy == "" {
		cfg.RoleSelectionStrategy = models.StrategyCurrent
	}
	if cfg.DefaultAction == "" {
		cfg.DefaultAction = models.ActionClean
	}
	if cfg.AccountRoleMap == nil {
		cfg.AccountRoleMap = map[string]string{}
	}
}

// migrateLegacyStartURL derives the subdomain from a stored SSO start URL
// like https://mycompany.awsapps.com/start when no subdomain is set.
func migrateLegacyStartURL(cfg *models.ExtensionConfig, startURL string) {
	if cfg.SSOSubdomain != "" || strings.TrimSpace(startURL) == "" {
		return
	}

	parsed, err := url.Parse(strings.TrimSpace(startURL))
	if err != nil {
		return
	}
	host := parsed.Host
	if host == "" {
		// Bare "mycompany.awsapps.com/start" without a scheme.
		host = strings.SplitN(parsed.Path, "/", 2)[0]
	}
	if suffix := ".awsapps.com"; strings.HasSuffix(host, suffix) {
		cfg.SSOSubdomain = strings.TrimSuffix(host, suffix)
	}
}
