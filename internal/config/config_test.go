package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryancormack/aws-console-share-extension/models"
)

const testPath = "/home/user/.config/aws-console-share/config.yml"

func newTestStore(t *testing.T, contents string) *Store {
	t.Helper()
	fs := afero.NewMemMapFs()
	if contents != "" {
		require.NoError(t, afero.WriteFile(fs, testPath, []byte(contents), 0o600))
	}
	return NewStoreWithFs(fs, testPath)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := newTestStore(t, "").Load()

	require.NoError(t, err)
	assert.Equal(t, "", cfg.SSOSubdomain)
	assert.Equal(t, models.StrategyCurrent, cfg.RoleSelectionStrategy)
	assert.Equal(t, models.ActionClean, cfg.DefaultAction)
	assert.NotNil(t, cfg.AccountRoleMap)
	assert.True(t, cfg.ShowNotifications)
	assert.True(t, cfg.AutoClosePopup)
}

func TestLoadYaml(t *testing.T) {
	cfg, err := newTestStore(t, `
ssoSubdomain: mycompany
roleSelectionStrategy: account-map
defaultRoleName: ReadOnly
accountRoleMap:
  "123456789012": Admin
defaultAction: deeplink
showNotifications: false
autoClosePopup: false
`).Load()

	require.NoError(t, err)
	assert.Equal(t, "mycompany", cfg.SSOSubdomain)
	assert.Equal(t, models.StrategyAccountMap, cfg.RoleSelectionStrategy)
	assert.Equal(t, "ReadOnly", cfg.DefaultRoleName)
	assert.Equal(t, map[string]string{"123456789012": "Admin"}, cfg.AccountRoleMap)
	assert.Equal(t, models.ActionDeepLink, cfg.DefaultAction)
	assert.False(t, cfg.ShowNotifications)
}

func TestLoadJsonFallback(t *testing.T) {
	cfg, err := newTestStore(t, `{"ssoSubdomain": "mycompany", "roleSelectionStrategy": "default", "defaultRoleName": "Dev"}`).Load()

	require.NoError(t, err)
	assert.Equal(t, "mycompany", cfg.SSOSubdomain)
	assert.Equal(t, models.StrategyDefault, cfg.RoleSelectionStrategy)
	assert.Equal(t, "Dev", cfg.DefaultRoleName)
}

func TestLoadFillsMissingFields(t *testing.T) {
	cfg, err := newTestStore(t, "ssoSubdomain: corp\n").Load()

	require.NoError(t, err)
	assert.Equal(t, models.StrategyCurrent, cfg.RoleSelectionStrategy)
	assert.Equal(t, models.ActionClean, cfg.DefaultAction)
	assert.NotNil(t, cfg.AccountRoleMap)
}

func TestLoadUnparseableFile(t *testing.T) {
	_, err := newTestStore(t, "{not yaml: [no json either").Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLegacyStartURLMigration(t *testing.T) {
	t.Run("full start URL", func(t *testing.T) {
		cfg, err := newTestStore(t, "ssoStartUrl: https://mycompany.awsapps.com/start\n").Load()
		require.NoError(t, err)
		assert.Equal(t, "mycompany", cfg.SSOSubdomain)
	})

	t.Run("schemeless start URL", func(t *testing.T) {
		cfg, err := newTestStore(t, "ssoStartUrl: mycompany.awsapps.com/start\n").Load()
		require.NoError(t, err)
		assert.Equal(t, "mycompany", cfg.SSOSubdomain)
	})

	t.Run("explicit subdomain wins over legacy key", func(t *testing.T) {
		cfg, err := newTestStore(t, "ssoSubdomain: newcorp\nssoStartUrl: https://oldcorp.awsapps.com/start\n").Load()
		require.NoError(t, err)
		assert.Equal(t, "newcorp", cfg.SSOSubdomain)
	})

	t.Run("non-awsapps start URL ignored", func(t *testing.T) {
		cfg, err := newTestStore(t, "ssoStartUrl: https://sso.example.com/start\n").Load()
		require.NoError(t, err)
		assert.Equal(t, "", cfg.SSOSubdomain)
	})
}

func TestSaveThenLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStoreWithFs(fs, testPath)

	cfg := Defaults()
	cfg.SSOSubdomain = "mycompany"
	cfg.RoleSelectionStrategy = models.StrategyAccountMap
	cfg.AccountRoleMap["123456789012"] = "Admin"

	require.NoError(t, store.Save(cfg))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveNilConfig(t *testing.T) {
	store := NewStoreWithFs(afero.NewMemMapFs(), testPath)
	assert.Error(t, store.Save(nil))
}
