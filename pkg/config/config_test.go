package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("PORTAL_CONFIG_PATH", dir)
	return path
}

func TestLoadFromFile(t *testing.T) {
	writeConfigFile(t, "super_admins:\n  - apollo\n  - ops-admin\n")
	t.Setenv("PORTAL_SUPER_ADMINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"apollo", "ops-admin"}, cfg.SuperAdmins)
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	t.Setenv("PORTAL_CONFIG_PATH", t.TempDir())
	t.Setenv("PORTAL_SUPER_ADMINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.SuperAdmins)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	writeConfigFile(t, "super_admins:\n  - apollo\n")
	t.Setenv("PORTAL_SUPER_ADMINS", "root, ops-admin ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "ops-admin"}, cfg.SuperAdmins)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	writeConfigFile(t, "super_admins: {not: [valid")

	_, err := Load()
	assert.Error(t, err)
}

func TestProviderReload(t *testing.T) {
	path := writeConfigFile(t, "super_admins:\n  - apollo\n")
	t.Setenv("PORTAL_SUPER_ADMINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	provider := NewProvider(cfg)
	assert.Equal(t, []string{"apollo"}, provider.SuperAdmins())

	require.NoError(t, os.WriteFile(path, []byte("super_admins:\n  - apollo\n  - alice\n"), 0o600))
	require.NoError(t, provider.Reload())
	assert.Equal(t, []string{"apollo", "alice"}, provider.SuperAdmins())
}
