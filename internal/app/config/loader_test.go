package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PAYFLOW_API_URL", "https://api.example.com")
	t.Setenv("PAYFLOW_API_KEY", "secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.APIURL())
	assert.Equal(t, "secret", cfg.APIKey())
	assert.Equal(t, "local", cfg.WalletAgent())
	assert.Equal(t, "info", cfg.LogLevel())
}

func TestLoadFailsFastWithoutCredentials(t *testing.T) {
	t.Setenv("PAYFLOW_API_URL", "")
	t.Setenv("PAYFLOW_API_KEY", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAYFLOW_API_URL")

	t.Setenv("PAYFLOW_API_URL", "https://api.example.com")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAYFLOW_API_KEY")
}

func TestLoadRejectsMalformedURL(t *testing.T) {
	t.Setenv("PAYFLOW_API_URL", "not a url")
	t.Setenv("PAYFLOW_API_KEY", "secret")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payflow.yaml")
	content := "api-url: https://api.example.com\napi-key: from-file\nwallet-agent: mock\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.APIKey())
	assert.Equal(t, "mock", cfg.WalletAgent())
	assert.Equal(t, "file", cfg.ConfigSource())
	assert.Equal(t, path, cfg.SettingPath())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
