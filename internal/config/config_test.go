package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"data_dir": "/tmp/resumes",
		"api_key": "secret",
		"github_user": "octocat"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/tmp/resumes", cfg.DataDir)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "octocat", cfg.GitHubUser)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "{not json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ShareSigningKey = "short"
	assert.Error(t, cfg.Validate())

	cfg.ShareSigningKey = "long-enough-signing-key"
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090, APIKey: "secret"}

	merged := cfg.MergeWithDefaults(DefaultConfig())
	assert.Equal(t, 9090, merged.Port, "explicit values win")
	assert.Equal(t, "secret", merged.APIKey)
	assert.Equal(t, "data", merged.DataDir, "zero values fall back to defaults")
	assert.Equal(t, "http://localhost:8080", merged.ShareBaseURL)
}
