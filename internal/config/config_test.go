package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load reads the package-level viper, so every test starts from a
// clean slate in its own working directory.
func loadFromDir(t *testing.T, dir string) (*Config, error) {
	t.Helper()
	viper.Reset()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
		viper.Reset()
	})

	return Load()
}

func TestLoadBindsLLMSettingsFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgJSON := `{
		"server": {"host": "127.0.0.1", "port": 8080},
		"database": {"host": "db.internal", "port": 5433, "user": "travel", "database": "travel", "sslmode": "require"},
		"llm": {"api_key": "sk-test", "base_url": "http://localhost:1234/v1", "model": "gpt-4o", "max_tokens": 256, "timeout_seconds": 12},
		"cors": {"origins": "https://example.com"}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(cfgJSON), 0o644))

	cfg, err := loadFromDir(t, dir)
	require.NoError(t, err)

	// Underscore keys from the file must land in the struct
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "http://localhost:1234/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 256, cfg.LLM.MaxTokens)
	assert.Equal(t, 12, cfg.LLM.TimeoutSeconds)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "https://example.com", cfg.CORS.Origins)
}

func TestLoadFileDefaultsStillApply(t *testing.T) {
	dir := t.TempDir()
	// A file that only sets the API key must not zero the call bounds
	cfgJSON := `{"llm": {"api_key": "sk-test"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(cfgJSON), 0o644))

	cfg, err := loadFromDir(t, dir)
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, 500, cfg.LLM.MaxTokens)
	assert.Equal(t, 30, cfg.LLM.TimeoutSeconds)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := loadFromDir(t, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 500, cfg.LLM.MaxTokens)
	assert.Equal(t, 30, cfg.LLM.TimeoutSeconds)
	assert.Empty(t, cfg.LLM.APIKey)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgJSON := `{"llm": {"api_key": "from-file", "model": "file-model"}, "database": {"host": "file-host"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(cfgJSON), 0o644))

	t.Setenv("VOYAGO_LLM_API_KEY", "from-env")
	t.Setenv("POSTGRES_HOST", "env-host")

	cfg, err := loadFromDir(t, dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.LLM.APIKey)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, "file-model", cfg.LLM.Model)
}
