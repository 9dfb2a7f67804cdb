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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "env: test\n")
	cfg, err := loadFrom(path, "1.2.3")
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.Version)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.Equal(t, "08:00", cfg.Schedule.Breakfast)
	assert.Equal(t, "23:00", cfg.Schedule.SleepTime)
}

func TestLoadYAMLValues(t *testing.T) {
	path := writeConfig(t, `
port: "9000"
ai:
  provider: deepseek
  endpoint: "https://api.deepseek.com/v1"
  model: "deepseek-chat"
  temperature: 0.5
schedule:
  breakfast: "07:30"
`)
	cfg, err := loadFrom(path, "dev")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "deepseek", cfg.AI.Provider)
	assert.Equal(t, "deepseek-chat", cfg.AI.Model)
	assert.InDelta(t, 0.5, cfg.AI.Temperature, 1e-9)
	assert.Equal(t, "07:30", cfg.Schedule.Breakfast)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("AI_API_KEY", "sk-test")

	path := writeConfig(t, "port: \"9000\"\n")
	cfg, err := loadFrom(path, "dev")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sk-test", cfg.AI.APIKey)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	path := writeConfig(t, "ai:\n  provider: bard\n")
	_, err := loadFrom(path, "dev")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := loadFrom(filepath.Join(t.TempDir(), "nope.yaml"), "dev")
	assert.Error(t, err)
}

func TestConnectionString(t *testing.T) {
	db := DatabaseConfig{
		Host: "db", Port: 5432, User: "sundial", Password: "secret",
		Database: "sundial_engine", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=sundial password=secret dbname=sundial_engine sslmode=disable",
		db.ConnectionString())
}
