package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears name for the duration of the test.
func unsetEnv(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "APP_ENV", "ENV", "LOG_LEVEL", "SEED_FILE")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "seed.yaml", cfg.SeedFile)
	assert.True(t, cfg.Development())
}

func TestLoad_FromEnvFile(t *testing.T) {
	unsetEnv(t, "APP_ENV", "ENV", "LOG_LEVEL", "SEED_FILE")
	path := writeEnvFile(t, "APP_ENV=Production\nLOG_LEVEL=DEBUG\nSEED_FILE=fixtures/demo.yaml\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "fixtures/demo.yaml", cfg.SeedFile)
	assert.False(t, cfg.Development())
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	unsetEnv(t, "APP_ENV", "ENV", "SEED_FILE")
	t.Setenv("LOG_LEVEL", "warn")
	path := writeEnvFile(t, "LOG_LEVEL=debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_LegacyEnvVariable(t *testing.T) {
	unsetEnv(t, "APP_ENV", "LOG_LEVEL", "SEED_FILE")
	t.Setenv("ENV", "release")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.AppEnv)
	assert.False(t, cfg.Development())
}

func TestLoad_RejectsUnknownLogLevel(t *testing.T) {
	unsetEnv(t, "APP_ENV", "ENV", "SEED_FILE")
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestValidateConfig_BlankSeedFile(t *testing.T) {
	err := validateConfig(&Config{AppEnv: "dev", LogLevel: "info", SeedFile: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEED_FILE")
}
