package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvConfig(t *testing.T) {
	missingEnvFile := filepath.Join(t.TempDir(), ".env")

	t.Run("missing project id should error", func(t *testing.T) {
		t.Setenv(EnvProjectID, "")
		t.Setenv(EnvTable, "perf.audits")

		cfg, err := LoadEnvConfig(missingEnvFile)
		assert.Nil(t, cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), EnvProjectID)
	})
	t.Run("missing table should error", func(t *testing.T) {
		t.Setenv(EnvProjectID, "test-project")
		t.Setenv(EnvTable, "")

		cfg, err := LoadEnvConfig(missingEnvFile)
		assert.Nil(t, cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), EnvTable)
	})
	t.Run("should work without an env file, api key optional", func(t *testing.T) {
		t.Setenv(EnvProjectID, "test-project")
		t.Setenv(EnvTable, "perf.audits")
		t.Setenv(EnvAPIKey, "")

		cfg, err := LoadEnvConfig(missingEnvFile)
		require.NoError(t, err)
		assert.Equal(t, "test-project", cfg.ProjectID)
		assert.Equal(t, "perf.audits", cfg.Table)
		assert.Empty(t, cfg.APIKey)
	})
	t.Run("should load values from the env file", func(t *testing.T) {
		// register cleanup, then unset so godotenv is allowed to fill the values
		t.Setenv(EnvProjectID, "")
		t.Setenv(EnvTable, "")
		t.Setenv(EnvAPIKey, "")
		require.NoError(t, os.Unsetenv(EnvProjectID))
		require.NoError(t, os.Unsetenv(EnvTable))
		require.NoError(t, os.Unsetenv(EnvAPIKey))

		envFile := filepath.Join(t.TempDir(), ".env")
		contents := EnvProjectID + "=file-project\n" +
			EnvTable + "=perf.audits\n" +
			EnvAPIKey + "=file-api-key\n"
		require.NoError(t, os.WriteFile(envFile, []byte(contents), 0644))

		cfg, err := LoadEnvConfig(envFile)
		require.NoError(t, err)
		assert.Equal(t, "file-project", cfg.ProjectID)
		assert.Equal(t, "perf.audits", cfg.Table)
		assert.Equal(t, "file-api-key", cfg.APIKey)
	})
}
