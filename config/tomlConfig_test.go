package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Parallel()

	testString := `
ListenAddress = "0.0.0.0:8080"
TemplatesPath = "./templates"

[PageSpeed]
    Endpoint = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"
    Category = "PERFORMANCE"
    Strategy = "MOBILE"
    TimeoutInSeconds = 60

[Warehouse]
    InsertTimeoutInSeconds = 10
`

	expectedCfg := Config{
		ListenAddress: "0.0.0.0:8080",
		TemplatesPath: "./templates",
		PageSpeed: PageSpeedConfig{
			Endpoint:         "https://www.googleapis.com/pagespeedonline/v5/runPagespeed",
			Category:         "PERFORMANCE",
			Strategy:         "MOBILE",
			TimeoutInSeconds: 60,
		},
		Warehouse: WarehouseConfig{
			InsertTimeoutInSeconds: 10,
		},
	}

	cfg := Config{}

	err := toml.Unmarshal([]byte(testString), &cfg)
	assert.Nil(t, err)
	assert.Equal(t, expectedCfg, cfg)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file should error", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Nil(t, cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
	t.Run("malformed file should error", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "ListenAddress = not quoted")

		cfg, err := LoadConfig(path)
		assert.Nil(t, cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode config file")
	})
	t.Run("missing required value should error", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
TemplatesPath = "./templates"

[PageSpeed]
    Endpoint = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"
    Category = "PERFORMANCE"
    Strategy = "MOBILE"
    TimeoutInSeconds = 60

[Warehouse]
    InsertTimeoutInSeconds = 10
`)

		cfg, err := LoadConfig(path)
		assert.Nil(t, cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config file")
		assert.Contains(t, err.Error(), "ListenAddress")
	})
	t.Run("non-url audit endpoint should error", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
ListenAddress = "0.0.0.0:8080"
TemplatesPath = "./templates"

[PageSpeed]
    Endpoint = "not an url"
    Category = "PERFORMANCE"
    Strategy = "MOBILE"
    TimeoutInSeconds = 60

[Warehouse]
    InsertTimeoutInSeconds = 10
`)

		cfg, err := LoadConfig(path)
		assert.Nil(t, cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Endpoint")
	})
	t.Run("should load the repo config file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig("../config.toml")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "PERFORMANCE", cfg.PageSpeed.Category)
		assert.Equal(t, "MOBILE", cfg.PageSpeed.Strategy)
	})
}

func writeConfigFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	return path
}
