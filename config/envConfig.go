package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	// EnvProjectID names the environment variable holding the cloud project identifier
	EnvProjectID = "GOOGLE_CLOUD_PROJECT"
	// EnvTable names the environment variable holding the dataset-qualified destination table
	EnvTable = "BIGQUERY_TABLE"
	// EnvAPIKey names the optional environment variable holding the PageSpeed Insights API key
	EnvAPIKey = "PAGESPEED_API_KEY"
)

// EnvConfig holds the process-environment part of the configuration. The
// destination table reference is ProjectID + "." + Table.
type EnvConfig struct {
	ProjectID string
	Table     string
	APIKey    string
}

// LoadEnvConfig reads the environment values into an EnvConfig, loading the
// given env file first when it exists. A missing env file is not an error, a
// missing required variable is.
func LoadEnvConfig(envFile string) (*EnvConfig, error) {
	err := godotenv.Load(envFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load env file '%s': %w", envFile, err)
	}

	cfg := &EnvConfig{
		ProjectID: os.Getenv(EnvProjectID),
		Table:     os.Getenv(EnvTable),
		APIKey:    os.Getenv(EnvAPIKey),
	}

	if len(cfg.ProjectID) == 0 {
		return nil, fmt.Errorf("%s is not set in the environment", EnvProjectID)
	}
	if len(cfg.Table) == 0 {
		return nil, fmt.Errorf("%s is not set in the environment", EnvTable)
	}

	return cfg, nil
}
