package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// PageSpeedConfig holds the settings of the PageSpeed Insights API client
type PageSpeedConfig struct {
	Endpoint         string `toml:"Endpoint" validate:"required,url"`
	Category         string `toml:"Category" validate:"required"`
	Strategy         string `toml:"Strategy" validate:"required"`
	TimeoutInSeconds uint32 `toml:"TimeoutInSeconds" validate:"min=1"`
}

// WarehouseConfig holds the settings of the analytics table writes
type WarehouseConfig struct {
	InsertTimeoutInSeconds uint32 `toml:"InsertTimeoutInSeconds" validate:"min=1"`
}

// Config maps to the config.toml file for the collector service
type Config struct {
	ListenAddress string          `toml:"ListenAddress" validate:"required"`
	TemplatesPath string          `toml:"TemplatesPath" validate:"required"`
	PageSpeed     PageSpeedConfig `toml:"PageSpeed"`
	Warehouse     WarehouseConfig `toml:"Warehouse"`
}

// LoadConfig parses a TOML file into the Config struct and validates it,
// failing fast on the first bad or missing value
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filepath, err)
	}

	var cfg Config
	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	err = validator.New().Struct(&cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", filepath, err)
	}

	return &cfg, nil
}
