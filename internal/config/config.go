package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Storage struct {
		// DataDir is the directory holding the per-collection JSON files.
		DataDir string `yaml:"data_dir" env:"STORAGE_DATA_DIR"`
	} `yaml:"storage"`

	Analysis struct {
		// Endpoint is the chat-completions style URL of the external
		// analysis collaborator. Empty disables the call entirely.
		Endpoint string `yaml:"endpoint" env:"ANALYSIS_ENDPOINT"`
		APIKey   string `yaml:"api_key" env:"ANALYSIS_API_KEY"`
		Model    string `yaml:"model" env:"ANALYSIS_MODEL"`
		Timeout  string `yaml:"timeout" env:"ANALYSIS_TIMEOUT"`
	} `yaml:"analysis"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Storage defaults
	config.Storage.DataDir = "data"

	// Analysis defaults
	config.Analysis.Model = "gemini-2.0-flash"
	config.Analysis.Timeout = "15s"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Storage.DataDir == "" {
		return fmt.Errorf("storage data dir is required")
	}

	if _, err := time.ParseDuration(config.Analysis.Timeout); err != nil {
		return fmt.Errorf("invalid analysis timeout format: %w", err)
	}

	return nil
}
