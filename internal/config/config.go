package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of environment overrides, e.g. DEALER_LOG_FILE
const EnvPrefix = "dealer"

// Config represents the application configuration
type Config struct {
	LogFile     string `toml:"log_file" envconfig:"log_file"`
	IncludeTime bool   `toml:"include_time" envconfig:"include_time"`
	Policy      string `toml:"policy" envconfig:"policy"`
	ImageDir    string `toml:"image_dir" envconfig:"image_dir"`
	LogLevel    string `toml:"log_level" envconfig:"log_level"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "dealer", "config.toml")
}

// GetDefaultLogFile returns where deals are recorded unless configured otherwise
func GetDefaultLogFile() string {
	return filepath.Join(GetXDGDataHome(), "dealer", "CardsDealt.txt")
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogFile:     GetDefaultLogFile(),
		IncludeTime: true,
		Policy:      "replace",
		LogLevel:    "info",
	}
}

// LoadConfig loads the config file at the default location
func LoadConfig() (*Config, error) {
	return Load(GetConfigFilePath())
}

// Load reads the config file at path, creating it with defaults if it
// doesn't exist, then applies .env and DEALER_* environment overrides
func Load(configPath string) (*Config, error) {
	config, err := ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// .env is optional; variables already set in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %v", err)
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, fmt.Errorf("error processing environment: %v", err)
	}

	return config, nil
}

// ReadFile reads only the config file, creating it with defaults if it
// doesn't exist
func ReadFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := Default()
	if err := Save(configPath, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save writes config to path as TOML
func Save(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}
