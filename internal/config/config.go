package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LabelsFileEnv overrides the labels output path
const LabelsFileEnv = "MPM_LABELS_FILE"

// Config represents the application configuration
type Config struct {
	Labels LabelsConfig `yaml:"labels"`
	Log    LogConfig    `yaml:"log"`
	Theme  Theme        `yaml:"theme"`
}

// LabelsConfig configures label generation
type LabelsConfig struct {
	// Output is the labels file path. Relative paths are resolved against
	// the module directory.
	Output string `yaml:"output,omitempty"`
}

// LogConfig configures logging
type LogConfig struct {
	// Verbose sends logs to stderr instead of the log file
	Verbose bool `yaml:"verbose"`
}

// Default returns the default configuration
func Default() *Config {
	config := &Config{Theme: DefaultTheme()}
	config.applyEnv()
	return config
}

// applyEnv applies environment variable overrides
func (c *Config) applyEnv() {
	if output := os.Getenv(LabelsFileEnv); output != "" {
		c.Labels.Output = output
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		return Default(), nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()
	config.applyEnv()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "mpm", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "mpm", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Theme.ApplyDefaults()
}
