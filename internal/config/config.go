// Package config holds the plugin process settings: logging behavior and
// default task options. These are the CLI's own knobs, distinct from the
// hosting project's declarative configuration in internal/project.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete summon-python process configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Tasks   TasksConfig   `mapstructure:"tasks"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the directory for log files. Empty means stderr.
	Dir string `mapstructure:"dir"`
}

// TasksConfig controls default task option values
type TasksConfig struct {
	// FullReport makes pylint print detailed reports by default (default: false)
	FullReport bool `mapstructure:"full_report"`
	// Coverage makes the test task collect coverage by default (default: false)
	Coverage bool `mapstructure:"coverage"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Dir:     "",
		},
		Tasks: TasksConfig{
			FullReport: false,
			Coverage:   false,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)

	viper.SetDefault("tasks.full_report", defaults.Tasks.FullReport)
	viper.SetDefault("tasks.coverage", defaults.Tasks.Coverage)
}

// Load reads the configuration from viper into a Config struct
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "summon-python")
	}
	// Fall back to ~/.config/summon-python
	home, err := os.UserHomeDir()
	if err != nil {
		return ".summon-python"
	}
	return filepath.Join(home, ".config", "summon-python")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
