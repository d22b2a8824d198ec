// Package config handles configuration loading and validation for taskboard.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/taskboard/internal/core/storage"
	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/core/task"
)

// Config holds the application configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage" toml:"storage"`
	Defaults DefaultsConfig `yaml:"defaults" toml:"defaults"`
	TUI      TUIConfig      `yaml:"tui" toml:"tui"`
	DataDir  string         `yaml:"-" toml:"-"` // set by caller, not from config file
}

// StorageConfig selects where the task list is persisted.
type StorageConfig struct {
	Backend string `yaml:"backend" toml:"backend"` // jsonfile, sqlite, memory
	Key     string `yaml:"key" toml:"key"`         // slot the task list is written under
}

// DefaultsConfig holds the values new tasks start with when none are given.
type DefaultsConfig struct {
	Category task.Category `yaml:"category" toml:"category"`
	Status   task.Status   `yaml:"status" toml:"status"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme" toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: storage.BackendJSONFile,
			Key:     "tasks",
		},
		Defaults: DefaultsConfig{
			Category: task.CategoryHome,
			Status:   task.StatusNotStarted,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// Files ending in .toml are parsed as TOML, anything else as YAML. If
// configPath is empty or doesn't exist, returns defaults with the provided
// dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := decode(configPath, data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since decoding may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Storage.Key == "" {
		c.Storage.Key = defaults.Storage.Key
	}
	if c.Defaults.Category == "" {
		c.Defaults.Category = defaults.Defaults.Category
	}
	if c.Defaults.Status == "" {
		c.Defaults.Status = defaults.Defaults.Status
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "taskboard.log")
}
