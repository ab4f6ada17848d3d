package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath  = "flatkit.yaml"
	DefaultTop         = 5
	DefaultInventoryDB = "customer_sku_inventory.json"
	DefaultNotesOutput = "notes_index.json"
)

// Config holds settings shared by all flatkit tools.
type Config struct {
	Profile   ProfileConfig   `yaml:"profile"`
	Inventory InventoryConfig `yaml:"inventory"`
	Notes     NotesConfig     `yaml:"notes"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ProfileConfig configures the CSV profiler.
type ProfileConfig struct {
	Top int `yaml:"top"`
}

// InventoryConfig configures the inventory store.
type InventoryConfig struct {
	DBPath string `yaml:"db_path"`
}

// NotesConfig configures the notes indexer.
type NotesConfig struct {
	OutputPath string `yaml:"output_path"`
	SQLitePath string `yaml:"sqlite_path"` // empty disables the cache
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Profile:   ProfileConfig{Top: DefaultTop},
		Inventory: InventoryConfig{DBPath: DefaultInventoryDB},
		Notes:     NotesConfig{OutputPath: DefaultNotesOutput},
		Logging:   LoggingConfig{Level: "warn", Format: "text"},
	}
}

// Load reads configuration from a YAML file, then applies .env and
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	// godotenv.Load never overrides variables already set in the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("FLATKIT_TOP"); v != "" {
		top, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FLATKIT_TOP: invalid integer %q", v)
		}
		c.Profile.Top = top
	}
	if v := os.Getenv("FLATKIT_INVENTORY_DB"); v != "" {
		c.Inventory.DBPath = v
	}
	if v := os.Getenv("FLATKIT_NOTES_OUTPUT"); v != "" {
		c.Notes.OutputPath = v
	}
	if v := os.Getenv("FLATKIT_NOTES_SQLITE"); v != "" {
		c.Notes.SQLitePath = v
	}
	if v := os.Getenv("FLATKIT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("FLATKIT_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}

	return nil
}

// Path returns the config file path from FLATKIT_CONFIG,
// falling back to DefaultConfigPath.
func Path() string {
	if env := os.Getenv("FLATKIT_CONFIG"); env != "" {
		return env
	}
	return DefaultConfigPath
}
