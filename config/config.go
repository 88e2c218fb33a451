package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/treestore-io/treestore/internal/util"
)

// Snapshot store backends.
const (
	OptFileStore   = "file"
	OptBadgerStore = "badger"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultSnapshotDir = "snapshots"
	DefaultStore       = OptFileStore
	DefaultBadgerDir   = "badger"
	DefaultLogLvl      = util.InfoLevel
)

// Config contains runtime configuration values for the tree store.
type Config struct {
	SnapshotDir string        // Directory for file-backed snapshots (Default "snapshots")
	Store       string        // Snapshot store backend, "file" or "badger" (Default "file")
	BadgerDir   string        // Badger database directory when Store is "badger" (Default "badger")
	LogLvl      util.LogLevel // Log verbosity (Default info)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions.
type ConfigOverride struct {
	SnapshotDir *string        `yaml:"snapshot_dir,omitempty" json:"snapshot_dir,omitempty"`
	Store       *string        `yaml:"store,omitempty" json:"store,omitempty"`
	BadgerDir   *string        `yaml:"badger_dir,omitempty" json:"badger_dir,omitempty"`
	LogLvl      *util.LogLevel `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		SnapshotDir: DefaultSnapshotDir,
		Store:       DefaultStore,
		BadgerDir:   DefaultBadgerDir,
		LogLvl:      DefaultLogLvl,
	}
}

// NewConfig creates a Config from defaults plus an optional override.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
func (c *Config) Merge(override *ConfigOverride) {
	if override.SnapshotDir != nil {
		c.SnapshotDir = *override.SnapshotDir
	}
	if override.Store != nil {
		c.Store = *override.Store
	}
	if override.BadgerDir != nil {
		c.BadgerDir = *override.BadgerDir
	}
	if override.LogLvl != nil {
		c.LogLvl = *override.LogLvl
	}
}

// Validate checks that the config describes a usable store.
func (c *Config) Validate() error {
	switch c.Store {
	case OptFileStore:
		if c.SnapshotDir == "" {
			return errors.New("invalid snapshot directory")
		}
	case OptBadgerStore:
		if c.BadgerDir == "" {
			return errors.New("invalid badger directory")
		}
	default:
		return fmt.Errorf("invalid snapshot store backend: %q", c.Store)
	}
	return nil
}

// LoadConfigOverrideFile loads configuration overrides from a file without
// merging. Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with
// defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
