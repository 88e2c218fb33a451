package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treestore-io/treestore/internal/util"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultSnapshotDir, cfg.SnapshotDir)
	assert.Equal(t, OptFileStore, cfg.Store)
	assert.Equal(t, DefaultBadgerDir, cfg.BadgerDir)
	assert.Equal(t, util.InfoLevel, cfg.LogLvl)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Merge(t *testing.T) {
	cfg := NewDefaultConfig()

	store := OptBadgerStore
	lvl := util.DebugLevel
	cfg.Merge(&ConfigOverride{Store: &store, LogLvl: &lvl})

	// Overridden fields change, the rest keep defaults
	assert.Equal(t, OptBadgerStore, cfg.Store)
	assert.Equal(t, util.DebugLevel, cfg.LogLvl)
	assert.Equal(t, DefaultSnapshotDir, cfg.SnapshotDir)
}

func TestConfig_Validate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Store = "bolt"
	assert.Error(t, cfg.Validate())

	cfg = NewDefaultConfig()
	cfg.SnapshotDir = ""
	assert.Error(t, cfg.Validate())

	cfg = NewDefaultConfig()
	cfg.Store = OptBadgerStore
	cfg.BadgerDir = ""
	assert.Error(t, cfg.Validate())
}

func TestNewConfigFromFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: badger\nbadger_dir: /var/lib/treestore\n"), 0o644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, OptBadgerStore, cfg.Store)
	assert.Equal(t, "/var/lib/treestore", cfg.BadgerDir)
	assert.Equal(t, DefaultSnapshotDir, cfg.SnapshotDir)
}

func TestNewConfigFromFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"snapshot_dir":"snaps","log_level":1}`), 0o644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "snaps", cfg.SnapshotDir)
	assert.Equal(t, util.DebugLevel, cfg.LogLvl)
}

func TestNewConfigFromFile_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("store = 'file'"), 0o644))

	_, err := NewConfigFromFile(path)
	assert.Error(t, err)
}

func TestNewConfigFromFile_Missing(t *testing.T) {
	_, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
