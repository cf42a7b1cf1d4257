package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DUNGEON_SEED", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("TELEMETRY_ENABLED", "")
	t.Setenv("HONEYCOMB_DUNGEONSOFDOOM_DATASET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(0), cfg.Game.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "dungeonsofdoom", cfg.Telemetry.Dataset)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DUNGEON_SEED", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", "/tmp/doom.log")
	t.Setenv("TELEMETRY_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(12345), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/doom.log", cfg.Log.File)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoadInvalidSeed(t *testing.T) {
	t.Setenv("DUNGEON_SEED", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
