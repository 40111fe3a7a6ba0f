package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "lebenslauf.db", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTPAddr)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 20, cfg.CatalogFloor)
	assert.Equal(t, "Alex", cfg.PlayerName)
	assert.Equal(t, 2000, cfg.StartYear)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LEBENSLAUF_DB", "/tmp/leben.db")
	t.Setenv("LEBENSLAUF_SEED", "42")
	t.Setenv("LEBENSLAUF_LOG_LEVEL", "debug")
	t.Setenv("LEBENSLAUF_GENDER", "w")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/leben.db", cfg.DBPath)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "w", cfg.PlayerGender)
}

func TestLoad_RejectsNegativeCatalogFloor(t *testing.T) {
	t.Setenv("LEBENSLAUF_CATALOG_FLOOR", "-1")
	_, err := Load()
	assert.Error(t, err)
}
