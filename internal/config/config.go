// Package config provides environment-driven runtime configuration.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds everything tunable from the environment.
type Config struct {
	// DBPath is the SQLite database file. Save slot, event catalog,
	// and life archive all live here.
	DBPath string `env:"LEBENSLAUF_DB" envDefault:"lebenslauf.db"`

	// HTTPAddr is the listen address of the read-only observation API.
	// Empty disables the API.
	HTTPAddr string `env:"LEBENSLAUF_HTTP_ADDR" envDefault:"127.0.0.1:8080"`

	// Seed fixes the random source for reproducible lives. Zero means
	// a fresh seed per run.
	Seed int64 `env:"LEBENSLAUF_SEED" envDefault:"0"`

	// CatalogFloor is the minimum number of events seeded into the
	// stored catalog on startup.
	CatalogFloor int `env:"LEBENSLAUF_CATALOG_FLOOR" envDefault:"20"`

	// PlayerName and PlayerGender seed a fresh life when no save
	// exists. Gender accepts "m" or "w".
	PlayerName   string `env:"LEBENSLAUF_PLAYER" envDefault:"Alex"`
	PlayerGender string `env:"LEBENSLAUF_GENDER" envDefault:"m"`

	// StartYear is the birth year of a fresh life.
	StartYear int `env:"LEBENSLAUF_START_YEAR" envDefault:"2000"`

	LogLevel slog.Level `env:"LEBENSLAUF_LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.CatalogFloor < 0 {
		return Config{}, fmt.Errorf("catalog floor must not be negative, got %d", cfg.CatalogFloor)
	}
	return cfg, nil
}
