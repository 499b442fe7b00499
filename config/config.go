/*
Package config maps PALINDROMES_* environment variables onto a typed struct.

Parsing is done by caarlos0/env. LoadFile additionally reads a dotenv file
first, so local overrides can live next to the binary:

	cfg, err := config.LoadFile(".env")
	if err != nil {
		return err
	}

Values already present in the process environment win over the file.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ModeSequence = "sequence"
	ModeParallel = "parallel"
)

// Config holds the runtime settings of the palindromes command.
type Config struct {
	// Mode selects the traversal: "sequence" or "parallel".
	Mode string `env:"MODE" envDefault:"parallel"`

	// Workers is the goroutine count for parallel mode. 0 means GOMAXPROCS.
	Workers int `env:"WORKERS" envDefault:"0"`

	// OrderStable keeps input order in parallel mode.
	OrderStable bool `env:"ORDERED" envDefault:"false"`

	// Metrics dumps Prometheus metrics to stderr after filtering.
	Metrics bool `env:"METRICS" envDefault:"false"`
}

// Load parses the process environment into a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "PALINDROMES_"}); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads path as a dotenv file and then calls Load.
// A missing file is ignored; an empty path skips the file entirely.
func LoadFile(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to load %s: %w", path, err)
		}
	}
	return Load()
}

// Validate rejects unknown modes and negative worker counts.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeSequence, ModeParallel:
	default:
		return fmt.Errorf("config: unknown mode %q, want %q or %q", c.Mode, ModeSequence, ModeParallel)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	return nil
}

func (c *Config) IsParallel() bool {
	return c.Mode == ModeParallel
}
