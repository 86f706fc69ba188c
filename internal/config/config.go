// apps/go-term/internal/config/config.go
//
// Runtime configuration for the terminal game.
//
// Precedence (lowest to highest):
//   1. DefaultConfig.
//   2. YAML file passed to Load (missing file = defaults).
//   3. Environment variables (a .env file is loaded by main beforehand).
//   4. Command-line flags, applied by the caller.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-term/internal/store"
)

// Config is the root configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Words   WordsConfig   `yaml:"words"`
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
}

// GameConfig holds gameplay defaults.
type GameConfig struct {
	// DefaultLength skips the length picker when non-zero.
	DefaultLength int `yaml:"default_length"`
}

// WordsConfig points word lengths at custom word files (.txt or .yaml).
type WordsConfig struct {
	Files map[int]string `yaml:"files"`
}

// StoreConfig selects the key/value backend.
type StoreConfig struct {
	Driver string `yaml:"driver"` // sqlite3, sqlite, memory
	Path   string `yaml:"path"`
}

// LoggingConfig configures zerolog.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	dir := DataDir()
	return &Config{
		Game:  GameConfig{DefaultLength: 0},
		Words: WordsConfig{Files: map[int]string{}},
		Store: StoreConfig{
			Driver: store.DriverCGO,
			Path:   filepath.Join(dir, "wordle.db"),
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(dir, "wordle.log"),
		},
	}
}

// DataDir is where the database and log live by default.
func DataDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "wordle")
	}
	return "."
}

// Load loads configuration from a YAML file. An empty path or a missing file
// yields the defaults; env overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case store.DriverCGO, store.DriverPureGo, store.DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Store.Driver != store.DriverMemory && c.Store.Path == "" {
		return errors.New("store.path is required for sqlite drivers")
	}
	if c.Game.DefaultLength < 0 {
		return fmt.Errorf("invalid default length %d", c.Game.DefaultLength)
	}
	for n := range c.Words.Files {
		if n < 1 {
			return fmt.Errorf("invalid word length %d in words.files", n)
		}
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
	c.Logging.File = getEnv("LOG_FILE", c.Logging.File)
	c.Store.Path = getEnv("WORDLE_DB", c.Store.Path)
	c.Store.Driver = getEnv("WORDLE_STORE_DRIVER", c.Store.Driver)

	if c.Words.Files == nil {
		c.Words.Files = map[int]string{}
	}
	for _, n := range []int{4, 5, 6} {
		if f := os.Getenv(fmt.Sprintf("WORDS_%d_FILE", n)); f != "" {
			c.Words.Files[n] = f
		}
	}

	if v := os.Getenv("WORDLE_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WORDLE_LENGTH: %w", err)
		}
		c.Game.DefaultLength = n
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
