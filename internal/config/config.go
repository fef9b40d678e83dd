package config

import (
	"fmt"

	"github.com/dshills/undolog/internal/logging"
)

// Config is the demo configuration.
type Config struct {
	Log     LogConfig     `toml:"log" yaml:"log"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Wave    WaveConfig    `toml:"wave" yaml:"wave"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Prefix string `toml:"prefix" yaml:"prefix"`
}

// HistoryConfig configures the undo log.
type HistoryConfig struct {
	// MaxEntries bounds the history. Zero means unbounded.
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`
}

// WaveConfig holds the initial sine wave parameters.
type WaveConfig struct {
	Amplitude float64 `toml:"amplitude" yaml:"amplitude"`
	Frequency float64 `toml:"frequency" yaml:"frequency"`
	Cycles    int     `toml:"cycles" yaml:"cycles"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Prefix: "undolog",
		},
		Wave: WaveConfig{
			Amplitude: 30,
			Frequency: 20,
			Cycles:    5,
		},
	}
}

// Validate checks that every value is within range.
func (c Config) Validate() error {
	if _, ok := logging.LookupLevel(c.Log.Level); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("%w: history.max_entries must not be negative", ErrInvalidConfig)
	}
	if c.Wave.Cycles < 0 {
		return fmt.Errorf("%w: wave.cycles must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Logger builds a logger from the log section.
func (c Config) Logger() *logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Log.Level)
	cfg.Prefix = c.Log.Prefix
	return logging.New(cfg)
}
