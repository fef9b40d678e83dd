package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix is the prefix of environment variables read by ApplyEnv.
const EnvPrefix = "UNDOLOG_"

// LookupFunc looks up an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// envMapping maps environment variable names (without prefix) to setters.
var envMapping = map[string]func(c *Config, val string) error{
	"LOG_LEVEL": func(c *Config, val string) error {
		c.Log.Level = val
		return nil
	},
	"LOG_PREFIX": func(c *Config, val string) error {
		c.Log.Prefix = val
		return nil
	},
	"MAX_ENTRIES": func(c *Config, val string) error {
		return parseInt(val, &c.History.MaxEntries)
	},
	"WAVE_AMPLITUDE": func(c *Config, val string) error {
		return parseFloat(val, &c.Wave.Amplitude)
	},
	"WAVE_FREQUENCY": func(c *Config, val string) error {
		return parseFloat(val, &c.Wave.Frequency)
	},
	"WAVE_CYCLES": func(c *Config, val string) error {
		return parseInt(val, &c.Wave.Cycles)
	},
}

// ApplyEnv overrides cfg with UNDOLOG_* environment variables.
// Empty string values are treated as valid values, not as unset.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		return nil
	}
	for name, set := range envMapping {
		val, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		if err := set(cfg, val); err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
	}
	return nil
}

func parseInt(val string, dst *int) error {
	n, err := strconv.Atoi(val)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func parseFloat(val string, dst *float64) error {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}
