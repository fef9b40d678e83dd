// Package config provides configuration loading for the undolog demo.
//
// Configuration files may be written in TOML (.toml) or YAML (.yaml, .yml).
// Values present in the file override the defaults returned by Default; a
// missing file is not an error. UNDOLOG_* environment variables (for example
// UNDOLOG_LOG_LEVEL or UNDOLOG_WAVE_CYCLES) override both.
//
//	[log]
//	level = "debug"
//
//	[history]
//	max_entries = 100
//
//	[wave]
//	amplitude = 30.0
//	frequency = 20.0
//	cycles = 5
package config
