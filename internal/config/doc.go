// Package config loads, normalizes, and validates memorylane configuration.
//
// Configuration is read from TOML (see sample_config.toml), then overlaid with
// MEMORYLANE_* environment variables, then normalized (paths expanded, blanks
// defaulted) and validated. Callers should always go through Load so every
// command and the HTTP host observe the same resolved values.
package config
