// Package config handles configuration management for wieldy.
// It layers the embedded defaults, the user and project TOML files,
// WIELDY_* environment variables and command line overrides.
package config
