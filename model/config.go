package model

import "log/slog"

// Config holds configuration for a Repository.
type Config struct {
	// Logger receives structured events for lookups and writes at debug
	// level. Default: slog.Default()
	Logger *slog.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Logger: slog.Default(),
	}
}

// validate ensures config values are usable.
func (c *Config) validate() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
