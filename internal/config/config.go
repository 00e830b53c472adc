// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and env vars.
// - External errors must be wrapped via this package's error helpers.
package config

import "context"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// DatabaseURL selects the Postgres store. Empty selects the
	// in-memory store.
	DatabaseURL string `koanf:"database_url"`

	// GroupKeywords classify an event as a group event when its name
	// contains any of them, case-insensitive.
	GroupKeywords []string `koanf:"group_keywords"`

	// DefaultCategory is used for sheets carrying no acceptable
	// category label.
	DefaultCategory string `koanf:"default_category"`

	// MaxSearchLimit caps GET /results responses.
	MaxSearchLimit int `koanf:"max_search_limit"`

	// MaxUploadBytes bounds the accepted workbook size.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// DBPoolMinConns and DBPoolMaxConns bound the Postgres pool.
	DBPoolMinConns int `koanf:"db_pool_min_conns"`
	DBPoolMaxConns int `koanf:"db_pool_max_conns"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and is
// currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9090",
		GroupKeywords:   []string{"GROUP"},
		DefaultCategory: "General",
		MaxSearchLimit:  100,
		MaxUploadBytes:  16 << 20,
		DBPoolMinConns:  2,
		DBPoolMaxConns:  8,
	}
}
