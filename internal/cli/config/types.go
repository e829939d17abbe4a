// Package config provides configuration management for the sqlshift CLI.
package config

import "context"

type ctxKey struct{}

// IntoContext stores the config in the context.
func IntoContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from the context, falling back to
// defaults when none was stored.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return &Config{
		Source: DefaultSource,
		Output: DefaultOutput,
	}
}

// Defaults for unset configuration values.
const (
	DefaultSource = "sqlite"
	DefaultOutput = "text"
)

// Config holds the CLI configuration, merged from defaults, the config
// file, SQLSHIFT_ environment variables, and command-line flags.
type Config struct {
	// Source is the dialect the input SQL is written in.
	Source string `koanf:"source"`
	// Target is the dialect to transpile into.
	Target string `koanf:"target"`
	// Output selects the result rendering: text or json.
	Output string `koanf:"output"`
	// Verbose enables progress output on stderr.
	Verbose bool `koanf:"verbose"`
}
