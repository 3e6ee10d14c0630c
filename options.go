package jax

import (
	"log/slog"

	"github.com/jaxgl/jax/glenum"
	"go.opentelemetry.io/otel/metric"
)

// Option configures a Util.
type Option func(*utilConfig)

// utilConfig holds configuration for a Util instance.
type utilConfig struct {
	logger        *slog.Logger
	meterProvider metric.MeterProvider
	table         *glenum.Table
	symbolsPath   string
}

// WithLogger sets a custom logger.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *utilConfig) {
		c.logger = logger
	}
}

// WithMeterProvider sets an OpenTelemetry meter provider for lookup metrics.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(c *utilConfig) {
		c.meterProvider = provider
	}
}

// WithTable injects the symbol table used for enum introspection.
// It takes precedence over WithSymbolsFile.
func WithTable(table *glenum.Table) Option {
	return func(c *utilConfig) {
		c.table = table
	}
}

// WithSymbolsFile loads the symbol table from a YAML file of name: code
// pairs when the Util is created.
func WithSymbolsFile(path string) Option {
	return func(c *utilConfig) {
		c.symbolsPath = path
	}
}
