package glenum

import (
	"fmt"
	"log/slog"

	"github.com/jaxgl/jax/jaxerr"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Option configures an Introspector.
type Option func(*config)

type config struct {
	logger        *slog.Logger
	meterProvider metric.MeterProvider
}

// WithLogger sets the logger for lookup diagnostics.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMeterProvider enables OpenTelemetry counters for unknown codes and
// rejected formats. Without it a no-op provider is used.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = provider
	}
}

// Introspector answers questions about GL constants using an injected,
// read-only symbol table. It is safe for concurrent use.
type Introspector struct {
	table   *Table
	logger  *slog.Logger
	metrics *introspectorMetrics
}

// NewIntrospector returns an introspector over table. A nil table selects the
// WebGL 1.0 table.
func NewIntrospector(table *Table, opts ...Option) (*Introspector, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.meterProvider == nil {
		cfg.meterProvider = noop.NewMeterProvider()
	}
	if table == nil {
		table = WebGL()
	}

	m, err := newIntrospectorMetrics(cfg.meterProvider)
	if err != nil {
		return nil, err
	}

	return &Introspector{
		table:   table,
		logger:  cfg.logger,
		metrics: m,
	}, nil
}

// Table returns the symbol table the introspector reads from.
func (in *Introspector) Table() *Table {
	return in.table
}

// NameOf returns the symbol name for code, e.g. "GL_TEXTURE_2D" for 3553.
// Unknown codes never fail; they yield a diagnostic string carrying the
// decimal and hexadecimal forms, e.g. "unknown GL enum 36059 (0x8cdb)".
func (in *Introspector) NameOf(code int) string {
	if name, ok := in.table.Lookup(code); ok {
		return name
	}

	desc := describe(code)
	in.logger.Debug("unknown GL enum", "code", code, "hex", hex(code))
	in.metrics.recordUnknown(code)
	return desc
}

// SizeofFormat returns the bytes per pixel of a pixel format: 1 for ALPHA and
// LUMINANCE, 2 for LUMINANCE_ALPHA, 3 for RGB and 4 for RGBA. Any other code
// fails with an error matching jaxerr.ErrInvalidFormat.
func (in *Introspector) SizeofFormat(format int) (int, error) {
	if size, ok := formatSizes[format]; ok {
		return size, nil
	}

	name, ok := in.table.Lookup(format)
	if !ok {
		name = describe(format)
	}
	in.logger.Warn("unsupported pixel format", "format", format, "name", name)
	in.metrics.recordInvalidFormat(format)

	return 0, jaxerr.Newf("glenum", "SizeofFormat", jaxerr.CodeInvalidFormat, "unsupported pixel format %s", name).
		WithDetails(map[string]any{"format": format})
}

func describe(code int) string {
	return fmt.Sprintf("unknown GL enum %d (%s)", code, hex(code))
}

// hex formats code as lowercase 0x-prefixed hexadecimal; negative codes get
// a leading minus ("-0x3039").
func hex(code int) string {
	return fmt.Sprintf("%#x", code)
}
