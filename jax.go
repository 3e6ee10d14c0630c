package jax

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jaxgl/jax/glenum"
	"github.com/jaxgl/jax/options"
)

// Util bundles option normalization and enum introspection.
// It is safe for concurrent use.
type Util struct {
	intro *glenum.Introspector
}

// New creates a Util. Without WithTable or WithSymbolsFile the WebGL 1.0
// symbol table is used.
func New(opts ...Option) (*Util, error) {
	cfg := &utilConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	table := cfg.table
	if table == nil && cfg.symbolsPath != "" {
		symbols, err := loadSymbols(cfg.symbolsPath, cfg.logger)
		if err != nil {
			return nil, err
		}
		table = glenum.NewTable(symbols)
		cfg.logger.Debug("loaded GL symbol table", "path", cfg.symbolsPath, "codes", table.Len())
	}

	introOpts := []glenum.Option{glenum.WithLogger(cfg.logger)}
	if cfg.meterProvider != nil {
		introOpts = append(introOpts, glenum.WithMeterProvider(cfg.meterProvider))
	}

	intro, err := glenum.NewIntrospector(table, introOpts...)
	if err != nil {
		return nil, fmt.Errorf("create introspector: %w", err)
	}

	return &Util{intro: intro}, nil
}

func loadSymbols(path string, logger *slog.Logger) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open symbol file: %w", err)
	}
	defer CloseWithLog(f, logger, "symbol file")

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read symbol file: %w", err)
	}

	symbols, err := glenum.ParseSymbols(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return symbols, nil
}

// NormalizeOptions merges input over defaults. See options.Normalize.
func (u *Util) NormalizeOptions(input, defaults options.Tree) options.Tree {
	return options.Normalize(input, defaults)
}

// Merge copies every key of src into dst, explicit nulls included.
// See options.Merge.
func (u *Util) Merge(src, dst options.Tree) {
	options.Merge(src, dst)
}

// EnumName returns the symbol name of a GL constant, or a diagnostic string
// with its decimal and hex forms when the code is unknown.
func (u *Util) EnumName(code int) string {
	return u.intro.NameOf(code)
}

// SizeofFormat returns the bytes per pixel of a pixel format.
func (u *Util) SizeofFormat(format int) (int, error) {
	return u.intro.SizeofFormat(format)
}

// Introspector returns the underlying enum introspector.
func (u *Util) Introspector() *glenum.Introspector {
	return u.intro
}
