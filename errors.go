package jax

import (
	"io"
	"log/slog"

	"github.com/jaxgl/jax/jaxerr"
)

// Sentinel errors for the jax utilities, usable with errors.Is.
var (
	// ErrInvalidFormat indicates a pixel format outside the recognized set.
	ErrInvalidFormat = jaxerr.ErrInvalidFormat

	// ErrInvalidOptions indicates an options tree that cannot be represented.
	ErrInvalidOptions = jaxerr.ErrInvalidOptions

	// ErrParse indicates an options or symbol document that failed to decode.
	ErrParse = jaxerr.ErrParse

	// ErrRuleFailed indicates an options tree that violates a constraint rule.
	ErrRuleFailed = jaxerr.ErrRuleFailed
)

// CloseWithLog attempts to close the provided resource and logs any error
// at warning level. If logger is nil, slog.Default() is used.
//
//	defer jax.CloseWithLog(file, logger, "symbol file")
func CloseWithLog(closer io.Closer, logger *slog.Logger, name string) {
	if closer == nil {
		return
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := closer.Close(); err != nil {
		logger.Warn("failed to close resource",
			"resource", name,
			"error", err)
	}
}
