// Package jaxerr provides the structured error type shared by the jax packages.
//
// # Overview
//
// Every failure surfaced by the option and enum utilities is an *Error that
// names the component and operation that failed and carries one of a small set
// of codes:
//
//   - CodeInvalidFormat: a pixel format outside the recognized closed set
//   - CodeInvalidOptions: an options tree that cannot be represented or checked
//   - CodeParseError: a YAML or protobuf document that could not be decoded
//   - CodeRuleFailed: a constraint rule evaluated to false
//
// # Matching
//
// Each code has a sentinel error. An *Error matches its sentinel with
// errors.Is, so callers never need to inspect the Code field directly:
//
//	size, err := intro.SizeofFormat(format)
//	if errors.Is(err, jaxerr.ErrInvalidFormat) {
//	    // unsupported format
//	}
//
// Two *Error values also match each other when Component, Operation and Code
// are equal, and errors.As extracts the *Error from a wrapped chain.
package jaxerr
