// Package jax provides the option-normalization and GL enum introspection
// utilities of the Jax WebGL framework.
//
// The heavy lifting lives in subpackages:
//
//   - options: option trees, Normalize and Merge, YAML/protobuf conversion and
//     CEL constraint rules
//   - glenum: GL symbol tables, enum name lookup and pixel format sizes
//   - jaxerr: the structured error type shared by both
//
// Util bundles them behind the helper names the framework has always used:
//
//	util, err := jax.New(jax.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	opts := util.NormalizeOptions(userOpts, defaults)
//	name := util.EnumName(glenum.Texture2D) // "GL_TEXTURE_2D"
//	size, err := util.SizeofFormat(glenum.RGB) // 3
//
// # Symbol Tables
//
// By default Util introspects the WebGL 1.0 constant set. A host binding can
// inject its own enum namespace with WithTable, or ship it as a YAML file and
// load it with WithSymbolsFile.
//
// # Error Handling
//
// Failures are *jaxerr.Error values. Match them with the re-exported
// sentinels:
//
//	if _, err := util.SizeofFormat(format); errors.Is(err, jax.ErrInvalidFormat) {
//		// unsupported pixel format
//	}
//
// # Observability
//
// Util logs through log/slog and, when given a MeterProvider, counts unknown
// enum lookups and rejected formats with OpenTelemetry.
package jax
