// Package glenum introspects GL enum constants.
//
// A Table maps integer codes to symbol names. Tables are built once from a
// symbol source, either the bundled WebGL 1.0 constant set or a YAML document
// shipped by a host binding, and are read-only afterwards:
//
//	symbols, err := glenum.ParseSymbols(data)
//	table := glenum.NewTable(symbols)
//
// An Introspector reads from an injected table rather than from process-wide
// state:
//
//	intro, err := glenum.NewIntrospector(glenum.WebGL())
//	intro.NameOf(glenum.Texture2D) // "GL_TEXTURE_2D"
//	intro.NameOf(36059)            // "unknown GL enum 36059 (0x8cdb)"
//
//	size, err := intro.SizeofFormat(glenum.RGBA) // 4
//
// # Error Handling
//
// NameOf never fails: unknown codes degrade to a diagnostic string carrying
// both the decimal and the hexadecimal form. SizeofFormat accepts only the
// closed set ALPHA, LUMINANCE, LUMINANCE_ALPHA, RGB and RGBA and returns an
// error matching jaxerr.ErrInvalidFormat for anything else.
//
// # Thread Safety
//
// Tables and introspectors hold no mutable state after construction and may
// be shared freely between goroutines.
package glenum
