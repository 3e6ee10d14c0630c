// Package options normalizes user-supplied option trees against declared
// defaults.
//
// An options tree maps string keys to values of a closed set of kinds: null,
// bool, int, float, string, callback, list and nested tree. Values are tagged
// variants; merging branches on the tag rather than on Go runtime types.
//
// # Normalizing
//
//	defaults := options.Tree{
//	    "canvas": options.String("#webgl"),
//	    "onload": options.Null(),
//	    "clear":  options.Sub(options.Tree{"depth": options.Float(1)}),
//	}
//	opts := options.Normalize(userOpts, defaults)
//
// Every default key is present in the result, explicit nulls in the input
// override defaults, and keys the input declares beyond the defaults are kept.
// The result never aliases either argument.
//
// # Sources
//
// Trees can be built from Go literals (FromNative), YAML or JSON documents
// (ParseYAML, LoadFile) and google.protobuf.Struct messages (FromStruct).
//
// # Rules
//
// A RuleSet holds CEL constraints that a normalized tree must satisfy:
//
//	rs, err := options.CompileRules([]options.Rule{
//	    {Name: "positive-size", Expr: "opts.width > 0 && opts.height > 0"},
//	})
//	if err := rs.Check(opts); errors.Is(err, jaxerr.ErrRuleFailed) {
//	    // reject
//	}
package options
