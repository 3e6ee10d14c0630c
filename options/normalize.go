package options

// Normalize merges input over defaults and returns a fresh tree.
//
// Every key of defaults appears in the result. A key missing from input takes
// a deep copy of its default. A key present in input keeps the input value
// as-is, explicit nulls and callbacks included, except where the default is a
// nested tree: then a tree input is normalized recursively against it and any
// other input is treated as absent. Keys that only input declares are kept.
//
// Neither argument is modified, and the result shares no lists or trees with
// them. Normalize is idempotent: normalizing its own result against the same
// defaults yields an equal tree.
func Normalize(input, defaults Tree) Tree {
	out := make(Tree, len(defaults)+len(input))

	for k, v := range input {
		out[k] = v.Clone()
	}

	for k, def := range defaults {
		in, present := input[k]

		if def.kind == KindTree {
			var sub Tree
			if present && in.kind == KindTree {
				sub = in.treeVal
			}
			out[k] = Value{kind: KindTree, treeVal: Normalize(sub, def.treeVal)}
			continue
		}

		if !present {
			out[k] = def.Clone()
		}
	}

	return out
}

// Merge copies every key of src into dst, overwriting what dst holds.
// Explicit null values in src replace existing values in dst. Nested trees
// and lists are deep-copied so dst never aliases src. A nil dst is left
// untouched.
func Merge(src, dst Tree) {
	if dst == nil {
		return
	}
	for k, v := range src {
		dst[k] = v.Clone()
	}
}
