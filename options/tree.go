package options

import (
	"sort"
	"strings"
)

// Tree is an options tree: string keys mapped to values, where a value may
// itself be a nested Tree. A nil Tree behaves as an empty one for reads.
type Tree map[string]Value

// Get returns the value for key and whether it was present. A key that is
// present with an explicit null value reports true.
func (t Tree) Get(key string) (Value, bool) {
	v, ok := t[key]
	return v, ok
}

// Lookup follows path through nested trees.
//
//	depth, ok := tree.Lookup("renderer", "depth", "enabled")
func (t Tree) Lookup(path ...string) (Value, bool) {
	if len(path) == 0 {
		return Sub(t), true
	}

	cur := t
	for i, key := range path {
		v, ok := cur[key]
		if !ok {
			return Value{}, false
		}
		if i == len(path)-1 {
			return v, true
		}
		if v.kind != KindTree {
			return Value{}, false
		}
		cur = v.treeVal
	}
	return Value{}, false
}

// Set stores v under key and returns t for chaining.
func (t Tree) Set(key string, v Value) Tree {
	t[key] = v
	return t
}

// Keys returns the keys of t in sorted order.
func (t Tree) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of t. Cloning a nil tree yields an empty tree.
func (t Tree) Clone() Tree {
	cp := make(Tree, len(t))
	for k, v := range t {
		cp[k] = v.Clone()
	}
	return cp
}

// Equal reports whether t and o hold the same keys with structurally equal
// values. A nil tree equals an empty one.
func (t Tree) Equal(o Tree) bool {
	if len(t) != len(o) {
		return false
	}
	for k, v := range t {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// String renders t with sorted keys.
func (t Tree) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range t.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(t[k].String())
	}
	b.WriteByte('}')
	return b.String()
}
