package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nested() Tree {
	return Tree{
		"i": Int(1),
		"j": Sub(Tree{"k": Int(2), "l": Int(3)}),
	}
}

func mustInt(t *testing.T, tree Tree, path ...string) int64 {
	t.Helper()
	v, ok := tree.Lookup(path...)
	require.True(t, ok, "missing %v", path)
	n, err := v.AsInt()
	require.NoError(t, err)
	return n
}

func TestNormalize_MissingInput(t *testing.T) {
	tests := []struct {
		name  string
		input Tree
	}{
		{name: "nil input", input: nil},
		{name: "empty input", input: Tree{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaults := nested()
			got := Normalize(tt.input, defaults)

			assert.True(t, got.Equal(defaults))
			assert.Equal(t, int64(1), mustInt(t, got, "i"))
			assert.Equal(t, int64(2), mustInt(t, got, "j", "k"))
			assert.Equal(t, int64(3), mustInt(t, got, "j", "l"))
		})
	}
}

func TestNormalize_ResultDoesNotAliasDefaults(t *testing.T) {
	defaults := nested()
	defaults["def"] = List(Int(1), Int(2), Int(3))
	snapshot := defaults.Clone()

	got := Normalize(nil, defaults)

	sub, err := got["j"].AsTree()
	require.NoError(t, err)
	sub["k"] = Int(99)
	sub["extra"] = String("x")

	list, err := got["def"].AsList()
	require.NoError(t, err)
	list[0] = Int(42)

	assert.True(t, defaults.Equal(snapshot), "defaults changed: %s", defaults)
}

func TestNormalize_DefaultList(t *testing.T) {
	arr := []Value{Int(1), Int(2), Int(3)}
	got := Normalize(nil, Tree{"def": List(arr...)})

	list, err := got["def"].AsList()
	require.NoError(t, err)
	require.Len(t, list, len(arr))
	for i := range arr {
		assert.True(t, arr[i].Equal(list[i]), "element %d", i)
	}

	list[1] = Int(7)
	n, err := arr[1].AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestNormalize_ExplicitNullOverridesDefault(t *testing.T) {
	got := Normalize(Tree{"i": Null()}, Tree{"i": Int(5)})

	v, ok := got.Get("i")
	require.True(t, ok)
	assert.True(t, v.IsNull())
}

func TestNormalize_FuncValue(t *testing.T) {
	called := false
	onload := func() { called = true }

	got := Normalize(Tree{"onload": Func(onload)}, Tree{"onload": Null()})

	require.Equal(t, KindFunc, got["onload"].Kind())
	fn, err := got["onload"].AsFunc()
	require.NoError(t, err)
	fn.(func())()
	assert.True(t, called)
}

func TestNormalize_MissingValueDefaultsToNull(t *testing.T) {
	got := Normalize(Tree{}, Tree{"onload": Null()})

	v, ok := got.Get("onload")
	require.True(t, ok)
	assert.True(t, v.IsNull())
}

func TestNormalize_Overrides(t *testing.T) {
	input := Tree{
		"i": Int(8),
		"j": Sub(Tree{"k": Int(9), "l": Int(0)}),
	}
	want := input.Clone()

	got := Normalize(input, nested())

	assert.True(t, got.Equal(want), "got %s", got)
	assert.True(t, input.Equal(want), "input changed: %s", input)
}

func TestNormalize_PartialNestedOverride(t *testing.T) {
	got := Normalize(Tree{"j": Sub(Tree{"k": Int(9)})}, nested())

	assert.Equal(t, int64(1), mustInt(t, got, "i"))
	assert.Equal(t, int64(9), mustInt(t, got, "j", "k"))
	assert.Equal(t, int64(3), mustInt(t, got, "j", "l"))
}

func TestNormalize_KeepsCustomKeys(t *testing.T) {
	input := Tree{
		"m": Int(8),
		"n": Sub(Tree{"o": Int(9), "p": Int(0)}),
	}

	got := Normalize(input, nested())

	assert.Equal(t, int64(1), mustInt(t, got, "i"))
	assert.Equal(t, int64(2), mustInt(t, got, "j", "k"))
	assert.Equal(t, int64(3), mustInt(t, got, "j", "l"))

	assert.Equal(t, int64(8), mustInt(t, got, "m"))
	assert.Equal(t, int64(9), mustInt(t, got, "n", "o"))
	assert.Equal(t, int64(0), mustInt(t, got, "n", "p"))

	sub, _ := got["n"].AsTree()
	sub["o"] = Int(100)
	assert.Equal(t, int64(9), mustInt(t, input, "n", "o"))
}

func TestNormalize_NonTreeInputForTreeDefault(t *testing.T) {
	tests := []struct {
		name  string
		input Value
	}{
		{name: "null", input: Null()},
		{name: "scalar", input: Int(5)},
		{name: "list", input: List(Int(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(Tree{"j": tt.input}, nested())

			assert.Equal(t, KindTree, got["j"].Kind())
			assert.Equal(t, int64(2), mustInt(t, got, "j", "k"))
			assert.Equal(t, int64(3), mustInt(t, got, "j", "l"))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	onload := func() {}
	defaults := Tree{
		"i":      Int(1),
		"onload": Null(),
		"colors": List(String("red"), String("green")),
		"j":      Sub(Tree{"k": Int(2), "deep": Sub(Tree{"x": Float(0.5)})}),
	}
	inputs := []Tree{
		nil,
		{},
		{"i": Null()},
		{"onload": Func(onload), "extra": Bool(true)},
		{"j": Sub(Tree{"deep": Sub(Tree{"y": String("z")})})},
		{"j": String("not a tree")},
	}

	for _, input := range inputs {
		once := Normalize(input, defaults)
		twice := Normalize(once, defaults)
		assert.True(t, once.Equal(twice), "input %s: %s != %s", input, once, twice)
	}
}

func TestMerge(t *testing.T) {
	t.Run("copies null attributes", func(t *testing.T) {
		src := Tree{"i": Null()}
		dst := Tree{"i": Int(5)}

		Merge(src, dst)

		assert.True(t, dst["i"].IsNull())
	})

	t.Run("overwrites and adds", func(t *testing.T) {
		src := Tree{"a": String("new"), "b": Sub(Tree{"c": Int(1)})}
		dst := Tree{"a": String("old"), "z": Bool(true)}

		Merge(src, dst)

		assert.True(t, dst.Equal(Tree{
			"a": String("new"),
			"b": Sub(Tree{"c": Int(1)}),
			"z": Bool(true),
		}))

		sub, _ := dst["b"].AsTree()
		sub["c"] = Int(2)
		assert.Equal(t, int64(1), mustInt(t, src, "b", "c"))
	})

	t.Run("nil destination", func(t *testing.T) {
		assert.NotPanics(t, func() { Merge(Tree{"a": Int(1)}, nil) })
	})
}
