package options

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/jaxgl/jax/jaxerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

type pixels int

func TestFromNative(t *testing.T) {
	onload := func() {}

	tree, err := FromNative(map[string]any{
		"canvas":  "#webgl",
		"width":   640,
		"scale":   float32(0.5),
		"alpha":   true,
		"onload":  onload,
		"missing": nil,
		"size":    pixels(12),
		"mask":    uint8(255),
		"colors":  []string{"red", "green"},
		"clear":   map[string]any{"depth": 1.0, "stencil": int64(0)},
		"typed":   map[string]int{"a": 1},
	})
	require.NoError(t, err)

	assert.True(t, tree["canvas"].Equal(String("#webgl")))
	assert.True(t, tree["width"].Equal(Int(640)))
	assert.True(t, tree["scale"].Equal(Float(0.5)))
	assert.True(t, tree["alpha"].Equal(Bool(true)))
	assert.True(t, tree["onload"].Equal(Func(onload)))
	assert.True(t, tree["missing"].IsNull())
	assert.True(t, tree["size"].Equal(Int(12)))
	assert.True(t, tree["mask"].Equal(Int(255)))
	assert.True(t, tree["colors"].Equal(List(String("red"), String("green"))))
	assert.True(t, tree["clear"].Equal(Sub(Tree{"depth": Float(1), "stencil": Int(0)})))
	assert.True(t, tree["typed"].Equal(Sub(Tree{"a": Int(1)})))
}

func TestFromNative_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
	}{
		{name: "struct", in: map[string]any{"bad": struct{}{}}},
		{name: "non-string map key", in: map[string]any{"bad": map[int]string{1: "x"}}},
		{name: "uint overflow", in: map[string]any{"bad": uint64(math.MaxUint64)}},
		{name: "nested", in: map[string]any{"outer": map[string]any{"inner": []any{1, struct{}{}}}}},
		{name: "channel", in: map[string]any{"bad": make(chan int)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromNative(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, jaxerr.ErrInvalidOptions))
		})
	}
}

func TestFromNative_ErrorPath(t *testing.T) {
	_, err := FromNative(map[string]any{"outer": map[string]any{"inner": []any{1, struct{}{}}}})

	var jerr *jaxerr.Error
	require.True(t, errors.As(err, &jerr))
	assert.Equal(t, "outer.inner[1]", jerr.Details["path"])
}

func TestMustFromNative_Panics(t *testing.T) {
	assert.Panics(t, func() { MustFromNative(map[string]any{"bad": struct{}{}}) })
	assert.NotPanics(t, func() { MustFromNative(nil) })
}

func TestNative_RoundTrip(t *testing.T) {
	in := map[string]any{
		"canvas": "#webgl",
		"width":  int64(640),
		"ratio":  1.5,
		"alpha":  false,
		"none":   nil,
		"list":   []any{int64(1), "two"},
		"nested": map[string]any{"k": int64(2)},
	}

	tree, err := FromNative(in)
	require.NoError(t, err)
	assert.Equal(t, in, tree.Native())
}

func TestParseYAML(t *testing.T) {
	doc := []byte(`
canvas: "#webgl"
width: 640
ratio: 1.5
onload: null
clear:
  color: [0, 0, 0, 1]
  depth: 1.0
`)

	tree, err := ParseYAML(doc)
	require.NoError(t, err)

	assert.True(t, tree["canvas"].Equal(String("#webgl")))
	assert.True(t, tree["width"].Equal(Int(640)))
	assert.True(t, tree["ratio"].Equal(Float(1.5)))
	assert.True(t, tree["onload"].IsNull())
	assert.True(t, tree["clear"].Equal(Sub(Tree{
		"color": List(Int(0), Int(0), Int(0), Int(1)),
		"depth": Float(1),
	})))
}

func TestParseYAML_Timestamps(t *testing.T) {
	tree, err := ParseYAML([]byte("released: 2001-12-14\nbuilt: 2001-12-14T21:59:43.1Z\nname: x\n"))
	require.NoError(t, err)

	assert.True(t, tree["released"].Equal(String("2001-12-14T00:00:00Z")), "got %s", tree["released"])
	assert.True(t, tree["built"].Equal(String("2001-12-14T21:59:43.1Z")), "got %s", tree["built"])
	assert.True(t, tree["name"].Equal(String("x")))
}

func TestParseYAML_JSONAndEmpty(t *testing.T) {
	tree, err := ParseYAML([]byte(`{"i": 1, "j": {"k": 2}}`))
	require.NoError(t, err)
	assert.True(t, tree.Equal(Tree{"i": Int(1), "j": Sub(Tree{"k": Int(2)})}))

	tree, err = ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML([]byte("- just\n- a list\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, jaxerr.ErrParse))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "defaults.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("i: 1\nj:\n  k: 2\n"), 0o644))

	tree, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.True(t, tree.Equal(nested().Set("j", Sub(Tree{"k": Int(2)}))))

	jsonPath := filepath.Join(dir, "defaults.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"onload": null}`), 0o644))

	tree, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.True(t, tree["onload"].IsNull())

	_, err = LoadFile(filepath.Join(dir, "defaults.toml"))
	assert.True(t, errors.Is(err, jaxerr.ErrParse))

	_, err = LoadFile(filepath.Join(dir, "absent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestTree_YAMLEmbedding(t *testing.T) {
	var cfg struct {
		Name     string `yaml:"name"`
		Defaults Tree   `yaml:"defaults"`
	}

	err := yaml.Unmarshal([]byte("name: scene\ndefaults:\n  fov: 45\n  near: 0.1\n"), &cfg)
	require.NoError(t, err)
	assert.Equal(t, "scene", cfg.Name)
	assert.True(t, cfg.Defaults.Equal(Tree{"fov": Int(45), "near": Float(0.1)}))

	out, err := yaml.Marshal(Tree{"fov": Int(45), "onload": Func(func() {})})
	require.NoError(t, err)
	assert.Equal(t, "fov: 45\nonload: null\n", string(out))
}

func TestStruct_RoundTrip(t *testing.T) {
	tree := Tree{
		"canvas": String("#webgl"),
		"width":  Int(640),
		"ratio":  Float(1.5),
		"alpha":  Bool(true),
		"onload": Func(func() {}),
		"list":   List(Int(1), String("two")),
		"clear":  Sub(Tree{"depth": Int(1)}),
	}

	s, err := ToStruct(tree)
	require.NoError(t, err)
	assert.Equal(t, 640.0, s.GetFields()["width"].GetNumberValue())
	_, isNull := s.GetFields()["onload"].GetKind().(*structpb.Value_NullValue)
	assert.True(t, isNull)

	back := FromStruct(s)
	want := tree.Clone().Set("onload", Null())
	assert.True(t, back.Equal(want), "got %s", back)
}

func TestFromStruct_Nil(t *testing.T) {
	assert.Empty(t, FromStruct(nil))
}
