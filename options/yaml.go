package options

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jaxgl/jax/jaxerr"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML mapping into a Tree. JSON documents are accepted
// as well since JSON is a subset of YAML. An empty document yields an empty
// tree.
func ParseYAML(data []byte) (Tree, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, jaxerr.New("options", "ParseYAML", jaxerr.CodeParseError, "failed to parse options document").
			WithCause(err)
	}
	return FromNative(raw)
}

// LoadFile reads a defaults tree from a .yaml, .yml or .json file.
func LoadFile(path string) (Tree, error) {
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml", ".json":
	default:
		return nil, jaxerr.Newf("options", "LoadFile", jaxerr.CodeParseError,
			"unsupported options file format: %s (supported: .json, .yaml, .yml)", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	t, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// MarshalYAML encodes t as a YAML mapping. Callbacks are written as null.
func (t Tree) MarshalYAML() (any, error) {
	return t.native(false), nil
}

// UnmarshalYAML lets a Tree be embedded in larger YAML configuration structs.
func (t *Tree) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromNative(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
