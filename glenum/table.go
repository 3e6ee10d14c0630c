package glenum

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jaxgl/jax/jaxerr"
	"gopkg.in/yaml.v3"
)

// Table maps GL constant codes to symbol names. It is built once from a
// symbol source and is read-only afterwards, so concurrent lookups need no
// locking.
type Table struct {
	names   map[int]string
	aliases map[int][]string
	codes   map[string]int
}

// NewTable builds a table from name -> code pairs, such as WebGLSymbols or a
// document decoded by ParseSymbols. Empty names are skipped.
//
// GL defines several names for some codes (GL_NONE, GL_POINTS and GL_ZERO are
// all 0). The canonical name of a shared code is the lexically smallest one
// so that lookups are deterministic; Names returns every alias.
func NewTable(symbols map[string]int) *Table {
	t := &Table{
		names:   make(map[int]string, len(symbols)),
		aliases: make(map[int][]string),
		codes:   make(map[string]int, len(symbols)),
	}

	for name, code := range symbols {
		if name == "" {
			continue
		}
		t.codes[name] = code
		t.aliases[code] = append(t.aliases[code], name)
	}

	for code, names := range t.aliases {
		sort.Strings(names)
		t.names[code] = names[0]
	}

	return t
}

// Lookup returns the canonical name for code.
func (t *Table) Lookup(code int) (string, bool) {
	name, ok := t.names[code]
	return name, ok
}

// Names returns every name registered for code in sorted order, or nil.
func (t *Table) Names(code int) []string {
	names := t.aliases[code]
	if names == nil {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Code returns the code for name. The "GL_" prefix is optional.
func (t *Table) Code(name string) (int, bool) {
	if code, ok := t.codes[name]; ok {
		return code, true
	}
	if !strings.HasPrefix(name, "GL_") {
		code, ok := t.codes["GL_"+name]
		return code, ok
	}
	return 0, false
}

// Len returns the number of distinct codes in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// Symbols returns a copy of the name -> code pairs the table was built from.
func (t *Table) Symbols() map[string]int {
	out := make(map[string]int, len(t.codes))
	for name, code := range t.codes {
		out[name] = code
	}
	return out
}

// ParseSymbols decodes a YAML mapping of symbol names to codes, letting a host
// binding ship its enum namespace as data:
//
//	GL_TEXTURE_2D: 3553
//	GL_RGBA: 0x1908
func ParseSymbols(data []byte) (map[string]int, error) {
	var raw map[string]*int
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, jaxerr.New("glenum", "ParseSymbols", jaxerr.CodeParseError, "failed to parse symbol table").
			WithCause(err)
	}

	symbols := make(map[string]int, len(raw))
	for name, code := range raw {
		if strings.TrimSpace(name) == "" {
			return nil, jaxerr.New("glenum", "ParseSymbols", jaxerr.CodeParseError, "empty symbol name")
		}
		if code == nil {
			return nil, jaxerr.Newf("glenum", "ParseSymbols", jaxerr.CodeParseError, "symbol %s has no code", name).
				WithDetails(map[string]any{"symbol": name})
		}
		symbols[name] = *code
	}
	return symbols, nil
}

// String summarizes the table for logs.
func (t *Table) String() string {
	return fmt.Sprintf("glenum.Table(%d codes, %d names)", len(t.names), len(t.codes))
}
