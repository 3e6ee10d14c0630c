package options

import (
	"fmt"
	"reflect"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindFunc // callback reference, e.g. an onload handler
	KindList
	KindTree
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindFunc:
		return "func"
	case KindList:
		return "list"
	case KindTree:
		return "tree"
	default:
		return "unknown"
	}
}

// Value is a single option value. The zero Value is Null.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
	fnVal    any

	// Container values
	listVal []Value
	treeVal Tree
}

// ============================================================
// Constructors
// ============================================================

// Null creates an explicit null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) Value {
	return Value{kind: KindInt, intVal: v}
}

// Float creates a float value.
func Float(v float64) Value {
	return Value{kind: KindFloat, floatVal: v}
}

// String creates a string value.
func String(v string) Value {
	return Value{kind: KindString, strVal: v}
}

// Func wraps a callback. A nil fn, typed or untyped, yields Null, as does
// any fn that is not a function.
func Func(fn any) Value {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return Null()
	}
	return Value{kind: KindFunc, fnVal: fn}
}

// List creates a list value.
func List(values ...Value) Value {
	return Value{kind: KindList, listVal: values}
}

// Sub creates a nested tree value.
func Sub(t Tree) Value {
	if t == nil {
		t = Tree{}
	}
	return Value{kind: KindTree, treeVal: t}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean value.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("options: expected bool, got %s", v.kind)
	}
	return v.boolVal, nil
}

// AsInt returns the integer value.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("options: expected int, got %s", v.kind)
	}
	return v.intVal, nil
}

// AsFloat returns the float value. Int values are widened.
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.floatVal, nil
	case KindInt:
		return float64(v.intVal), nil
	default:
		return 0, fmt.Errorf("options: expected float, got %s", v.kind)
	}
}

// AsString returns the string value.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("options: expected string, got %s", v.kind)
	}
	return v.strVal, nil
}

// AsFunc returns the wrapped callback.
func (v Value) AsFunc() (any, error) {
	if v.kind != KindFunc {
		return nil, fmt.Errorf("options: expected func, got %s", v.kind)
	}
	return v.fnVal, nil
}

// AsList returns the list elements. The slice is shared with v.
func (v Value) AsList() ([]Value, error) {
	if v.kind != KindList {
		return nil, fmt.Errorf("options: expected list, got %s", v.kind)
	}
	return v.listVal, nil
}

// AsTree returns the nested tree. The tree is shared with v.
func (v Value) AsTree() (Tree, error) {
	if v.kind != KindTree {
		return nil, fmt.Errorf("options: expected tree, got %s", v.kind)
	}
	return v.treeVal, nil
}

// Clone returns a deep copy of v. Lists and trees are copied element by
// element; callbacks are copied by reference.
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		if v.listVal == nil {
			return Value{kind: KindList}
		}
		cp := make([]Value, len(v.listVal))
		for i, elem := range v.listVal {
			cp[i] = elem.Clone()
		}
		return Value{kind: KindList, listVal: cp}
	case KindTree:
		return Value{kind: KindTree, treeVal: v.treeVal.Clone()}
	default:
		return v
	}
}

// Equal reports structural equality. Callbacks are equal when they refer to
// the same function.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == o.boolVal
	case KindInt:
		return v.intVal == o.intVal
	case KindFloat:
		return v.floatVal == o.floatVal
	case KindString:
		return v.strVal == o.strVal
	case KindFunc:
		return funcPointer(v.fnVal) == funcPointer(o.fnVal)
	case KindList:
		if len(v.listVal) != len(o.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(o.listVal[i]) {
				return false
			}
		}
		return true
	case KindTree:
		return v.treeVal.Equal(o.treeVal)
	default:
		return false
	}
}

// String renders v for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%t", v.boolVal)
	case KindInt:
		return fmt.Sprintf("%d", v.intVal)
	case KindFloat:
		return fmt.Sprintf("%g", v.floatVal)
	case KindString:
		return fmt.Sprintf("%q", v.strVal)
	case KindFunc:
		return fmt.Sprintf("func@%#x", funcPointer(v.fnVal))
	case KindList:
		return fmt.Sprintf("%v", v.listVal)
	case KindTree:
		return v.treeVal.String()
	default:
		return "unknown"
	}
}

func funcPointer(fn any) uintptr {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return 0
	}
	return rv.Pointer()
}
