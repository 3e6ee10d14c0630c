package options

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/jaxgl/jax/jaxerr"
)

// FromNative builds a Tree from a plain Go map, as produced by JSON or YAML
// decoders or written inline by callers.
//
// Integers become Int, floats Float, functions Func, slices and arrays List,
// maps with string keys Tree, time.Time an RFC 3339 String, and nil Null.
// Values that are already a Value or a Tree are deep-copied. Any other Go kind
// is rejected with an error matching jaxerr.ErrInvalidOptions.
func FromNative(m map[string]any) (Tree, error) {
	if m == nil {
		return Tree{}, nil
	}
	t := make(Tree, len(m))
	for k, raw := range m {
		v, err := fromNative(raw, k)
		if err != nil {
			return nil, err
		}
		t[k] = v
	}
	return t, nil
}

// MustFromNative is FromNative that panics on error. It is intended for
// package-level defaults declared as literals.
func MustFromNative(m map[string]any) Tree {
	t, err := FromNative(m)
	if err != nil {
		panic(err)
	}
	return t
}

// ValueOf converts a single Go value using the FromNative rules.
func ValueOf(raw any) (Value, error) {
	return fromNative(raw, "")
}

func fromNative(raw any, path string) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v.Clone(), nil
	case Tree:
		return Sub(v.Clone()), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case float64:
		return Float(v), nil
	case time.Time:
		return String(v.Format(time.RFC3339Nano)), nil
	case map[string]any:
		sub := make(Tree, len(v))
		for k, elem := range v {
			ev, err := fromNative(elem, joinPath(path, k))
			if err != nil {
				return Value{}, err
			}
			sub[k] = ev
		}
		return Sub(sub), nil
	case []any:
		list := make([]Value, len(v))
		for i, elem := range v {
			ev, err := fromNative(elem, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return Value{}, err
			}
			list[i] = ev
		}
		return List(list...), nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Value{}, invalidValue(path, fmt.Sprintf("unsigned value %d overflows int64", u))
		}
		return Int(int64(u)), nil
	case reflect.Float32:
		return Float(rv.Float()), nil
	case reflect.Int, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Func:
		return Func(raw), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		list := make([]Value, rv.Len())
		for i := range list {
			ev, err := fromNative(rv.Index(i).Interface(), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return Value{}, err
			}
			list[i] = ev
		}
		return List(list...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, invalidValue(path, fmt.Sprintf("map key type %s is not string", rv.Type().Key()))
		}
		sub := make(Tree, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			ev, err := fromNative(iter.Value().Interface(), joinPath(path, key))
			if err != nil {
				return Value{}, err
			}
			sub[key] = ev
		}
		return Sub(sub), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromNative(rv.Elem().Interface(), path)
	}

	return Value{}, invalidValue(path, fmt.Sprintf("unsupported type %T", raw))
}

func invalidValue(path, msg string) error {
	return jaxerr.New("options", "FromNative", jaxerr.CodeInvalidOptions, msg).
		WithDetails(map[string]any{"path": path})
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// Native converts t back to plain Go values: map[string]any, []any, int64,
// float64, string, bool, nil, and the original callbacks.
func (t Tree) Native() map[string]any {
	return t.native(true)
}

// Native converts v to a plain Go value using the Tree.Native rules.
func (v Value) Native() any {
	return v.native(true)
}

func (t Tree) native(keepFuncs bool) map[string]any {
	m := make(map[string]any, len(t))
	for k, v := range t {
		m[k] = v.native(keepFuncs)
	}
	return m
}

// native drops callbacks to nil when keepFuncs is false, for encoders and
// evaluators that cannot carry them.
func (v Value) native(keepFuncs bool) any {
	switch v.kind {
	case KindBool:
		return v.boolVal
	case KindInt:
		return v.intVal
	case KindFloat:
		return v.floatVal
	case KindString:
		return v.strVal
	case KindFunc:
		if keepFuncs {
			return v.fnVal
		}
		return nil
	case KindList:
		out := make([]any, len(v.listVal))
		for i, elem := range v.listVal {
			out[i] = elem.native(keepFuncs)
		}
		return out
	case KindTree:
		return v.treeVal.native(keepFuncs)
	default:
		return nil
	}
}
