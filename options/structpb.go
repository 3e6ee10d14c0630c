package options

import (
	"math"

	"github.com/jaxgl/jax/jaxerr"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct encodes t as a google.protobuf.Struct so option trees can travel
// inside proto messages. Callbacks cannot cross the wire and are encoded as
// null. Integers are carried as doubles, as the Struct wire format requires.
func ToStruct(t Tree) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(t.native(false))
	if err != nil {
		return nil, jaxerr.New("options", "ToStruct", jaxerr.CodeInvalidOptions, "failed to encode options").
			WithCause(err)
	}
	return s, nil
}

// FromStruct decodes a google.protobuf.Struct. Integral numbers that fit in
// an int64 decode as Int, all others as Float. A nil Struct yields an empty
// tree.
func FromStruct(s *structpb.Struct) Tree {
	t := make(Tree, len(s.GetFields()))
	for k, v := range s.GetFields() {
		t[k] = fromProtoValue(v)
	}
	return t
}

func fromProtoValue(v *structpb.Value) Value {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return Bool(kind.BoolValue)
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n == math.Trunc(n) && n >= math.MinInt64 && n < math.MaxInt64 {
			return Int(int64(n))
		}
		return Float(n)
	case *structpb.Value_StringValue:
		return String(kind.StringValue)
	case *structpb.Value_ListValue:
		values := kind.ListValue.GetValues()
		list := make([]Value, len(values))
		for i, elem := range values {
			list[i] = fromProtoValue(elem)
		}
		return List(list...)
	case *structpb.Value_StructValue:
		return Sub(FromStruct(kind.StructValue))
	default:
		return Null()
	}
}
