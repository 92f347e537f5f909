package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType: "Object",
		ArrayType:  "Array",
		StringType: "String",
		NumberType: "Number",
		BoolType:   "Bool",
		NullType:   "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Number": NumberType,
		"String": StringType,
		"Array":  ArrayType,
		"Object": ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		NumberType,
		StringType,
		BoolType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// Kind is the shape of a node as seen by readers: a map, a sequence, a
// scalar or nothing at all.
type Kind int

const (
	NullKind Kind = iota
	ScalarKind
	SequenceKind
	MapKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case ScalarKind:
		return "scalar"
	case SequenceKind:
		return "sequence"
	case MapKind:
		return "map"
	}
	return "<unknown kind>"
}

// Kind reports the shape of y. A nil node is NullKind.
func (y *Node) Kind() Kind {
	if y == nil {
		return NullKind
	}
	switch y.Type {
	case ObjectType:
		return MapKind
	case ArrayType:
		return SequenceKind
	case NumberType, StringType, BoolType:
		return ScalarKind
	default:
		return NullKind
	}
}
