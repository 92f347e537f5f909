package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

// Clone returns a deep copy of y detached from any parent.
func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{}
	y.CloneTo(res)
	res.Parent = nil
	res.ParentIndex = 0
	res.ParentField = ""
	return res
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Fields[i] = dstI
	}

	dst.String = y.String
	dst.Number = y.Number
	dst.Float64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Int64 = nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber builds a number node from literal text, keeping the text as
// written. Text that is neither an int64 nor a float64 is kept in Number only.
func FromNumber(text string) *Node {
	res := &Node{Type: NumberType, Number: text}
	if i, err := parseInt(text, 64); err == nil {
		res.Int64 = &i
		return res
	}
	if f, err := parseFloat(text, 64); err == nil {
		res.Float64 = &f
	}
	return res
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds an object from a Go map with its keys sorted.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: FromString(key), Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds an object preserving the order of kvs. A nil Key is a
// merge key and a nil Val is null.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = Null()
		}
		if kv.Val == nil {
			kv.Val = Null()
		}
		field := ""
		if s, ok := kv.Key.KeyString(); ok {
			field = s
		}
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		kv.Key.ParentField = field
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = field
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		if y == nil {
			y = Null()
		}
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

// KeyString returns the text of y when y is usable as a plain object key:
// a string or an integer. Merge keys and complex keys report false.
func (y *Node) KeyString() (string, bool) {
	if y == nil {
		return "", false
	}
	switch y.Type {
	case StringType:
		return y.String, true
	case NumberType:
		if y.Int64 == nil {
			return "", false
		}
		return y.Text(), true
	}
	return "", false
}

// Get returns the value under the plain key field of object y, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i, yf := range y.Fields {
		if s, ok := yf.KeyString(); ok && s == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Get(field string) *Node {
	return Get(y, field)
}

func (y *Node) Has(field string) bool {
	return Get(y, field) != nil
}

// Keys returns the plain keys of object y in document order. It reports false
// when y is not an object.
func (y *Node) Keys() ([]string, bool) {
	if y.Kind() != MapKind {
		return nil, false
	}
	res := make([]string, 0, len(y.Fields))
	for _, yf := range y.Fields {
		if s, ok := yf.KeyString(); ok {
			res = append(res, s)
		}
	}
	return res, true
}

// Len is the number of entries of an object or array, 0 otherwise.
func (y *Node) Len() int {
	switch y.Kind() {
	case MapKind, SequenceKind:
		return len(y.Values)
	}
	return 0
}

func (y *Node) IsEmptyMap() bool {
	return y.Kind() == MapKind && len(y.Values) == 0
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
