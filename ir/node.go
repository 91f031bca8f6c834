package ir

import (
	"slices"
)

// Node is one cell of a backing store tree. Values are placed in fields
// depending on Type: objects keep their keys in Fields and the matching
// values in Values, arrays keep their items in Values.
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

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := yv.CloneTo(&Node{})
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := yf.CloneTo(&Node{})
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

// Assign replaces the content of y with the content of o while keeping y's
// position in its tree, so that every holder of y observes the change.
func (y *Node) Assign(o *Node) {
	parent, idx, field := y.Parent, y.ParentIndex, y.ParentField
	o.CloneTo(y)
	y.Parent, y.ParentIndex, y.ParentField = parent, idx, field
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
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

// FromNumber holds a number literal which fits neither int64 nor float64.
func FromNumber(lit string) *Node {
	return &Node{Type: NumberType, Number: lit}
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

// Object returns an empty object node.
func Object() *Node {
	return &Node{Type: ObjectType}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, 0, len(ySlice)),
	}
	for _, y := range ySlice {
		res.Append(y)
	}
	return res
}

// Get returns the value stored under field in object y, or nil.
func Get(y *Node, field string) *Node {
	i := y.FieldIndex(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// FieldIndex returns the position of field in object y, or -1.
func (y *Node) FieldIndex(field string) int {
	if y == nil || y.Type != ObjectType {
		return -1
	}
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// Has reports whether object y has the literal key field, whatever the
// value stored under it.
func (y *Node) Has(field string) bool {
	return y.FieldIndex(field) != -1
}

// Keys returns the keys of object y in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

// Set stores v under field in object y, replacing an existing value in
// place or appending a new field.
func (y *Node) Set(field string, v *Node) {
	if y.Type != ObjectType {
		panic("ir: Set on " + y.Type.String())
	}
	i := y.FieldIndex(field)
	if i == -1 {
		i = len(y.Fields)
		y.Fields = append(y.Fields, &Node{
			Type:        StringType,
			String:      field,
			Parent:      y,
			ParentIndex: i,
			ParentField: field,
		})
		y.Values = append(y.Values, v)
	} else {
		y.Values[i] = v
	}
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = field
}

// Delete removes field from object y and reports whether it was present.
func (y *Node) Delete(field string) bool {
	i := y.FieldIndex(field)
	if i == -1 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	for j := i; j < len(y.Values); j++ {
		y.Fields[j].ParentIndex = j
		y.Values[j].ParentIndex = j
	}
	return true
}

// Append adds v at the end of array y.
func (y *Node) Append(v *Node) {
	if y.Type != ArrayType {
		panic("ir: Append on " + y.Type.String())
	}
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = ""
	y.Values = append(y.Values, v)
}

// RemoveAt removes the i'th item of array y.
func (y *Node) RemoveAt(i int) {
	y.Values = slices.Delete(y.Values, i, i+1)
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
}
