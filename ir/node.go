// Package ir contains the intermediate tree representation used by the
// clone, patch and equality operations.
//
// A Node is a tagged variant over object, array and scalar shapes. Objects
// keep their fields in insertion order via the parallel Fields/Values
// slices; arrays use Values alone. Scalars are always leaves.
package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type Type

	// Fields holds object keys, parallel to Values. Empty for arrays,
	// whose elements live in Values directly.
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromSlice(vals []*Node) *Node {
	return &Node{Type: ArrayType, Values: vals}
}

// Object returns an empty object node. Populate it with Set to keep
// insertion order.
func Object() *Node {
	return &Node{Type: ObjectType}
}

// FromMap builds an object node with keys in sorted order, for
// deterministic output when the source carries no ordering of its own.
func FromMap(m map[string]*Node) *Node {
	res := Object()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

// ToMap returns the object's children keyed by field name, or nil if the
// node is not an object.
func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f] = node.Values[i]
	}
	return res
}

// Get returns the value of the named object field, or nil if the node is
// not an object or has no such field.
func (y *Node) Get(field string) *Node {
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set replaces the named field's value, appending the field if absent.
// No-op on non-objects.
func (y *Node) Set(field string, val *Node) {
	if y.Type != ObjectType {
		return
	}
	for i, f := range y.Fields {
		if f == field {
			y.Values[i] = val
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, val)
}

// Remove deletes the named field, reporting whether it was present.
// No-op on non-objects.
func (y *Node) Remove(field string) bool {
	if y.Type != ObjectType {
		return false
	}
	for i, f := range y.Fields {
		if f == field {
			y.Fields = slices.Delete(y.Fields, i, i+1)
			y.Values = slices.Delete(y.Values, i, i+1)
			return true
		}
	}
	return false
}

// Len returns the number of object fields or array elements.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

// Visit walks the tree depth-first, calling f before and after each
// node's children. Returning false from the pre-order call skips the
// node's children.
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
