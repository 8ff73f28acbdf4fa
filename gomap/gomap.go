// Package gomap converts between Go values and ir.Node trees using
// reflection.
//
// ToIR serializes a value into a tree, omitting nil object fields (the
// non-null encoding mode). FromIR deserializes a tree into a typed value,
// skipping tree fields the target type does not know (the tolerant
// decoding mode). Both modes are fixed, process-wide behavior; every call
// builds and discards its own tree, so concurrent use needs no locking.
//
// Field naming follows `json` struct tags: renames apply, `json:"-"`
// omits the field, and "omitempty" drops zero-valued fields on encode.
// Only exported struct fields are processed; embedded struct types
// promote their exported fields into the parent object regardless of the
// embedded type name's case.
package gomap
