package gomap

import (
	"reflect"
	"strings"
)

// fieldTag holds the parts of a `json` struct tag relevant to mapping.
type fieldTag struct {
	Name      string
	Omit      bool
	OmitEmpty bool
}

// parseFieldTag resolves the wire name of a struct field from its `json`
// tag, defaulting to the Go field name. A bare "-" omits the field; the
// literal field name "-" is spelled `json:"-,"`. The "omitempty" option
// drops zero-valued fields on encode.
func parseFieldTag(field reflect.StructField) fieldTag {
	res := fieldTag{Name: field.Name}
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return res
	}
	if tag == "-" {
		res.Omit = true
		return res
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name != "" {
		res.Name = name
	}
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == "omitempty" {
			res.OmitEmpty = true
		}
	}
	return res
}
