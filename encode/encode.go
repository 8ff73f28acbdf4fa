// Package encode renders ir trees as indented, human-readable text for
// diagnostics: debug traces, diff output and test failure messages.
package encode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/borisskert/cloneutils/ir"
)

type EncState struct {
	depth, indent int

	colors *Colors
}

type EncodeOption func(*EncState)

func WithIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func WithColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// MustString renders node to a string, panicking on write errors, which
// cannot occur on the in-memory buffer.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	var buf bytes.Buffer
	if err := Encode(node, &buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return writeScalar(w, es, ir.NullType, "null")
	}
	switch node.Type {
	case ir.NullType:
		return writeScalar(w, es, ir.NullType, "null")
	case ir.BoolType:
		return writeScalar(w, es, ir.BoolType, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		return writeScalar(w, es, ir.NumberType, numberString(node))
	case ir.StringType:
		return writeScalar(w, es, ir.StringType, strconv.Quote(node.String))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	}
	return fmt.Errorf("cannot encode node type %s", node.Type)
}

func numberString(node *ir.Node) string {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return "0"
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, es.color(SepColor, ir.ArrayType, "[]"))
	}
	if err := writeString(w, es.color(SepColor, ir.ArrayType, "[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, es.color(SepColor, ir.ArrayType, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(SepColor, ir.ArrayType, "]"))
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, es.color(SepColor, ir.ObjectType, "{}"))
	}
	if err := writeString(w, es.color(SepColor, ir.ObjectType, "{")); err != nil {
		return err
	}
	es.depth++
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeString(w, es.color(SepColor, ir.ObjectType, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeString(w, es.color(FieldColor, ir.ObjectType, fieldString(f))); err != nil {
			return err
		}
		if err := writeString(w, es.color(SepColor, ir.ObjectType, ": ")); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(SepColor, ir.ObjectType, "}"))
}

// fieldString leaves bare the field names that read unambiguously and
// quotes the rest, notably names containing dots.
func fieldString(f string) string {
	if f == "" || strings.ContainsAny(f, ".:,\"'[]{} \t\n") {
		return strconv.Quote(f)
	}
	return f
}

func writeScalar(w io.Writer, es *EncState, t ir.Type, s string) error {
	return writeString(w, es.color(ValueColor, t, s))
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
