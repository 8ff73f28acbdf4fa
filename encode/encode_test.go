package encode

import (
	"strings"
	"testing"

	"github.com/borisskert/cloneutils/ir"

	"github.com/fatih/color"
)

func TestMustString(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{
			name: "null",
			node: ir.Null(),
			want: "null\n",
		},
		{
			name: "nil node renders as null",
			node: nil,
			want: "null\n",
		},
		{
			name: "bool",
			node: ir.FromBool(true),
			want: "true\n",
		},
		{
			name: "integer",
			node: ir.FromInt(42),
			want: "42\n",
		},
		{
			name: "float",
			node: ir.FromFloat(1.5),
			want: "1.5\n",
		},
		{
			name: "string",
			node: ir.FromString("hi"),
			want: "\"hi\"\n",
		},
		{
			name: "empty object",
			node: ir.Object(),
			want: "{}\n",
		},
		{
			name: "empty array",
			node: ir.FromSlice(nil),
			want: "[]\n",
		},
		{
			name: "array",
			node: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}),
			want: "[\n  1,\n  2\n]\n",
		},
		{
			name: "object keeps field order",
			node: func() *ir.Node {
				o := ir.Object()
				o.Set("z", ir.FromInt(1))
				o.Set("a", ir.FromString("x"))
				return o
			}(),
			want: "{\n  z: 1,\n  a: \"x\"\n}\n",
		},
		{
			name: "dotted field name quoted",
			node: func() *ir.Node {
				o := ir.Object()
				o.Set("a.b", ir.FromInt(1))
				return o
			}(),
			want: "{\n  \"a.b\": 1\n}\n",
		},
		{
			name: "nested",
			node: func() *ir.Node {
				inner := ir.Object()
				inner.Set("b", ir.Null())
				o := ir.Object()
				o.Set("a", inner)
				return o
			}(),
			want: "{\n  a: {\n    b: null\n  }\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustString(tt.node)
			if got != tt.want {
				t.Errorf("MustString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeIndentOption(t *testing.T) {
	o := ir.Object()
	o.Set("a", ir.FromInt(1))
	got := MustString(o, WithIndent(4))
	want := "{\n    a: 1\n}\n"
	if got != want {
		t.Errorf("MustString(WithIndent(4)) = %q, want %q", got, want)
	}
}

func TestEncodeWithColors(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	o := ir.Object()
	o.Set("a", ir.FromInt(1))
	got := MustString(o, WithColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("colored output carries no escape sequences: %q", got)
	}
}
