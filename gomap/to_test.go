package gomap

import (
	"errors"
	"strings"
	"testing"

	"github.com/borisskert/cloneutils/ir"
)

type testAddress struct {
	City string `json:"city"`
	Zip  string `json:"zip"`
}

type testPerson struct {
	Name    string            `json:"name"`
	Age     int               `json:"age"`
	Email   *string           `json:"email"`
	Address *testAddress      `json:"address"`
	Tags    []string          `json:"tags"`
	Extra   map[string]string `json:"extra"`
	hidden  string
	Skipped string `json:"-"`
}

func TestToIR_BasicTypes(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want *ir.Node
	}{
		{"string", "hello", ir.FromString("hello")},
		{"int", 42, ir.FromInt(42)},
		{"int64", int64(7), ir.FromInt(7)},
		{"uint", uint(3), ir.FromInt(3)},
		{"float64", 1.5, ir.FromFloat(1.5)},
		{"bool", true, ir.FromBool(true)},
		{"nil", nil, ir.Null()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToIR(tt.v)
			if err != nil {
				t.Fatalf("ToIR: %v", err)
			}
			if !ir.Equal(got, tt.want) {
				t.Errorf("ToIR(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestToIR_StructFieldOrderAndTags(t *testing.T) {
	email := "a@example.com"
	p := testPerson{
		Name:    "alice",
		Age:     30,
		Email:   &email,
		Tags:    []string{"x"},
		hidden:  "no",
		Skipped: "no",
	}
	node, err := ToIR(p)
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("node type = %s, want Object", node.Type)
	}
	// Declaration order, tag names, nil Address/Extra omitted,
	// unexported and json:"-" fields dropped.
	want := []string{"name", "age", "email", "tags"}
	if len(node.Fields) != len(want) {
		t.Fatalf("fields = %v, want %v", node.Fields, want)
	}
	for i, f := range want {
		if node.Fields[i] != f {
			t.Fatalf("fields = %v, want %v", node.Fields, want)
		}
	}
	if got := node.Get("email").String; got != email {
		t.Errorf("email = %q, want %q", got, email)
	}
}

func TestToIR_NilFieldsOmitted(t *testing.T) {
	node, err := ToIR(testPerson{Name: "bob"})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"email", "address", "tags", "extra"} {
		if node.Get(f) != nil {
			t.Errorf("nil field %q was encoded, want omitted", f)
		}
	}
	// Zero values of non-nilable kinds stay.
	if node.Get("age") == nil {
		t.Error("zero int field omitted, want encoded as 0")
	}
}

func TestToIR_KeepNulls(t *testing.T) {
	node, err := ToIR(testPerson{Name: "bob"}, KeepNulls())
	if err != nil {
		t.Fatal(err)
	}
	email := node.Get("email")
	if email == nil || email.Type != ir.NullType {
		t.Errorf("email = %v, want explicit null", email)
	}
}

func TestToIR_MapKeysSorted(t *testing.T) {
	node, err := ToIR(map[string]int{"b": 2, "a": 1, "c": 3})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c"}
	for i, f := range want {
		if node.Fields[i] != f {
			t.Fatalf("fields = %v, want %v", node.Fields, want)
		}
	}
}

func TestToIR_OmitEmpty(t *testing.T) {
	type entry struct {
		Name  string   `json:"name,omitempty"`
		Count int      `json:"count,omitempty"`
		OK    bool     `json:"ok,omitempty"`
		Tags  []string `json:"tags,omitempty"`
		Plain string   `json:"plain"`
	}

	t.Run("zero values omitted", func(t *testing.T) {
		node, err := ToIR(entry{})
		if err != nil {
			t.Fatal(err)
		}
		for _, f := range []string{"name", "count", "ok", "tags"} {
			if got := node.Get(f); got != nil {
				t.Errorf("zero field %q = %v, want omitted", f, got)
			}
		}
		// Untagged zero values still encode.
		if got := node.Get("plain"); got == nil || got.String != "" {
			t.Errorf("plain = %v, want empty string node", got)
		}
	})

	t.Run("set values kept", func(t *testing.T) {
		node, err := ToIR(entry{Name: "n", Count: 1, OK: true, Tags: []string{"t"}})
		if err != nil {
			t.Fatal(err)
		}
		for _, f := range []string{"name", "count", "ok", "tags"} {
			if node.Get(f) == nil {
				t.Errorf("set field %q omitted", f)
			}
		}
	})
}

func TestToIR_NestedAndEmbedded(t *testing.T) {
	type base struct {
		ID string `json:"id"`
	}
	type wrapper struct {
		base
		Name string `json:"name"`
	}
	node, err := ToIR(wrapper{base: base{ID: "1"}, Name: "n"})
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Get("id"); got == nil || got.String != "1" {
		t.Errorf("embedded field id = %v, want \"1\"", got)
	}
	if got := node.Get("name"); got == nil || got.String != "n" {
		t.Errorf("name = %v, want \"n\"", got)
	}
}

type upperText string

func (u upperText) MarshalText() ([]byte, error) {
	return []byte(strings.ToUpper(string(u))), nil
}

func TestToIR_TextMarshaler(t *testing.T) {
	node, err := ToIR(upperText("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.StringType || node.String != "ABC" {
		t.Errorf("node = %v, want string ABC", node)
	}
}

func TestToIR_CircularReference(t *testing.T) {
	type ring struct {
		Next *ring `json:"next"`
	}
	r := &ring{}
	r.Next = r
	_, err := ToIR(r)
	if err == nil {
		t.Fatal("expected circular reference error")
	}
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Errorf("error type = %T, want *MarshalError", err)
	}
}

func TestToIR_UnsupportedMapKeys(t *testing.T) {
	_, err := ToIR(map[int]string{1: "a"})
	if err == nil {
		t.Fatal("expected error for int map keys")
	}
}
