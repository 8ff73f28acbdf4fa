package ir

import (
	"testing"
)

func TestObjectSetGetRemove(t *testing.T) {
	obj := Object()
	obj.Set("a", FromInt(1))
	obj.Set("b", FromString("x"))
	obj.Set("c", FromBool(true))

	if got := obj.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if got := obj.Get("b"); got == nil || got.String != "x" {
		t.Errorf("Get(b) = %v, want string x", got)
	}
	if got := obj.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}

	// Set on an existing key replaces in place without reordering.
	obj.Set("a", FromInt(2))
	if got := obj.Fields[0]; got != "a" {
		t.Errorf("Fields[0] = %q, want a", got)
	}
	if got := obj.Get("a"); *got.Int64 != 2 {
		t.Errorf("Get(a) = %d, want 2", *got.Int64)
	}

	if !obj.Remove("b") {
		t.Error("Remove(b) = false, want true")
	}
	if obj.Remove("b") {
		t.Error("Remove(b) twice = true, want false")
	}
	if got := obj.Len(); got != 2 {
		t.Errorf("Len() after remove = %d, want 2", got)
	}
	if got := obj.Fields; got[0] != "a" || got[1] != "c" {
		t.Errorf("Fields after remove = %v, want [a c]", got)
	}
}

func TestObjectOpsOnNonObject(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(1)})
	if got := arr.Get("a"); got != nil {
		t.Errorf("Get on array = %v, want nil", got)
	}
	arr.Set("a", FromInt(1))
	if len(arr.Fields) != 0 {
		t.Error("Set on array must be a no-op")
	}
	if arr.Remove("a") {
		t.Error("Remove on array = true, want false")
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	obj := Object()
	for _, key := range []string{"z", "a", "m"} {
		obj.Set(key, Null())
	}
	want := []string{"z", "a", "m"}
	for i, f := range obj.Fields {
		if f != want[i] {
			t.Fatalf("Fields = %v, want %v", obj.Fields, want)
		}
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	obj := FromMap(map[string]*Node{"b": FromInt(2), "a": FromInt(1)})
	if obj.Fields[0] != "a" || obj.Fields[1] != "b" {
		t.Errorf("Fields = %v, want [a b]", obj.Fields)
	}
}

func TestClone(t *testing.T) {
	obj := Object()
	obj.Set("name", FromString("alice"))
	obj.Set("tags", FromSlice([]*Node{FromString("x"), FromString("y")}))
	nested := Object()
	nested.Set("city", FromString("Berlin"))
	obj.Set("address", nested)

	clone := obj.Clone()
	if !Equal(obj, clone) {
		t.Fatal("clone is not equal to original")
	}

	// Mutating the clone must not affect the original.
	clone.Get("address").Set("city", FromString("Hamburg"))
	clone.Get("tags").Values[0] = FromString("z")
	if got := obj.Get("address").Get("city").String; got != "Berlin" {
		t.Errorf("original city = %q after clone mutation, want Berlin", got)
	}
	if got := obj.Get("tags").Values[0].String; got != "x" {
		t.Errorf("original tags[0] = %q after clone mutation, want x", got)
	}
}

func TestVisit(t *testing.T) {
	obj := Object()
	obj.Set("a", FromInt(1))
	obj.Set("b", FromSlice([]*Node{FromInt(2), FromInt(3)}))

	var count int
	err := obj.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root + a + b + two array elements
	if count != 5 {
		t.Errorf("visited %d nodes, want 5", count)
	}
}
