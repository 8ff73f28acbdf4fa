package gomap

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/borisskert/cloneutils/ir"
)

// FromIR converts an IR node to a Go value. v must be a non-nil pointer
// to the target. Tree fields unknown to the target type are skipped;
// null nodes set the zero value; structural mismatches yield a TypeError
// or UnmarshalError.
func FromIR(node *ir.Node, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	return fromIRValue(node, val.Elem(), "")
}

func fromIRValue(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node == nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "IR node is nil"}
	}

	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if node.Type == ir.NullType {
			if val.CanSet() {
				val.Set(reflect.Zero(typ))
			}
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		return fromIRValue(node, val.Elem(), fieldPath)
	}

	if node.Type == ir.NullType {
		if val.CanSet() {
			val.Set(reflect.Zero(typ))
		}
		return nil
	}

	// TextUnmarshaler takes precedence for string nodes, matching the
	// TextMarshaler handling on the encode side.
	if node.Type == ir.StringType && val.CanAddr() {
		if tu, ok := val.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if err := tu.UnmarshalText([]byte(node.String)); err != nil {
				return &UnmarshalError{FieldPath: fieldPath, Message: "UnmarshalText failed", Err: err}
			}
			return nil
		}
	}

	switch kind {
	case reflect.String:
		if node.Type != ir.StringType {
			return &TypeError{FieldPath: fieldPath, Expected: "String", Actual: node.Type.String()}
		}
		val.SetString(node.String)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromIRToInt(node, val, fieldPath)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromIRToUint(node, val, fieldPath)

	case reflect.Float32, reflect.Float64:
		return fromIRToFloat(node, val, fieldPath)

	case reflect.Bool:
		if node.Type != ir.BoolType {
			return &TypeError{FieldPath: fieldPath, Expected: "Bool", Actual: node.Type.String()}
		}
		val.SetBool(node.Bool)
		return nil

	case reflect.Interface:
		return fromIRToInterface(node, val, fieldPath)

	case reflect.Slice, reflect.Array:
		return fromIRToSlice(node, val, fieldPath)

	case reflect.Map:
		return fromIRToMap(node, val, fieldPath)

	case reflect.Struct:
		return fromIRToStruct(node, val, fieldPath)

	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

func fromIRToInt(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.NumberType {
		return &TypeError{FieldPath: fieldPath, Expected: "Number", Actual: node.Type.String()}
	}
	var i int64
	switch {
	case node.Int64 != nil:
		i = *node.Int64
	case node.Float64 != nil:
		f := *node.Float64
		i = int64(f)
		if float64(i) != f {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot store %v in %s without loss", f, val.Type()),
			}
		}
	default:
		return &UnmarshalError{FieldPath: fieldPath, Message: "number node has no value"}
	}
	if val.OverflowInt(i) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", i, val.Type()),
		}
	}
	val.SetInt(i)
	return nil
}

func fromIRToUint(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.NumberType {
		return &TypeError{FieldPath: fieldPath, Expected: "Number", Actual: node.Type.String()}
	}
	var i int64
	switch {
	case node.Int64 != nil:
		i = *node.Int64
	case node.Float64 != nil:
		f := *node.Float64
		i = int64(f)
		if float64(i) != f {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot store %v in %s without loss", f, val.Type()),
			}
		}
	default:
		return &UnmarshalError{FieldPath: fieldPath, Message: "number node has no value"}
	}
	if i < 0 {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("cannot store negative value %d in %s", i, val.Type()),
		}
	}
	u := uint64(i)
	if val.OverflowUint(u) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", u, val.Type()),
		}
	}
	val.SetUint(u)
	return nil
}

func fromIRToFloat(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.NumberType {
		return &TypeError{FieldPath: fieldPath, Expected: "Number", Actual: node.Type.String()}
	}
	var f float64
	switch {
	case node.Float64 != nil:
		f = *node.Float64
	case node.Int64 != nil:
		f = float64(*node.Int64)
	default:
		return &UnmarshalError{FieldPath: fieldPath, Message: "number node has no value"}
	}
	if val.OverflowFloat(f) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %v overflows %s", f, val.Type()),
		}
	}
	val.SetFloat(f)
	return nil
}

func fromIRToInterface(node *ir.Node, val reflect.Value, fieldPath string) error {
	if val.NumMethod() != 0 {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("cannot unmarshal into non-empty interface %s", val.Type()),
		}
	}
	val.Set(reflect.ValueOf(node.Value()))
	return nil
}

func fromIRToSlice(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ArrayType {
		return &TypeError{FieldPath: fieldPath, Expected: "Array", Actual: node.Type.String()}
	}
	n := len(node.Values)
	if val.Kind() == reflect.Array {
		if n > val.Len() {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("array of length %d cannot hold %d elements", val.Len(), n),
			}
		}
	} else {
		val.Set(reflect.MakeSlice(val.Type(), n, n))
	}
	for i := 0; i < n; i++ {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		if err := fromIRValue(node.Values[i], val.Index(i), elemPath); err != nil {
			return err
		}
	}
	return nil
}

func fromIRToMap(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		return &TypeError{FieldPath: fieldPath, Expected: "Object", Actual: node.Type.String()}
	}
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", typ.Key()),
		}
	}
	if val.IsNil() {
		val.Set(reflect.MakeMapWithSize(typ, len(node.Fields)))
	}
	elemType := typ.Elem()
	for i, key := range node.Fields {
		elemPath := key
		if fieldPath != "" {
			elemPath = fieldPath + "." + key
		}
		elemVal := reflect.New(elemType).Elem()
		if err := fromIRValue(node.Values[i], elemVal, elemPath); err != nil {
			return err
		}
		val.SetMapIndex(reflect.ValueOf(key).Convert(typ.Key()), elemVal)
	}
	return nil
}

func fromIRToStruct(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		return &TypeError{FieldPath: fieldPath, Expected: "Object", Actual: node.Type.String()}
	}

	fieldIndex := structFieldIndex(val.Type())

	for i, name := range node.Fields {
		index, found := fieldIndex[name]
		if !found {
			// Unknown to the target type, skip.
			continue
		}
		fieldVal := val.FieldByIndex(index)
		if !fieldVal.IsValid() {
			continue
		}
		nextPath := name
		if fieldPath != "" {
			nextPath = fieldPath + "." + name
		}
		if err := fromIRValue(node.Values[i], fieldVal, nextPath); err != nil {
			return err
		}
	}
	return nil
}

// structFieldIndex maps wire names to struct field index paths, honoring
// json tag renames and flattening embedded structs.
func structFieldIndex(typ reflect.Type) map[string][]int {
	res := make(map[string][]int, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		// Embedded struct types promote their exported fields even when
		// the type name itself is unexported.
		if field.Anonymous {
			if field.Type.Kind() != reflect.Struct {
				continue
			}
			for name, sub := range structFieldIndex(field.Type) {
				if _, exists := res[name]; exists {
					continue
				}
				res[name] = append(append([]int{}, field.Index...), sub...)
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		tag := parseFieldTag(field)
		if tag.Omit {
			continue
		}
		res[tag.Name] = field.Index
	}
	return res
}
