package gomap

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/borisskert/cloneutils/ir"
)

// ToIR converts a Go value to an IR node. Nil pointers, interfaces, maps
// and slices in object position are omitted from the resulting object
// unless KeepNulls is given; nils inside arrays encode as null elements.
func ToIR(v any, opts ...MapOption) (*ir.Node, error) {
	cfg := newMapConfig(opts...)
	if v == nil {
		return ir.Null(), nil
	}
	visited := make(map[uintptr]string) // pointer address -> field path
	return toIRValue(reflect.ValueOf(v), "", visited, cfg)
}

func toIRValue(val reflect.Value, fieldPath string, visited map[uintptr]string, cfg *mapConfig) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if val.IsNil() {
			return ir.Null(), nil
		}
		if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
			return marshalText(tm, fieldPath)
		}
		ptrAddr := val.Pointer()
		if prevPath, seen := visited[ptrAddr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected (previously seen at %s)", prevPath),
			}
		}
		visited[ptrAddr] = fieldPath
		node, err := toIRValue(val.Elem(), fieldPath, visited, cfg)
		delete(visited, ptrAddr)
		return node, err
	}

	if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
		return marshalText(tm, fieldPath)
	}
	if val.CanAddr() {
		if tm, ok := val.Addr().Interface().(encoding.TextMarshaler); ok {
			return marshalText(tm, fieldPath)
		}
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromInt(int64(val.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return toIRSlice(val, fieldPath, visited, cfg)

	case reflect.Map:
		return toIRMap(val, fieldPath, visited, cfg)

	case reflect.Struct:
		return toIRStruct(val, fieldPath, visited, cfg)

	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return toIRValue(val.Elem(), fieldPath, visited, cfg)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

// isEmptyValue mirrors the emptiness rule of encoding/json's omitempty.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v.IsZero()
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

func marshalText(tm encoding.TextMarshaler, fieldPath string) (*ir.Node, error) {
	text, err := tm.MarshalText()
	if err != nil {
		return nil, &MarshalError{FieldPath: fieldPath, Message: "MarshalText failed", Err: err}
	}
	return ir.FromString(string(text)), nil
}

func toIRSlice(val reflect.Value, fieldPath string, visited map[uintptr]string, cfg *mapConfig) (*ir.Node, error) {
	if val.Kind() == reflect.Slice {
		if val.IsNil() {
			return ir.Null(), nil
		}
		slicePtr := val.Pointer()
		if prevPath, seen := visited[slicePtr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected (previously seen at %s)", prevPath),
			}
		}
		visited[slicePtr] = fieldPath
		defer delete(visited, slicePtr)
	}

	length := val.Len()
	elements := make([]*ir.Node, 0, length)
	for i := 0; i < length; i++ {
		elemNode, err := toIRValue(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i), visited, cfg)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elemNode)
	}
	return ir.FromSlice(elements), nil
}

// toIRMap converts a string-keyed map to an object node with sorted keys.
func toIRMap(val reflect.Value, fieldPath string, visited map[uintptr]string, cfg *mapConfig) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}
	mapPtr := val.Pointer()
	if prevPath, seen := visited[mapPtr]; seen {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference detected (previously seen at %s)", prevPath),
		}
	}
	visited[mapPtr] = fieldPath
	defer delete(visited, mapPtr)

	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}

	irMap := make(map[string]*ir.Node, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		valuePath := key
		if fieldPath != "" {
			valuePath = fieldPath + "." + key
		}
		valueNode, err := toIRValue(iter.Value(), valuePath, visited, cfg)
		if err != nil {
			return nil, err
		}
		if valueNode.Type == ir.NullType && !cfg.keepNulls {
			continue
		}
		irMap[key] = valueNode
	}
	return ir.FromMap(irMap), nil
}

// toIRStruct converts a struct to an object node with fields in
// declaration order. Embedded structs are flattened into the parent.
func toIRStruct(val reflect.Value, fieldPath string, visited map[uintptr]string, cfg *mapConfig) (*ir.Node, error) {
	typ := val.Type()
	res := ir.Object()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		// Embedded struct types promote their exported fields even when
		// the type name itself is unexported.
		if field.Anonymous {
			if fieldVal.Kind() != reflect.Struct {
				continue
			}
			embeddedNode, err := toIRStruct(fieldVal, fieldPath, visited, cfg)
			if err != nil {
				return nil, err
			}
			for j, name := range embeddedNode.Fields {
				if res.Get(name) != nil {
					return nil, &MarshalError{
						FieldPath: fieldPath,
						Message:   fmt.Sprintf("field name conflict: embedded struct field %q conflicts with existing field", name),
					}
				}
				res.Set(name, embeddedNode.Values[j])
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
		if tag.OmitEmpty && isEmptyValue(fieldVal) {
			continue
		}
		nextPath := tag.Name
		if fieldPath != "" {
			nextPath = fieldPath + "." + tag.Name
		}
		fieldNode, err := toIRValue(fieldVal, nextPath, visited, cfg)
		if err != nil {
			return nil, err
		}
		if fieldNode.Type == ir.NullType && !cfg.keepNulls {
			continue
		}
		res.Set(tag.Name, fieldNode)
	}
	return res, nil
}
