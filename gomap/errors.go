package gomap

import "fmt"

// MarshalError represents an error during conversion to IR.
type MarshalError struct {
	FieldPath string // field path (e.g., "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error during conversion from IR.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// TypeError represents a structural mismatch between a tree node and the
// declared Go type.
type TypeError struct {
	FieldPath string
	Expected  string
	Actual    string
}

func (e *TypeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: expected %s, got %s", e.FieldPath, e.Expected, e.Actual)
	}
	return fmt.Sprintf("type error: expected %s, got %s", e.Expected, e.Actual)
}
