package cloneutils

import "fmt"

// CloneError wraps any failure of the encode, prune, merge or decode
// steps behind a clone, patch or equality operation. These are
// deterministic in-memory transformations, so a failure on first attempt
// fails identically on every attempt; callers should treat the error as
// fatal to the operation. The originating cause is always wrapped.
type CloneError struct {
	Op  string // failing step: encode, decode, merge-patch
	Err error
}

func (e *CloneError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("clone: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("clone: %v", e.Err)
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

func cloneErr(op string, err error) error {
	return &CloneError{Op: op, Err: err}
}
