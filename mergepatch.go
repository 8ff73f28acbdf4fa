package cloneutils

import (
	"github.com/borisskert/cloneutils/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyMergePatch applies an RFC 7386 JSON merge patch document to a deep
// copy of origin. Patch nulls delete the corresponding field, which
// decodes to the field's zero value. A nil origin short-circuits to the
// zero value.
func ApplyMergePatch[S any](origin S, patch []byte) (S, error) {
	var zero S
	if isNil(origin) {
		return zero, nil
	}
	originTree, err := encodeTree(origin, nil)
	if err != nil {
		return zero, err
	}
	originJSON, err := originTree.MarshalJSON()
	if err != nil {
		return zero, cloneErr("encode", err)
	}
	mergedJSON, err := jsonpatch.MergePatch(originJSON, patch)
	if err != nil {
		return zero, cloneErr("merge-patch", err)
	}
	mergedTree, err := ir.FromJSON(mergedJSON)
	if err != nil {
		return zero, cloneErr("merge-patch", err)
	}
	return decodeTree[S](mergedTree)
}
