// Package cloneutils implements deep cloning, selective patching and deep
// equality of Go values over an intermediate tree representation.
//
// Every operation encodes its inputs into an ir tree with nil fields
// omitted, optionally prunes properties named by dotted paths
// ("address.city"), merges patch trees over origin trees, and decodes the
// result back into a concrete type, tolerating tree fields the target
// type does not know. Trees are built and discarded per call, so all
// operations are safe for concurrent use.
//
// A nil source value short-circuits to the zero value with no error.
// Missing excluded or filtered paths are silently ignored. All other
// failures surface as a *CloneError wrapping the cause.
package cloneutils

import (
	"reflect"

	"github.com/borisskert/cloneutils/gomap"
	"github.com/borisskert/cloneutils/ir"
)

// DeepClone returns a deep copy of obj, omitting the properties named by
// ignoredProperties. The clone shares no mutable state with obj.
func DeepClone[T any](obj T, ignoredProperties ...string) (T, error) {
	var zero T
	if isNil(obj) {
		return zero, nil
	}
	tree, err := encodeTree(obj, ignoredProperties)
	if err != nil {
		return zero, err
	}
	return decodeTree[T](tree)
}

// DeepCloneAs deep-copies obj into a new value of type C, omitting the
// properties named by ignoredProperties. Fields of obj unknown to C are
// dropped.
func DeepCloneAs[C any](obj any, ignoredProperties ...string) (C, error) {
	var zero C
	if isNil(obj) {
		return zero, nil
	}
	tree, err := encodeTree(obj, ignoredProperties)
	if err != nil {
		return zero, err
	}
	return decodeTree[C](tree)
}

// DeepPatch overlays patch onto a deep copy of origin. The patch's set
// fields override origin's; object fields merge recursively while array
// fields replace origin's arrays wholesale. ignoredProperties are removed
// from the patch before merging. A nil patch leaves origin unchanged.
func DeepPatch[S any](origin S, patch any, ignoredProperties ...string) (S, error) {
	var zero S
	if isNil(origin) {
		return zero, nil
	}
	tree, err := mergeTrees(origin, patch, ignoredProperties)
	if err != nil {
		return zero, err
	}
	return decodeTree[S](tree)
}

// DeepPatchAs is DeepPatch decoding into type C instead of origin's type.
func DeepPatchAs[C any](origin, patch any, ignoredProperties ...string) (C, error) {
	var zero C
	if isNil(origin) {
		return zero, nil
	}
	tree, err := mergeTrees(origin, patch, ignoredProperties)
	if err != nil {
		return zero, err
	}
	return decodeTree[C](tree)
}

// Patch overlays patch onto a deep copy of origin, removing
// ignoredProperties from the patch tree before the merge so excluded
// patch fields never influence the origin. It is equivalent to DeepPatch:
// both prune the encoded patch tree first, which subsumes a separate
// exclusion-aware clone of the patch value.
func Patch[S any](origin S, patch any, ignoredProperties ...string) (S, error) {
	return DeepPatch(origin, patch, ignoredProperties...)
}

// PatchAs is Patch decoding into type C instead of origin's type.
func PatchAs[C any](origin, patch any, ignoredProperties ...string) (C, error) {
	return DeepPatchAs[C](origin, patch, ignoredProperties...)
}

// DeepPatchFieldsOnly overlays exactly onlyTheseFields of patch onto a
// deep copy of origin. Listed fields the patch does not carry merge as
// explicit nulls, clearing the origin's field; unlisted origin fields are
// preserved. Field names match direct top-level keys only.
func DeepPatchFieldsOnly[S any](origin S, patch any, onlyTheseFields ...string) (S, error) {
	var zero S
	if isNil(origin) {
		return zero, nil
	}
	tree, err := mergeFilteredTrees(origin, patch, onlyTheseFields)
	if err != nil {
		return zero, err
	}
	return decodeTree[S](tree)
}

// DeepPatchFieldsOnlyAs is DeepPatchFieldsOnly decoding into type C.
func DeepPatchFieldsOnlyAs[C any](origin, patch any, onlyTheseFields ...string) (C, error) {
	var zero C
	if isNil(origin) {
		return zero, nil
	}
	tree, err := mergeFilteredTrees(origin, patch, onlyTheseFields)
	if err != nil {
		return zero, err
	}
	return decodeTree[C](tree)
}

// DeepEquals reports whether a and b encode to structurally equal trees
// after removing ignoredProperties from both. Object key order is
// irrelevant; array element order is not.
func DeepEquals(a, b any, ignoredProperties ...string) (bool, error) {
	aTree, err := encodeTree(a, ignoredProperties)
	if err != nil {
		return false, err
	}
	bTree, err := encodeTree(b, ignoredProperties)
	if err != nil {
		return false, err
	}
	return ir.Equal(aTree, bTree), nil
}

// encodeTree serializes v with nulls omitted, then applies the pruner.
func encodeTree(v any, ignored []string) (*ir.Node, error) {
	node, err := gomap.ToIR(v)
	if err != nil {
		return nil, cloneErr("encode", err)
	}
	Prune(node, ignored...)
	return node, nil
}

// encodeFiltered serializes v and keeps only the allowed top-level keys,
// with explicit nulls for requested keys v does not carry.
func encodeFiltered(v any, allowed []string) (*ir.Node, error) {
	node, err := gomap.ToIR(v)
	if err != nil {
		return nil, cloneErr("encode", err)
	}
	res := ir.Object()
	for _, key := range allowed {
		child := node.Get(key)
		if child == nil {
			res.Set(key, ir.Null())
			continue
		}
		res.Set(key, child.Clone())
	}
	return res, nil
}

func mergeTrees(origin, patch any, ignored []string) (*ir.Node, error) {
	originTree, err := encodeTree(origin, nil)
	if err != nil {
		return nil, err
	}
	patchTree, err := encodeTree(patch, ignored)
	if err != nil {
		return nil, err
	}
	if patchTree.Type == ir.NullType {
		return originTree, nil
	}
	Merge(originTree, patchTree)
	return originTree, nil
}

func mergeFilteredTrees(origin, patch any, onlyTheseFields []string) (*ir.Node, error) {
	originTree, err := encodeTree(origin, nil)
	if err != nil {
		return nil, err
	}
	patchTree, err := encodeFiltered(patch, onlyTheseFields)
	if err != nil {
		return nil, err
	}
	Merge(originTree, patchTree)
	return originTree, nil
}

func decodeTree[T any](tree *ir.Node) (T, error) {
	var res T
	if err := gomap.FromIR(tree, &res); err != nil {
		return res, cloneErr("decode", err)
	}
	return res, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
