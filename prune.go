package cloneutils

import (
	"strings"

	"github.com/borisskert/cloneutils/debug"
	"github.com/borisskert/cloneutils/ir"
)

// Prune removes the properties named by dotted paths from the tree, in
// place. For each path, an object child keyed by the full path string is
// removed first, so literal keys containing dots win over nested
// traversal. Otherwise the path splits at its first dot and pruning
// recurses into the named child with the remainder. Arrays apply the path
// to every element independently. Paths that match nothing are silently
// ignored; pruning the same path twice equals pruning once.
func Prune(node *ir.Node, paths ...string) {
	if node == nil {
		return
	}
	for _, path := range paths {
		pruneOne(node, path)
	}
}

func pruneOne(node *ir.Node, path string) {
	switch node.Type {
	case ir.ObjectType:
		if node.Remove(path) {
			if debug.Prune() {
				debug.Logf("prune: removed %q\n", path)
			}
			return
		}
		head, tail, found := strings.Cut(path, ".")
		if !found {
			return
		}
		child := node.Get(head)
		if child == nil {
			// Property does not exist, nothing to remove.
			return
		}
		pruneOne(child, tail)
	case ir.ArrayType:
		for _, v := range node.Values {
			pruneOne(v, path)
		}
	}
}
