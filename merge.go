package cloneutils

import (
	"github.com/borisskert/cloneutils/debug"
	"github.com/borisskert/cloneutils/ir"
)

// Merge overlays patch onto origin in place. When both sides are objects
// their keys merge recursively; any other patch value, null and whole
// arrays included, replaces origin's value at that key. Keys present
// only in origin stay untouched; keys present only in patch are appended.
// The patch tree is never aliased into origin.
func Merge(origin, patch *ir.Node) {
	if origin == nil || patch == nil {
		return
	}
	if origin.Type == ir.ObjectType && patch.Type == ir.ObjectType {
		for i, key := range patch.Fields {
			pv := patch.Values[i]
			ov := origin.Get(key)
			if ov != nil && ov.Type == ir.ObjectType && pv.Type == ir.ObjectType {
				Merge(ov, pv)
				continue
			}
			if debug.Patch() {
				debug.Logf("merge: set %q to %s\n", key, pv.Type)
			}
			origin.Set(key, pv.Clone())
		}
		return
	}
	*origin = *patch.Clone()
}
