package cloneutils

import (
	"io"

	"github.com/borisskert/cloneutils/encode"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Dump writes v's tree representation to w after removing
// ignoredProperties, colorized when w is a terminal.
func Dump(w io.Writer, v any, ignoredProperties ...string) error {
	tree, err := encodeTree(v, ignoredProperties)
	if err != nil {
		return err
	}
	return encode.Encode(tree, w, encode.WithColors(encode.ColorsFor(w)))
}

// Diff renders a human-readable, line-oriented diff between a and b after
// removing ignoredProperties from both, or "" when the two encode to
// equal trees. Intended for test failure messages alongside DeepEquals.
func Diff(a, b any, ignoredProperties ...string) (string, error) {
	aTree, err := encodeTree(a, ignoredProperties)
	if err != nil {
		return "", err
	}
	bTree, err := encodeTree(b, ignoredProperties)
	if err != nil {
		return "", err
	}
	aText := encode.MustString(aTree)
	bText := encode.MustString(bTree)
	if aText == bText {
		return "", nil
	}
	dmp := diffpatch.New()
	aRunes, bRunes, lines := dmp.DiffLinesToRunes(aText, bText)
	diffs := dmp.DiffMainRunes(aRunes, bRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	return dmp.DiffPrettyText(diffs), nil
}
