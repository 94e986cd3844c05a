package protocol

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Equal reports whether a and b are structurally equal: field by field,
// recursively through nested values and element-wise through sequences. Nil
// and empty sequences are equal because they encode the same way.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

// Diff returns a human-readable description of how a and b differ, or "" if
// they are equal.
func Diff(a, b any) string {
	return cmp.Diff(a, b, cmpopts.EquateEmpty())
}
