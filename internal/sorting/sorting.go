// Package sorting implements the archive's two list-sorting algorithms.
// Both satisfy one observable contract: given the same input and
// comparator they return the same fresh, non-decreasing permutation of
// the input, leaving the input untouched.
package sorting

import "github.com/emirpasic/gods/utils"

// Algorithm orders a sequence under cmp, returning a fresh slice.
type Algorithm func(xs []int, cmp utils.Comparator) []int

// IsSorted reports whether xs is in non-decreasing order under cmp.
func IsSorted(xs []int, cmp utils.Comparator) bool {
	for i := 1; i < len(xs); i++ {
		if cmp(xs[i-1], xs[i]) > 0 {
			return false
		}
	}
	return true
}
