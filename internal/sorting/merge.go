package sorting

import "github.com/emirpasic/gods/utils"

// Merge returns a sorted copy of xs via bottom-up run merging: every
// element starts as a run of one, and adjacent runs are merged pairwise,
// doubling in width, until a single run remains. Runs are tracked as
// index ranges over an arena buffer rather than by reslicing.
func Merge(xs []int, cmp utils.Comparator) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	buf := make([]int, len(xs))
	for width := 1; width < len(out); width *= 2 {
		for lo := 0; lo < len(out)-width; lo += 2 * width {
			hi := lo + 2*width
			if hi > len(out) {
				hi = len(out)
			}
			mergeRuns(out, buf, lo, lo+width, hi, cmp)
		}
	}
	return out
}

// mergeRuns merges the adjacent runs out[lo:mid] and out[mid:hi] through
// buf. The lowest head wins; ties take the left run's element, keeping
// the merge stable.
func mergeRuns(out, buf []int, lo, mid, hi int, cmp utils.Comparator) {
	copy(buf[lo:hi], out[lo:hi])
	l, r := lo, mid
	for k := lo; k < hi; k++ {
		switch {
		case l >= mid:
			out[k] = buf[r]
			r++
		case r >= hi:
			out[k] = buf[l]
			l++
		case cmp(buf[r], buf[l]) < 0:
			out[k] = buf[r]
			r++
		default:
			out[k] = buf[l]
			l++
		}
	}
}
