package sorting

import "github.com/emirpasic/gods/utils"

// Bubble returns a sorted copy of xs. Each pass over the working buffer
// swaps adjacent out-of-order pairs; a pass with zero swaps means the
// buffer is ordered. At most len(xs) passes run.
func Bubble(xs []int, cmp utils.Comparator) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	for swapped := true; swapped; {
		swapped = false
		for j := 0; j+1 < len(out); j++ {
			if cmp(out[j], out[j+1]) > 0 {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
	}
	return out
}
