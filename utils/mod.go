package utils

import "cmp"

// ArgMaxAll returns the indices of every element equal to the maximum, in order.
// Equality is exact. An empty slice yields nil.
func ArgMaxAll[T cmp.Ordered](values []T) []int {
	if len(values) == 0 {
		return nil
	}
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	var indices []int
	for i, v := range values {
		if v == best {
			indices = append(indices, i)
		}
	}
	return indices
}

// Max returns the largest element. It panics on an empty slice.
func Max[T cmp.Ordered](values []T) T {
	if len(values) == 0 {
		panic("max of empty slice")
	}
	best := values[0]
	for _, v := range values[1:] {
		best = max(best, v)
	}
	return best
}
