// Package shuffle provides an unbiased random permutation used for drawing
// play rounds and randomizing option order.
package shuffle

import "math/rand"

// Shuffle returns a uniformly random permutation of items as a new slice.
// The input is never mutated. Fisher-Yates: position i swaps with a uniform
// index in [0, i].
func Shuffle[T any](rnd *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
