package quiz

import "math/rand/v2"

// Sample returns up to k distinct elements of items drawn uniformly
// without replacement. Asking for k >= len(items) yields a full random
// permutation. The input slice is never modified.
func Sample[T any](rng *rand.Rand, items []T, k int) []T {
	if k <= 0 || len(items) == 0 {
		return []T{}
	}

	out := make([]T, len(items))
	copy(out, items)

	if k >= len(out) {
		rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
		return out
	}

	// Partial Fisher-Yates: after i swaps the first i elements are a
	// uniform i-subset in uniform order.
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:k]
}
