package shuffle

import (
	"math/rand"
)

// Permutation returns a deterministic permutation of [0, n) derived from seed.
func Permutation(seed int64, n int) []int {
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	rd := rand.New(rand.NewSource(seed))
	rd.Shuffle(n, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}
