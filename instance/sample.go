package instance

import (
	"fmt"
	"math/rand"
)

// Sample returns a sub-instance of count vertices drawn without replacement
// using a deterministic seeded RNG: the same (input, count, seed) triple
// always yields the same sub-instance, independent of platform.
//
// Vertex records (IDs included) are carried over unchanged; only the
// positional indexing of the sub-instance is new.
//
// Errors: ErrNotEnoughVertices (wrapped with current/requested counts) when
// count exceeds Order(); count < 0 is reported the same way.
//
// Complexity: O(n) time, O(n) space.
func (in Instance) Sample(count int, seed int64) (Instance, error) {
	n := in.Order()
	if count < 0 || count > n {
		return Instance{}, fmt.Errorf("%w: requesting %d out of %d available",
			ErrNotEnoughVertices, count, n)
	}

	// Partial Fisher–Yates over an index permutation: after count swaps the
	// prefix idx[:count] is a uniform sample, fully determined by the seed.
	var (
		rng = rand.New(rand.NewSource(seed))
		idx = make([]int, n)
		i   int
		j   int
	)
	for i = 0; i < n; i++ {
		idx[i] = i
	}
	for i = 0; i < count; i++ {
		j = i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	out := make([]Vertex, count)
	for i = 0; i < count; i++ {
		out[i] = in.vertices[idx[i]]
	}

	return Instance{vertices: out}, nil
}
