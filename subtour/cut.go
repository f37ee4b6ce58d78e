package subtour

import (
	"github.com/kstsp-dev/kstsp/matrix"
	"github.com/kstsp-dev/kstsp/mip"
)

// Cut builds the subtour-elimination inequality for a detected cycle of
// length ℓ: the sum of the edge variables over all unordered vertex pairs
// drawn from the cycle's vertex set may not exceed ℓ−1, which forbids that
// exact subset from forming an isolated cycle again. The inequality is
// valid for the original formulation (any Hamiltonian cycle uses at most
// ℓ−1 edges inside a strict vertex subset of size ℓ), so it may be added
// as a lazy constraint that survives for the rest of the search.
//
// The expression carries exactly ℓ·(ℓ−1)/2 distinct variable terms, one per
// unordered pair, each with coefficient 1; the right-hand side is ℓ−1 and
// the sense is mip.LessEqual.
//
// Contract: 2 ≤ len(cycle) < vars.N() (full tours emit nothing — callers
// check length first).
//
// Complexity: O(ℓ²).
func Cut(cycle []int, vars *matrix.Vars) (mip.LinExpr, float64) {
	var (
		expr mip.LinExpr
		i    int
		j    int
	)
	for i = 0; i < len(cycle); i++ {
		for j = i + 1; j < len(cycle); j++ {
			expr.Add(vars.At(cycle[i], cycle[j]))
		}
	}

	return expr, float64(len(cycle) - 1)
}
