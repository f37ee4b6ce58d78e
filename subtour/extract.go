package subtour

import (
	"fmt"

	"github.com/kstsp-dev/kstsp/matrix"
	"github.com/kstsp-dev/kstsp/mip"
)

// selectedAbove is the rounding threshold for a binary variable's candidate
// value: the solver reports integer-feasible assignments, so any value
// above 0.5 is a selected edge.
const selectedAbove = 0.5

// Extract builds the candidate-solution matrix S for one callback
// invocation: S[u][v] = (value(x_uv) > 0.5), symmetric, diagonal false.
//
// Contracts:
//   - cand is valid (the caller is inside a callback window);
//   - vars holds one variable per unordered pair of 0..n-1.
//   - The returned matrix is freshly allocated on every call and owned by
//     the invocation — never persisted or shared (re-entrant solver threads
//     reason over distinct candidates).
//   - Idempotent over unchanged solver state: repeated calls yield
//     bit-identical matrices.
//
// Complexity: O(n²) time and space.
func Extract(cand mip.Candidate, vars *matrix.Vars) *matrix.Bool {
	var (
		n = vars.N()
		s = matrix.NewBool(n)
		u int
		v int
	)
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			s.SetSym(u, v, cand.Value(vars.At(u, v)) > selectedAbove)
		}
	}

	return s
}

// VerifyDegrees checks the degree-2 invariant on every vertex of s.
// The decomposition assumes it and is unspecified otherwise, so defensive
// callers run this first and abort the solve on failure.
//
// Errors: ErrDegenerateCandidate, wrapped with the first offending vertex
// and its degree.
//
// Complexity: O(n²).
func VerifyDegrees(s *matrix.Bool) error {
	var (
		n = s.N()
		u int
		d int
	)
	for u = 0; u < n; u++ {
		d = s.Degree(u)
		if d != 2 {
			return fmt.Errorf("%w: vertex %d has degree %d", ErrDegenerateCandidate, u, d)
		}
	}

	return nil
}
