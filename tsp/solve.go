package tsp

import (
	"fmt"

	"github.com/kstsp-dev/kstsp/instance"
	"github.com/kstsp-dev/kstsp/matrix"
	"github.com/kstsp-dev/kstsp/mip"
	"github.com/kstsp-dev/kstsp/subtour"
)

// minOrder is the smallest instance a tour formulation makes sense for.
const minOrder = 3

// Solve builds the formulation for inst under opts, runs branch-and-cut,
// and reconstructs the optimal tour(s) from the best incumbent.
//
// Validation happens before any model construction (malformed-input and
// insufficiency problems abort the whole run):
//   - inst.Order() ≥ 3, else ErrTooFewVertices;
//   - 0 ≤ opts.Similarity ≤ inst.Order(), else ErrSimilarityOutOfRange;
//   - opts.TimeLimit ≥ 0, enforced by the solver.
//
// Solver-reported failure (infeasible, time limit with no incumbent) is
// reported as ErrNoSolution wrapped with the terminal status; no retry is
// attempted. Callback-internal failures (a degenerate candidate) propagate
// verbatim — they are logic errors, not recoverable conditions.
func Solve(inst instance.Instance, opts Options) (Result, error) {
	if inst.Order() < minOrder {
		return Result{}, fmt.Errorf("%w: got %d", ErrTooFewVertices, inst.Order())
	}
	if opts.Similarity < 0 || opts.Similarity > inst.Order() {
		return Result{}, fmt.Errorf("%w: k=%d with %d vertices",
			ErrSimilarityOutOfRange, opts.Similarity, inst.Order())
	}

	m, err := build(inst, opts)
	if err != nil {
		return Result{}, err
	}

	sol, err := m.mdl.Optimize(mip.Options{TimeLimit: opts.TimeLimit})
	if err != nil {
		return Result{Solver: sol}, err
	}
	if !sol.HasSolution() {
		return Result{Solver: sol}, fmt.Errorf("%w: solver status %s", ErrNoSolution, sol.Status)
	}

	res := Result{Solver: sol}
	res.Tour, err = m.closedTour(&sol, m.x)
	if err != nil {
		return Result{Solver: sol}, err
	}
	res.Cost = m.tourCost(res.Tour, instance.MetricA)

	if m.y != nil {
		res.SecondTour, err = m.closedTour(&sol, m.y)
		if err != nil {
			return Result{Solver: sol}, err
		}
		res.SecondCost = m.tourCost(res.SecondTour, instance.MetricB)
		res.Shared = m.sharedEdges(&sol)
	}

	return res, nil
}

// closedTour rebuilds one tour from the incumbent values of vars: project
// the values onto a candidate matrix, decompose, and close the single
// Hamiltonian cycle every accepted incumbent is guaranteed to form.
//
// The returned tour follows the closed convention: len n+1 with
// tour[0] == tour[n].
func (m *model) closedTour(sol *mip.Result, vars *matrix.Vars) ([]int, error) {
	s := subtour.Extract(resultCandidate{sol}, vars)
	if err := subtour.VerifyDegrees(s); err != nil {
		return nil, err
	}

	cycles := subtour.Decompose(s)
	if len(cycles) != 1 || len(cycles[0]) != m.n {
		// Cannot happen for an incumbent the eliminator accepted; guard
		// anyway so a broken backend surfaces instead of reporting garbage.
		return nil, fmt.Errorf("%w: incumbent decomposes into %d cycles", ErrNoSolution, len(cycles))
	}

	tour := make([]int, m.n+1)
	copy(tour, cycles[0])
	tour[m.n] = cycles[0][0]

	return tour, nil
}

// tourCost sums the instance costs along a closed tour under metric me.
func (m *model) tourCost(tour []int, me instance.Metric) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < len(tour)-1; i++ {
		sum += m.inst.Cost(tour[i], tour[i+1], me)
	}

	return sum
}

// sharedEdges counts unordered pairs selected by both tours in the
// incumbent. At least Similarity by construction of the coupling.
func (m *model) sharedEdges(sol *mip.Result) int {
	var (
		count int
		u     int
		v     int
	)
	for u = 0; u < m.n; u++ {
		for v = u + 1; v < m.n; v++ {
			if sol.Value(m.x.At(u, v)) > 0.5 && sol.Value(m.y.At(u, v)) > 0.5 {
				count++
			}
		}
	}

	return count
}

// resultCandidate adapts a post-solve Result to the mip.Candidate shape so
// the subtour pipeline can re-read the incumbent the same way the callback
// reads a live candidate.
type resultCandidate struct{ sol *mip.Result }

// Value implements mip.Candidate.
func (r resultCandidate) Value(v mip.Var) float64 { return r.sol.Value(v) }
