package subtour

import (
	"github.com/kstsp-dev/kstsp/matrix"
	"github.com/kstsp-dev/kstsp/mip"
)

// Eliminator runs the full subtour-elimination pipeline for one tour's
// edge-variable matrix behind the mip.Callback contract. It holds only the
// read-only variable matrix; per-invocation state (the candidate matrix)
// is allocated fresh each time, so re-entrant invocations from a
// parallelized solver never share mutable state.
type Eliminator struct {
	vars *matrix.Vars
}

// NewEliminator returns an Eliminator over vars. vars is built once per
// solve by the model owner and read-only thereafter.
func NewEliminator(vars *matrix.Vars) *Eliminator {
	return &Eliminator{vars: vars}
}

var _ mip.Callback = (*Eliminator)(nil)

// OnCandidate implements mip.Callback: extract the candidate matrix, verify
// the degree-2 invariant, find the shortest cycle, and emit exactly one cut
// when that cycle spans a strict vertex subset — or nothing when the
// candidate already is a single Hamiltonian cycle.
//
// Errors: ErrDegenerateCandidate (wrapped) on an invariant violation; the
// solver aborts the run, never silently continuing on a possibly invalid
// cut.
//
// Complexity: O(n²) per invocation.
func (e *Eliminator) OnCandidate(cand mip.Candidate, cuts mip.CutPool) error {
	s := Extract(cand, e.vars)
	if err := VerifyDegrees(s); err != nil {
		return err
	}

	cycle := ShortestCycle(s)
	if len(cycle) >= e.vars.N() {
		return nil // full Hamiltonian tour, accept as-is
	}

	expr, rhs := Cut(cycle, e.vars)
	cuts.AddLazy(expr, mip.LessEqual, rhs)

	return nil
}
