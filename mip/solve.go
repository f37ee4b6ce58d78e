package mip

import (
	"math"
	"sort"
	"time"
)

// solverEps is the feasibility/improvement tolerance. Coefficients in this
// module are small integers; 1e-9 absorbs FP noise without masking real
// violations.
const solverEps = 1e-9

// deadlineMask spaces deadline checks: one time.Now per 4096 node events
// keeps the overhead negligible on the hot path.
const deadlineMask = 4095

// unfixed marks a variable not yet assigned on the current path.
const unfixed int8 = -1

// consState is one constraint plus the incremental activity bookkeeping the
// search maintains: with F the fixed and U the unfixed variables of the
// constraint,
//
//	actFixed = Σ_{v∈F} coef·value(v)
//	minFree  = Σ_{v∈U} min(0, coef)
//	maxFree  = Σ_{v∈U} max(0, coef)
//
// so [actFixed+minFree, actFixed+maxFree] bounds every completion of the
// current partial assignment.
type consState struct {
	terms []Term
	sense Sense
	rhs   float64

	actFixed float64
	minFree  float64
	maxFree  float64
}

// feasible reports whether some completion can still satisfy the constraint.
func (cs *consState) feasible() bool {
	switch cs.sense {
	case LessEqual:
		return cs.actFixed+cs.minFree <= cs.rhs+solverEps
	case GreaterEqual:
		return cs.actFixed+cs.maxFree >= cs.rhs-solverEps
	default: // Equal
		return cs.actFixed+cs.minFree <= cs.rhs+solverEps &&
			cs.actFixed+cs.maxFree >= cs.rhs-solverEps
	}
}

// occurrence links a variable to one constraint it participates in.
type occurrence struct {
	cons int
	coef float64
}

// engine holds all search data for one Optimize run. A dedicated struct
// (no anonymous closures) keeps hot-path state explicit and predictable.
type engine struct {
	m     *Model
	nvars int

	// Static branching order: ascending objective coefficient, index tiebreak.
	order []int

	// Assignment state.
	value []int8 // unfixed / 0 / 1 per variable
	trail []int  // assignment history for backtracking

	// Constraint state; lazy cuts are appended here mid-search.
	cons  []consState
	occur [][]occurrence // per variable

	// Objective bookkeeping.
	objFixed   float64 // Σ obj[v]·value(v) over fixed vars
	objFreeMin float64 // Σ min(0, obj[v]) over unfixed vars

	// Incumbent.
	bestVals []float64
	bestObj  float64
	foundAny bool
	solCount int

	// Time budget.
	useDeadline bool
	deadline    time.Time
	steps       int
	timedOut    bool

	// Callback plumbing.
	inCallback bool
	cbErr      error
	lazyAdded  int

	// Counters.
	nodes      int64
	candidates int64
}

// newEngine prepares constraint states, occurrence lists, and the branching
// order for m's current constraints.
func newEngine(m *Model) *engine {
	e := &engine{
		m:       m,
		nvars:   len(m.obj),
		value:   make([]int8, len(m.obj)),
		occur:   make([][]occurrence, len(m.obj)),
		cons:    make([]consState, 0, len(m.cons)),
		bestObj: math.Inf(1),
	}
	for v := range e.value {
		e.value[v] = unfixed
	}
	for v := range m.obj {
		if m.obj[v] < 0 {
			e.objFreeMin += m.obj[v]
		}
	}
	for i := range m.cons {
		e.installConstraint(m.cons[i].terms, m.cons[i].sense, m.cons[i].rhs)
	}

	// Ascending-cost branching (index tiebreak): cheap variables are decided
	// first and value 1 is tried first, so low-cost candidates surface early.
	e.order = make([]int, e.nvars)
	for v := range e.order {
		e.order[v] = v
	}
	sort.SliceStable(e.order, func(a, b int) bool {
		va, vb := e.order[a], e.order[b]
		if m.obj[va] == m.obj[vb] {
			return va < vb
		}

		return m.obj[va] < m.obj[vb]
	})

	return e
}

// installConstraint appends a constraint state initialized against the
// current assignment and registers its occurrences. Used both for eager
// constraints (empty assignment) and lazy cuts (mid-search, any assignment).
func (e *engine) installConstraint(terms []Term, sense Sense, rhs float64) {
	cs := consState{terms: terms, sense: sense, rhs: rhs}
	ci := len(e.cons)

	var t Term
	for _, t = range terms {
		switch e.value[t.Var] {
		case unfixed:
			if t.Coef < 0 {
				cs.minFree += t.Coef
			} else {
				cs.maxFree += t.Coef
			}
		default:
			cs.actFixed += t.Coef * float64(e.value[t.Var])
		}
		e.occur[t.Var] = append(e.occur[t.Var], occurrence{cons: ci, coef: t.Coef})
	}
	e.cons = append(e.cons, cs)
}

// assign fixes v to val and updates objective and constraint activity.
func (e *engine) assign(v int, val int8) {
	e.value[v] = val
	e.trail = append(e.trail, v)

	obj := e.m.obj[v]
	e.objFixed += obj * float64(val)
	if obj < 0 {
		e.objFreeMin -= obj
	}

	var oc occurrence
	for _, oc = range e.occur[v] {
		cs := &e.cons[oc.cons]
		cs.actFixed += oc.coef * float64(val)
		if oc.coef < 0 {
			cs.minFree -= oc.coef
		} else {
			cs.maxFree -= oc.coef
		}
	}
}

// undo unwinds the trail back to mark, reversing every assign since.
func (e *engine) undo(mark int) {
	var (
		v   int
		val int8
		oc  occurrence
	)
	for len(e.trail) > mark {
		v = e.trail[len(e.trail)-1]
		e.trail = e.trail[:len(e.trail)-1]
		val = e.value[v]
		e.value[v] = unfixed

		obj := e.m.obj[v]
		e.objFixed -= obj * float64(val)
		if obj < 0 {
			e.objFreeMin += obj
		}

		for _, oc = range e.occur[v] {
			cs := &e.cons[oc.cons]
			cs.actFixed -= oc.coef * float64(val)
			if oc.coef < 0 {
				cs.minFree += oc.coef
			} else {
				cs.maxFree += oc.coef
			}
		}
	}
}

// propagate runs feasibility checks and unit-style forcing to a fixpoint.
// Returns false on a conflict (some constraint can no longer be satisfied).
//
// Forcing rules for an unfixed variable with coefficient a in constraint c:
//   - upper side (LessEqual / Equal): value 1 impossible when a > 0 and
//     actFixed+minFree+a exceeds rhs; value 0 impossible when a < 0 and
//     dropping a's contribution (actFixed+minFree−a) exceeds rhs.
//   - lower side (GreaterEqual / Equal): value 0 impossible when a > 0 and
//     actFixed+maxFree−a falls short of rhs; value 1 impossible when a < 0
//     and actFixed+maxFree+a falls short of rhs.
func (e *engine) propagate() bool {
	changed := true
	for changed {
		changed = false

		var ci int
		for ci = range e.cons {
			cs := &e.cons[ci]
			if !cs.feasible() {
				return false
			}

			var t Term
			for _, t = range cs.terms {
				if e.value[t.Var] != unfixed {
					continue
				}
				forced := int8(unfixed)

				// Upper side.
				if cs.sense == LessEqual || cs.sense == Equal {
					if t.Coef > 0 && cs.actFixed+cs.minFree+t.Coef > cs.rhs+solverEps {
						forced = 0
					}
					if t.Coef < 0 && cs.actFixed+cs.minFree-t.Coef > cs.rhs+solverEps {
						forced = 1
					}
				}
				// Lower side.
				if forced == unfixed && (cs.sense == GreaterEqual || cs.sense == Equal) {
					if t.Coef > 0 && cs.actFixed+cs.maxFree-t.Coef < cs.rhs-solverEps {
						forced = 1
					}
					if t.Coef < 0 && cs.actFixed+cs.maxFree+t.Coef < cs.rhs-solverEps {
						forced = 0
					}
				}

				if forced != unfixed {
					e.assign(int(t.Var), forced)
					if !cs.feasible() {
						return false
					}
					changed = true
				}
			}
		}
	}

	return true
}

// deadlineCheck performs a rare deadline test (one per 4096 node events).
func (e *engine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&deadlineMask) != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.timedOut = true
	}

	return e.timedOut
}

// nextVar returns the first unfixed variable in branching order, or -1 when
// the assignment is complete.
func (e *engine) nextVar() int {
	var v int
	for _, v = range e.order {
		if e.value[v] == unfixed {
			return v
		}
	}

	return -1
}

// dfs is the core search: deterministic branching, activity-based pruning,
// bound pruning against the incumbent.
func (e *engine) dfs() {
	e.nodes++
	if e.timedOut || e.cbErr != nil || e.deadlineCheck() {
		return
	}

	// Objective bound: no completion of this node can beat the incumbent.
	if e.objFixed+e.objFreeMin >= e.bestObj-solverEps {
		return
	}

	v := e.nextVar()
	if v == -1 {
		e.onCandidate()

		return
	}

	// Value 1 first: combined with ascending-cost variable order this
	// surfaces cheap feasible candidates early, tightening the incumbent.
	var val int8
	for _, val = range [2]int8{1, 0} {
		mark := len(e.trail)
		e.assign(v, val)
		if e.propagate() {
			e.dfs()
		}
		e.undo(mark)
		if e.timedOut || e.cbErr != nil {
			return
		}
	}
}

// onCandidate handles a complete integer-feasible assignment: report it to
// the callback, then either reject it (a fresh lazy cut excludes it) or
// accept it as the new incumbent.
func (e *engine) onCandidate() {
	e.candidates++

	before := len(e.cons)
	if cb := e.m.cb; cb != nil {
		e.inCallback = true
		err := cb.OnCandidate(candidateView{e: e}, cutCollector{e: e})
		e.inCallback = false
		if err != nil {
			e.cbErr = err
		}
		// cbErr may also have been set inside AddLazy; a candidate seen
		// after any callback failure must never become the incumbent.
		if e.cbErr != nil {
			return
		}
	}

	// A cut added for this candidate that the candidate itself violates
	// rejects it; the cut stays in force either way.
	var ci int
	for ci = before; ci < len(e.cons); ci++ {
		if !e.cons[ci].feasible() {
			return
		}
	}

	// Accept: the bound prune guarantees this improves the incumbent.
	if e.bestVals == nil {
		e.bestVals = make([]float64, e.nvars)
	}
	var v int
	for v = 0; v < e.nvars; v++ {
		e.bestVals[v] = float64(e.value[v])
	}
	e.bestObj = e.objFixed
	e.foundAny = true
	e.solCount++
}

// candidateView implements Candidate over the engine's current assignment.
// Valid only while the callback executes; values are stable for the whole
// invocation, so repeated reads are bit-identical.
type candidateView struct{ e *engine }

// Value implements Candidate.
func (c candidateView) Value(v Var) float64 {
	if v < 0 || int(v) >= c.e.nvars || c.e.value[v] == unfixed {
		return 0
	}

	return float64(c.e.value[v])
}

// cutCollector implements CutPool by installing the cut into the live
// constraint set, initialized against the current (fully fixed) assignment.
type cutCollector struct{ e *engine }

// AddLazy implements CutPool.
func (c cutCollector) AddLazy(expr LinExpr, sense Sense, rhs float64) {
	var t Term
	for _, t = range expr.Terms() {
		if t.Var < 0 || int(t.Var) >= c.e.nvars {
			c.e.cbErr = ErrUnknownVar

			return
		}
	}
	c.e.installConstraint(expr.cloneTerms(), sense, rhs)
	c.e.lazyAdded++
}

// Optimize runs branch-and-cut on the model and blocks until it terminates:
// proven optimal, proven infeasible, or time limit. The model is frozen for
// the duration; lazy cuts arrive only through the callback's CutPool.
//
// Errors: ErrNegativeTimeLimit for a bad budget; any error returned by the
// callback, verbatim (the partial Result is still populated for reporting).
func (m *Model) Optimize(opts Options) (Result, error) {
	if opts.TimeLimit < 0 {
		return Result{}, ErrNegativeTimeLimit
	}

	start := time.Now()
	m.frozen = true
	defer func() { m.frozen = false }()

	e := newEngine(m)
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = start.Add(opts.TimeLimit)
	}

	// Root propagation: constraints that are infeasible before any branching
	// settle the model immediately.
	if e.propagate() {
		e.dfs()
	}

	res := Result{
		Status:     StatusUnknown,
		SolCount:   e.solCount,
		Nodes:      e.nodes,
		Candidates: e.candidates,
		LazyCuts:   e.lazyAdded,
		Elapsed:    time.Since(start),
	}
	if e.foundAny {
		res.Objective = e.bestObj
		res.Values = e.bestVals
	}

	if e.cbErr != nil {
		return res, e.cbErr
	}

	switch {
	case e.timedOut:
		res.Status = StatusTimeLimit
	case e.foundAny:
		res.Status = StatusOptimal
	default:
		res.Status = StatusInfeasible
	}

	return res, nil
}
