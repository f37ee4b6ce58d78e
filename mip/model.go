package mip

import "fmt"

// Callback receives every integer-feasible candidate the search discovers.
// Invoked synchronously, exactly once per candidate; it may read the
// candidate through cand and append lazy constraints through cuts, and
// nothing else. A returned error aborts the solve and propagates.
//
// Distinct invocations reason over distinct candidates and must not share
// mutable state; implementations allocate per-invocation scratch.
type Callback interface {
	OnCandidate(cand Candidate, cuts CutPool) error
}

// CallbackFunc adapts a plain function to the Callback interface.
type CallbackFunc func(cand Candidate, cuts CutPool) error

// OnCandidate implements Callback.
func (f CallbackFunc) OnCandidate(cand Candidate, cuts CutPool) error {
	return f(cand, cuts)
}

// Candidate is the read capability handed to a callback: the current
// integer-feasible value of a variable. Undefined outside the callback
// window. Repeated reads of the same variable are redundant but safe.
type Candidate interface {
	Value(v Var) float64
}

// CutPool is the write capability handed to a callback: AddLazy appends a
// constraint valid for the original formulation (not only the current
// node), which persists for the remainder of the search. Append-only;
// previously added constraints are never removed or altered.
type CutPool interface {
	AddLazy(expr LinExpr, sense Sense, rhs float64)
}

// constr is one linear constraint: Σ coef·x ⟨sense⟩ rhs.
type constr struct {
	terms []Term
	sense Sense
	rhs   float64
}

// Model is a 0/1 integer linear program under construction. Not safe for
// concurrent construction; frozen once Optimize starts.
type Model struct {
	obj    []float64 // objective coefficient per variable
	names  []string  // variable names, diagnostics only
	cons   []constr  // eager constraints + lazy cuts appended mid-search
	cb     Callback
	frozen bool
}

// NewModel returns an empty model.
func NewModel() *Model { return &Model{} }

// NumVars returns the number of variables created so far.
func (m *Model) NumVars() int { return len(m.obj) }

// NumConstrs returns the number of constraints, lazy cuts included.
func (m *Model) NumConstrs() int { return len(m.cons) }

// AddBinaryVar creates a binary decision variable with the given objective
// coefficient and returns its handle. name is kept for diagnostics only.
//
// Contract: construction phase only. During optimization the model is
// frozen and NoVar is returned; a constraint built on it then fails with
// ErrUnknownVar.
func (m *Model) AddBinaryVar(obj float64, name string) Var {
	if m.frozen {
		return NoVar
	}
	m.obj = append(m.obj, obj)
	m.names = append(m.names, name)

	return Var(len(m.obj) - 1)
}

// AddConstr adds Σ expr ⟨sense⟩ rhs to the model.
//
// Errors: ErrModelFrozen during optimization, ErrUnknownVar when expr
// references a handle the model never created.
func (m *Model) AddConstr(expr LinExpr, sense Sense, rhs float64) error {
	if m.frozen {
		return ErrModelFrozen
	}
	for _, t := range expr.Terms() {
		if t.Var < 0 || int(t.Var) >= len(m.obj) {
			return fmt.Errorf("%w: %d", ErrUnknownVar, t.Var)
		}
	}
	m.cons = append(m.cons, constr{terms: expr.cloneTerms(), sense: sense, rhs: rhs})

	return nil
}

// SetCallback registers cb for integer-feasible candidate events.
// At most one callback is active; later calls replace earlier ones
// (compose externally when two concerns must both observe candidates).
func (m *Model) SetCallback(cb Callback) { m.cb = cb }
