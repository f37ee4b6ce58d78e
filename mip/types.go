package mip

import (
	"errors"
	"time"
)

// ErrModelFrozen is returned when the construction API is used after
// Optimize has started (the callback must go through Candidate/CutPool).
var ErrModelFrozen = errors.New("mip: model is frozen during optimization")

// ErrUnknownVar is returned when a constraint references a variable handle
// the model never created.
var ErrUnknownVar = errors.New("mip: unknown variable handle")

// ErrNegativeTimeLimit is returned for a negative Options.TimeLimit.
var ErrNegativeTimeLimit = errors.New("mip: negative time limit")

// Var is an opaque handle to a binary decision variable, assigned densely
// from 0 in creation order.
type Var int

// NoVar is the invalid variable handle (unset matrix slots, diagonals).
const NoVar Var = -1

// Sense is the relation of a linear constraint.
type Sense uint8

const (
	// LessEqual constrains the expression to ≤ rhs.
	LessEqual Sense = iota
	// GreaterEqual constrains the expression to ≥ rhs.
	GreaterEqual
	// Equal constrains the expression to == rhs.
	Equal
)

// String returns the relation symbol for diagnostics.
func (s Sense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	case Equal:
		return "=="
	default:
		return "?"
	}
}

// Term is one coefficient·variable product of a linear expression.
type Term struct {
	Var  Var
	Coef float64
}

// Status is the terminal state of a solve.
type Status uint8

const (
	// StatusUnknown: the solve did not run to a conclusive state.
	StatusUnknown Status = iota
	// StatusOptimal: the incumbent is proven optimal.
	StatusOptimal
	// StatusInfeasible: no assignment satisfies the constraints.
	StatusInfeasible
	// StatusTimeLimit: the cooperative deadline expired before proof.
	StatusTimeLimit
)

// IsOptimal reports whether the solve proved optimality.
func (s Status) IsOptimal() bool { return s == StatusOptimal }

// IsInfeasible reports whether the model admits no feasible assignment.
func (s Status) IsInfeasible() bool { return s == StatusInfeasible }

// IsTimeLimit reports whether the solve stopped on the time limit.
func (s Status) IsTimeLimit() bool { return s == StatusTimeLimit }

// String returns a short status name for logs.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusTimeLimit:
		return "time_limit"
	default:
		return "unknown"
	}
}

// Options governs one Optimize run.
type Options struct {
	// TimeLimit is the cooperative wall-clock budget; 0 means unlimited.
	// Enforced by sparse deadline checks inside the search, never by
	// process signals, so the best incumbent survives a timeout.
	TimeLimit time.Duration
}

// Result is the post-solve report. It is introspection only: nothing in it
// feeds back into the search.
type Result struct {
	// Status is the terminal solve state.
	Status Status
	// Objective is the incumbent objective value (meaningful when SolCount > 0).
	Objective float64
	// Values holds the incumbent assignment per variable, indexed by Var.
	// Nil when no incumbent was found.
	Values []float64
	// SolCount is the number of accepted incumbents.
	SolCount int
	// Nodes is the number of search-tree node events.
	Nodes int64
	// Candidates is the number of integer-feasible candidates reported to
	// the callback.
	Candidates int64
	// LazyCuts is the number of lazy constraints the callback(s) added.
	LazyCuts int
	// Elapsed is the wall time spent in Optimize.
	Elapsed time.Duration
}

// Value returns the incumbent value of v, or 0 when no incumbent exists or
// v is out of range.
func (r *Result) Value(v Var) float64 {
	if r.Values == nil || v < 0 || int(v) >= len(r.Values) {
		return 0
	}

	return r.Values[v]
}

// HasSolution reports whether at least one incumbent was accepted.
func (r *Result) HasSolution() bool { return r.SolCount > 0 }
