package tsp

import (
	"errors"
	"time"

	"github.com/kstsp-dev/kstsp/mip"
)

// ErrTooFewVertices is returned for instances below the minimum order of 3
// (no meaningful cycle exists on fewer vertices).
var ErrTooFewVertices = errors.New("tsp: instance needs at least 3 vertices")

// ErrSimilarityOutOfRange is returned when Options.Similarity is negative
// or exceeds the instance order (a tour holds exactly n edges, so more than
// n shared edges can never be required).
var ErrSimilarityOutOfRange = errors.New("tsp: similarity out of range")

// ErrNoSolution is returned when the solver terminates without a usable
// incumbent: the model is infeasible, the time limit expired before any
// candidate was accepted, or the incumbent failed reconstruction.
var ErrNoSolution = errors.New("tsp: no solution found")

// Options governs one Solve run.
type Options struct {
	// Similarity is k: 0 solves plain single-tour TSP on MetricA;
	// k ≥ 1 solves the two-tour k-similar model.
	Similarity int

	// TimeLimit is the cooperative solve budget, forwarded to the solver;
	// 0 means unlimited. Preferred over any form of abrupt termination so
	// that the best-found-so-far solution survives a timeout.
	TimeLimit time.Duration
}

// Result reports the reconstructed solution plus solver statistics.
type Result struct {
	// Tour is the closed MetricA tour over vertex positions:
	// len == n+1, Tour[0] == Tour[n].
	Tour []int
	// Cost is Tour's total cost under MetricA.
	Cost float64

	// SecondTour is the closed MetricB tour (k-similar mode only; nil
	// otherwise), same shape as Tour.
	SecondTour []int
	// SecondCost is SecondTour's total cost under MetricB.
	SecondCost float64
	// Shared is the number of edges the two tours share (≥ k by
	// construction; 0 in single-tour mode).
	Shared int

	// Solver carries the backend's post-solve introspection (status, node
	// and candidate counts, lazy cuts, elapsed time). Reporting only.
	Solver mip.Result
}
