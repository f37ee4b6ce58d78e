// Package tsp_test runs the branch-and-cut pipeline end to end on small
// instances and checks the answers against in-test brute force.
package tsp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kstsp-dev/kstsp/instance"
	"github.com/kstsp-dev/kstsp/tsp"
)

// mkInstance builds an instance from coordinate quadruples
// (x1, y1, x2, y2), one vertex per row, IDs 1..n.
func mkInstance(t *testing.T, rows ...[4]float64) instance.Instance {
	t.Helper()

	vs := make([]instance.Vertex, len(rows))
	for i, r := range rows {
		vs[i] = instance.Vertex{
			ID: i + 1,
			A:  instance.Point{X: r[0], Y: r[1]},
			B:  instance.Point{X: r[2], Y: r[3]},
		}
	}

	return instance.New(vs)
}

// twoClusters is the canonical subtour trap: two tight triangles far
// apart. Closing each triangle separately is much cheaper than any
// single tour, so the first candidates must be cut away.
func twoClusters(t *testing.T) instance.Instance {
	t.Helper()

	return mkInstance(t,
		[4]float64{0, 0, 0, 0},
		[4]float64{10, 0, 10, 0},
		[4]float64{5, 8, 5, 8},
		[4]float64{100, 0, 100, 0},
		[4]float64{110, 0, 110, 0},
		[4]float64{105, 8, 105, 8},
	)
}

// bruteForceTour finds the optimal closed tour under me by fixing
// position 0 and permuting the rest. Only for tiny n.
func bruteForceTour(t *testing.T, inst instance.Instance, me instance.Metric) float64 {
	t.Helper()

	n := inst.Order()
	perm := make([]int, 0, n)
	best := float64(1<<62) - 1

	var recurse func(used []bool)
	recurse = func(used []bool) {
		if len(perm) == n {
			cost := inst.Cost(perm[n-1], perm[0], me)
			for i := 0; i < n-1; i++ {
				cost += inst.Cost(perm[i], perm[i+1], me)
			}
			if cost < best {
				best = cost
			}

			return
		}
		start := 0
		if len(perm) > 0 {
			start = 1
		}
		for v := start; v < n; v++ {
			if used[v] {
				continue
			}
			if len(perm) == 0 && v != 0 {
				break
			}
			used[v] = true
			perm = append(perm, v)
			recurse(used)
			perm = perm[:len(perm)-1]
			used[v] = false
		}
	}
	recurse(make([]bool, n))

	return best
}

// requireClosedTour checks tour shape: n+1 entries, closed, and each
// position 0..n-1 visited exactly once.
func requireClosedTour(t *testing.T, tour []int, n int) {
	t.Helper()

	require.Len(t, tour, n+1)
	require.Equal(t, tour[0], tour[n], "tour must close on its start")

	seen := make(map[int]bool, n)
	for _, p := range tour[:n] {
		require.GreaterOrEqual(t, p, 0)
		require.Less(t, p, n)
		require.False(t, seen[p], "position %d visited twice", p)
		seen[p] = true
	}
}

func TestSolve_RejectsTinyInstances(t *testing.T) {
	inst := mkInstance(t, [4]float64{0, 0, 0, 0}, [4]float64{1, 1, 1, 1})

	_, err := tsp.Solve(inst, tsp.Options{})
	require.ErrorIs(t, err, tsp.ErrTooFewVertices)
}

func TestSolve_RejectsSimilarityOutOfRange(t *testing.T) {
	inst := twoClusters(t)

	_, err := tsp.Solve(inst, tsp.Options{Similarity: -1})
	require.ErrorIs(t, err, tsp.ErrSimilarityOutOfRange)

	_, err = tsp.Solve(inst, tsp.Options{Similarity: inst.Order() + 1})
	require.ErrorIs(t, err, tsp.ErrSimilarityOutOfRange)
}

func TestSolve_Triangle(t *testing.T) {
	// One tour possible: the triangle itself.
	inst := mkInstance(t,
		[4]float64{0, 0, 0, 0},
		[4]float64{3, 0, 3, 0},
		[4]float64{0, 4, 0, 4},
	)

	res, err := tsp.Solve(inst, tsp.Options{})
	require.NoError(t, err)
	require.True(t, res.Solver.Status.IsOptimal())
	requireClosedTour(t, res.Tour, 3)
	require.Equal(t, 12.0, res.Cost, "3-4-5 triangle perimeter")
	require.Nil(t, res.SecondTour)
	require.Zero(t, res.Shared)
}

func TestSolve_TwoClustersForcesLazyCuts(t *testing.T) {
	inst := twoClusters(t)

	res, err := tsp.Solve(inst, tsp.Options{})
	require.NoError(t, err)
	require.True(t, res.Solver.Status.IsOptimal())
	requireClosedTour(t, res.Tour, inst.Order())
	require.Equal(t, bruteForceTour(t, inst, instance.MetricA), res.Cost)

	// The two disjoint triangles are the cheapest degree-2 selection, so
	// the search cannot reach the optimum without rejecting at least one
	// subtour candidate along the way.
	require.GreaterOrEqual(t, res.Solver.LazyCuts, 1)
	require.GreaterOrEqual(t, res.Solver.Candidates, int64(1))
}

func TestSolve_TourCostMatchesEdgeSum(t *testing.T) {
	inst := twoClusters(t)

	res, err := tsp.Solve(inst, tsp.Options{})
	require.NoError(t, err)

	var sum float64
	for i := 0; i < len(res.Tour)-1; i++ {
		sum += inst.Cost(res.Tour[i], res.Tour[i+1], instance.MetricA)
	}
	require.Equal(t, sum, res.Cost)
}

func TestSolve_KSimilarFullOverlap(t *testing.T) {
	// k == n forces every edge shared: both tours are the same cycle, and
	// that cycle must be optimal for the combined objective. With identical
	// metrics the shared optimum is the plain single-tour optimum.
	inst := twoClusters(t)
	n := inst.Order()

	res, err := tsp.Solve(inst, tsp.Options{Similarity: n})
	require.NoError(t, err)
	require.True(t, res.Solver.Status.IsOptimal())

	requireClosedTour(t, res.Tour, n)
	requireClosedTour(t, res.SecondTour, n)
	require.Equal(t, n, res.Shared, "k == n leaves no unshared edge")
	require.Equal(t, bruteForceTour(t, inst, instance.MetricA), res.Cost)
	require.Equal(t, res.Cost, res.SecondCost, "identical metrics, identical edges")
}

func TestSolve_KSimilarDivergentMetrics(t *testing.T) {
	// MetricB reverses the cluster membership of vertices 2 and 5, so the
	// cheap tours under the two metrics disagree. The coupling still has
	// to find tours sharing at least k edges.
	inst := mkInstance(t,
		[4]float64{0, 0, 0, 0},
		[4]float64{10, 0, 10, 0},
		[4]float64{5, 8, 105, 8},
		[4]float64{100, 0, 100, 0},
		[4]float64{110, 0, 110, 0},
		[4]float64{105, 8, 5, 8},
	)
	const k = 2

	res, err := tsp.Solve(inst, tsp.Options{Similarity: k})
	require.NoError(t, err)
	require.True(t, res.Solver.Status.IsOptimal())

	n := inst.Order()
	requireClosedTour(t, res.Tour, n)
	requireClosedTour(t, res.SecondTour, n)
	require.GreaterOrEqual(t, res.Shared, k)

	// Each tour individually can never beat its own unconstrained optimum.
	require.GreaterOrEqual(t, res.Cost, bruteForceTour(t, inst, instance.MetricA))
	require.GreaterOrEqual(t, res.SecondCost, bruteForceTour(t, inst, instance.MetricB))
}

func TestSolve_KSimilarCombinedObjectiveIsMinimal(t *testing.T) {
	// With no coupling pressure (k == 0 but still two-tour y absent), the
	// single-tour run is the baseline; the k == 1 combined cost can never
	// drop below the sum of the two independent optima.
	inst := twoClusters(t)

	res, err := tsp.Solve(inst, tsp.Options{Similarity: 1})
	require.NoError(t, err)

	lowerBound := bruteForceTour(t, inst, instance.MetricA) + bruteForceTour(t, inst, instance.MetricB)
	require.GreaterOrEqual(t, res.Cost+res.SecondCost, lowerBound)
	require.Equal(t, lowerBound, res.Cost+res.SecondCost,
		"identical metrics: both tours can sit on the shared optimum")
}

func TestSolve_TimeLimitPreservesIncumbent(t *testing.T) {
	// Seven tight triangles far apart: the expired deadline stops the
	// search long before an optimality proof, but the best tour accepted
	// up to that point must survive the timeout as a valid result rather
	// than be discarded.
	var vs [][4]float64
	for c := 0; c < 7; c++ {
		cx := float64(c * 1000)
		for _, off := range [][2]float64{{0, 0}, {10, 0}, {5, 8}} {
			x, y := cx+off[0], off[1]
			vs = append(vs, [4]float64{x, y, x, y})
		}
	}
	inst := mkInstance(t, vs...)

	res, err := tsp.Solve(inst, tsp.Options{TimeLimit: time.Nanosecond})
	require.NoError(t, err)
	require.True(t, res.Solver.Status.IsTimeLimit())
	require.GreaterOrEqual(t, res.Solver.SolCount, 1,
		"this instance yields an incumbent before the first deadline check")
	requireClosedTour(t, res.Tour, inst.Order())

	var sum float64
	for i := 0; i < len(res.Tour)-1; i++ {
		sum += inst.Cost(res.Tour[i], res.Tour[i+1], instance.MetricA)
	}
	require.Equal(t, sum, res.Cost)
}
