package subtour

// Adjacency is the read view of a candidate matrix the decomposition walks:
// matrix order plus symmetric edge membership. *matrix.Bool satisfies it;
// tests may substitute their own.
type Adjacency interface {
	// N returns the matrix order.
	N() int
	// At reports whether edge (u, v) is selected.
	At(u, v int) bool
}

// walker decomposes a candidate matrix into vertex-disjoint cycles.
// One walker serves one decomposition; the seen markers are its only state.
type walker struct {
	s    Adjacency
	n    int
	seen []bool
}

// nextStart returns the lowest-index unseen vertex, or -1 when all vertices
// are seen. The fixed lowest-index rule is the tie-break that makes the
// reported cycle deterministic among several of equal minimum length.
func (w *walker) nextStart() int {
	var u int
	for u = 0; u < w.n; u++ {
		if !w.seen[u] {
			return u
		}
	}

	return -1
}

// nextUnseen returns the first unseen candidate-matrix neighbor of u in
// index order, or -1 when none remains (cycle closed).
func (w *walker) nextUnseen(u int) int {
	var v int
	for v = 0; v < w.n; v++ {
		if w.s.At(u, v) && !w.seen[v] {
			return v
		}
	}

	return -1
}

// cycle walks forward from start, marking vertices seen, until no unseen
// neighbor remains. The walk is bounded by n steps: under the degree-2
// invariant the bound is never reached, and without it the bound keeps the
// walk finite.
func (w *walker) cycle(start int) []int {
	var (
		out  = make([]int, 0, w.n)
		node = start
		step int
	)
	for step = 0; step < w.n; step++ {
		w.seen[node] = true
		out = append(out, node)

		node = w.nextUnseen(node)
		if node == -1 {
			break
		}
	}

	return out
}

// Decompose partitions the vertex index space 0..n-1 into the disjoint
// cycles implied by the candidate matrix s: repeatedly start a new cycle at
// the lowest-index unseen vertex and walk it to closure. The returned
// cycles cover all vertices exactly once.
//
// Contract: every vertex has degree 2 in s (see VerifyDegrees); behavior is
// unspecified otherwise, beyond termination.
//
// Complexity: O(n²) time, O(n) space.
func Decompose(s Adjacency) [][]int {
	var (
		w      = walker{s: s, n: s.N(), seen: make([]bool, s.N())}
		cycles [][]int
		start  int
	)
	for start = w.nextStart(); start != -1; start = w.nextStart() {
		cycles = append(cycles, w.cycle(start))
	}

	return cycles
}

// ShortestCycle returns the cycle with fewest vertices among the
// decomposition of s; the traversal order fixes which cycle wins a tie
// (first found, i.e. the one holding the lowest start index).
//
// A single Hamiltonian cycle yields the full n-vertex list — length == n
// signals "no violation" to the cut emitter.
//
// Complexity: O(n²).
func ShortestCycle(s Adjacency) []int {
	var best []int
	for _, c := range Decompose(s) {
		if best == nil || len(c) < len(best) {
			best = c
		}
	}

	return best
}
