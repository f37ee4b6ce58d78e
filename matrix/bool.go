package matrix

// Bool is an n×n symmetric boolean adjacency matrix with flat row-major
// storage. The zero value is unusable; construct via NewBool.
type Bool struct {
	n    int
	data []bool // length n*n, data[u*n+v]
}

// NewBool returns an n×n Bool with every entry false.
// Contract: n ≥ 0.
//
// Complexity: O(n²).
func NewBool(n int) *Bool {
	return &Bool{n: n, data: make([]bool, n*n)}
}

// N returns the matrix order.
func (b *Bool) N() int { return b.n }

// At reports whether the edge (u, v) is selected.
// Contract: 0 ≤ u, v < N(). The diagonal is always false.
//
// Complexity: O(1).
func (b *Bool) At(u, v int) bool { return b.data[u*b.n+v] }

// SetSym assigns sel to both orientations (u, v) and (v, u).
// Contract: 0 ≤ u, v < N(), u ≠ v.
//
// Complexity: O(1).
func (b *Bool) SetSym(u, v int, sel bool) {
	b.data[u*b.n+v] = sel
	b.data[v*b.n+u] = sel
}

// Degree returns the number of selected edges incident to u.
//
// Complexity: O(n).
func (b *Bool) Degree(u int) int {
	var (
		row = b.data[u*b.n : (u+1)*b.n]
		deg int
	)
	for _, sel := range row {
		if sel {
			deg++
		}
	}

	return deg
}

// Equal reports entry-wise equality with o (same order, same entries).
//
// Complexity: O(n²).
func (b *Bool) Equal(o *Bool) bool {
	if b.n != o.n {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}

	return true
}
