package matrix

import "github.com/kstsp-dev/kstsp/mip"

// Vars is an n×n symmetric matrix of solver variable handles: one binary
// decision variable per unordered vertex pair, stored under both
// orientations so either endpoint order resolves to the same handle.
// The diagonal holds mip.NoVar.
//
// Built once per solve by the model owner; read-only thereafter.
type Vars struct {
	n    int
	data []mip.Var // length n*n, data[u*n+v]
}

// NewVars returns an n×n Vars with every entry mip.NoVar.
// Contract: n ≥ 0.
//
// Complexity: O(n²).
func NewVars(n int) *Vars {
	v := &Vars{n: n, data: make([]mip.Var, n*n)}
	for i := range v.data {
		v.data[i] = mip.NoVar
	}

	return v
}

// N returns the matrix order.
func (m *Vars) N() int { return m.n }

// At returns the variable handle for the unordered pair {u, v}.
// Contract: 0 ≤ u, v < N(), u ≠ v, pair previously set.
//
// Complexity: O(1).
func (m *Vars) At(u, v int) mip.Var { return m.data[u*m.n+v] }

// SetPair stores x under both (u, v) and (v, u).
// Contract: 0 ≤ u, v < N(), u ≠ v.
//
// Complexity: O(1).
func (m *Vars) SetPair(u, v int, x mip.Var) {
	m.data[u*m.n+v] = x
	m.data[v*m.n+u] = x
}
