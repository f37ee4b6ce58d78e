// Package subtour_test — shared helpers: candidate matrices built from
// cycle lists, a fake candidate reader, and a capturing cut pool.
package subtour_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kstsp-dev/kstsp/matrix"
	"github.com/kstsp-dev/kstsp/mip"
)

// mkCycles builds an n×n candidate matrix whose selected edges are exactly
// the consecutive (wrap-around) pairs of each given cycle. Cycles of length
// 2 select the single edge between the pair twice, which the symmetric
// matrix collapses to one edge (the degenerate two-vertex cycle).
func mkCycles(t *testing.T, n int, cycles ...[]int) *matrix.Bool {
	t.Helper()
	s := matrix.NewBool(n)
	for _, c := range cycles {
		require.NotEmpty(t, c)
		for i := range c {
			s.SetSym(c[i], c[(i+1)%len(c)], true)
		}
	}

	return s
}

// randomCycleCover partitions 0..n-1 into random cycles of length ≥ 2 using
// a seeded RNG, returning both the matrix and the expected partition.
func randomCycleCover(t *testing.T, n int, seed int64) (*matrix.Bool, [][]int) {
	t.Helper()
	var (
		rng  = rand.New(rand.NewSource(seed))
		perm = rng.Perm(n)
		out  [][]int
		at   int
	)
	for at < n {
		rest := n - at
		size := 2
		if rest > 3 {
			size = 2 + rng.Intn(rest-3) // keep ≥ 2 vertices for the remainder
		}
		if rest-size == 1 || size > rest {
			size = rest
		}
		out = append(out, perm[at:at+size])
		at += size
	}

	return mkCycles(t, n, out...), out
}

// fakeCandidate serves variable values from a map; unset handles read 0.
type fakeCandidate map[mip.Var]float64

func (f fakeCandidate) Value(v mip.Var) float64 { return f[v] }

// capturedCut is one AddLazy invocation.
type capturedCut struct {
	expr  mip.LinExpr
	sense mip.Sense
	rhs   float64
}

// capturePool records every submitted cut.
type capturePool struct {
	cuts []capturedCut
}

func (p *capturePool) AddLazy(expr mip.LinExpr, sense mip.Sense, rhs float64) {
	p.cuts = append(p.cuts, capturedCut{expr: expr, sense: sense, rhs: rhs})
}

// mkVars numbers one variable per unordered pair of 0..n-1 in row order,
// mirroring how the formulation builds its edge-variable matrix.
func mkVars(n int) *matrix.Vars {
	var (
		vs   = matrix.NewVars(n)
		next mip.Var
	)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			vs.SetPair(u, v, next)
			next++
		}
	}

	return vs
}

// candidateFromBool exposes a Bool matrix through the Candidate interface
// using the pair numbering of mkVars.
func candidateFromBool(s *matrix.Bool, vars *matrix.Vars) fakeCandidate {
	out := fakeCandidate{}
	for u := 0; u < s.N(); u++ {
		for v := u + 1; v < s.N(); v++ {
			if s.At(u, v) {
				out[vars.At(u, v)] = 1
			}
		}
	}

	return out
}
