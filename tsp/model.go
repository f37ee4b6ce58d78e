package tsp

import (
	"fmt"

	"github.com/kstsp-dev/kstsp/instance"
	"github.com/kstsp-dev/kstsp/matrix"
	"github.com/kstsp-dev/kstsp/mip"
	"github.com/kstsp-dev/kstsp/subtour"
)

// tourDegree is the degree every vertex has in a Hamiltonian cycle.
const tourDegree = 2.0

// model is one built formulation: the mip model plus the edge-variable
// matrices the reconstruction needs after the solve.
type model struct {
	inst instance.Instance
	n    int
	mdl  *mip.Model

	x *matrix.Vars // MetricA tour
	y *matrix.Vars // MetricB tour, nil in single-tour mode
}

// build assembles the formulation for inst under opts: edge variables,
// degree constraints and eliminators per tour, and — in k-similar mode —
// the shared-edge coupling.
func build(inst instance.Instance, opts Options) (*model, error) {
	m := &model{inst: inst, n: inst.Order(), mdl: mip.NewModel()}

	m.x = m.addTourVars(instance.MetricA, "x")
	if err := m.addDegreeConstraints(m.x); err != nil {
		return nil, err
	}

	if opts.Similarity == 0 {
		m.mdl.SetCallback(subtour.NewEliminator(m.x))

		return m, nil
	}

	m.y = m.addTourVars(instance.MetricB, "y")
	if err := m.addDegreeConstraints(m.y); err != nil {
		return nil, err
	}
	if err := m.addSimilarity(opts.Similarity); err != nil {
		return nil, err
	}

	// Subtour elimination is structurally independent per tour: both
	// eliminators observe every candidate, each emitting at most one cut.
	var (
		elimX = subtour.NewEliminator(m.x)
		elimY = subtour.NewEliminator(m.y)
	)
	m.mdl.SetCallback(mip.CallbackFunc(func(cand mip.Candidate, cuts mip.CutPool) error {
		if err := elimX.OnCandidate(cand, cuts); err != nil {
			return err
		}

		return elimY.OnCandidate(cand, cuts)
	}))

	return m, nil
}

// addTourVars creates one binary variable per unordered vertex pair with
// the metric-m cost as objective coefficient. Variable names carry vertex
// IDs (not positions) for diagnostics.
func (m *model) addTourVars(metric instance.Metric, prefix string) *matrix.Vars {
	var (
		vars = matrix.NewVars(m.n)
		u    int
		v    int
	)
	for u = 0; u < m.n; u++ {
		for v = u + 1; v < m.n; v++ {
			name := fmt.Sprintf("%s_%d_%d", prefix, m.inst.Vertex(u).ID, m.inst.Vertex(v).ID)
			vars.SetPair(u, v, m.mdl.AddBinaryVar(m.inst.Cost(u, v, metric), name))
		}
	}

	return vars
}

// addDegreeConstraints adds Σ_{v≠u} x_uv == 2 for every vertex u. These are
// the eager constraints that make every integer-feasible candidate a
// disjoint cycle cover, which the subtour engine relies on.
func (m *model) addDegreeConstraints(vars *matrix.Vars) error {
	var (
		u int
		v int
	)
	for u = 0; u < m.n; u++ {
		var expr mip.LinExpr
		for v = 0; v < m.n; v++ {
			if v != u {
				expr.Add(vars.At(u, v))
			}
		}
		if err := m.mdl.AddConstr(expr, mip.Equal, tourDegree); err != nil {
			return err
		}
	}

	return nil
}

// addSimilarity couples the two tours: a binary indicator z_uv may be 1
// only when both tours select the edge (z ≤ x_uv and z ≤ y_uv), and at
// least k indicators must be 1. A single ordinary linear constraint family,
// never lazy.
func (m *model) addSimilarity(k int) error {
	var (
		total mip.LinExpr
		u     int
		v     int
	)
	for u = 0; u < m.n; u++ {
		for v = u + 1; v < m.n; v++ {
			name := fmt.Sprintf("z_%d_%d", m.inst.Vertex(u).ID, m.inst.Vertex(v).ID)
			z := m.mdl.AddBinaryVar(0, name)

			var belowX, belowY mip.LinExpr
			belowX.Add(z)
			belowX.AddTerm(m.x.At(u, v), -1)
			if err := m.mdl.AddConstr(belowX, mip.LessEqual, 0); err != nil {
				return err
			}
			belowY.Add(z)
			belowY.AddTerm(m.y.At(u, v), -1)
			if err := m.mdl.AddConstr(belowY, mip.LessEqual, 0); err != nil {
				return err
			}

			total.Add(z)
		}
	}

	return m.mdl.AddConstr(total, mip.GreaterEqual, float64(k))
}
