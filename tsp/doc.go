// Package tsp formulates the Travelling Salesman Problem — and its
// two-tour k-similar generalization — as a 0/1 integer linear program
// solved by branch-and-cut with lazy subtour elimination.
//
// Single-tour mode (Options.Similarity == 0): one binary variable per
// unordered vertex pair with the MetricA cost as objective coefficient,
// a degree==2 equality constraint per vertex, and one subtour.Eliminator
// injecting the exponential family of subtour-elimination constraints
// lazily, only when the search discovers a candidate that violates one.
//
// k-similar mode (Similarity == k ≥ 1): two independent edge-variable sets,
// one tour costed under MetricA and one under MetricB, each carrying its
// own degree constraints and its own Eliminator (subtour elimination is
// structurally independent per tour). A shared-edge indicator z_uv with
// z ≤ x_uv, z ≤ y_uv and Σ z ≥ k couples the tours: the two Hamiltonian
// cycles must share at least k edges. The coupling is an ordinary
// constraint, not a lazy one. The objective minimizes the sum of both tour
// costs.
//
// Solve blocks until the solver terminates, then reconstructs the tour(s)
// from the best incumbent and reports them together with the solver's
// post-solve statistics.
package tsp
