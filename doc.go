// Package kstsp formulates the Travelling Salesman Problem — and its
// two-tour k-similar generalization — as an integer linear program solved
// by branch-and-cut, where the exponential family of subtour-elimination
// constraints is not enumerated up front but injected lazily whenever the
// search discovers an integer-feasible candidate that violates one.
//
// The module is organized one concern per subpackage:
//
//	instance/ — vertex records under two metrics, file loading, seeded sampling
//	matrix/   — symmetric candidate-solution and edge-variable matrices
//	mip/      — the solver boundary (callback contract, lazy cuts) plus a
//	            pure-Go exact reference backend
//	subtour/  — the core: cycle decomposition, shortest-subtour detection,
//	            lazy-cut emission
//	tsp/      — the single-tour and k-similar formulations
//	cmd/kstsp — the CLI
//
// The subtour engine is solver-agnostic: it consumes only the two
// capabilities the callback window grants — read a candidate value, submit
// a lazy cut — so any backend implementing the mip boundary can drive it.
package kstsp
