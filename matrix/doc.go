// Package matrix provides the two square symmetric containers the
// formulation and the subtour engine share:
//
//   - Bool — a candidate-solution adjacency matrix (edge selected / not),
//     rebuilt fresh on every callback invocation and never shared across
//     invocations.
//
//   - Vars — the edge-variable matrix: one solver variable per unordered
//     vertex pair, addressable from both orientations, built once per solve
//     and read-only thereafter.
//
// Both use flat row-major storage (index u*n+v) for cache friendliness.
// Indices are 0-based contiguous vertex positions, not vertex IDs, and the
// diagonal is unused. Accessors document their contracts instead of
// returning errors: these containers live on the callback hot path and are
// only handed indices the owning code already validated.
package matrix
