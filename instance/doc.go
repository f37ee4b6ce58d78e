// Package instance models the problem input: an ordered collection of
// vertices carrying two independent coordinate pairs, with an integer-rounded
// Euclidean cost function per metric.
//
// It covers three concerns:
//
//   - Vertex / Instance records — immutable once constructed; vertex IDs are
//     assigned explicitly by the loader (1..n in input order), so construction
//     is reproducible and free of hidden global counters.
//
//   - Loading — Load / LoadFile parse one vertex per line as four
//     whitespace-separated reals (x1 y1 x2 y2). Malformed or empty input
//     fails fast with sentinel errors before any model is built.
//
//   - Sampling — Sample selects a fixed-size sub-instance with a seeded
//     deterministic RNG: the same seed and input always yield the same
//     sub-instance.
//
// Costs are symmetric and non-negative by construction:
// Cost(u,v,m) = ⌈hypot(Δx, Δy)⌉ under metric m's coordinate pair.
//
// The package performs no logging and never panics on user input — only
// sentinel errors from types.go.
package instance
