package instance

import (
	"errors"
	"math"
)

// ErrEmptyInstance is returned when the input holds no vertex records
// (missing file contents, or nothing but blank lines).
var ErrEmptyInstance = errors.New("instance: empty or missing input")

// ErrMalformedRecord is returned when a line does not parse as exactly
// four real numbers. Load wraps it with the offending 1-based line number.
var ErrMalformedRecord = errors.New("instance: malformed record")

// ErrNotEnoughVertices is returned when a requested sample size exceeds
// the available vertex count. Sample wraps it with both counts.
var ErrNotEnoughVertices = errors.New("instance: not enough vertices")

// Metric selects which of the two coordinate pairs a cost is derived from.
type Metric uint8

const (
	// MetricA is the first coordinate pair (x1, y1).
	MetricA Metric = iota
	// MetricB is the second coordinate pair (x2, y2).
	MetricB
)

// Point is a 2-D coordinate under one metric.
type Point struct {
	X float64
	Y float64
}

// Dist returns the ceiling of the Euclidean distance to q.
// Symmetric and non-negative by construction.
//
// Complexity: O(1).
func (p Point) Dist(q Point) float64 {
	return math.Ceil(math.Hypot(p.X-q.X, p.Y-q.Y))
}

// Vertex is an immutable input record: a unique positive identifier plus one
// coordinate pair per metric. IDs are stable for the process lifetime and
// never reused; the loader assigns them in input order starting at 1.
type Vertex struct {
	// ID is the positive identifier assigned at construction.
	ID int
	// A is the coordinate pair under MetricA.
	A Point
	// B is the coordinate pair under MetricB.
	B Point
}

// Instance is a finite ordered collection of vertices — the unit of problem
// size. Positions (0-based contiguous indices) are distinct from vertex IDs:
// model matrices are indexed by position, reporting uses IDs.
type Instance struct {
	vertices []Vertex
}

// New builds an Instance from vertices as given (order preserved).
// The caller owns ID uniqueness; Load assigns IDs for file input.
func New(vertices []Vertex) Instance {
	out := make([]Vertex, len(vertices))
	copy(out, vertices)

	return Instance{vertices: out}
}

// Order returns the number of vertices.
//
// Complexity: O(1).
func (in Instance) Order() int { return len(in.vertices) }

// Vertex returns the vertex at position i (0-based).
// Contract: 0 ≤ i < Order().
func (in Instance) Vertex(i int) Vertex { return in.vertices[i] }

// Vertices returns a copy of the vertex slice (the Instance stays immutable).
//
// Complexity: O(n).
func (in Instance) Vertices() []Vertex {
	out := make([]Vertex, len(in.vertices))
	copy(out, in.vertices)

	return out
}

// Cost returns the integer-rounded Euclidean distance between the vertices
// at positions i and j under metric m.
//
// Contract: 0 ≤ i, j < Order(). Symmetric: Cost(i,j,m) == Cost(j,i,m).
//
// Complexity: O(1).
func (in Instance) Cost(i, j int, m Metric) float64 {
	u, v := in.vertices[i], in.vertices[j]
	if m == MetricB {
		return u.B.Dist(v.B)
	}

	return u.A.Dist(v.A)
}
