package subtour

import "errors"

// ErrDegenerateCandidate is returned when a candidate matrix has a vertex
// with degree ≠ 2, violating the invariant the upstream degree constraints
// enforce. Silently continuing could emit an invalid cut and make the model
// incorrectly infeasible or prune valid tours, so callers must treat this
// as fatal for the whole solve.
var ErrDegenerateCandidate = errors.New("subtour: candidate vertex degree != 2")
