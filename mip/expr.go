package mip

// LinExpr is an additive builder for linear expressions over variables.
// The zero value is an empty expression ready for use.
//
// Expressions are value types: passing one to AddConstr or AddLazy copies
// its terms, so a builder can be reused afterwards.
type LinExpr struct {
	terms []Term
}

// Add appends v with coefficient 1.
func (e *LinExpr) Add(v Var) { e.AddTerm(v, 1) }

// AddTerm appends one coefficient·variable term. Terms are not merged;
// repeating a variable sums naturally during evaluation.
func (e *LinExpr) AddTerm(v Var, coef float64) {
	e.terms = append(e.terms, Term{Var: v, Coef: coef})
}

// Len returns the number of terms.
func (e *LinExpr) Len() int { return len(e.terms) }

// Terms returns the underlying term slice (read-only by convention).
func (e *LinExpr) Terms() []Term { return e.terms }

// cloneTerms copies the term slice so constraints own their storage.
func (e *LinExpr) cloneTerms() []Term {
	out := make([]Term, len(e.terms))
	copy(out, e.terms)

	return out
}
