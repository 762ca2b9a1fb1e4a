package ops

import (
	"strings"

	"github.com/san-kum/polybox/internal/poly"
)

// DefaultDegreeCeiling bounds the combined degree of a multiplication so the
// tile rectangle stays small enough to lay out.
const DefaultDegreeCeiling = 6

// DefaultMaxDegree bounds the normalized degree of each operand, whatever
// the operation.
const DefaultMaxDegree = 12

// Check is the outcome of an operation pre-flight.
type Check struct {
	Valid bool
	Err   error
}

// Message returns the error text, or "" for a valid check.
func (c Check) Message() string {
	if c.Err == nil {
		return ""
	}
	return c.Err.Error()
}

// Validator runs the pre-flight checks for an operation. The zero value uses
// DefaultDegreeCeiling and DefaultMaxDegree.
type Validator struct {
	DegreeCeiling int
	MaxDegree     int
}

// ValidateOperation checks a and b for kind using the default ceiling.
func ValidateOperation(a, b string, kind Kind) Check {
	return Validator{}.Validate(a, b, kind)
}

// Validate requires both operands to be non-blank with at least one term and
// a degree within MaxDegree. It also rejects a zero divisor for division and
// a combined degree above the ceiling for multiplication.
func (v Validator) Validate(a, b string, kind Kind) Check {
	if !kind.valid() {
		return Check{Err: ErrUnknownOperation}
	}
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return Check{Err: ErrIncompleteOperands}
	}

	p, q := poly.Parse(a), poly.Parse(b)
	if p.TermCount() == 0 || q.TermCount() == 0 {
		return Check{Err: ErrNoValidTerms}
	}

	np, nq := poly.Normalize(p), poly.Normalize(q)
	limit := v.maxDegree()
	for _, n := range []poly.Polynomial{np, nq} {
		if n.Degree() > limit {
			return Check{Err: &OperandDegreeError{Degree: n.Degree(), Max: limit}}
		}
	}

	switch kind {
	case Division:
		if nq.IsZero() {
			return Check{Err: ErrDivisionByZero}
		}
	case Multiplication:
		ceiling := v.ceiling()
		combined := np.Degree() + nq.Degree()
		if combined > ceiling {
			return Check{Err: &DegreeCeilingError{Combined: combined, Ceiling: ceiling}}
		}
	}
	return Check{Valid: true}
}

func (v Validator) ceiling() int {
	if v.DegreeCeiling <= 0 {
		return DefaultDegreeCeiling
	}
	return v.DegreeCeiling
}

func (v Validator) maxDegree() int {
	if v.MaxDegree <= 0 {
		return DefaultMaxDegree
	}
	return v.MaxDegree
}
