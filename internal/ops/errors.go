package ops

import (
	"errors"
	"fmt"
)

// Precondition errors reported by the validator.
var (
	// ErrIncompleteOperands indicates a blank operand.
	ErrIncompleteOperands = errors.New("ops: both polynomials must be filled in")

	// ErrNoValidTerms indicates an operand without any recognizable term.
	ErrNoValidTerms = errors.New("ops: polynomials must contain valid terms")

	// ErrDivisionByZero indicates a divisor equal to the zero polynomial.
	ErrDivisionByZero = errors.New("ops: cannot divide by zero")

	// ErrDegreeCeiling indicates a product too large to lay out as tiles.
	ErrDegreeCeiling = errors.New("ops: result would be too complex to visualize")

	// ErrUnknownOperation indicates an unrecognized operation name.
	ErrUnknownOperation = errors.New("ops: unknown operation")

	// ErrOperandDegree indicates an operand whose degree exceeds the
	// validator's limit.
	ErrOperandDegree = errors.New("ops: operand degree too large")
)

// Faults raised while an operation runs. They reach callers wrapped in an
// *OperationError.
var (
	// ErrNonFinite indicates a coefficient that overflowed to an infinity or
	// became NaN.
	ErrNonFinite = errors.New("ops: coefficient out of range")

	// ErrDividendDegree indicates a dividend beyond poly.MaxExponent.
	ErrDividendDegree = errors.New("ops: dividend degree too large to divide")
)

// DegreeCeilingError carries the degrees behind an ErrDegreeCeiling failure.
type DegreeCeilingError struct {
	Combined int
	Ceiling  int
}

func (e *DegreeCeilingError) Error() string {
	return fmt.Sprintf("%s (combined degree %d exceeds %d)", ErrDegreeCeiling.Error(), e.Combined, e.Ceiling)
}

func (e *DegreeCeilingError) Unwrap() error {
	return ErrDegreeCeiling
}

// OperandDegreeError carries the degrees behind an ErrOperandDegree failure.
type OperandDegreeError struct {
	Degree int
	Max    int
}

func (e *OperandDegreeError) Error() string {
	return fmt.Sprintf("%s (degree %d exceeds %d)", ErrOperandDegree.Error(), e.Degree, e.Max)
}

func (e *OperandDegreeError) Unwrap() error {
	return ErrOperandDegree
}

// OperationError wraps a fault raised while an operation was running.
type OperationError struct {
	Kind    Kind
	Wrapped error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Kind, e.Wrapped)
}

func (e *OperationError) Unwrap() error {
	return e.Wrapped
}

// guard converts a panic inside fn into an *OperationError.
func guard[T any](kind Kind, fn func() (T, error)) (out T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			out = zero
			if e, ok := rec.(error); ok {
				err = &OperationError{Kind: kind, Wrapped: e}
			} else {
				err = &OperationError{Kind: kind, Wrapped: fmt.Errorf("%v", rec)}
			}
		}
	}()
	out, err = fn()
	if err != nil {
		var opErr *OperationError
		if !errors.As(err, &opErr) {
			err = &OperationError{Kind: kind, Wrapped: err}
		}
	}
	return out, err
}
