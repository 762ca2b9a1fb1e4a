package poly

import (
	"errors"
	"fmt"
)

// Validation errors reported by ValidatePolynomial.
var (
	// ErrEmpty indicates blank input.
	ErrEmpty = errors.New("poly: polynomial cannot be empty")

	// ErrMalformed indicates input that does not match the polynomial grammar.
	ErrMalformed = errors.New("poly: invalid polynomial format, use the form ax^2 + bx + c")

	// ErrInvalidTerm indicates a term substring that matches no term shape.
	ErrInvalidTerm = errors.New("poly: invalid term")

	// ErrNoTerms indicates that no term could be extracted.
	ErrNoTerms = errors.New("poly: no valid terms found")

	// ErrExponentTooLarge indicates a term whose exponent exceeds MaxExponent.
	ErrExponentTooLarge = errors.New("poly: exponent too large")
)

// TermError names the offending substring of an ErrInvalidTerm failure.
type TermError struct {
	Term string
}

func (e *TermError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidTerm.Error(), e.Term)
}

func (e *TermError) Unwrap() error {
	return ErrInvalidTerm
}

// ExponentError names the term behind an ErrExponentTooLarge failure.
type ExponentError struct {
	Term     string
	Exponent int
}

func (e *ExponentError) Error() string {
	return fmt.Sprintf("%s: %q has exponent %d, the limit is %d", ErrExponentTooLarge.Error(), e.Term, e.Exponent, MaxExponent)
}

func (e *ExponentError) Unwrap() error {
	return ErrExponentTooLarge
}
