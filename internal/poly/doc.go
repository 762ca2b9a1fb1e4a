// Package poly provides the single-variable polynomial model and its text
// front end.
//
// The package is organised leaf-first:
//
//   - [Term]: immutable monomial (coefficient, variable, exponent)
//   - [Polynomial]: ordered collection of terms with derived queries
//   - [IsWellFormed] and [SplitTerms]: grammar gatekeeping and term splitting
//   - [ParseTerm] and [Parse]: lenient conversion from text to terms
//   - [ValidatePolynomial]: strict, user-facing validation
//   - [Normalize]: like-term merging and canonical ordering
//
// # Example
//
//	p := poly.Normalize(poly.Parse("x^2 + 2x - 3x + 1"))
//	fmt.Println(p)          // x^2 - x + 1
//	fmt.Println(p.Degree()) // 2
//
// # Thread Safety
//
// Every function in this package is pure. Terms and polynomials are never
// mutated after construction, so values may be shared freely between
// goroutines.
package poly
