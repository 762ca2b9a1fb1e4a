package poly

import (
	"math"
	"strconv"
	"strings"
)

// UnitCoefficientFallback is the coefficient assumed when a coefficient
// literal cannot be read as a number. Parsing tolerates such input rather
// than failing.
const UnitCoefficientFallback = 1.0

// MaxExponent is the largest exponent ValidatePolynomial accepts. Parse
// itself stays lenient and keeps larger exponents.
const MaxExponent = 1000

// ParseCoefficient reads a signed coefficient literal. An empty string or a
// lone "+" means 1 and a lone "-" means -1.
func ParseCoefficient(s string) float64 {
	s = StripSpace(s)
	switch s {
	case "", "+":
		return 1
	case "-":
		return -1
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return UnitCoefficientFallback
	}
	return v
}

// ParseTerm converts one term substring into a Term. Shapes are tried in a
// fixed order: quadratic, explicit power, linear, constant. The boolean is
// false when no shape matches.
func ParseTerm(s string) (Term, bool) {
	cleaned := StripSpace(s)
	if cleaned == "" {
		return Term{}, false
	}

	if m := quadraticRE.FindStringSubmatch(cleaned); m != nil {
		return NewTerm(ParseCoefficient(m[1]), m[2], 2), true
	}
	if m := powerRE.FindStringSubmatch(cleaned); m != nil {
		exp, ok := parseExponent(m[3])
		if !ok {
			return Term{}, false
		}
		return NewTerm(ParseCoefficient(m[1]), m[2], exp), true
	}
	if m := linearRE.FindStringSubmatch(cleaned); m != nil {
		return NewTerm(ParseCoefficient(m[1]), m[2], 1), true
	}
	if m := constantRE.FindStringSubmatch(cleaned); m != nil {
		return Constant(ParseCoefficient(m[1])), true
	}
	return Term{}, false
}

// parseExponent reads "^n" or a run of superscript digits.
func parseExponent(s string) (int, bool) {
	if rest, ok := strings.CutPrefix(s, "^"); ok {
		n, err := strconv.Atoi(rest)
		return n, err == nil
	}
	n := 0
	for _, r := range s {
		d := superscriptValue(r)
		if d < 0 || n > (math.MaxInt32-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}

func superscriptValue(r rune) int {
	for i, s := range superscriptDigits {
		if s == r {
			return i
		}
	}
	return -1
}

// Parse converts text into an unnormalized Polynomial. It never fails:
// substrings that match no term shape are dropped.
func Parse(text string) Polynomial {
	parts := SplitTerms(text)
	terms := make([]Term, 0, len(parts))
	for _, part := range parts {
		if t, ok := ParseTerm(part); ok {
			terms = append(terms, t)
		}
	}
	return Polynomial{terms: terms}
}

// ValidationResult reports the outcome of ValidatePolynomial. TermCount and
// Degree are set only when Valid is true.
type ValidationResult struct {
	Valid     bool  `json:"valid"`
	Err       error `json:"-"`
	TermCount int   `json:"terms,omitempty"`
	Degree    int   `json:"degree"`
}

// Message returns the error text, or "" for a valid result.
func (r ValidationResult) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// ValidatePolynomial checks text strictly, in order: blank input, grammar,
// each term substring and its exponent, and finally that at least one term
// was found.
func ValidatePolynomial(text string) ValidationResult {
	cleaned := StripSpace(text)
	if cleaned == "" {
		return ValidationResult{Err: ErrEmpty}
	}
	if !polynomialRE.MatchString(cleaned) {
		return ValidationResult{Err: ErrMalformed}
	}

	parts := SplitTerms(cleaned)
	for _, part := range parts {
		t, ok := ParseTerm(part)
		if !ok {
			return ValidationResult{Err: &TermError{Term: part}}
		}
		if t.Exponent() > MaxExponent {
			return ValidationResult{Err: &ExponentError{Term: part, Exponent: t.Exponent()}}
		}
	}
	if len(parts) == 0 {
		return ValidationResult{Err: ErrNoTerms}
	}

	return ValidationResult{
		Valid:     true,
		TermCount: len(parts),
		Degree:    Parse(cleaned).Degree(),
	}
}
