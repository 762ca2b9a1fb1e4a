package poly

import (
	"strconv"
	"strings"
)

// Shape classifies a term by its exponent.
type Shape int

const (
	ShapeConstant Shape = iota
	ShapeLinear
	ShapeQuadratic
	ShapeHigher
)

func (s Shape) String() string {
	switch s {
	case ShapeConstant:
		return "constant"
	case ShapeLinear:
		return "linear"
	case ShapeQuadratic:
		return "quadratic"
	default:
		return "polynomial"
	}
}

// Key identifies like terms.
type Key struct {
	Variable string
	Exponent int
}

// Term is a single monomial coefficient·variable^exponent.
type Term struct {
	coefficient float64
	variable    string
	exponent    int
}

// NewTerm builds a term. A zero exponent drops the variable so that every
// constant shares the ("", 0) key; a negative exponent is clamped to zero.
func NewTerm(coefficient float64, variable string, exponent int) Term {
	if exponent <= 0 {
		return Term{coefficient: coefficient}
	}
	if variable == "" {
		return Term{coefficient: coefficient}
	}
	return Term{coefficient: coefficient, variable: variable, exponent: exponent}
}

// Constant returns the term c.
func Constant(c float64) Term { return Term{coefficient: c} }

func (t Term) Coefficient() float64 { return t.coefficient }
func (t Term) Variable() string     { return t.variable }
func (t Term) Exponent() int        { return t.exponent }
func (t Term) Key() Key             { return Key{Variable: t.variable, Exponent: t.exponent} }
func (t Term) IsZero() bool         { return t.coefficient == 0 }

// Degree is the exponent for terms carrying a variable, 0 otherwise.
func (t Term) Degree() int {
	if t.variable == "" {
		return 0
	}
	return t.exponent
}

func (t Term) Shape() Shape {
	switch t.exponent {
	case 0:
		return ShapeConstant
	case 1:
		return ShapeLinear
	case 2:
		return ShapeQuadratic
	default:
		return ShapeHigher
	}
}

// IsLike reports whether t and other share a key.
func (t Term) IsLike(other Term) bool {
	return t.Key() == other.Key()
}

// Equal reports structural equality.
func (t Term) Equal(other Term) bool {
	return t.IsLike(other) && t.coefficient == other.coefficient
}

func (t Term) Negate() Term {
	return Term{coefficient: -t.coefficient, variable: t.variable, exponent: t.exponent}
}

// Scale multiplies the coefficient by f.
func (t Term) Scale(f float64) Term {
	return Term{coefficient: t.coefficient * f, variable: t.variable, exponent: t.exponent}
}

// Times multiplies two terms. The variable comes from whichever factor
// carries one, preferring t.
func (t Term) Times(other Term) Term {
	v := t.variable
	if v == "" {
		v = other.variable
	}
	return NewTerm(t.coefficient*other.coefficient, v, t.exponent+other.exponent)
}

// String renders the term in caret notation, e.g. "-3x^2".
func (t Term) String() string {
	return t.Format(Caret)
}

// Pretty renders the term with superscript exponents, e.g. "-3x²".
func (t Term) Pretty() string {
	return t.Format(Superscript)
}

// Format renders the term in notation n.
func (t Term) Format(n Notation) string {
	if t.exponent == 0 {
		return FormatNumber(t.coefficient)
	}
	var b strings.Builder
	switch t.coefficient {
	case 1:
	case -1:
		b.WriteByte('-')
	default:
		b.WriteString(FormatNumber(t.coefficient))
	}
	b.WriteString(t.variable)
	if t.exponent != 1 {
		b.WriteString(n.exponent(t.exponent))
	}
	return b.String()
}

// Notation selects how exponents are written.
type Notation int

const (
	Caret Notation = iota
	Superscript
)

// ParseNotation maps "caret" and "superscript" to a Notation.
func ParseNotation(name string) (Notation, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "caret", "^":
		return Caret, true
	case "superscript", "pretty", "unicode":
		return Superscript, true
	}
	return Caret, false
}

func (n Notation) String() string {
	if n == Superscript {
		return "superscript"
	}
	return "caret"
}

var superscriptDigits = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")

func (n Notation) exponent(e int) string {
	digits := strconv.Itoa(e)
	if n == Caret {
		return "^" + digits
	}
	var b strings.Builder
	for _, d := range digits {
		b.WriteRune(superscriptDigits[d-'0'])
	}
	return b.String()
}

// FormatNumber renders a coefficient with the shortest exact representation.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
