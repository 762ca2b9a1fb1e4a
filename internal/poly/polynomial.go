package poly

import (
	"encoding/json"
	"math"
	"strings"
)

// Polynomial is an ordered sequence of terms. A polynomial built by Parse may
// hold several like terms; one returned by Normalize holds at most one term
// per key, sorted by descending exponent.
type Polynomial struct {
	terms []Term
}

// New copies terms into a new polynomial.
func New(terms ...Term) Polynomial {
	if len(terms) == 0 {
		return Polynomial{}
	}
	c := make([]Term, len(terms))
	copy(c, terms)
	return Polynomial{terms: c}
}

// Zero returns the empty polynomial.
func Zero() Polynomial { return Polynomial{} }

// Terms returns a copy of the term sequence.
func (p Polynomial) Terms() []Term {
	c := make([]Term, len(p.terms))
	copy(c, p.terms)
	return c
}

func (p Polynomial) TermCount() int { return len(p.terms) }

// Term returns the i-th term.
func (p Polynomial) Term(i int) Term { return p.terms[i] }

// IsZero reports whether p has no terms with a non-zero coefficient.
func (p Polynomial) IsZero() bool {
	for _, t := range p.terms {
		if !t.IsZero() {
			return false
		}
	}
	return true
}

// IsFinite reports whether every coefficient is a finite number.
func (p Polynomial) IsFinite() bool {
	for _, t := range p.terms {
		if math.IsInf(t.coefficient, 0) || math.IsNaN(t.coefficient) {
			return false
		}
	}
	return true
}

// Degree is the largest term degree, 0 for the empty polynomial.
func (p Polynomial) Degree() int {
	d := 0
	for _, t := range p.terms {
		if td := t.Degree(); td > d {
			d = td
		}
	}
	return d
}

// Variable returns the first variable letter appearing in p, or "".
func (p Polynomial) Variable() string {
	for _, t := range p.terms {
		if t.variable != "" {
			return t.variable
		}
	}
	return ""
}

// Coefficient sums the coefficients of all terms of the given degree.
func (p Polynomial) Coefficient(degree int) float64 {
	sum := 0.0
	for _, t := range p.terms {
		if t.Degree() == degree {
			sum += t.coefficient
		}
	}
	return sum
}

// Negate flips the sign of every coefficient.
func (p Polynomial) Negate() Polynomial {
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = t.Negate()
	}
	return Polynomial{terms: out}
}

// Concat appends the terms of other to p without normalizing.
func (p Polynomial) Concat(other Polynomial) Polynomial {
	out := make([]Term, 0, len(p.terms)+len(other.terms))
	out = append(out, p.terms...)
	out = append(out, other.terms...)
	return Polynomial{terms: out}
}

// Equal reports term-by-term equality, order included.
func (p Polynomial) Equal(other Polynomial) bool {
	if len(p.terms) != len(other.terms) {
		return false
	}
	for i := range p.terms {
		if !p.terms[i].Equal(other.terms[i]) {
			return false
		}
	}
	return true
}

// ShapeGroups partitions terms by shape, keeping their order.
type ShapeGroups struct {
	Quadratic []Term
	Linear    []Term
	Constant  []Term
	Higher    []Term
}

func (p Polynomial) ByShape() ShapeGroups {
	var g ShapeGroups
	for _, t := range p.terms {
		switch t.Shape() {
		case ShapeQuadratic:
			g.Quadratic = append(g.Quadratic, t)
		case ShapeLinear:
			g.Linear = append(g.Linear, t)
		case ShapeConstant:
			g.Constant = append(g.Constant, t)
		default:
			g.Higher = append(g.Higher, t)
		}
	}
	return g
}

// String renders p in caret notation, "0" when p has no terms.
func (p Polynomial) String() string {
	return p.Format(Caret)
}

// Pretty renders p with superscript exponents.
func (p Polynomial) Pretty() string {
	return p.Format(Superscript)
}

func (p Polynomial) Format(n Notation) string {
	if len(p.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.terms {
		s := t.Format(n)
		if i == 0 {
			b.WriteString(s)
			continue
		}
		if t.coefficient >= 0 {
			b.WriteString(" + ")
			b.WriteString(s)
		} else {
			b.WriteString(" - ")
			b.WriteString(strings.TrimPrefix(s, "-"))
		}
	}
	return b.String()
}

// LaTeX renders p for math typesetting, e.g. "3x^{2} - x + 1".
func (p Polynomial) LaTeX() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.terms {
		c := t.coefficient
		if i > 0 {
			if c < 0 {
				b.WriteString(" - ")
				c = -c
			} else {
				b.WriteString(" + ")
			}
		}
		if t.variable == "" {
			b.WriteString(FormatNumber(c))
			continue
		}
		switch c {
		case 1:
		case -1:
			b.WriteByte('-')
		default:
			b.WriteString(FormatNumber(c))
		}
		b.WriteString(t.variable)
		if t.exponent > 1 {
			b.WriteString("^{")
			b.WriteString(strings.TrimPrefix(Caret.exponent(t.exponent), "^"))
			b.WriteString("}")
		}
	}
	return b.String()
}

type termJSON struct {
	Coefficient float64 `json:"coefficient"`
	Variable    string  `json:"variable"`
	Exponent    int     `json:"exponent"`
}

func (t Term) MarshalJSON() ([]byte, error) {
	return json.Marshal(termJSON{Coefficient: t.coefficient, Variable: t.variable, Exponent: t.exponent})
}

func (t *Term) UnmarshalJSON(data []byte) error {
	var raw termJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = NewTerm(raw.Coefficient, raw.Variable, raw.Exponent)
	return nil
}

type polynomialJSON struct {
	Text   string `json:"text"`
	Degree int    `json:"degree"`
	Terms  []Term `json:"terms"`
}

func (p Polynomial) MarshalJSON() ([]byte, error) {
	terms := p.terms
	if terms == nil {
		terms = []Term{}
	}
	return json.Marshal(polynomialJSON{Text: p.String(), Degree: p.Degree(), Terms: terms})
}

func (p *Polynomial) UnmarshalJSON(data []byte) error {
	var raw polynomialJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = New(raw.Terms...)
	return nil
}
