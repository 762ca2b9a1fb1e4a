package ops

import (
	"github.com/san-kum/polybox/internal/poly"
)

// Result is the outcome of an addition, subtraction or multiplication.
type Result struct {
	Kind     Kind            `json:"kind"`
	Operands [2]string       `json:"operands"`
	Result   poly.Polynomial `json:"result"`
	Text     string          `json:"text"`
	Steps    []Step          `json:"steps"`
}

// finite rejects a result whose coefficients overflowed.
func finite(ps ...poly.Polynomial) error {
	for _, p := range ps {
		if !p.IsFinite() {
			return ErrNonFinite
		}
	}
	return nil
}

func newResult(kind Kind, a, b string, result poly.Polynomial, steps []Step) *Result {
	return &Result{
		Kind:     kind,
		Operands: [2]string{a, b},
		Result:   result,
		Text:     result.String(),
		Steps:    steps,
	}
}

// Add sums two polynomials.
func Add(a, b string) (*Result, error) {
	return guard(Addition, func() (*Result, error) {
		p, q := poly.Parse(a), poly.Parse(b)
		sum := poly.Normalize(p.Concat(q))
		if err := finite(sum); err != nil {
			return nil, err
		}
		return newResult(Addition, a, b, sum, additionSteps(p, q, sum)), nil
	})
}

// Subtract computes a - b as a plus the negation of b.
func Subtract(a, b string) (*Result, error) {
	return guard(Subtraction, func() (*Result, error) {
		p, q := poly.Parse(a), poly.Parse(b)
		diff := poly.Normalize(p.Concat(q.Negate()))
		if err := finite(diff); err != nil {
			return nil, err
		}
		return newResult(Subtraction, a, b, diff, subtractionSteps(p, q, diff)), nil
	})
}

// Multiply forms every pairwise product of terms and normalizes the result.
func Multiply(a, b string) (*Result, error) {
	return guard(Multiplication, func() (*Result, error) {
		p, q := poly.Parse(a), poly.Parse(b)
		products := crossProduct(p, q)
		product := poly.Normalize(poly.New(products...))
		if err := finite(product); err != nil {
			return nil, err
		}
		return newResult(Multiplication, a, b, product, multiplicationSteps(p, q, product, products)), nil
	})
}

func crossProduct(p, q poly.Polynomial) []poly.Term {
	out := make([]poly.Term, 0, p.TermCount()*q.TermCount())
	for _, t1 := range p.Terms() {
		for _, t2 := range q.Terms() {
			out = append(out, t1.Times(t2))
		}
	}
	return out
}
