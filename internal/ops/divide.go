package ops

import (
	"math"

	"github.com/san-kum/polybox/internal/poly"
)

// zeroTolerance snaps round-off left behind by long division to zero.
const zeroTolerance = 1e-12

// DivisionResult is the outcome of Divide. When the divisor has a higher
// degree than the dividend, Quotient is zero and RemainderText is the
// dividend exactly as it was written.
type DivisionResult struct {
	Operands      [2]string       `json:"operands"`
	Quotient      poly.Polynomial `json:"quotient"`
	Remainder     poly.Polynomial `json:"remainder"`
	QuotientText  string          `json:"quotient_text"`
	RemainderText string          `json:"remainder_text"`
	Steps         []Step          `json:"steps"`
}

// Divide performs polynomial long division of dividend by divisor.
func Divide(dividend, divisor string) (*DivisionResult, error) {
	return guard(Division, func() (*DivisionResult, error) {
		p := poly.Normalize(poly.Parse(dividend))
		d := poly.Normalize(poly.Parse(divisor))

		if d.Degree() > p.Degree() {
			return &DivisionResult{
				Operands:      [2]string{dividend, divisor},
				Quotient:      poly.Zero(),
				Remainder:     p,
				QuotientText:  "0",
				RemainderText: dividend,
				Steps:         divisionNotPossibleStep(p, d),
			}, nil
		}

		if p.Degree() > poly.MaxExponent {
			return nil, ErrDividendDegree
		}
		q, r, err := longDivide(p, d)
		if err != nil {
			return nil, err
		}
		if err := finite(q, r); err != nil {
			return nil, err
		}
		return &DivisionResult{
			Operands:      [2]string{dividend, divisor},
			Quotient:      q,
			Remainder:     r,
			QuotientText:  q.String(),
			RemainderText: r.String(),
			Steps:         divisionSteps(p, d, q, r),
		}, nil
	})
}

// longDivide divides coefficient maps keyed by degree. Only degrees holding
// a nonzero coefficient are stored, so the work grows with the number of
// quotient terms rather than with the degree.
func longDivide(p, d poly.Polynomial) (quotient, remainder poly.Polynomial, err error) {
	v := p.Variable()
	if v == "" {
		v = d.Variable()
	}
	if v == "" {
		v = "x"
	}

	div := coefficients(d)
	dd, ok := leading(div)
	if !ok {
		return poly.Zero(), poly.Zero(), ErrDivisionByZero
	}
	lead := div[dd]

	rem := coefficients(p)
	q := make(map[int]float64)
	for {
		top, ok := leading(rem)
		if !ok || top < dd {
			break
		}
		c := rem[top] / lead
		q[top-dd] = c
		for e, dc := range div {
			k := top - dd + e
			rem[k] -= c * dc
			if math.Abs(rem[k]) < zeroTolerance {
				delete(rem, k)
			}
		}
		delete(rem, top)
	}

	return fromCoefficients(q, v), fromCoefficients(rem, v), nil
}

// coefficients sums the terms of p by degree, skipping zeros.
func coefficients(p poly.Polynomial) map[int]float64 {
	out := make(map[int]float64, p.TermCount())
	for _, t := range p.Terms() {
		out[t.Degree()] += t.Coefficient()
	}
	for e, c := range out {
		if math.Abs(c) < zeroTolerance {
			delete(out, e)
		}
	}
	return out
}

func leading(coeffs map[int]float64) (int, bool) {
	top, found := 0, false
	for e := range coeffs {
		if !found || e > top {
			top, found = e, true
		}
	}
	return top, found
}

func fromCoefficients(coeffs map[int]float64, v string) poly.Polynomial {
	terms := make([]poly.Term, 0, len(coeffs))
	for e, c := range coeffs {
		terms = append(terms, poly.NewTerm(c, v, e))
	}
	return poly.Normalize(poly.New(terms...))
}
