package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/polybox/internal/poly"
)

// maxChartDegree is the highest degree plotted point per degree. Sparser,
// higher polynomials are plotted one point per term instead.
const maxChartDegree = 24

// CoefficientChart plots the coefficients of p against degree 0..deg(p), or
// term by term in ascending degree when deg(p) exceeds maxChartDegree.
// p should be normalized.
func CoefficientChart(p poly.Polynomial, height int) string {
	if height <= 0 {
		height = 8
	}

	var (
		data    []float64
		caption string
	)
	if p.Degree() <= maxChartDegree {
		data = make([]float64, p.Degree()+1)
		for d := range data {
			data[d] = p.Coefficient(d)
		}
		caption = fmt.Sprintf("coefficient by degree (0..%d)", p.Degree())
	} else {
		terms := p.Terms()
		for i := len(terms) - 1; i >= 0; i-- {
			data = append(data, terms[i].Coefficient())
		}
		caption = fmt.Sprintf("coefficient by term (%d terms, degree %d)", len(terms), p.Degree())
	}
	// a flat line needs two points
	if len(data) == 1 {
		data = append(data, data[0])
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(len(data)*8),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}
