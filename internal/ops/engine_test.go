package ops_test

import (
	"encoding/json"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/polybox/internal/ops"
	"github.com/san-kum/polybox/internal/poly"
)

func kinds(steps []ops.Step) []ops.VisualKind {
	out := make([]ops.VisualKind, len(steps))
	for i, s := range steps {
		out[i] = s.Visualization.Kind()
	}
	return out
}

var _ = Describe("Add", func() {
	It("combines like terms and narrates six steps", func() {
		res, err := ops.Add("x^2+2x+1", "x^2-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Text).To(Equal("2x^2 + 2x"))
		Expect(res.Steps).To(HaveLen(6))
		Expect(kinds(res.Steps)).To(Equal([]ops.VisualKind{
			ops.VisualQuadrantSetup,
			ops.VisualPlacePolynomial,
			ops.VisualPlacePolynomial,
			ops.VisualDiagonalMove,
			ops.VisualCancelOpposites,
			ops.VisualFinalResult,
		}))
	})

	It("numbers steps from one", func() {
		res, err := ops.Add("x", "1")
		Expect(err).NotTo(HaveOccurred())
		for i, s := range res.Steps {
			Expect(s.ID).To(Equal(i + 1))
		}
	})

	It("places operands in the upper and lower quadrants", func() {
		res, err := ops.Add("x+1", "x-1")
		Expect(err).NotTo(HaveOccurred())

		upper := res.Steps[1].Visualization.(ops.PlacePolynomial)
		Expect(upper.Quadrants).To(Equal([]ops.Quadrant{ops.QuadrantI, ops.QuadrantII}))
		Expect(upper.Polynomial.String()).To(Equal("x + 1"))

		lower := res.Steps[2].Visualization.(ops.PlacePolynomial)
		Expect(lower.Quadrants).To(Equal([]ops.Quadrant{ops.QuadrantIII, ops.QuadrantIV}))
	})

	It("reports the cancelled opposites", func() {
		res, err := ops.Add("x^2+2x+1", "x^2-3")
		Expect(err).NotTo(HaveOccurred())

		cancel := res.Steps[4].Visualization.(ops.CancelOpposites)
		Expect(cancel.Terms).To(HaveLen(1))
		Expect(cancel.Terms[0].Exponent()).To(Equal(0))
		Expect(cancel.Terms[0].Coefficient()).To(Equal(1.0))
	})

	It("mentions operands and result in the narrative", func() {
		res, err := ops.Add("x^2+2x+1", "x^2-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Steps[1].Description).To(ContainSubstring("x^2 + 2x + 1"))
		Expect(res.Steps[2].Description).To(ContainSubstring("x^2 - 1"))
		Expect(res.Steps[5].Description).To(ContainSubstring("2x^2 + 2x"))
	})

	It("is deterministic", func() {
		a, err := ops.Add("3x^2 - x + 4", "-x^2 + x")
		Expect(err).NotTo(HaveOccurred())
		b, err := ops.Add("3x^2 - x + 4", "-x^2 + x")
		Expect(err).NotTo(HaveOccurred())

		ja, _ := json.Marshal(a)
		jb, _ := json.Marshal(b)
		Expect(ja).To(MatchJSON(jb))
	})
})

var _ = Describe("Subtract", func() {
	It("narrates three steps", func() {
		res, err := ops.Subtract("x^2+2x+1", "x^2-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Text).To(Equal("2x + 2"))
		Expect(kinds(res.Steps)).To(Equal([]ops.VisualKind{
			ops.VisualSetupSubtraction,
			ops.VisualFlipSides,
			ops.VisualCompleteSubtraction,
		}))
	})

	DescribeTable("matches addition of the negated operand",
		func(p, q string) {
			diff, err := ops.Subtract(p, q)
			Expect(err).NotTo(HaveOccurred())
			sum, err := ops.Add(p, poly.Parse(q).Negate().String())
			Expect(err).NotTo(HaveOccurred())
			Expect(diff.Result.Equal(sum.Result)).To(BeTrue(), "%s vs %s", diff.Text, sum.Text)
		},
		Entry("quadratics", "x^2+2x+1", "x^2-1"),
		Entry("cancelling", "3x - 2", "3x - 2"),
		Entry("constants", "5", "-7"),
		Entry("higher degree", "x^4 - x", "2x^3 + x^2 - 1"),
		Entry("fractional", "0.5x + 2.25", "1.5x - 0.25"),
	)

	It("returns zero when subtracting a polynomial from itself", func() {
		res, err := ops.Subtract("x^2 - 4", "x^2 - 4")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Result.IsZero()).To(BeTrue())
		Expect(res.Text).To(Equal("0"))
	})
})

var _ = Describe("Multiply", func() {
	It("rejects a product whose coefficient overflows", func() {
		huge := "1" + strings.Repeat("0", 200) + "x"
		_, err := ops.Multiply(huge, huge)
		Expect(errors.Is(err, ops.ErrNonFinite)).To(BeTrue(), "got %v", err)

		var opErr *ops.OperationError
		Expect(errors.As(err, &opErr)).To(BeTrue())
		Expect(opErr.Kind).To(Equal(ops.Multiplication))
	})

	It("expands a difference of squares", func() {
		res, err := ops.Multiply("x+1", "x-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Text).To(Equal("x^2 - 1"))
		Expect(res.Steps).To(HaveLen(6))
	})

	It("keeps every partial product in the rectangle step", func() {
		res, err := ops.Multiply("x+1", "x-1")
		Expect(err).NotTo(HaveOccurred())

		fill := res.Steps[3].Visualization.(ops.FillRectangle)
		Expect(fill.Terms).To(HaveLen(4))
		Expect(res.Steps[4].Visualization.Kind()).To(Equal(ops.VisualAnalyzeAreas))
		Expect(res.Steps[5].Visualization.Kind()).To(Equal(ops.VisualSimplifyResult))
	})

	It("takes the variable from whichever operand has one", func() {
		res, err := ops.Multiply("3", "2y")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Text).To(Equal("6y"))
	})

	DescribeTable("adds degrees",
		func(p, q string) {
			res, err := ops.Multiply(p, q)
			Expect(err).NotTo(HaveOccurred())
			want := poly.NormalizeText(p).Degree() + poly.NormalizeText(q).Degree()
			Expect(res.Result.Degree()).To(Equal(want))
		},
		Entry("linear by linear", "x+1", "x-1"),
		Entry("quadratic by linear", "2x^2 - 3", "x + 4"),
		Entry("constant by quadratic", "5", "x^2 + x"),
		Entry("cubic by cubic", "x^3 - 1", "x^3 + 1"),
	)
})
