package ops_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/polybox/internal/ops"
	"github.com/san-kum/polybox/internal/poly"
)

var _ = Describe("Divide", func() {
	It("returns the dividend as remainder when the divisor has a higher degree", func() {
		res, err := ops.Divide("x+1", "x^2")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.QuotientText).To(Equal("0"))
		Expect(res.RemainderText).To(Equal("x+1"))
		Expect(res.Steps).To(HaveLen(1))
		Expect(res.Steps[0].Visualization.Kind()).To(Equal(ops.VisualDivisionNotPossible))
	})

	It("divides exactly", func() {
		res, err := ops.Divide("x^2-1", "x-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.QuotientText).To(Equal("x + 1"))
		Expect(res.RemainderText).To(Equal("0"))
		Expect(res.Steps).To(HaveLen(4))
	})

	It("keeps a remainder", func() {
		res, err := ops.Divide("x^2 + 3x + 5", "x + 1")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.QuotientText).To(Equal("x + 2"))
		Expect(res.RemainderText).To(Equal("3"))

		last := res.Steps[3].Visualization.(ops.CompleteDivision)
		Expect(last.Quotient.String()).To(Equal("x + 2"))
		Expect(last.Remainder.String()).To(Equal("3"))
	})

	DescribeTable("satisfies q·d + r = p",
		func(p, d string) {
			res, err := ops.Divide(p, d)
			Expect(err).NotTo(HaveOccurred())

			back, err := ops.Multiply(res.QuotientText, d)
			Expect(err).NotTo(HaveOccurred())
			total, err := ops.Add(back.Text, res.RemainderText)
			Expect(err).NotTo(HaveOccurred())

			want := poly.NormalizeText(p)
			Expect(total.Result.Degree()).To(Equal(want.Degree()))
			for deg := 0; deg <= want.Degree(); deg++ {
				Expect(total.Result.Coefficient(deg)).To(BeNumerically("~", want.Coefficient(deg), 1e-9))
			}
			Expect(res.Remainder.IsZero() || res.Remainder.Degree() < poly.NormalizeText(d).Degree()).To(BeTrue())
		},
		Entry("cubic by linear", "x^3 - 2x^2 + 4", "x - 3"),
		Entry("quadratic by quadratic", "2x^2 + 3x + 1", "x^2 + 1"),
		Entry("by constant", "4x^2 + 2", "2"),
		Entry("quartic by quadratic", "x^4 + 1", "x^2 + x + 1"),
	)

	It("rejects a zero divisor", func() {
		_, err := ops.Divide("x + 1", "0")
		Expect(errors.Is(err, ops.ErrDivisionByZero)).To(BeTrue())

		var opErr *ops.OperationError
		Expect(errors.As(err, &opErr)).To(BeTrue())
		Expect(opErr.Kind).To(Equal(ops.Division))
		Expect(err.Error()).To(HavePrefix("division failed: "))
	})

	It("divides sparse high powers without walking every degree", func() {
		res, err := ops.Divide("x^1000", "x")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.QuotientText).To(Equal("x^999"))
		Expect(res.RemainderText).To(Equal("0"))
	})

	It("handles a dense quotient at the exponent limit", func() {
		res, err := ops.Divide("x^1000 - 1", "x - 1")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Quotient.TermCount()).To(Equal(1000))
		Expect(res.Quotient.Degree()).To(Equal(999))
		Expect(res.Remainder.IsZero()).To(BeTrue())
	})

	It("refuses a dividend beyond the exponent limit", func() {
		_, err := ops.Divide("x^2000000000", "x")
		Expect(errors.Is(err, ops.ErrDividendDegree)).To(BeTrue())
		Expect(err.Error()).To(HavePrefix("division failed: "))
	})
})
