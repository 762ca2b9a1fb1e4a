package ops_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/polybox/internal/ops"
)

var _ = Describe("ValidateOperation", func() {
	It("accepts ordinary operands", func() {
		for _, k := range ops.Kinds() {
			check := ops.ValidateOperation("x^2 + 1", "x - 1", k)
			Expect(check.Valid).To(BeTrue(), "%s: %v", k, check.Err)
			Expect(check.Message()).To(BeEmpty())
		}
	})

	DescribeTable("rejects",
		func(a, b string, kind ops.Kind, want error) {
			check := ops.ValidateOperation(a, b, kind)
			Expect(check.Valid).To(BeFalse())
			Expect(errors.Is(check.Err, want)).To(BeTrue(), "got %v", check.Err)
		},
		Entry("blank first operand", "  ", "x", ops.Addition, ops.ErrIncompleteOperands),
		Entry("blank second operand", "x", "", ops.Subtraction, ops.ErrIncompleteOperands),
		Entry("operand without terms", "?", "x", ops.Addition, ops.ErrNoValidTerms),
		Entry("zero divisor", "x + 1", "0", ops.Division, ops.ErrDivisionByZero),
		Entry("divisor cancelling to zero", "x + 1", "x - x", ops.Division, ops.ErrDivisionByZero),
		Entry("degree above the ceiling", "3x^3", "2x^4", ops.Multiplication, ops.ErrDegreeCeiling),
		Entry("unknown operation", "x", "x", ops.Kind("modulo"), ops.ErrUnknownOperation),
		Entry("huge dividend", "x^2000000000", "x", ops.Division, ops.ErrOperandDegree),
		Entry("huge divisor", "x", "x^50000000", ops.Division, ops.ErrOperandDegree),
		Entry("operand above the degree limit", "x^13", "x", ops.Addition, ops.ErrOperandDegree),
	)

	It("reports the combined degree", func() {
		check := ops.ValidateOperation("3x^3", "2x^4", ops.Multiplication)
		var ceilErr *ops.DegreeCeilingError
		Expect(errors.As(check.Err, &ceilErr)).To(BeTrue())
		Expect(ceilErr.Combined).To(Equal(7))
		Expect(ceilErr.Ceiling).To(Equal(6))
	})

	It("allows the ceiling itself", func() {
		Expect(ops.ValidateOperation("x^3", "x^3", ops.Multiplication).Valid).To(BeTrue())
	})

	It("honours a configured ceiling", func() {
		v := ops.Validator{DegreeCeiling: 2}
		Expect(v.Validate("x^2", "x", ops.Multiplication).Valid).To(BeFalse())
		Expect(v.Validate("x", "x", ops.Multiplication).Valid).To(BeTrue())
	})

	It("honours a configured degree limit", func() {
		v := ops.Validator{MaxDegree: 3}
		check := v.Validate("x^4 + 1", "x", ops.Division)
		var degErr *ops.OperandDegreeError
		Expect(errors.As(check.Err, &degErr)).To(BeTrue())
		Expect(degErr.Degree).To(Equal(4))
		Expect(degErr.Max).To(Equal(3))
		Expect(v.Validate("x^3 + 1", "x", ops.Division).Valid).To(BeTrue())
	})

	It("measures the degree after cancellation", func() {
		Expect(ops.ValidateOperation("x^50 - x^50 + x", "x", ops.Division).Valid).To(BeTrue())
	})

	It("only applies the ceiling to multiplication", func() {
		Expect(ops.ValidateOperation("3x^3", "2x^4", ops.Addition).Valid).To(BeTrue())
	})
})

var _ = Describe("Run", func() {
	It("resolves aliases", func() {
		for alias, want := range map[string]ops.Kind{
			"add": ops.Addition, "-": ops.Subtraction, "MUL": ops.Multiplication, " div ": ops.Division,
		} {
			k, err := ops.ParseKind(alias)
			Expect(err).NotTo(HaveOccurred())
			Expect(k).To(Equal(want))
		}
		_, err := ops.ParseKind("pow")
		Expect(errors.Is(err, ops.ErrUnknownOperation)).To(BeTrue())
	})

	It("dispatches every kind", func() {
		for _, k := range ops.Kinds() {
			out, err := ops.Run(k, "x^2 - 1", "x - 1")
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Kind).To(Equal(k))
			Expect(out.Steps()).NotTo(BeEmpty())
			Expect(out.Summary()).NotTo(BeEmpty())
		}
	})

	It("summarizes a division", func() {
		out, err := ops.Run(ops.Division, "x^2 - 1", "x - 1")
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Summary()).To(Equal("q = x + 1, r = 0"))
	})
})
