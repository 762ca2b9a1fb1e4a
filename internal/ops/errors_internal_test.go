package ops

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("guard", func() {
	It("recovers a panic carrying an error", func() {
		cause := errors.New("index out of range")
		out, err := guard(Multiplication, func() (*Result, error) {
			panic(fmt.Errorf("crossing terms: %w", cause))
		})

		Expect(out).To(BeNil())
		var opErr *OperationError
		Expect(errors.As(err, &opErr)).To(BeTrue())
		Expect(opErr.Kind).To(Equal(Multiplication))
		Expect(err.Error()).To(Equal("multiplication failed: crossing terms: index out of range"))
		Expect(errors.Is(err, cause)).To(BeTrue())
	})

	It("recovers a panic carrying any other value", func() {
		out, err := guard(Subtraction, func() (int, error) {
			panic(42)
		})

		Expect(out).To(BeZero())
		var opErr *OperationError
		Expect(errors.As(err, &opErr)).To(BeTrue())
		Expect(opErr.Kind).To(Equal(Subtraction))
		Expect(err.Error()).To(HavePrefix("subtraction failed: "))
		Expect(err.Error()).To(HaveSuffix("42"))
		Expect(opErr.Unwrap()).NotTo(BeNil())
	})

	It("wraps a returned error once", func() {
		_, err := guard(Division, func() (int, error) {
			return 0, &OperationError{Kind: Division, Wrapped: ErrDivisionByZero}
		})
		Expect(err.Error()).To(Equal("division failed: ops: cannot divide by zero"))
		Expect(errors.Is(err, ErrDivisionByZero)).To(BeTrue())
	})

	It("passes results through untouched", func() {
		out, err := guard(Addition, func() (string, error) { return "ok", nil })
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("ok"))
	})
})
