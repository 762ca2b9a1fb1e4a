package ops_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/polybox/internal/ops"
)

var _ = Describe("Step JSON", func() {
	It("tags the visualization payload", func() {
		res, err := ops.Add("x", "1")
		Expect(err).NotTo(HaveOccurred())

		data, err := json.Marshal(res.Steps[0])
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(MatchJSON(`{
			"id": 1,
			"title": "Step 1: Prepare the board",
			"description": "Split the Cartesian board by sign. Quadrants I and IV hold positive terms, quadrants II and III hold negative terms.",
			"action": "Set up quadrants by sign",
			"visualization": {
				"type": "quadrant_setup",
				"data": {"positive": ["I", "IV"], "negative": ["II", "III"]}
			}
		}`))
	})

	It("serializes polynomials inside payloads", func() {
		res, err := ops.Multiply("x+1", "x-1")
		Expect(err).NotTo(HaveOccurred())

		data, err := json.Marshal(res.Steps[5])
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"type":"simplify_result"`))
		Expect(string(data)).To(ContainSubstring(`"text":"x^2 - 1"`))
	})
})
