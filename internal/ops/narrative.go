package ops

import (
	"fmt"
	"math"

	"github.com/san-kum/polybox/internal/poly"
)

func additionSteps(p, q, result poly.Polynomial) []Step {
	return []Step{
		{
			ID:            1,
			Title:         "Step 1: Prepare the board",
			Description:   "Split the Cartesian board by sign. Quadrants I and IV hold positive terms, quadrants II and III hold negative terms.",
			Action:        "Set up quadrants by sign",
			Visualization: QuadrantSetup{Positive: positiveQuadrants, Negative: negativeQuadrants},
		},
		{
			ID:            2,
			Title:         "Step 2: Place the first polynomial",
			Description:   fmt.Sprintf("Place the tiles of P(x) = %s in the upper quadrants (I and II) according to the sign of each term.", p),
			Action:        "Position the first polynomial",
			Visualization: PlacePolynomial{Polynomial: p, Quadrants: upperQuadrants},
		},
		{
			ID:            3,
			Title:         "Step 3: Place the second polynomial",
			Description:   fmt.Sprintf("Place the tiles of Q(x) = %s in the lower quadrants (III and IV) according to the sign of each term.", q),
			Action:        "Position the second polynomial",
			Visualization: PlacePolynomial{Polynomial: q, Quadrants: lowerQuadrants},
		},
		{
			ID:            4,
			Title:         "Step 4: Diagonal move",
			Description:   "Move the tiles of the lower polynomial upwards, crossing them diagonally so that like terms meet.",
			Action:        "Move tiles diagonally",
			Visualization: DiagonalMove{Direction: "up"},
		},
		{
			ID:            5,
			Title:         "Step 5: Remove opposites",
			Description:   "Take off the board every pair of like tiles lying on opposite sides, since they cancel each other.",
			Action:        "Cancel opposite terms",
			Visualization: CancelOpposites{Terms: opposites(p, q)},
		},
		{
			ID:            6,
			Title:         "Step 6: Read the result",
			Description:   fmt.Sprintf("The final result is %s. Read the remaining tiles taking into account the sign of the quadrant where each one ended up.", result),
			Action:        "Read the final result",
			Visualization: FinalResult{Result: result},
		},
	}
}

func subtractionSteps(p, q, result poly.Polynomial) []Step {
	return []Step{
		{
			ID:            1,
			Title:         "Initial steps",
			Description:   "Follow the first three steps of addition to place both polynomials on the board.",
			Action:        "Apply addition steps 1-3",
			Visualization: SetupSubtraction{Minuend: p, Subtrahend: q},
		},
		{
			ID:            2,
			Title:         "Flip sides",
			Description:   fmt.Sprintf("Move the tiles of Q(x) = %s, the polynomial being subtracted, to the opposite side: tiles on the left go to the right and vice versa.", q),
			Action:        "Flip the subtrahend tiles",
			Visualization: FlipSides{Polynomial: q},
		},
		{
			ID:            3,
			Title:         "Finish",
			Description:   fmt.Sprintf("Repeat steps 4, 5 and 6 of addition. The final result is %s.", result),
			Action:        "Complete as in addition",
			Visualization: CompleteSubtraction{Result: result},
		},
	}
}

func multiplicationSteps(p, q, result poly.Polynomial, products []poly.Term) []Step {
	return []Step{
		{
			ID:            1,
			Title:         "Prepare the tiles",
			Description:   fmt.Sprintf("Take the tiles needed to build P(x) = %s using only one side of each tile. The other side must match the terms of Q(x) = %s.", p, q),
			Action:        "Prepare base tiles",
			Visualization: PrepareMultiplication{Base: p, Height: q},
		},
		{
			ID:            2,
			Title:         "Horizontal layout",
			Description:   "Lay the tiles of P(x) horizontally, respecting their signs and making their height match the terms of Q(x).",
			Action:        "Build the horizontal base",
			Visualization: HorizontalLayout{Polynomial: p},
		},
		{
			ID:            3,
			Title:         "Build the height",
			Description:   "Add tiles to raise a rectangle of height Q(x) while keeping P(x) as its base.",
			Action:        "Build the height",
			Visualization: BuildHeight{Height: q},
		},
		{
			ID:            4,
			Title:         "Complete the rectangle",
			Description:   "Fill the empty spaces with tiles until the rectangle with base P(x) and height Q(x) is complete.",
			Action:        "Fill the gaps",
			Visualization: FillRectangle{Terms: products},
		},
		{
			ID:            5,
			Title:         "Read the areas",
			Description:   "Read the area of every tile and give it the sign of the quadrant it lies in.",
			Action:        "Compute the areas",
			Visualization: AnalyzeAreas{Terms: products},
		},
		{
			ID:            6,
			Title:         "Simplify",
			Description:   fmt.Sprintf("Combine like terms and read the result: %s.", result),
			Action:        "Simplify the result",
			Visualization: SimplifyResult{Result: result},
		},
	}
}

func divisionSteps(dividend, divisor, quotient, remainder poly.Polynomial) []Step {
	return []Step{
		{
			ID:            1,
			Title:         "Prepare the dividend",
			Description:   fmt.Sprintf("Take the tiles needed to build the dividend P(x) = %s.", dividend),
			Action:        "Prepare the dividend tiles",
			Visualization: PrepareDividend{Dividend: dividend},
		},
		{
			ID:            2,
			Title:         "Initial placement",
			Description:   "Place the tiles in the two upper quadrants, taking into account the sign of each term.",
			Action:        "Position in the upper quadrants",
			Visualization: InitialPlacement{Dividend: dividend},
		},
		{
			ID:            3,
			Title:         "Base of the rectangle",
			Description:   fmt.Sprintf("On the x axis, build a rectangle whose base is the divisor Q(x) = %s, starting with the highest degree tiles.", divisor),
			Action:        "Build the base with the divisor",
			Visualization: FormBase{Divisor: divisor},
		},
		{
			ID:    4,
			Title: "Complete the rectangle",
			Description: fmt.Sprintf("Without changing the base, build a rectangle with the remaining tiles, adding zero pairs when needed. Its height is the quotient %s and the tiles left over form the remainder %s.",
				quotient, remainder),
			Action: "Complete the rectangle",
			Visualization: CompleteDivision{
				Dividend:  dividend,
				Divisor:   divisor,
				Quotient:  quotient,
				Remainder: remainder,
			},
		},
	}
}

func divisionNotPossibleStep(dividend, divisor poly.Polynomial) []Step {
	return []Step{
		{
			ID:            1,
			Title:         "Division not possible",
			Description:   "The degree of the divisor is greater than the degree of the dividend.",
			Action:        "The quotient is 0 and the remainder is the original dividend",
			Visualization: DivisionNotPossible{Dividend: dividend, Divisor: divisor},
		},
	}
}

// opposites lists, in the order they appear in p, the like terms of p and q
// with opposite signs. Each coefficient is the magnitude that cancels.
func opposites(p, q poly.Polynomial) []poly.Term {
	np, nq := poly.Normalize(p), poly.Normalize(q)
	var out []poly.Term
	for _, a := range np.Terms() {
		for _, b := range nq.Terms() {
			if !a.IsLike(b) || a.Coefficient()*b.Coefficient() >= 0 {
				continue
			}
			m := math.Min(math.Abs(a.Coefficient()), math.Abs(b.Coefficient()))
			out = append(out, poly.NewTerm(m, a.Variable(), a.Exponent()))
		}
	}
	return out
}
