package ops

import (
	"encoding/json"

	"github.com/san-kum/polybox/internal/poly"
)

// Step is one unit of an operation narrative. Steps are numbered from 1.
type Step struct {
	ID            int
	Title         string
	Description   string
	Action        string
	Visualization Visualization
}

type stepJSON struct {
	ID            int            `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Action        string         `json:"action"`
	Visualization visualEnvelope `json:"visualization"`
}

type visualEnvelope struct {
	Type VisualKind    `json:"type"`
	Data Visualization `json:"data"`
}

func (s Step) MarshalJSON() ([]byte, error) {
	out := stepJSON{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Action:      s.Action,
	}
	if s.Visualization != nil {
		out.Visualization = visualEnvelope{Type: s.Visualization.Kind(), Data: s.Visualization}
	}
	return json.Marshal(out)
}

// VisualKind tags a Visualization variant.
type VisualKind string

const (
	VisualQuadrantSetup         VisualKind = "quadrant_setup"
	VisualPlacePolynomial       VisualKind = "place_polynomial"
	VisualDiagonalMove          VisualKind = "diagonal_move"
	VisualCancelOpposites       VisualKind = "cancel_opposites"
	VisualFinalResult           VisualKind = "final_result"
	VisualSetupSubtraction      VisualKind = "setup_subtraction"
	VisualFlipSides             VisualKind = "flip_sides"
	VisualCompleteSubtraction   VisualKind = "complete_subtraction"
	VisualPrepareMultiplication VisualKind = "prepare_multiplication"
	VisualHorizontalLayout      VisualKind = "horizontal_layout"
	VisualBuildHeight           VisualKind = "build_height"
	VisualFillRectangle         VisualKind = "fill_rectangle"
	VisualAnalyzeAreas          VisualKind = "analyze_areas"
	VisualSimplifyResult        VisualKind = "simplify_result"
	VisualPrepareDividend       VisualKind = "prepare_dividend"
	VisualInitialPlacement      VisualKind = "initial_placement"
	VisualFormBase              VisualKind = "form_base"
	VisualCompleteDivision      VisualKind = "complete_division"
	VisualDivisionNotPossible   VisualKind = "division_not_possible"
)

// Visualization is the closed set of payloads handed to a board renderer.
// Renderers switch on the concrete type.
type Visualization interface {
	Kind() VisualKind
	visualization()
}

// Quadrant is a quadrant of the Cartesian board, numbered I to IV
// counter-clockwise from the upper right.
type Quadrant int

const (
	QuadrantI Quadrant = iota + 1
	QuadrantII
	QuadrantIII
	QuadrantIV
)

func (q Quadrant) String() string {
	switch q {
	case QuadrantI:
		return "I"
	case QuadrantII:
		return "II"
	case QuadrantIII:
		return "III"
	case QuadrantIV:
		return "IV"
	}
	return "?"
}

func (q Quadrant) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}

// Upper reports whether q lies above the horizontal axis.
func (q Quadrant) Upper() bool { return q == QuadrantI || q == QuadrantII }

// Positive reports whether tiles in q count positively.
func (q Quadrant) Positive() bool { return q == QuadrantI || q == QuadrantIV }

var (
	positiveQuadrants = []Quadrant{QuadrantI, QuadrantIV}
	negativeQuadrants = []Quadrant{QuadrantII, QuadrantIII}
	upperQuadrants    = []Quadrant{QuadrantI, QuadrantII}
	lowerQuadrants    = []Quadrant{QuadrantIII, QuadrantIV}
)

type QuadrantSetup struct {
	Positive []Quadrant `json:"positive"`
	Negative []Quadrant `json:"negative"`
}

type PlacePolynomial struct {
	Polynomial poly.Polynomial `json:"polynomial"`
	Quadrants  []Quadrant      `json:"quadrants"`
}

type DiagonalMove struct {
	Direction string `json:"direction"`
}

// CancelOpposites lists the like-term keys whose tiles meet with opposite
// signs and cancel.
type CancelOpposites struct {
	Terms []poly.Term `json:"terms"`
}

type FinalResult struct {
	Result poly.Polynomial `json:"result"`
}

type SetupSubtraction struct {
	Minuend    poly.Polynomial `json:"minuend"`
	Subtrahend poly.Polynomial `json:"subtrahend"`
}

type FlipSides struct {
	Polynomial poly.Polynomial `json:"polynomial"`
}

type CompleteSubtraction struct {
	Result poly.Polynomial `json:"result"`
}

type PrepareMultiplication struct {
	Base   poly.Polynomial `json:"base"`
	Height poly.Polynomial `json:"height"`
}

type HorizontalLayout struct {
	Polynomial poly.Polynomial `json:"polynomial"`
}

type BuildHeight struct {
	Height poly.Polynomial `json:"height"`
}

// FillRectangle carries every partial product before simplification.
type FillRectangle struct {
	Terms []poly.Term `json:"terms"`
}

type AnalyzeAreas struct {
	Terms []poly.Term `json:"terms"`
}

type SimplifyResult struct {
	Result poly.Polynomial `json:"result"`
}

type PrepareDividend struct {
	Dividend poly.Polynomial `json:"dividend"`
}

type InitialPlacement struct {
	Dividend poly.Polynomial `json:"dividend"`
}

type FormBase struct {
	Divisor poly.Polynomial `json:"divisor"`
}

type CompleteDivision struct {
	Dividend  poly.Polynomial `json:"dividend"`
	Divisor   poly.Polynomial `json:"divisor"`
	Quotient  poly.Polynomial `json:"quotient"`
	Remainder poly.Polynomial `json:"remainder"`
}

type DivisionNotPossible struct {
	Dividend poly.Polynomial `json:"dividend"`
	Divisor  poly.Polynomial `json:"divisor"`
}

func (QuadrantSetup) Kind() VisualKind         { return VisualQuadrantSetup }
func (PlacePolynomial) Kind() VisualKind       { return VisualPlacePolynomial }
func (DiagonalMove) Kind() VisualKind          { return VisualDiagonalMove }
func (CancelOpposites) Kind() VisualKind       { return VisualCancelOpposites }
func (FinalResult) Kind() VisualKind           { return VisualFinalResult }
func (SetupSubtraction) Kind() VisualKind      { return VisualSetupSubtraction }
func (FlipSides) Kind() VisualKind             { return VisualFlipSides }
func (CompleteSubtraction) Kind() VisualKind   { return VisualCompleteSubtraction }
func (PrepareMultiplication) Kind() VisualKind { return VisualPrepareMultiplication }
func (HorizontalLayout) Kind() VisualKind      { return VisualHorizontalLayout }
func (BuildHeight) Kind() VisualKind           { return VisualBuildHeight }
func (FillRectangle) Kind() VisualKind         { return VisualFillRectangle }
func (AnalyzeAreas) Kind() VisualKind          { return VisualAnalyzeAreas }
func (SimplifyResult) Kind() VisualKind        { return VisualSimplifyResult }
func (PrepareDividend) Kind() VisualKind       { return VisualPrepareDividend }
func (InitialPlacement) Kind() VisualKind      { return VisualInitialPlacement }
func (FormBase) Kind() VisualKind              { return VisualFormBase }
func (CompleteDivision) Kind() VisualKind      { return VisualCompleteDivision }
func (DivisionNotPossible) Kind() VisualKind   { return VisualDivisionNotPossible }

func (QuadrantSetup) visualization()         {}
func (PlacePolynomial) visualization()       {}
func (DiagonalMove) visualization()          {}
func (CancelOpposites) visualization()       {}
func (FinalResult) visualization()           {}
func (SetupSubtraction) visualization()      {}
func (FlipSides) visualization()             {}
func (CompleteSubtraction) visualization()   {}
func (PrepareMultiplication) visualization() {}
func (HorizontalLayout) visualization()      {}
func (BuildHeight) visualization()           {}
func (FillRectangle) visualization()         {}
func (AnalyzeAreas) visualization()          {}
func (SimplifyResult) visualization()        {}
func (PrepareDividend) visualization()       {}
func (InitialPlacement) visualization()      {}
func (FormBase) visualization()              {}
func (CompleteDivision) visualization()      {}
func (DivisionNotPossible) visualization()   {}
