package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/polybox/internal/ops"
	"github.com/san-kum/polybox/internal/poly"
)

// Tile is one algebra tile. Label carries the magnitude only; the sign is
// given by the quadrant the tile sits in.
type Tile struct {
	Term      poly.Term
	Label     string
	Cancelled bool
}

// Board is the quadrant layout for one step.
type Board struct {
	Kind    ops.VisualKind
	Title   string
	Caption string

	quadrants [4][]Tile
}

// Tiles returns the tiles in q in placement order.
func (b Board) Tiles(q ops.Quadrant) []Tile {
	if q < ops.QuadrantI || q > ops.QuadrantIV {
		return nil
	}
	return b.quadrants[q-1]
}

func (b Board) TileCount() int {
	n := 0
	for _, tiles := range b.quadrants {
		n += len(tiles)
	}
	return n
}

func (b *Board) place(q ops.Quadrant, t Tile) {
	b.quadrants[q-1] = append(b.quadrants[q-1], t)
}

type placer struct {
	board    *Board
	notation poly.Notation
}

func (p placer) tile(t poly.Term, cancelled bool) Tile {
	mag := t
	if t.Coefficient() < 0 {
		mag = t.Negate()
	}
	return Tile{Term: t, Label: mag.Format(p.notation), Cancelled: cancelled}
}

// bySign puts each non-zero term into whichever of quads matches its sign.
func (p placer) bySign(terms []poly.Term, quads []ops.Quadrant) {
	for _, t := range terms {
		if t.IsZero() {
			continue
		}
		for _, q := range quads {
			if q.Positive() == (t.Coefficient() > 0) {
				p.board.place(q, p.tile(t, false))
				break
			}
		}
	}
}

var (
	upper = []ops.Quadrant{ops.QuadrantI, ops.QuadrantII}
	lower = []ops.Quadrant{ops.QuadrantIII, ops.QuadrantIV}
)

// BuildBoard lays out the visualization payload of step.
func BuildBoard(step ops.Step, n poly.Notation) Board {
	b := Board{Title: step.Title}
	if step.Visualization == nil {
		return b
	}
	b.Kind = step.Visualization.Kind()
	p := placer{board: &b, notation: n}

	switch v := step.Visualization.(type) {
	case ops.QuadrantSetup:
		b.Caption = fmt.Sprintf("positive: %s  negative: %s", joinQuadrants(v.Positive), joinQuadrants(v.Negative))
	case ops.PlacePolynomial:
		p.bySign(v.Polynomial.Terms(), v.Quadrants)
		b.Caption = v.Polynomial.Format(n)
	case ops.DiagonalMove:
		b.Caption = "tiles move " + v.Direction
	case ops.CancelOpposites:
		for _, t := range v.Terms {
			b.place(ops.QuadrantI, p.tile(t, true))
			b.place(ops.QuadrantII, p.tile(t.Negate(), true))
		}
		b.Caption = fmt.Sprintf("%d zero pair(s) removed", len(v.Terms))
	case ops.FinalResult:
		p.bySign(v.Result.Terms(), upper)
		b.Caption = "= " + v.Result.Format(n)
	case ops.SetupSubtraction:
		p.bySign(v.Minuend.Terms(), upper)
		p.bySign(v.Subtrahend.Terms(), lower)
		b.Caption = v.Minuend.Format(n) + " minus " + v.Subtrahend.Format(n)
	case ops.FlipSides:
		p.bySign(v.Polynomial.Negate().Terms(), lower)
		b.Caption = "flipped: " + v.Polynomial.Negate().Format(n)
	case ops.CompleteSubtraction:
		p.bySign(v.Result.Terms(), upper)
		b.Caption = "= " + v.Result.Format(n)
	case ops.PrepareMultiplication:
		p.bySign(v.Base.Terms(), upper)
		p.bySign(v.Height.Terms(), lower)
		b.Caption = "base " + v.Base.Format(n) + ", height " + v.Height.Format(n)
	case ops.HorizontalLayout:
		p.bySign(v.Polynomial.Terms(), upper)
		b.Caption = "base " + v.Polynomial.Format(n)
	case ops.BuildHeight:
		p.bySign(v.Height.Terms(), lower)
		b.Caption = "height " + v.Height.Format(n)
	case ops.FillRectangle:
		p.bySign(v.Terms, upper)
		b.Caption = fmt.Sprintf("%d partial products", len(v.Terms))
	case ops.AnalyzeAreas:
		p.bySign(v.Terms, upper)
		b.Caption = "areas: " + poly.New(v.Terms...).Format(n)
	case ops.SimplifyResult:
		p.bySign(v.Result.Terms(), upper)
		b.Caption = "= " + v.Result.Format(n)
	case ops.PrepareDividend:
		p.bySign(v.Dividend.Terms(), upper)
		b.Caption = "dividend " + v.Dividend.Format(n)
	case ops.InitialPlacement:
		p.bySign(v.Dividend.Terms(), upper)
		b.Caption = "dividend " + v.Dividend.Format(n)
	case ops.FormBase:
		p.bySign(v.Divisor.Terms(), lower)
		b.Caption = "base " + v.Divisor.Format(n)
	case ops.CompleteDivision:
		p.bySign(v.Quotient.Terms(), upper)
		p.bySign(v.Remainder.Terms(), lower)
		b.Caption = fmt.Sprintf("q = %s, r = %s", v.Quotient.Format(n), v.Remainder.Format(n))
	case ops.DivisionNotPossible:
		p.bySign(v.Dividend.Terms(), upper)
		p.bySign(v.Divisor.Terms(), lower)
		b.Caption = fmt.Sprintf("deg %d < deg %d: q = 0, r = %s", v.Dividend.Degree(), v.Divisor.Degree(), v.Dividend.Format(n))
	}
	return b
}

func joinQuadrants(qs []ops.Quadrant) string {
	names := make([]string, len(qs))
	for i, q := range qs {
		names[i] = q.String()
	}
	return strings.Join(names, ", ")
}

// RenderBoard draws b as a two by two grid, II and I on top.
func RenderBoard(b Board, t Theme) string {
	st := NewStyles(t)

	rows := [2][2]ops.Quadrant{
		{ops.QuadrantII, ops.QuadrantI},
		{ops.QuadrantIII, ops.QuadrantIV},
	}
	var rendered []string
	if b.Title != "" {
		rendered = append(rendered, st.Title.Render(b.Title))
	}
	for _, row := range rows {
		height := max(len(b.Tiles(row[0])), len(b.Tiles(row[1]))) + 1
		left := renderQuadrant(b, row[0], st, height)
		right := renderQuadrant(b, row[1], st, height)
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	}
	if b.Caption != "" {
		rendered = append(rendered, st.Caption.Render(b.Caption))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func renderQuadrant(b Board, q ops.Quadrant, st Styles, height int) string {
	sign, tileStyle := "(-)", st.Negative
	if q.Positive() {
		sign, tileStyle = "(+)", st.Positive
	}

	lines := []string{st.Muted.Render(q.String() + " " + sign)}
	tiles := b.Tiles(q)
	if len(tiles) == 0 {
		lines = append(lines, st.Muted.Render("·"))
	}
	for _, tile := range tiles {
		style := tileStyle
		if tile.Cancelled {
			style = st.Cancelled
		}
		lines = append(lines, style.Render("["+tile.Label+"]"))
	}
	return st.Quadrant.Height(height).Render(strings.Join(lines, "\n"))
}
