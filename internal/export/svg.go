package export

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/san-kum/polybox/internal/ops"
	"github.com/san-kum/polybox/internal/viz"
)

const (
	quadrantWidth  = 240.0
	quadrantHeight = 160.0
	tileWidth      = 64.0
	tileHeight     = 28.0
	tileGap        = 8.0
	margin         = 40.0
)

// origin returns the top-left corner of quadrant q on the board.
func origin(q ops.Quadrant) (x, y float64) {
	switch q {
	case ops.QuadrantI:
		return margin + quadrantWidth, margin
	case ops.QuadrantII:
		return margin, margin
	case ops.QuadrantIII:
		return margin, margin + quadrantHeight
	default:
		return margin + quadrantWidth, margin + quadrantHeight
	}
}

// BoardToSVG draws a board as an SVG document. scale multiplies every
// dimension; values <= 0 mean 1.
func BoardToSVG(b viz.Board, t viz.Theme, scale float64) string {
	if scale <= 0 {
		scale = 1
	}
	width := (2*quadrantWidth + 2*margin) * scale
	height := (2*quadrantHeight + 3*margin) * scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, 2*quadrantWidth+2*margin, 2*quadrantHeight+3*margin))

	if b.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="16" font-weight="bold">%s</text>
`, margin, margin*0.65, t.Primary, html.EscapeString(b.Title)))
	}

	// Axes
	cx, cy := margin+quadrantWidth, margin+quadrantHeight
	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="2">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
</g>
`, t.Muted, margin, cy, margin+2*quadrantWidth, cy, cx, margin, cx, margin+2*quadrantHeight))

	for _, q := range []ops.Quadrant{ops.QuadrantI, ops.QuadrantII, ops.QuadrantIII, ops.QuadrantIV} {
		writeQuadrant(&sb, b, q, t)
	}

	if b.Caption != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="14" font-style="italic">%s</text>
`, margin, margin*1.6+2*quadrantHeight, t.Accent, html.EscapeString(b.Caption)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writeQuadrant(sb *strings.Builder, b viz.Board, q ops.Quadrant, t viz.Theme) {
	x0, y0 := origin(q)
	fill, sign := t.Negative, "-"
	if q.Positive() {
		fill, sign = t.Positive, "+"
	}

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="12">%s (%s)</text>
`, x0+tileGap, y0+16, t.Muted, q, sign))

	rowWidth := (quadrantWidth - tileGap) / (tileWidth + tileGap)
	perRow := int(rowWidth)
	for i, tile := range b.Tiles(q) {
		col, row := i%perRow, i/perRow
		x := x0 + tileGap + float64(col)*(tileWidth+tileGap)
		y := y0 + 24 + float64(row)*(tileHeight+tileGap)

		opacity := 1.0
		if tile.Cancelled {
			opacity = 0.35
		}
		sb.WriteString(fmt.Sprintf(`<g opacity="%.2f">
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s"/>
<text x="%.1f" y="%.1f" fill="#0a0a0a" font-family="monospace" font-size="13" text-anchor="middle">%s</text>
`, opacity, x, y, tileWidth, tileHeight, fill, x+tileWidth/2, y+tileHeight*0.65, html.EscapeString(tile.Label)))
		if tile.Cancelled {
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, x, y+tileHeight, x+tileWidth, y, t.Text))
		}
		sb.WriteString("</g>\n")
	}
}

// WriteBoardSVG renders b and writes it to path.
func WriteBoardSVG(path string, b viz.Board, t viz.Theme, scale float64) error {
	return os.WriteFile(path, []byte(BoardToSVG(b, t, scale)), 0644)
}
