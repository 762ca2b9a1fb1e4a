package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const quadrantWidth = 24

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title     lipgloss.Style
	Caption   lipgloss.Style
	Muted     lipgloss.Style
	Positive  lipgloss.Style
	Negative  lipgloss.Style
	Cancelled lipgloss.Style
	Quadrant  lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	KeyHint   lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Caption: lipgloss.NewStyle().
			Foreground(t.Accent).
			Italic(true),
		Muted: lipgloss.NewStyle().
			Foreground(t.Muted),
		Positive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Positive),
		Negative: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Negative),
		Cancelled: lipgloss.NewStyle().
			Foreground(t.Muted).
			Strikethrough(true),
		Quadrant: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Width(quadrantWidth).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(t.Muted).
			Width(12),
		Value: lipgloss.NewStyle().
			Foreground(t.Text),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
	}
}

// GradientText shades each rune of text along an RGB blend from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	for i, c := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		style := lipgloss.NewStyle().Foreground(blend(start, end, t))
		b.WriteString(style.Render(string(c)))
	}
	return b.String()
}

// blend mixes two hex colors. Colors that fail to parse count as white.
func blend(a, b lipgloss.Color, t float64) lipgloss.Color {
	return lipgloss.Color(toColorful(a).BlendRgb(toColorful(b), t).Clamped().Hex())
}

func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return col
}

// ProgressBar renders the fraction done as a bar of width cells.
func ProgressBar(done float64, width int, t Theme) string {
	filled := int(done * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := lipgloss.NewStyle().Foreground(t.Positive).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(t.Muted).Render(strings.Repeat("░", width-filled))
	return bar + rest
}

// Decorative separator
func Separator(width int, t Theme) string {
	if width < 7 {
		width = 7
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(left + " ◆ " + right)
}
