package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/polybox/internal/ops"
	"github.com/san-kum/polybox/internal/poly"
)

const descriptionWidth = 60

// Stepper is a Bubble Tea model that pages through an operation narrative
// one board at a time.
type Stepper struct {
	title    string
	steps    []ops.Step
	boards   []Board
	index    int
	theme    Theme
	showHelp bool
}

// NewStepper prepares the boards for steps up front.
func NewStepper(title string, steps []ops.Step, theme Theme, n poly.Notation) Stepper {
	boards := make([]Board, len(steps))
	for i, s := range steps {
		boards[i] = BuildBoard(s, n)
	}
	return Stepper{
		title:  title,
		steps:  steps,
		boards: boards,
		theme:  theme,
	}
}

// Index is the zero-based position of the current step.
func (m Stepper) Index() int { return m.index }

func (m Stepper) Theme() Theme { return m.theme }

func (m Stepper) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys.
func (m Stepper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "right", "l", "n", " ":
		if m.index < len(m.steps)-1 {
			m.index++
		}
	case "left", "h", "p":
		if m.index > 0 {
			m.index--
		}
	case "home", "g":
		m.index = 0
	case "end", "G":
		if len(m.steps) > 0 {
			m.index = len(m.steps) - 1
		}
	case "t":
		m.theme = NextTheme(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Stepper) View() string {
	st := NewStyles(m.theme)
	var s strings.Builder

	s.WriteString(GradientText(m.title, m.theme.Primary, m.theme.Secondary) + "\n\n")
	if len(m.steps) == 0 {
		s.WriteString(st.Muted.Render("no steps") + "\n")
		return s.String()
	}

	step := m.steps[m.index]
	done := float64(m.index+1) / float64(len(m.steps))
	s.WriteString(fmt.Sprintf("%s  %d/%d\n\n", ProgressBar(done, 30, m.theme), m.index+1, len(m.steps)))
	s.WriteString(lipgloss.NewStyle().Width(descriptionWidth).Render(step.Description) + "\n\n")
	s.WriteString(RenderBoard(m.boards[m.index], m.theme) + "\n\n")
	s.WriteString(st.Label.Render("Action") + st.Value.Render(step.Action) + "\n")
	s.WriteString(Separator(descriptionWidth, m.theme) + "\n")

	if m.showHelp {
		s.WriteString(st.KeyHint.Render("→/l/space next  ←/h previous  home/end first/last\nt theme  ? help  q quit"))
	} else {
		s.WriteString(st.KeyHint.Render("←/→ step  t theme  ? help  q quit"))
	}
	return s.String()
}
