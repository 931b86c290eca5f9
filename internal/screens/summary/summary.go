package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/qtime/internal/router"
	"github.com/abhisek/qtime/internal/screen"
	"github.com/abhisek/qtime/internal/study"
	"github.com/abhisek/qtime/internal/ui/layout"
	"github.com/abhisek/qtime/internal/ui/theme"
)

// SummaryScreen shows the result of a finished study session.
type SummaryScreen struct {
	result study.Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for result.
func New(result study.Result) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to banks"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Quiz complete!"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(r.Bank))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 50), 0)))
	b.WriteString(layout.Center(divider, width))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Questions: %d      Attempts: %d      Accuracy: %.0f%%",
		r.NumQuestions, r.NumAttempts, r.Accuracy()*100)
	b.WriteString(center.Foreground(theme.Text).Render(stats))
	b.WriteString("\n\n")

	style := theme.Correct
	if r.NumAttempts > r.NumQuestions {
		style = lipgloss.NewStyle().Foreground(theme.Accent)
	}
	b.WriteString(layout.Center(style.Render(r.Summary()), width))
	b.WriteString("\n")

	return b.String()
}
