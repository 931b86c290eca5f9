package study

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/qtime/internal/console"
	"github.com/abhisek/qtime/internal/quiz"
	"github.com/abhisek/qtime/internal/router"
	"github.com/abhisek/qtime/internal/screen"
	"github.com/abhisek/qtime/internal/screens/summary"
	sess "github.com/abhisek/qtime/internal/study"
	"github.com/abhisek/qtime/internal/ui/components"
	"github.com/abhisek/qtime/internal/ui/layout"
	"github.com/abhisek/qtime/internal/ui/theme"
)

// StudyScreen runs a study session one flashcard at a time.
type StudyScreen struct {
	session sess.Session
	input   components.TextInput
	verdict string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.StatusProvider = (*StudyScreen)(nil)

// New creates a StudyScreen for session.
func New(session sess.Session) *StudyScreen {
	return &StudyScreen{
		session: session,
		input:   components.NewTextInput("yes, nope, kinda...", 40),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	return s.session.Engine().Bank().Title()
}

// Status shows how many questions are still in play.
func (s *StudyScreen) Status() string {
	e := s.session.Engine()
	return fmt.Sprintf("%d left  ", e.Remaining())
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.answering() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter/Space", Description: "Reveal"},
		{Key: "Esc", Description: "Back"},
	}
}

// Session returns the current session snapshot.
func (s *StudyScreen) Session() sess.Session {
	return s.session
}

func (s *StudyScreen) answering() bool {
	return s.session.Engine().State() == quiz.PhaseAnswering
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if !s.answering() {
		switch kmsg.String() {
		case "enter", "space", " ":
			s.session = s.session.Step("")
			s.input.Reset()
		}
		return s, nil
	}

	if kmsg.String() != "enter" {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	s.session = s.session.Step(s.input.Value())
	if v, ok := s.session.LastVerdict(); ok {
		s.input.Submit(v.Correct)
		s.verdict = console.FormatVerdict(v)
	}
	if s.session.Done() {
		next := summary.New(s.session.Result())
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *StudyScreen) View(width, height int) string {
	e := s.session.Engine()
	text, _ := e.Text()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	cardWidth := max(min(width-8, 60), 10)

	var b strings.Builder
	b.WriteString("\n")

	bar := components.ProgressBar{
		Label: "Retired",
		Done:  e.Size() - e.Remaining(),
		Total: e.Size(),
		Width: cardWidth,
	}
	b.WriteString(layout.Center(bar.View(), width))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("Attempts: %d    Correct: %d", e.AttemptCount(), e.CorrectCount())))
	b.WriteString("\n\n")

	card := theme.QuestionCard
	if s.answering() {
		card = theme.AnswerCard
	}
	b.WriteString(layout.Center(card.Width(cardWidth).Render(text), width))
	b.WriteString("\n\n")

	b.WriteString(layout.Center(theme.Hint.Render(s.session.Hint()), width))
	b.WriteString("\n")
	if s.answering() {
		b.WriteString(layout.Center("> "+s.input.View(), width))
		b.WriteString("\n")
	}

	if s.verdict != "" {
		style := theme.Incorrect
		if v, ok := s.session.LastVerdict(); ok && v.Correct {
			style = theme.Correct
		}
		b.WriteString("\n")
		b.WriteString(layout.Center(style.Render(s.verdict), width))
		b.WriteString("\n")
	}

	return b.String()
}
