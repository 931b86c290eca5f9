package banks

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/qtime/internal/quiz"
	"github.com/abhisek/qtime/internal/router"
	"github.com/abhisek/qtime/internal/screen"
	studyscreen "github.com/abhisek/qtime/internal/screens/study"
	"github.com/abhisek/qtime/internal/study"
	"github.com/abhisek/qtime/internal/ui/components"
	"github.com/abhisek/qtime/internal/ui/layout"
	"github.com/abhisek/qtime/internal/ui/theme"
)

// BanksScreen lets the learner pick a question bank to study.
type BanksScreen struct {
	banks  []quiz.QuestionBank
	judge  study.Judge
	logger *slog.Logger
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*BanksScreen)(nil)
var _ screen.KeyHintProvider = (*BanksScreen)(nil)

// sessionFailedMsg reports a bank that could not be studied.
type sessionFailedMsg struct {
	err error
}

// New creates a BanksScreen. Each pick starts a fresh session judged by judge.
func New(banks []quiz.QuestionBank, judge study.Judge, logger *slog.Logger) *BanksScreen {
	s := &BanksScreen{
		banks:  banks,
		judge:  judge,
		logger: logger,
	}

	items := make([]components.MenuItem, 0, len(banks)+1)
	for _, b := range banks {
		items = append(items, components.MenuItem{
			Label:  b.Title(),
			Detail: fmt.Sprintf("%d %s", b.Size(), plural(b.Size())),
			Action: func() tea.Cmd { return s.Start(b) },
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})
	s.menu = components.NewMenu(items)
	return s
}

// Start returns a command that pushes a study screen for bank.
func (s *BanksScreen) Start(bank quiz.QuestionBank) tea.Cmd {
	sn, err := study.NewSession(bank, s.judge, study.WithLogger(s.logger))
	if err != nil {
		return func() tea.Msg { return sessionFailedMsg{err: err} }
	}
	next := studyscreen.New(sn)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *BanksScreen) Init() tea.Cmd {
	return nil
}

func (s *BanksScreen) Title() string {
	return "Question Banks"
}

func (s *BanksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Study"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *BanksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionFailedMsg:
		s.errMsg = msg.err.Error()
		return s, nil
	case tea.KeyPressMsg:
		s.errMsg = ""
		if msg.String() == "q" {
			return s, tea.Quit
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *BanksScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("What do you want to study?"))
	b.WriteString("\n\n")

	menu := s.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(layout.Center(theme.Incorrect.Render(s.errMsg), width))
	}
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return "question"
	}
	return "questions"
}
