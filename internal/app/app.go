package app

import (
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/qtime/internal/bankfile"
	"github.com/abhisek/qtime/internal/logging"
	"github.com/abhisek/qtime/internal/quiz"
	"github.com/abhisek/qtime/internal/router"
	"github.com/abhisek/qtime/internal/screen"
	"github.com/abhisek/qtime/internal/screens/banks"
	"github.com/abhisek/qtime/internal/study"
	"github.com/abhisek/qtime/internal/ui/layout"
)

// ErrNoBanks is returned when the app is started without question banks.
var ErrNoBanks = errors.New("app: no question banks")

// Options configures the terminal UI.
type Options struct {
	Banks  []quiz.QuestionBank
	Judge  study.Judge
	Logger *slog.Logger

	// Start names a bank to open straight away, skipping the menu.
	Start string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// NewAppModel builds the model with the bank menu at the bottom of the
// screen stack.
func NewAppModel(opts Options) (AppModel, error) {
	if len(opts.Banks) == 0 {
		return AppModel{}, ErrNoBanks
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	menu := banks.New(opts.Banks, opts.Judge, opts.Logger)
	m := AppModel{router: router.New(menu)}

	if opts.Start != "" {
		bank, ok := bankfile.Find(opts.Banks, opts.Start)
		if !ok {
			return AppModel{}, fmt.Errorf("%w: %q", bankfile.ErrUnknownBank, opts.Start)
		}
		m.initCmd = menu.Start(bank)
	}
	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	active := m.router.Active()

	var title, status string
	hints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)
	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m, err := NewAppModel(opts)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}
