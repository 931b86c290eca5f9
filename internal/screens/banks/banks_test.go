package banks

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/qtime/internal/logging"
	"github.com/abhisek/qtime/internal/quiz"
	"github.com/abhisek/qtime/internal/router"
	studyscreen "github.com/abhisek/qtime/internal/screens/study"
	"github.com/abhisek/qtime/internal/study"
)

func testBanks() []quiz.QuestionBank {
	return []quiz.QuestionBank{
		quiz.NewQuestionBank("capitals", []quiz.Question{
			{Text: "Capital of France?", Answer: "Paris"},
			{Text: "Capital of Peru?", Answer: "Lima"},
		}),
		quiz.NewQuestionBank("chemistry", []quiz.Question{
			{Text: "Symbol for gold?", Answer: "Au"},
		}),
	}
}

func newScreen() *BanksScreen {
	return New(testBanks(), study.KeystrokeJudge(), logging.Discard())
}

func TestBanksScreen_View(t *testing.T) {
	view := newScreen().View(80, 24)
	assert.Contains(t, view, "capitals")
	assert.Contains(t, view, "2 questions")
	assert.Contains(t, view, "1 question")
	assert.Contains(t, view, "Quit")
}

func TestBanksScreen_EnterStartsStudy(t *testing.T) {
	s := newScreen()
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	st, ok := msg.Screen.(*studyscreen.StudyScreen)
	require.True(t, ok)
	assert.Equal(t, "chemistry", st.Title())
}

func TestBanksScreen_QuitItem(t *testing.T) {
	s := newScreen()
	_, cmd := s.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBanksScreen_StartEmptyBank(t *testing.T) {
	s := newScreen()
	cmd := s.Start(quiz.NewQuestionBank("empty", nil))
	require.NotNil(t, cmd)

	s.Update(cmd())
	assert.Contains(t, s.View(80, 24), "has no questions")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.NotContains(t, s.View(80, 24), "has no questions")
}

func TestBanksScreen_SessionFailedMsg(t *testing.T) {
	s := newScreen()
	s.Update(sessionFailedMsg{err: errors.New("boom")})
	assert.Contains(t, s.View(80, 24), "boom")
}
