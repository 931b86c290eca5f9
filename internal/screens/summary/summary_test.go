package summary

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/qtime/internal/router"
	"github.com/abhisek/qtime/internal/study"
)

func testResult() study.Result {
	return study.Result{Bank: "capitals", NumQuestions: 2, NumAttempts: 3, NumCorrect: 2}
}

func TestSummaryScreen_Title(t *testing.T) {
	assert.Equal(t, "Summary", New(testResult()).Title())
}

func TestSummaryScreen_View(t *testing.T) {
	view := New(testResult()).View(80, 24)
	assert.Contains(t, view, "capitals")
	assert.Contains(t, view, "Accuracy: 67%")
	assert.Contains(t, view, "You got 2 out of 2 correct in 3 attempts.")
}

func TestSummaryScreen_EnterPops(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		_, cmd := New(testResult()).Update(tea.KeyPressMsg{Code: code})
		require.NotNil(t, cmd)
		assert.IsType(t, router.PopScreenMsg{}, cmd())
	}
}

func TestSummaryScreen_QuitKey(t *testing.T) {
	_, cmd := New(testResult()).Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSummaryScreen_IgnoresOtherKeys(t *testing.T) {
	_, cmd := New(testResult()).Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd)
}
