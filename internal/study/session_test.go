package study

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/qtime/internal/config"
	"github.com/abhisek/qtime/internal/quiz"
	"github.com/abhisek/qtime/internal/sentiment"
)

func twoQuestionBank() quiz.QuestionBank {
	return quiz.NewQuestionBank("capitals", []quiz.Question{
		{Text: "Capital of France?", Answer: "Paris"},
		{Text: "Capital of Peru?", Answer: "Lima"},
	})
}

func newSession(t *testing.T, judge Judge, opts ...Option) Session {
	t.Helper()
	s, err := NewSession(twoQuestionBank(), judge, opts...)
	require.NoError(t, err)
	return s
}

func TestNewSession_EmptyBank(t *testing.T) {
	_, err := NewSession(quiz.NewQuestionBank("empty", nil), KeystrokeJudge())
	require.ErrorIs(t, err, quiz.ErrEmptyBank)
}

func TestNewSession_GeneratesID(t *testing.T) {
	a := newSession(t, nil)
	b := newSession(t, nil)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	c := newSession(t, nil, WithID("fixed"))
	assert.Equal(t, "fixed", c.ID)
}

func TestSession_PromptsAndHints(t *testing.T) {
	s := newSession(t, KeystrokeJudge())
	assert.Equal(t, "Q: Capital of France?", s.Prompt())
	assert.Equal(t, "Press Enter to reveal the answer...", s.Hint())

	s = s.Step("")
	assert.Equal(t, "A: Paris", s.Prompt())
	assert.Equal(t, "Did you get it right?", s.Hint())
}

func TestSession_FullRun(t *testing.T) {
	s := newSession(t, SentimentJudge(sentiment.Default()))

	inputs := []string{
		"", "nope", // France recycled
		"", "  Indeed ", // Peru retired
		"", "yes", // France retired
	}
	for _, in := range inputs {
		require.False(t, s.Done())
		s = s.Step(in)
	}

	require.True(t, s.Done())
	assert.Equal(t, Result{Bank: "capitals", NumQuestions: 2, NumAttempts: 3, NumCorrect: 2}, s.Result())
	assert.Equal(t, "Quiz complete! You got 2 out of 2 correct in 3 attempts.", s.Prompt())
	assert.Empty(t, s.Hint())

	v, ok := s.LastVerdict()
	require.True(t, ok)
	assert.Equal(t, Verdict{Correct: true, Votes: 3, Neighbors: 3}, v)
}

func TestSession_StepDoesNotModifyReceiver(t *testing.T) {
	s := newSession(t, KeystrokeJudge())
	revealed := s.Step("")
	next := revealed.Step("y")

	assert.Equal(t, quiz.PhaseQuestioning, s.Engine().State())
	assert.Equal(t, quiz.PhaseAnswering, revealed.Engine().State())
	assert.Equal(t, 1, next.Engine().CorrectCount())
	_, ok := revealed.LastVerdict()
	assert.False(t, ok)
}

func TestSession_StepAfterDoneIsNoop(t *testing.T) {
	bank := quiz.NewQuestionBank("one", []quiz.Question{{Text: "q", Answer: "a"}})
	s, err := NewSession(bank, KeystrokeJudge())
	require.NoError(t, err)

	s = s.Step("").Step("y")
	require.True(t, s.Done())
	assert.Equal(t, s.Result(), s.Step("").Step("n").Result())
}

func TestSession_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := newSession(t, KeystrokeJudge(), WithLogger(logger), WithID("sess-1"))
	s = s.Step("").Step("n").Step("").Step("y").Step("").Step("y")
	require.True(t, s.Done())

	out := buf.String()
	assert.Contains(t, out, "session_id=sess-1")
	assert.Contains(t, out, "bank=capitals")
	assert.Contains(t, out, `msg="session started"`)
	assert.Contains(t, out, `msg="question recycled"`)
	assert.Contains(t, out, `msg="question retired"`)
	assert.Contains(t, out, `msg="session completed"`)
}

func TestResult_Summary(t *testing.T) {
	r := Result{NumQuestions: 1, NumAttempts: 1, NumCorrect: 1}
	assert.Equal(t, "Quiz complete! You got 1 out of 1 correct in 1 attempt.", r.Summary())
	assert.InDelta(t, 1.0, r.Accuracy(), 1e-9)
	assert.Zero(t, Result{}.Accuracy())
}

func TestJudges(t *testing.T) {
	keystroke := KeystrokeJudge()
	assert.Equal(t, Verdict{Correct: true}, keystroke("yeah"))
	assert.Equal(t, Verdict{Correct: false}, keystroke("indeed"))

	sent := SentimentJudge(sentiment.Default())
	assert.Equal(t, Verdict{Correct: true, Votes: 3, Neighbors: 3}, sent("indeed"))
	assert.Equal(t, Verdict{Correct: false, Votes: 2, Neighbors: 3}, sent("nadda"))
}

func TestNewJudge(t *testing.T) {
	j, err := NewJudge(config.JudgeKeystroke, nil)
	require.NoError(t, err)
	assert.False(t, j("affirmative").Correct)

	j, err = NewJudge(config.JudgeSentiment, nil)
	require.NoError(t, err)
	assert.True(t, j("affirmative").Correct)

	_, err = NewJudge("coin-flip", nil)
	require.ErrorIs(t, err, ErrUnknownJudge)
}
