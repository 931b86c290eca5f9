package study

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/qtime/internal/logging"
	"github.com/abhisek/qtime/internal/quiz"
)

// Session drives one pass through a question bank: it feeds learner input
// to the engine one turn at a time. Like quiz.Engine it is a value; Step
// returns the next Session.
type Session struct {
	ID          string
	engine      quiz.Engine
	judge       Judge
	logger      *slog.Logger
	lastVerdict *Verdict
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Records carry the session ID.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		s.ID = id
	}
}

// NewSession starts a session on bank. It fails with quiz.ErrEmptyBank
// for a bank without questions.
func NewSession(bank quiz.QuestionBank, judge Judge, opts ...Option) (Session, error) {
	engine, err := quiz.NewEngine(bank)
	if err != nil {
		return Session{}, err
	}
	if judge == nil {
		judge = KeystrokeJudge()
	}

	s := Session{
		ID:     uuid.New().String(),
		engine: engine,
		judge:  judge,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.logger = s.logger.With("session_id", s.ID, "bank", bank.Name)
	s.logger.Info("session started", "questions", bank.Size())
	return s, nil
}

// Engine returns the current engine snapshot.
func (s Session) Engine() quiz.Engine {
	return s.engine
}

// Done reports whether every question has been answered correctly.
func (s Session) Done() bool {
	return s.engine.State() == quiz.PhaseCompleted
}

// LastVerdict returns the verdict from the most recent judged reply.
func (s Session) LastVerdict() (Verdict, bool) {
	if s.lastVerdict == nil {
		return Verdict{}, false
	}
	return *s.lastVerdict, true
}

// Prompt returns the text to show for the current turn.
func (s Session) Prompt() string {
	text, ok := s.engine.Text()
	if !ok {
		return s.Result().Summary()
	}
	if s.engine.State() == quiz.PhaseAnswering {
		return "A: " + text
	}
	return "Q: " + text
}

// Hint tells the learner what input the current turn expects.
func (s Session) Hint() string {
	switch s.engine.State() {
	case quiz.PhaseQuestioning:
		return "Press Enter to reveal the answer..."
	case quiz.PhaseAnswering:
		return "Did you get it right?"
	default:
		return ""
	}
}

// Step applies one line of learner input. While questioning any input
// reveals the answer; while answering the input is judged and the engine
// advances. A completed session is returned unchanged.
func (s Session) Step(input string) Session {
	switch s.engine.State() {
	case quiz.PhaseQuestioning:
		s.engine = s.engine.Show()
		s.logger.Debug("answer revealed", "remaining", s.engine.Remaining())

	case quiz.PhaseAnswering:
		v := s.judge(strings.TrimSpace(input))
		s.lastVerdict = &v
		q, _ := s.engine.Current()
		s.engine = s.engine.Next(v.Correct)

		if v.Correct {
			s.logger.Debug("question retired", "question", q.Text, "votes", v.Votes)
		} else {
			s.logger.Debug("question recycled", "question", q.Text, "votes", v.Votes)
		}
		if s.Done() {
			r := s.Result()
			s.logger.Info("session completed", "questions", r.NumQuestions, "attempts", r.NumAttempts)
		}
	}
	return s
}

// Result summarizes the session so far.
func (s Session) Result() Result {
	return Result{
		Bank:         s.engine.Bank().Name,
		NumQuestions: s.engine.Size(),
		NumAttempts:  s.engine.AttemptCount(),
		NumCorrect:   s.engine.CorrectCount(),
	}
}

// Result is the outcome of a study session.
type Result struct {
	Bank         string
	NumQuestions int
	NumAttempts  int
	NumCorrect   int
}

// Summary returns a one-line report for the learner.
func (r Result) Summary() string {
	return fmt.Sprintf("Quiz complete! You got %d out of %d correct in %d %s.",
		r.NumCorrect, r.NumQuestions, r.NumAttempts, plural(r.NumAttempts, "attempt", "attempts"))
}

// Accuracy returns the share of attempts that were correct, or 0 before any attempt.
func (r Result) Accuracy() float64 {
	if r.NumAttempts == 0 {
		return 0
	}
	return float64(r.NumCorrect) / float64(r.NumAttempts)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
