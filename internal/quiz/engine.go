package quiz

import (
	"errors"
	"fmt"
	"slices"
)

// ErrEmptyBank is returned when an engine is built from a bank with no questions.
var ErrEmptyBank = errors.New("quiz: question bank has no questions")

// Phase is the state of an Engine.
type Phase int

const (
	PhaseQuestioning Phase = iota // Question visible, answer hidden
	PhaseAnswering                // Answer revealed, awaiting a correctness judgment
	PhaseCompleted                // Every question has been answered correctly
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseQuestioning:
		return "questioning"
	case PhaseAnswering:
		return "answering"
	case PhaseCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Engine cycles a learner through a question bank. A question is retired
// only once it has been answered correctly; a wrong answer sends it to the
// back of the queue.
//
// Engine is an immutable value. Show and Next return a new Engine and never
// modify the receiver, so callers can keep an earlier Engine around for
// display after issuing a transition.
type Engine struct {
	bank     QuestionBank
	working  []Question // not-yet-retired questions; working[0] is current
	phase    Phase
	correct  int
	attempts int
}

// NewEngine returns an engine in PhaseQuestioning on the bank's first question.
func NewEngine(bank QuestionBank) (Engine, error) {
	if bank.Size() == 0 {
		return Engine{}, fmt.Errorf("bank %q: %w", bank.Name, ErrEmptyBank)
	}
	return Engine{
		bank:    bank,
		working: bank.Questions(),
		phase:   PhaseQuestioning,
	}, nil
}

// State returns the current phase.
func (e Engine) State() Phase {
	return e.phase
}

// Text returns the visible text: the question while questioning, the
// answer while answering. It returns ("", false) once completed.
func (e Engine) Text() (string, bool) {
	switch e.phase {
	case PhaseQuestioning:
		return e.working[0].Text, true
	case PhaseAnswering:
		return e.working[0].Answer, true
	default:
		return "", false
	}
}

// Current returns the question at the front of the queue.
func (e Engine) Current() (Question, bool) {
	if e.phase == PhaseCompleted || len(e.working) == 0 {
		return Question{}, false
	}
	return e.working[0], true
}

// Size returns the number of question/answer pairs in the bank. It does not
// change as questions are recycled or retired.
func (e Engine) Size() int {
	return e.bank.Size()
}

// Remaining returns the number of questions not yet answered correctly.
func (e Engine) Remaining() int {
	return len(e.working)
}

// CorrectCount returns the number of questions retired so far.
func (e Engine) CorrectCount() int {
	return e.correct
}

// AttemptCount returns the number of correctness judgments received so far.
func (e Engine) AttemptCount() int {
	return e.attempts
}

// Bank returns the bank the engine was built from.
func (e Engine) Bank() QuestionBank {
	return e.bank
}

// Show reveals the answer to the current question. Outside
// PhaseQuestioning it returns the receiver unchanged.
func (e Engine) Show() Engine {
	if e.phase != PhaseQuestioning {
		return e
	}
	e.phase = PhaseAnswering
	return e
}

// Next records whether the current question was answered correctly. A
// correct question is retired; an incorrect one moves to the back of the
// queue. Outside PhaseAnswering it returns the receiver unchanged.
func (e Engine) Next(correct bool) Engine {
	if e.phase != PhaseAnswering {
		return e
	}

	current := e.working[0]
	rest := e.working[1:]

	working := make([]Question, 0, len(e.working))
	working = append(working, rest...)
	if correct {
		e.correct++
	} else {
		working = append(working, current)
	}
	e.attempts++
	e.working = working

	if len(e.working) == 0 {
		e.phase = PhaseCompleted
	} else {
		e.phase = PhaseQuestioning
	}
	return e
}

// Pending returns a copy of the not-yet-retired questions, current first.
func (e Engine) Pending() []Question {
	return slices.Clone(e.working)
}
