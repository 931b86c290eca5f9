package study

import (
	"errors"
	"fmt"

	"github.com/abhisek/qtime/internal/config"
	"github.com/abhisek/qtime/internal/sentiment"
)

// ErrUnknownJudge is returned by NewJudge for an unsupported mode.
var ErrUnknownJudge = errors.New("study: unknown judge")

// Verdict is the reading of a learner's reply to "did you get it right?".
type Verdict struct {
	Correct bool

	// Votes and Neighbors give the classifier's confidence as
	// Votes/Neighbors. Both are zero for the keystroke judge.
	Votes     int
	Neighbors int
}

// Judge interprets a learner's self-assessment.
type Judge func(reply string) Verdict

// KeystrokeJudge accepts any reply starting with "y".
func KeystrokeJudge() Judge {
	return func(reply string) Verdict {
		return Verdict{Correct: sentiment.Naive(reply)}
	}
}

// SentimentJudge reads free-form replies with c.
func SentimentJudge(c *sentiment.Classifier) Judge {
	return func(reply string) Verdict {
		r := c.Classify(reply)
		return Verdict{Correct: r.Label, Votes: r.Votes, Neighbors: sentiment.K}
	}
}

// NewJudge returns the judge for mode. c may be nil for the keystroke judge.
func NewJudge(mode config.JudgeMode, c *sentiment.Classifier) (Judge, error) {
	switch mode {
	case config.JudgeKeystroke:
		return KeystrokeJudge(), nil
	case config.JudgeSentiment:
		if c == nil {
			c = sentiment.Default()
		}
		return SentimentJudge(c), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownJudge, mode)
	}
}
