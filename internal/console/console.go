package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/qtime/internal/quiz"
	"github.com/abhisek/qtime/internal/study"
)

// ErrInputClosed is returned when input ends before a study session completes.
var ErrInputClosed = errors.New("console: input closed")

const (
	menuPrompt = "Enter 1, 2, ..., or 0 to quit:"
	menuQuit   = "Bye."
)

// Option is anything a menu can list.
type Option interface {
	Title() string
}

// NamedOption is a menu option carrying a value.
type NamedOption[T any] struct {
	Value T
	Name  string
}

// Title returns the option name.
func (o NamedOption[T]) Title() string {
	return o.Name
}

// Console runs the plain line-oriented interface.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Console reading lines from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// readLine returns the next input line, or false at end of input.
func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// ChooseMenu lists options and reads a 1-based choice, repeating the menu
// until the input is valid. Entering 0 (or closing input) quits and returns false.
func ChooseMenu[T Option](c *Console, options []T) (T, bool) {
	var zero T
	for {
		for i, opt := range options {
			c.println(fmt.Sprintf("%d. %s", i+1, opt.Title()))
		}
		c.println()
		c.println(menuPrompt)

		line, ok := c.readLine()
		if !ok {
			c.println(menuQuit)
			return zero, false
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err != nil || n < 0 || n > len(options):
			continue
		case n == 0:
			c.println(menuQuit)
			return zero, false
		default:
			chosen := options[n-1]
			c.println("You chose to study " + chosen.Title())
			return chosen, true
		}
	}
}

// Study runs s to completion, one input line per turn, and prints the
// summary. It returns the partial result and ErrInputClosed if input ends first.
func (c *Console) Study(s study.Session) (study.Result, error) {
	for !s.Done() {
		c.println(s.Prompt())
		c.println(s.Hint())

		line, ok := c.readLine()
		if !ok {
			return s.Result(), ErrInputClosed
		}
		judged := s.Engine().State() == quiz.PhaseAnswering
		s = s.Step(line)

		if v, ok := s.LastVerdict(); ok && judged {
			c.println(FormatVerdict(v))
		}
	}

	c.println(s.Result().Summary())
	return s.Result(), nil
}

// FormatVerdict describes how a reply was read, with the classifier's
// confidence when there is one.
func FormatVerdict(v study.Verdict) string {
	msg := "Marked wrong; this one comes back later."
	if v.Correct {
		msg = "Marked correct."
	}
	if v.Neighbors > 0 {
		msg += fmt.Sprintf(" (%d/%d)", v.Votes, v.Neighbors)
	}
	return msg
}
