package bankfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/abhisek/qtime/internal/quiz"
)

var (
	// ErrMalformedLine is returned for a question line with an empty question or answer.
	ErrMalformedLine = errors.New("bankfile: malformed question line")
	// ErrNoBanks is returned when a file yields no non-empty bank.
	ErrNoBanks = errors.New("bankfile: no question banks found")
	// ErrUnknownBank is returned when a bank is requested by a name that is not loaded.
	ErrUnknownBank = errors.New("bankfile: unknown question bank")
)

// Options controls the tagged text format.
type Options struct {
	// Marker starts a heading line naming the banks that following questions belong to.
	Marker string
	// Separator splits a question line into question and answer text.
	Separator string
	// TagSeparator splits a heading into several bank names.
	TagSeparator string
	// DefaultBank collects questions that appear before any heading.
	// Empty drops them.
	DefaultBank string
}

// DefaultOptions returns the options for the standard format:
//
//	# geography, capitals
//	Capital of France? | Paris
func DefaultOptions() Options {
	return Options{
		Marker:       "#",
		Separator:    "|",
		TagSeparator: ",",
	}
}

// builder accumulates banks in first-appearance order.
type builder struct {
	order     []string
	questions map[string][]quiz.Question
}

func (b *builder) declare(name string) {
	if _, ok := b.questions[name]; ok {
		return
	}
	b.order = append(b.order, name)
	b.questions[name] = nil
}

func (b *builder) add(names []string, q quiz.Question) {
	for _, name := range names {
		b.questions[name] = append(b.questions[name], q)
	}
}

func (b *builder) banks() []quiz.QuestionBank {
	var banks []quiz.QuestionBank
	for _, name := range b.order {
		if qs := b.questions[name]; len(qs) > 0 {
			banks = append(banks, quiz.NewQuestionBank(name, qs))
		}
	}
	return banks
}

// Parse reads tagged questions from r and groups them into banks. Every
// returned bank has at least one question.
func Parse(r io.Reader, opts Options) ([]quiz.QuestionBank, error) {
	b := &builder{questions: make(map[string][]quiz.Question)}

	var current []string
	if opts.DefaultBank != "" {
		b.declare(opts.DefaultBank)
		current = []string{opts.DefaultBank}
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, opts.Marker):
			current = parseHeading(strings.TrimPrefix(line, opts.Marker), opts.TagSeparator)
			for _, name := range current {
				b.declare(name)
			}

		case strings.Contains(line, opts.Separator):
			question, answer, _ := strings.Cut(line, opts.Separator)
			question = strings.TrimSpace(question)
			answer = strings.TrimSpace(answer)
			if question == "" || answer == "" {
				return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrMalformedLine, line)
			}
			b.add(current, quiz.Question{Text: question, Answer: answer})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	banks := b.banks()
	if len(banks) == 0 {
		return nil, ErrNoBanks
	}
	return banks, nil
}

// parseHeading returns the trimmed, non-empty bank names in a heading.
// A name listed twice counts once.
func parseHeading(heading, tagSep string) []string {
	parts := []string{heading}
	if tagSep != "" {
		parts = strings.Split(heading, tagSep)
	}
	var names []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" && !slices.Contains(names, p) {
			names = append(names, p)
		}
	}
	return names
}

// Load reads banks from path. Files ending in .json are decoded as JSON
// banks; anything else is parsed as tagged text.
func Load(path string, opts Options) ([]quiz.QuestionBank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open questions: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("read questions: %w", err)
		}
		return ParseJSON(data)
	}
	return Parse(f, opts)
}

// Find returns the bank with the given name, ignoring case.
func Find(banks []quiz.QuestionBank, name string) (quiz.QuestionBank, bool) {
	for _, b := range banks {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return quiz.QuestionBank{}, false
}
