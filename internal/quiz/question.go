package quiz

import "slices"

// Question is a single question/answer pair.
type Question struct {
	Text   string
	Answer string
}

// QuestionBank is a named, ordered set of questions. The order is the
// traversal order used by an Engine.
type QuestionBank struct {
	Name      string
	questions []Question
}

// NewQuestionBank creates a bank holding a private copy of questions.
func NewQuestionBank(name string, questions []Question) QuestionBank {
	return QuestionBank{
		Name:      name,
		questions: slices.Clone(questions),
	}
}

// Questions returns a copy of the bank's questions in traversal order.
func (b QuestionBank) Questions() []Question {
	return slices.Clone(b.questions)
}

// Size returns the number of question/answer pairs in the bank.
func (b QuestionBank) Size() int {
	return len(b.questions)
}

// Title returns the bank name for menus.
func (b QuestionBank) Title() string {
	return b.Name
}
