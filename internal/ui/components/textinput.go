package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/qtime/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with the app styling and a verdict
// mark that is shown after submission.
type TextInput struct {
	Model     textinput.Model
	submitted bool
	correct   bool
}

// NewTextInput creates a focused text input. A charLimit of 0 means no limit.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Focus()
	return TextInput{Model: ti}
}

// Update forwards msg to the wrapped input.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input followed by the verdict mark, if any.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.correct {
			view += " " + theme.Correct.Render("✓")
		} else {
			view += " " + theme.Incorrect.Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Reset clears the value and the verdict mark.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.submitted = false
}

// Submit records the verdict for the current value.
func (t *TextInput) Submit(correct bool) {
	t.submitted = true
	t.correct = correct
}
