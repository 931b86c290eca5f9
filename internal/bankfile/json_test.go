package bankfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/qtime/internal/quiz"
)

const sampleJSON = `{
  "banks": [
    {"name": "Chemistry", "questions": [
      {"question": "Symbol for gold?", "answer": "Au"},
      {"question": " Water formula? ", "answer": " H2O "}
    ]},
    {"name": "Music", "questions": [
      {"question": "Notes in an octave?", "answer": "8"}
    ]}
  ]
}`

func TestParseJSON(t *testing.T) {
	banks, err := ParseJSON([]byte(sampleJSON))
	require.NoError(t, err)

	require.Equal(t, []string{"Chemistry", "Music"}, names(banks))
	assert.Equal(t, []quiz.Question{
		{Text: "Symbol for gold?", Answer: "Au"},
		{Text: "Water formula?", Answer: "H2O"},
	}, banks[0].Questions())
}

func TestParseJSON_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{"banks": [`},
		{"no banks key", `{}`},
		{"empty banks", `{"banks": []}`},
		{"empty questions", `{"banks": [{"name": "x", "questions": []}]}`},
		{"missing answer", `{"banks": [{"name": "x", "questions": [{"question": "q"}]}]}`},
		{"empty name", `{"banks": [{"name": "", "questions": [{"question": "q", "answer": "a"}]}]}`},
		{"unknown field", `{"banks": [{"name": "x", "tags": [], "questions": [{"question": "q", "answer": "a"}]}]}`},
		{"wrong type", `{"banks": [{"name": 3, "questions": [{"question": "q", "answer": "a"}]}]}`},
		{"blank name", `{"banks": [{"name": "   ", "questions": [{"question": "q", "answer": "a"}]}]}`},
		{"blank question", `{"banks": [{"name": "x", "questions": [{"question": "  ", "answer": " a "}]}]}`},
		{"blank answer", `{"banks": [{"name": "x", "questions": [{"question": "q", "answer": "\t"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.input))
			require.ErrorIs(t, err, ErrInvalidJSON)
		})
	}
}

func TestParseJSON_MergesSameName(t *testing.T) {
	input := `{"banks": [
	  {"name": "Chemistry", "questions": [{"question": "Symbol for gold?", "answer": "Au"}]},
	  {"name": "Music", "questions": [{"question": "Notes in an octave?", "answer": "8"}]},
	  {"name": " Chemistry ", "questions": [{"question": "Symbol for iron?", "answer": "Fe"}]}
	]}`
	banks, err := ParseJSON([]byte(input))
	require.NoError(t, err)

	require.Equal(t, []string{"Chemistry", "Music"}, names(banks))
	assert.Equal(t, []quiz.Question{
		{Text: "Symbol for gold?", Answer: "Au"},
		{Text: "Symbol for iron?", Answer: "Fe"},
	}, banks[0].Questions())
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banks.JSON")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	banks, err := Load(path, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, banks, 2)
}
