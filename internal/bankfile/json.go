package bankfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/qtime/internal/quiz"
)

// ErrInvalidJSON is returned when a JSON bank file is not valid JSON or
// does not match the bank schema.
var ErrInvalidJSON = errors.New("bankfile: invalid JSON banks")

const schemaURL = "schema://qtime-banks.json"

// bankSchema describes a JSON bank file.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"banks": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{"type": "string", "minLength": 1},
					"questions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"question": map[string]any{"type": "string", "minLength": 1},
								"answer":   map[string]any{"type": "string", "minLength": 1},
							},
							"required":             []any{"question", "answer"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"name", "questions"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"banks"},
	"additionalProperties": false,
}

var compiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants decoded JSON values, not Go literals.
	defBytes, err := json.Marshal(bankSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

type jsonFile struct {
	Banks []jsonBank `json:"banks"`
}

type jsonBank struct {
	Name      string         `json:"name"`
	Questions []jsonQuestion `json:"questions"`
}

type jsonQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ParseJSON validates data against the bank schema and decodes it. Banks
// sharing a name are merged in file order, as repeated headings are in the
// text format. Fields that are blank after trimming are rejected.
func ParseJSON(data []byte) ([]quiz.QuestionBank, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	schema, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	var file jsonFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	b := &builder{questions: make(map[string][]quiz.Question)}
	for i, jb := range file.Banks {
		name := strings.TrimSpace(jb.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: banks[%d]: blank name", ErrInvalidJSON, i)
		}
		b.declare(name)

		for j, jq := range jb.Questions {
			q := quiz.Question{
				Text:   strings.TrimSpace(jq.Question),
				Answer: strings.TrimSpace(jq.Answer),
			}
			if q.Text == "" || q.Answer == "" {
				return nil, fmt.Errorf("%w: banks[%d].questions[%d]: blank question or answer", ErrInvalidJSON, i, j)
			}
			b.add([]string{name}, q)
		}
	}
	return b.banks(), nil
}
