package sentiment

import (
	"fmt"
	"strings"

	"github.com/abhisek/qtime/internal/knn"
)

// K is the number of neighbors consulted, and the vote count reported for
// an exact match.
const K = 3

// Result is a yes/no label with the number of neighbors supporting it.
type Result = knn.ResultWithVotes[bool]

// Neighbor is a reference phrase consulted during classification.
type Neighbor = knn.Neighbor[string, bool]

// Explanation describes how a reply was classified.
type Explanation struct {
	Input      string
	Normalized string
	Exact      bool       // the normalized input is a reference phrase
	Neighbors  []Neighbor // empty for exact matches
	Result     Result
}

// Classifier labels free-form replies as affirmative or negative.
type Classifier struct {
	examples []Example
	exact    map[string]bool
}

// NewClassifier builds a classifier over examples. Example texts are
// compared after case folding; the first occurrence of a phrase wins.
func NewClassifier(examples []Example) (*Classifier, error) {
	if len(examples) < K {
		return nil, fmt.Errorf("sentiment: need at least %d examples, got %d: %w",
			K, len(examples), knn.ErrInvalidArgument)
	}
	c := &Classifier{
		examples: make([]Example, len(examples)),
		exact:    make(map[string]bool, len(examples)),
	}
	for i, ex := range examples {
		ex.Example = normalize(ex.Example)
		c.examples[i] = ex
		if _, dup := c.exact[ex.Example]; !dup {
			c.exact[ex.Example] = ex.Label
		}
	}
	return c, nil
}

// Default returns a classifier over the bundled dataset.
func Default() *Classifier {
	return defaultClassifier
}

var defaultClassifier = mustClassifier(dataset)

func mustClassifier(examples []Example) *Classifier {
	c, err := NewClassifier(examples)
	if err != nil {
		panic(err)
	}
	return c
}

// Classify labels s. A reply that matches a reference phrase exactly
// (ignoring case) gets that phrase's label with K votes; anything else is
// labeled by its K nearest phrases under edit distance.
func (c *Classifier) Classify(s string) Result {
	return c.Explain(s).Result
}

// IsPositive reports whether s reads as an affirmative reply.
func (c *Classifier) IsPositive(s string) bool {
	return c.Classify(s).Label
}

// Explain classifies s and reports the neighbors that decided it.
func (c *Classifier) Explain(s string) Explanation {
	norm := normalize(s)
	exp := Explanation{Input: s, Normalized: norm}

	if label, ok := c.exact[norm]; ok {
		exp.Exact = true
		exp.Result = Result{Label: label, Votes: K}
		return exp
	}

	// Cannot fail: NewClassifier guarantees len(examples) >= K.
	neighbors, _ := knn.Nearest(norm, c.examples, knn.Levenshtein, K)
	exp.Neighbors = neighbors
	exp.Result = knn.Vote(neighbors)
	return exp
}

// Classify labels s with the default classifier.
func Classify(s string) Result {
	return defaultClassifier.Classify(s)
}

// IsPositive reports whether s reads as affirmative to the default classifier.
func IsPositive(s string) bool {
	return defaultClassifier.IsPositive(s)
}

// Naive treats any reply starting with "y" (either case) as affirmative.
func Naive(s string) bool {
	return strings.HasPrefix(strings.ToUpper(s), "Y")
}

func normalize(s string) string {
	return strings.ToLower(s)
}
