package sentiment

import (
	"slices"

	"github.com/abhisek/qtime/internal/knn"
)

// Example is a labeled yes/no phrase. The label is true for affirmative phrases.
type Example = knn.LabeledExample[string, bool]

// dataset holds affirmative and negative replies, all lowercase and unique.
var dataset = []Example{
	// Affirmative.
	{Example: "yes", Label: true},
	{Example: "y", Label: true},
	{Example: "indeed", Label: true},
	{Example: "aye", Label: true},
	{Example: "oh yes", Label: true},
	{Example: "affirmative", Label: true},
	{Example: "roger", Label: true},
	{Example: "uh huh", Label: true},
	{Example: "true", Label: true},

	// Negative.
	{Example: "no", Label: false},
	{Example: "n", Label: false},
	{Example: "nope", Label: false},
	{Example: "negative", Label: false},
	{Example: "nay", Label: false},
	{Example: "negatory", Label: false},
	{Example: "uh uh", Label: false},
	{Example: "absolutely not", Label: false},
	{Example: "false", Label: false},
}

// Dataset returns a copy of the bundled reference phrases in their fixed order.
func Dataset() []Example {
	return slices.Clone(dataset)
}
