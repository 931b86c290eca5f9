package knn

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidArgument is returned for an empty dataset or an out-of-range k.
var ErrInvalidArgument = errors.New("knn: invalid argument")

// LabeledExample pairs an example with its label.
type LabeledExample[E, L any] struct {
	Example E
	Label   L
}

// ResultWithVotes is a predicted label and the number of neighbors that voted for it.
type ResultWithVotes[L any] struct {
	Label L
	Votes int
}

// DistanceFunc returns a non-negative dissimilarity between two values.
type DistanceFunc[E any] func(a, b E) int

// Neighbor is a dataset example selected by Nearest, with its distance to the query.
type Neighbor[E, L any] struct {
	LabeledExample[E, L]
	Index    int // position in the dataset
	Distance int
}

// Nearest returns the k examples closest to query, nearest first. Examples
// at equal distance keep their dataset order, so ties at the k-th
// boundary go to the example that appears first.
func Nearest[E, L any](query E, dataset []LabeledExample[E, L], dist DistanceFunc[E], k int) ([]Neighbor[E, L], error) {
	if len(dataset) == 0 {
		return nil, fmt.Errorf("empty dataset: %w", ErrInvalidArgument)
	}
	if k < 1 || k > len(dataset) {
		return nil, fmt.Errorf("k=%d outside [1, %d]: %w", k, len(dataset), ErrInvalidArgument)
	}
	if dist == nil {
		return nil, fmt.Errorf("nil distance function: %w", ErrInvalidArgument)
	}

	all := make([]Neighbor[E, L], len(dataset))
	for i, ex := range dataset {
		all[i] = Neighbor[E, L]{
			LabeledExample: ex,
			Index:          i,
			Distance:       dist(query, ex.Example),
		}
	}

	slices.SortStableFunc(all, func(a, b Neighbor[E, L]) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return all[:k:k], nil
}

// Classify predicts the label of query by majority vote among its k
// nearest neighbors. When labels tie on votes, the label that appears
// first among the selected neighbors wins.
func Classify[E any, L comparable](query E, dataset []LabeledExample[E, L], dist DistanceFunc[E], k int) (ResultWithVotes[L], error) {
	neighbors, err := Nearest(query, dataset, dist, k)
	if err != nil {
		return ResultWithVotes[L]{}, err
	}
	return Vote(neighbors), nil
}

// Vote tallies neighbor labels and returns the most frequent one.
func Vote[E any, L comparable](neighbors []Neighbor[E, L]) ResultWithVotes[L] {
	counts := make(map[L]int, len(neighbors))
	var order []L
	for _, n := range neighbors {
		if _, seen := counts[n.Label]; !seen {
			order = append(order, n.Label)
		}
		counts[n.Label]++
	}

	var best ResultWithVotes[L]
	for _, label := range order {
		if counts[label] > best.Votes {
			best = ResultWithVotes[L]{Label: label, Votes: counts[label]}
		}
	}
	return best
}
