package lattice

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/galois/formal"
)

// Naive derives the cover relation by pairwise intent comparison.
//
// Concepts are ranked by decreasing intent length. For each concept i, every
// higher-ranked concept whose intent strictly contains Intent(i) is a
// candidate sub-concept. Candidates are confirmed smallest intent first, and
// a candidate j is dropped when some already-confirmed child k of i satisfies
// Intent(k) ⊆ Intent(j): then k lies strictly between i and j.
//
// The concept list may be in any order and must not contain duplicates.
// Errors: ErrOptionViolation, ErrTooLarge.
// Complexity: O(n²·m) time, O(n + edges) memory.
func Naive(concepts []formal.Concept, opts ...Option) (*Cover, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	n := len(concepts)
	if o.MaxConcepts > 0 && n > o.MaxConcepts {
		return nil, fmt.Errorf("Naive: %d concepts, limit %d: %w", n, o.MaxConcepts, ErrTooLarge)
	}

	order := rank(n, func(a, b int) int {
		return cmp.Compare(len(concepts[b].Intent), len(concepts[a].Intent))
	})

	cover := newCover(n)
	candidates := make([]int, 0, n)
	for pos, i := range order {
		intent := concepts[i].Intent
		candidates = candidates[:0]
		for _, j := range order[:pos] {
			if len(concepts[j].Intent) > len(intent) && formal.IsSubset(intent, concepts[j].Intent) {
				candidates = append(candidates, j)
			}
		}
		// order[:pos] runs from the longest intent down; confirm upwards.
		for c := len(candidates) - 1; c >= 0; c-- {
			j := candidates[c]
			if below(concepts, cover.Children[i], j) {
				continue
			}
			cover.Children[i] = append(cover.Children[i], j)
		}
	}
	cover.seal()

	o.Logger.Debug("lattice: cover built",
		zap.String("algorithm", "naive"),
		zap.Int("concepts", n),
		zap.Int("edges", cover.EdgeCount()))

	return cover, nil
}

// below reports whether some confirmed child k has Intent(k) ⊆ Intent(j).
func below(concepts []formal.Concept, children []int, j int) bool {
	for _, k := range children {
		if formal.IsSubset(concepts[k].Intent, concepts[j].Intent) {
			return true
		}
	}

	return false
}

// rank returns the indices 0..n-1 stably sorted by cmpFn.
func rank(n int, cmpFn func(a, b int) int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, cmpFn)

	return order
}
