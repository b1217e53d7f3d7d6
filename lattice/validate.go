package lattice

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/galois/formal"
)

// Validate checks that cover is the covering relation of concepts:
//   - both adjacency lists have one entry per concept and are mutual inverses;
//   - every edge i→j has Intent(i) ⊊ Intent(j);
//   - no concept k has Intent(i) ⊊ Intent(k) ⊊ Intent(j);
//   - exactly one concept lacks parents and exactly one lacks children.
//
// Any violation is reported as ErrInvalidCover with the offending indices.
// Complexity: O(edges·n·m).
func Validate(concepts []formal.Concept, cover *Cover) error {
	if cover == nil {
		return ErrCoverNil
	}
	n := len(concepts)
	if len(cover.Children) != n || len(cover.Parents) != n {
		return fmt.Errorf("%w: %d concepts, %d child lists, %d parent lists",
			ErrInvalidCover, n, len(cover.Children), len(cover.Parents))
	}

	tops, bottoms := 0, 0
	for i := 0; i < n; i++ {
		if len(cover.Parents[i]) == 0 {
			tops++
		}
		if len(cover.Children[i]) == 0 {
			bottoms++
		}
		for _, j := range cover.Children[i] {
			if j < 0 || j >= n {
				return fmt.Errorf("%w: edge %d→%d out of range", ErrInvalidCover, i, j)
			}
			if !slices.Contains(cover.Parents[j], i) {
				return fmt.Errorf("%w: edge %d→%d missing from Parents", ErrInvalidCover, i, j)
			}
			if !strictlyBelow(concepts[i], concepts[j]) {
				return fmt.Errorf("%w: edge %d→%d is not strict containment", ErrInvalidCover, i, j)
			}
			for k := 0; k < n; k++ {
				if strictlyBelow(concepts[i], concepts[k]) && strictlyBelow(concepts[k], concepts[j]) {
					return fmt.Errorf("%w: edge %d→%d skips concept %d", ErrInvalidCover, i, j, k)
				}
			}
		}
		for _, p := range cover.Parents[i] {
			if p < 0 || p >= n || !slices.Contains(cover.Children[p], i) {
				return fmt.Errorf("%w: parent link %d←%d has no child edge", ErrInvalidCover, i, p)
			}
		}
	}
	if n > 0 && (tops != 1 || bottoms != 1) {
		return fmt.Errorf("%w: %d maximal and %d minimal concepts", ErrInvalidCover, tops, bottoms)
	}

	return nil
}

// strictlyBelow reports whether b is a proper sub-concept of a.
func strictlyBelow(a, b formal.Concept) bool {
	return len(b.Intent) > len(a.Intent) && formal.IsSubset(a.Intent, b.Intent)
}
