package lattice

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/galois/formal"
)

// ExtentIntersection derives the cover relation from extent intersections.
//
// For a concept c and an attribute m outside Intent(c), Extent(c) ∩ m′ is the
// extent of some concept t below c. Every attribute of Intent(t) \ Intent(c)
// maps c onto t exactly when t is an immediate sub-concept, so t is a child of
// c iff the number of attributes that landed on t equals
// |Intent(t)| − |Intent(c)|.
//
// Extents are resolved by binary search over concepts ranked by decreasing
// extent size followed by an exact comparison among equal sizes, or through
// an extent trie with WithExtentTrie.
//
// concepts must be the complete concept list of fc, in any order.
// Errors: ErrContextNil, ErrOptionViolation, ErrConceptMissing.
// Complexity: O(n·m·(|G| + lookup)) time, O(n) extra memory.
func ExtentIntersection(concepts []formal.Concept, fc *formal.Context, opts ...Option) (*Cover, error) {
	if fc == nil {
		return nil, ErrContextNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	n := len(concepts)

	var index extentIndex
	if o.ExtentTrie {
		index = newTrie(concepts)
	} else {
		index = newSizeIndex(concepts)
	}

	var (
		cover   = newCover(n)
		hits    = make([]int, n)
		touched = make([]int, 0, fc.Attributes())
		scratch = make([]int, fc.Objects())
		m       = fc.Attributes()
	)
	for _, c := range index.order() {
		extent, intent := concepts[c].Extent, concepts[c].Intent
		p := 0
		for a := 0; a < m; a++ {
			if p < len(intent) && intent[p] == a {
				p++
				continue
			}
			candidate := intersect(scratch, fc, extent, a)
			t, ok := index.find(candidate)
			if !ok {
				return nil, fmt.Errorf("ExtentIntersection: concept %d, attribute %d: %w", c, a, ErrConceptMissing)
			}
			if hits[t] == 0 {
				touched = append(touched, t)
			}
			hits[t]++
		}
		for _, t := range touched {
			if len(concepts[t].Intent)-len(intent) == hits[t] {
				cover.Children[c] = append(cover.Children[c], t)
			}
			hits[t] = 0
		}
		touched = touched[:0]
	}
	cover.seal()

	o.Logger.Debug("lattice: cover built",
		zap.String("algorithm", "extent-intersection"),
		zap.Bool("trie", o.ExtentTrie),
		zap.Int("concepts", n),
		zap.Int("edges", cover.EdgeCount()))

	return cover, nil
}

// intersect writes { o ∈ extent : o has a } into buf and returns that prefix.
func intersect(buf []int, fc *formal.Context, extent []int, a int) []int {
	k := 0
	for _, o := range extent {
		if fc.HasAttribute(o, a) {
			buf[k] = o
			k++
		}
	}

	return buf[:k]
}

// extentIndex resolves an ascending extent to the concept that carries it.
type extentIndex interface {
	find(extent []int) (int, bool)
	order() []int
}

// sizeIndex ranks concepts by decreasing extent size.
type sizeIndex struct {
	concepts []formal.Concept
	ranked   []int
}

func newSizeIndex(concepts []formal.Concept) *sizeIndex {
	return &sizeIndex{
		concepts: concepts,
		ranked: rank(len(concepts), func(a, b int) int {
			return cmp.Compare(len(concepts[b].Extent), len(concepts[a].Extent))
		}),
	}
}

func (s *sizeIndex) order() []int { return s.ranked }

// find locates the first ranked concept of the same size, then scans forward
// while sizes match.
func (s *sizeIndex) find(extent []int) (int, bool) {
	size := len(extent)
	lo, _ := slices.BinarySearchFunc(s.ranked, size, func(c, target int) int {
		return cmp.Compare(target, len(s.concepts[c].Extent))
	})
	for _, c := range s.ranked[lo:] {
		if len(s.concepts[c].Extent) != size {
			break
		}
		if slices.Equal(s.concepts[c].Extent, extent) {
			return c, true
		}
	}

	return 0, false
}
