package formal

import (
	"errors"
	"slices"
)

// Sentinel errors for context construction.
var (
	// ErrBadShape is returned for negative counts or ragged input rows.
	ErrBadShape = errors.New("formal: invalid context shape")

	// ErrBitsLength is returned when the packed bit slice has the wrong length.
	ErrBitsLength = errors.New("formal: packed bits length mismatch")

	// ErrTrailingBits is returned when a row sets a bit beyond the attribute count.
	ErrTrailingBits = errors.New("formal: bits set beyond attribute count")

	// ErrLabelCount is returned when a label slice does not match its count.
	ErrLabelCount = errors.New("formal: label count mismatch")
)

// Concept is a formal concept of some Context.
//
// Extent and Intent are strictly ascending. Generator is the attribute whose
// addition produced the concept during the search; it is 0 for the top concept
// and for a synthetic bottom.
type Concept struct {
	Extent    []int
	Intent    []int
	Generator int
}

// Equal reports whether c and other have the same extent and intent.
// Generator is ignored: it describes how a concept was found, not what it is.
func (c Concept) Equal(other Concept) bool {
	return slices.Equal(c.Extent, other.Extent) && slices.Equal(c.Intent, other.Intent)
}

// Clone returns a deep copy of c.
func (c Concept) Clone() Concept {
	return Concept{
		Extent:    slices.Clone(c.Extent),
		Intent:    slices.Clone(c.Intent),
		Generator: c.Generator,
	}
}

// IsSubconceptOf reports whether c ≤ other in the concept order,
// i.e. c's intent contains other's intent.
func (c Concept) IsSubconceptOf(other Concept) bool {
	return IsSubset(other.Intent, c.Intent)
}

// IsSubset reports whether the ascending slice a is a subset of the ascending
// slice b, using a single linear merge.
// Complexity: O(len(a) + len(b)).
func IsSubset(a, b []int) bool {
	if len(a) > len(b) {
		return false
	}
	j := 0
	for _, x := range a {
		for j < len(b) && b[j] < x {
			j++
		}
		if j == len(b) || b[j] != x {
			return false
		}
		j++
	}

	return true
}
