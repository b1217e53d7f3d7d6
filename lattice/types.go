package lattice

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Sentinel errors for cover construction and traversal.
var (
	// ErrContextNil is returned when ExtentIntersection gets a nil context.
	ErrContextNil = errors.New("lattice: context is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lattice: invalid option supplied")

	// ErrTooLarge is returned when the concept list exceeds MaxConcepts.
	ErrTooLarge = errors.New("lattice: too many concepts")

	// ErrConceptMissing is returned when an intersected extent has no concept
	// in the input list, i.e. the list is not the complete concept set.
	ErrConceptMissing = errors.New("lattice: extent not found in concept list")

	// ErrCoverNil is returned when a traversal gets a nil cover.
	ErrCoverNil = errors.New("lattice: cover is nil")

	// ErrCycleDetected is returned when the cover relation is not acyclic.
	ErrCycleDetected = errors.New("lattice: cycle detected")

	// ErrInvalidCover is returned by Validate for any broken cover property.
	ErrInvalidCover = errors.New("lattice: invalid cover")
)

// DefaultMaxConcepts bounds the quadratic builder unless overridden.
const DefaultMaxConcepts = 20000

// Option configures a cover builder.
type Option func(*Options)

// Options holds the parameters shared by both cover builders.
type Options struct {
	// Logger receives a Debug summary per build.
	Logger *zap.Logger

	// MaxConcepts, if > 0, rejects larger inputs with ErrTooLarge.
	// Only Naive enforces it; ExtentIntersection scales with the context instead.
	MaxConcepts int

	// ExtentTrie switches ExtentIntersection lookups from binary search over
	// extent sizes to a trie keyed on extents.
	ExtentTrie bool

	err error
}

// DefaultOptions returns a no-op logger, DefaultMaxConcepts and sorted lookups.
func DefaultOptions() Options {
	return Options{
		Logger:      zap.NewNop(),
		MaxConcepts: DefaultMaxConcepts,
	}
}

// WithLogger sets the logger for build summaries.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxConcepts sets the input ceiling for Naive.
//
//	n > 0:  reject more than n concepts
//	n == 0: no ceiling
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxConcepts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxConcepts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxConcepts = n
	}
}

// WithExtentTrie makes ExtentIntersection resolve extents through a trie.
func WithExtentTrie() Option {
	return func(o *Options) {
		o.ExtentTrie = true
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Edge is one cover pair: Child is an immediate sub-concept of Parent.
type Edge struct {
	Parent, Child int
}

// Cover is the covering relation of a concept list. Indices refer to the
// slice the cover was built from.
//
// Children[i] lists the immediate sub-concepts of concept i (larger intent,
// smaller extent) in ascending index order; Parents is the inverse relation.
type Cover struct {
	Children [][]int
	Parents  [][]int
}

func newCover(n int) *Cover {
	return &Cover{
		Children: make([][]int, n),
		Parents:  make([][]int, n),
	}
}

// seal sorts child lists and derives Parents. Builders record each edge once.
func (c *Cover) seal() {
	for i := range c.Children {
		if c.Children[i] == nil {
			c.Children[i] = []int{}
		}
		c.Parents[i] = []int{}
	}
	for i, kids := range c.Children {
		slices.Sort(kids)
		for _, j := range kids {
			c.Parents[j] = append(c.Parents[j], i)
		}
	}
}

// Len returns the number of concepts.
func (c *Cover) Len() int { return len(c.Children) }

// EdgeCount returns the number of cover pairs.
func (c *Cover) EdgeCount() int {
	total := 0
	for _, kids := range c.Children {
		total += len(kids)
	}

	return total
}

// Edges lists every cover pair ordered by parent, then child.
func (c *Cover) Edges() []Edge {
	out := make([]Edge, 0, c.EdgeCount())
	for i, kids := range c.Children {
		for _, j := range kids {
			out = append(out, Edge{Parent: i, Child: j})
		}
	}

	return out
}

// Top returns the first concept without parents, or -1 for an empty cover.
func (c *Cover) Top() int {
	for i, ps := range c.Parents {
		if len(ps) == 0 {
			return i
		}
	}

	return -1
}

// Bottom returns the first concept without children, or -1 for an empty cover.
func (c *Cover) Bottom() int {
	for i, kids := range c.Children {
		if len(kids) == 0 {
			return i
		}
	}

	return -1
}
