package inclose

import (
	"context"
	"fmt"

	"github.com/katalvlaran/galois/formal"
)

// walker encapsulates the mutable state of one enumeration branch.
type walker struct {
	fc      *formal.Context
	opts    Options
	ctx     context.Context // nil for sequential runs; checked on emit otherwise
	scratch buffer
	queues  []queue // queues[d] serves the call at recursion depth d
	out     []*formal.Concept
	stats   Stats
}

func newWalker(fc *formal.Context, opts Options) *walker {
	return &walker{
		fc:      fc,
		opts:    opts,
		scratch: newBuffer(fc.Objects()),
		// every level adds at least one attribute, so depth never exceeds m
		queues: make([]queue, fc.Attributes()+1),
	}
}

// Enumerate returns every formal concept of fc exactly once.
//
// The first concept is the top (all objects, closure of the empty attribute
// set). When fc has objects but none of them has every attribute, a synthetic
// bottom (no objects, all attributes) is appended last.
//
// Errors: ErrContextNil, ErrOptionViolation, ErrTooManyConcepts, or an error
// returned by the OnConcept hook. No partial result is returned on error.
func Enumerate(fc *formal.Context, opts ...Option) ([]formal.Concept, error) {
	concepts, _, err := EnumerateWithStats(fc, opts...)

	return concepts, err
}

// EnumerateWithStats is Enumerate that also reports work counters.
func EnumerateWithStats(fc *formal.Context, opts ...Option) ([]formal.Concept, Stats, error) {
	if fc == nil {
		return nil, Stats{}, ErrContextNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, Stats{}, err
	}

	w := newWalker(fc, o)
	root := w.root()
	if err = w.emit(root); err != nil {
		return nil, Stats{}, err
	}
	if err = w.process(root, 0, 0); err != nil {
		return nil, Stats{}, err
	}
	if err = w.finish(); err != nil {
		return nil, Stats{}, err
	}

	w.stats.Concepts = len(w.out)
	o.Logger.Debug("inclose: enumeration complete", w.stats.fields()...)

	return flatten(w.out), w.stats, nil
}

// root returns the top concept before its intent is closed: every object,
// no attribute. The sweep from attribute 0 appends the shared attributes.
func (w *walker) root() *formal.Concept {
	extent := make([]int, w.fc.Objects())
	for o := range extent {
		extent[o] = o
	}

	return &formal.Concept{Extent: extent, Intent: make([]int, 0, w.fc.Attributes())}
}

// process runs both phases for parent: a full attribute sweep from start that
// settles parent.Intent and queues canonical children, then the FIFO drain
// that expands each child one level deeper.
func (w *walker) process(parent *formal.Concept, start, depth int) error {
	q := &w.queues[depth]
	if err := w.sweep(parent, start, q); err != nil {
		return err
	}
	if err := w.settle(parent); err != nil {
		return err
	}

	return w.drain(q, depth)
}

// sweep is phase 1. Every candidate extent is built in the shared scratch
// buffer and copied out before the next attribute overwrites it; no descent
// happens here, so the buffer is never observed by another frame.
func (w *walker) sweep(parent *formal.Concept, start int, q *queue) error {
	q.reset()
	m := w.fc.Attributes()
	for j := start; j < m; j++ {
		w.stats.Candidates++
		candidate := w.scratch.fill(w.fc, parent.Extent, j)

		switch {
		case len(candidate) == len(parent.Extent):
			// j is implied by the extent. Appending keeps the intent sorted:
			// a concept's intent only ever holds attributes below the sweep.
			parent.Intent = append(parent.Intent, j)
			w.stats.Closures++
		case len(candidate) == 0:
			w.stats.Empty++
		case !w.canonical(parent.Intent, candidate, j):
			w.stats.Rejected++
		default:
			child := &formal.Concept{
				Extent:    append(make([]int, 0, len(candidate)), candidate...),
				Intent:    withAttribute(parent.Intent, j),
				Generator: j,
			}
			if err := w.emit(child); err != nil {
				return err
			}
			q.push(child, j+1)
		}
	}

	return nil
}

// drain is phase 2: expand queued children in the order they were found.
func (w *walker) drain(q *queue, depth int) error {
	for {
		p, ok := q.pop()
		if !ok {
			return nil
		}
		if err := w.process(p.concept, p.start, depth+1); err != nil {
			return err
		}
	}
}

// canonical reports whether candidate, reached from intent by adding j, is
// generated here for the first time. It is not when some attribute k < j that
// is outside intent is shared by every candidate object: the same extent is
// then reached through k on a lexicographically smaller path.
//
// The scan walks k downward from j-1 in the ranges between consecutive intent
// attributes (intent is ascending and all its members are below j), ending
// with the range below the smallest intent attribute.
// Complexity: O(j·|candidate|) worst case, no allocation.
func (w *walker) canonical(intent, candidate []int, j int) bool {
	k := j - 1
	for p := len(intent) - 1; ; p-- {
		lower := -1
		if p >= 0 {
			lower = intent[p]
		}
		for ; k > lower; k-- {
			if w.sharedBy(candidate, k) {
				return false
			}
		}
		if p < 0 {
			return true
		}
		k = lower - 1
	}
}

// sharedBy reports whether every object in extent has attribute a.
func (w *walker) sharedBy(extent []int, a int) bool {
	for _, o := range extent {
		if !w.fc.HasAttribute(o, a) {
			return false
		}
	}

	return true
}

// emit appends c to the result and enforces the concept limit.
func (w *walker) emit(c *formal.Concept) error {
	if w.ctx != nil {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
	}
	w.out = append(w.out, c)
	if w.opts.MaxConcepts > 0 && len(w.out) > w.opts.MaxConcepts {
		return w.limitErr()
	}

	return nil
}

func (w *walker) limitErr() error {
	return fmt.Errorf("%w: more than %d concepts", ErrTooManyConcepts, w.opts.MaxConcepts)
}

// settle reports a concept whose intent can no longer grow.
func (w *walker) settle(c *formal.Concept) error {
	if err := w.opts.OnConcept(*c); err != nil {
		return fmt.Errorf("inclose: OnConcept error at generator %d: %w", c.Generator, err)
	}

	return nil
}

// finish appends the synthetic bottom when no object carries every attribute.
// A context without objects already has its top equal to the bottom.
func (w *walker) finish() error {
	if w.fc.Objects() == 0 || w.fc.HasObjectWithAllAttributes() {
		return nil
	}
	intent := make([]int, w.fc.Attributes())
	for a := range intent {
		intent[a] = a
	}
	bottom := &formal.Concept{Extent: []int{}, Intent: intent}
	if err := w.emit(bottom); err != nil {
		return err
	}
	w.stats.Synthetic = true

	return w.settle(bottom)
}

// withAttribute returns a fresh copy of intent with j appended.
func withAttribute(intent []int, j int) []int {
	out := make([]int, len(intent)+1)
	copy(out, intent)
	out[len(intent)] = j

	return out
}

// flatten copies the concept pointers into the returned value slice.
func flatten(cs []*formal.Concept) []formal.Concept {
	out := make([]formal.Concept, len(cs))
	for i, c := range cs {
		out[i] = *c
	}

	return out
}
