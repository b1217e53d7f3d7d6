package lattice

import (
	"context"
	"fmt"
)

// LevelOption configures Levels via functional arguments.
// An invalid LevelOption is recorded and surfaced as ErrOptionViolation.
type LevelOption func(*LevelOptions)

// LevelOptions holds parameters and callbacks for a breadth-first walk.
type LevelOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a concept is visited with its distance from the
	// top. Returning an error aborts the walk with that error.
	OnVisit func(concept, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultLevelOptions returns a background context, a no-op hook and no depth limit.
func DefaultLevelOptions() LevelOptions {
	return LevelOptions{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) LevelOption {
	return func(o *LevelOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a per-visit callback; an error stops the walk.
func WithOnVisit(fn func(concept, depth int) error) LevelOption {
	return func(o *LevelOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at depth d (inclusive).
//
//	d > 0:  limit to depth d
//	d == 0: no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) LevelOption {
	return func(o *LevelOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// LevelsResult is the outcome of a breadth-first walk down the cover:
//   - Order: concepts in visit sequence.
//   - Depth: shortest number of cover edges from the top, -1 if not reached.
//   - Parent: the concept each one was first reached from, -1 for the top
//     and for unreached concepts.
type LevelsResult struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Layers groups the visited concepts by depth, each layer in visit order.
func (r *LevelsResult) Layers() [][]int {
	var layers [][]int
	for _, c := range r.Order {
		d := r.Depth[c]
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], c)
	}

	return layers
}

// PathTo returns the top-down chain of concepts the walk used to reach dest.
func (r *LevelsResult) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] < 0 {
		return nil, fmt.Errorf("lattice: concept %d not reached", dest)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i, cur = i-1, r.Parent[cur] {
		path[i] = cur
	}

	return path, nil
}

// levelItem pairs a concept with its depth.
type levelItem struct {
	concept int
	depth   int
}

// levelWalker encapsulates mutable walk state.
type levelWalker struct {
	cover *Cover
	opts  LevelOptions
	queue []levelItem
	res   *LevelsResult
}

// Levels walks the cover breadth-first from its top concept, following
// Children edges. Depth is the length of the shortest cover chain from the
// top, which in a concept lattice is a lower bound on the rank.
//
// Errors: ErrCoverNil, ErrOptionViolation, the context error on cancellation,
// or an OnVisit error.
// Complexity: O(n + edges).
func Levels(cover *Cover, opts ...LevelOption) (*LevelsResult, error) {
	if cover == nil {
		return nil, ErrCoverNil
	}
	o := DefaultLevelOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := cover.Len()
	w := &levelWalker{
		cover: cover,
		opts:  o,
		queue: make([]levelItem, 0, n),
		res: &LevelsResult{
			Order:  make([]int, 0, n),
			Depth:  filled(n, -1),
			Parent: filled(n, -1),
		},
	}
	if top := cover.Top(); top >= 0 {
		w.enqueue(top, 0, -1)
	}

	return w.res, w.loop()
}

func (w *levelWalker) enqueue(c, depth, parent int) {
	w.res.Depth[c] = depth
	w.res.Parent[c] = parent
	w.queue = append(w.queue, levelItem{concept: c, depth: depth})
}

func (w *levelWalker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.concept)
		if err := w.opts.OnVisit(item.concept, item.depth); err != nil {
			return fmt.Errorf("lattice: OnVisit error at concept %d: %w", item.concept, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, child := range w.cover.Children[item.concept] {
			if w.res.Depth[child] < 0 {
				w.enqueue(child, next, item.concept)
			}
		}
	}

	return nil
}

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}
