package inclose

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/galois/formal"
)

// EnumerateParallel returns the same concept list as Enumerate, element for
// element, expanding the top concept's children concurrently.
//
// The top concept is swept on the calling goroutine so its intent is settled
// before any branch starts. Each child then becomes an independent branch with
// its own walker, scratch buffer and queues; branches share only the read-only
// context. Because the sequential search emits each child's subtree as one
// contiguous block, concatenating the branch outputs in queue order rebuilds
// the sequential order exactly.
//
// ctx cancels pending branches and is polled whenever a branch emits a concept.
// At most Options.Workers branches run at once. OnConcept calls are serialized.
func EnumerateParallel(ctx context.Context, fc *formal.Context, opts ...Option) ([]formal.Concept, error) {
	concepts, _, err := EnumerateParallelWithStats(ctx, fc, opts...)

	return concepts, err
}

// EnumerateParallelWithStats is EnumerateParallel that also reports work counters.
func EnumerateParallelWithStats(ctx context.Context, fc *formal.Context, opts ...Option) ([]formal.Concept, Stats, error) {
	if fc == nil {
		return nil, Stats{}, ErrContextNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, Stats{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o.OnConcept = serialized(o.OnConcept)

	// Phase 1 of the top concept, inline.
	top := newWalker(fc, o)
	top.ctx = ctx
	root := top.root()
	if err = top.emit(root); err != nil {
		return nil, Stats{}, err
	}
	q := &top.queues[0]
	if err = top.sweep(root, 0, q); err != nil {
		return nil, Stats{}, err
	}
	if err = top.settle(root); err != nil {
		return nil, Stats{}, err
	}

	// Phase 2, one branch per queued child.
	branches := make([]*walker, 0, q.len())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for {
		p, ok := q.pop()
		if !ok {
			break
		}
		b := newWalker(fc, o)
		b.ctx = gctx
		branches = append(branches, b)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return b.process(p.concept, p.start, 1)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	// Concatenate blocks in queue order behind the top-level concepts.
	for _, b := range branches {
		top.out = append(top.out, b.out...)
		top.stats.add(b.stats)
	}
	if o.MaxConcepts > 0 && len(top.out) > o.MaxConcepts {
		return nil, Stats{}, top.limitErr()
	}
	if err = top.finish(); err != nil {
		return nil, Stats{}, err
	}

	top.stats.Concepts = len(top.out)
	o.Logger.Debug("inclose: parallel enumeration complete",
		append(top.stats.fields(), zap.Int("branches", len(branches)), zap.Int("workers", o.Workers))...)

	return flatten(top.out), top.stats, nil
}

// serialized wraps fn so concurrent branches never call it at the same time.
func serialized(fn func(formal.Concept) error) func(formal.Concept) error {
	var mu sync.Mutex

	return func(c formal.Concept) error {
		mu.Lock()
		defer mu.Unlock()

		return fn(c)
	}
}
