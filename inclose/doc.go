// Package inclose enumerates every formal concept of a formal.Context exactly
// once, using canonical-extension search in the In-Close family.
//
// What
//
//   - Enumerate returns the complete, duplicate-free concept list. The top
//     concept comes first; a synthetic bottom (no objects, all attributes) is
//     appended last when no object has every attribute.
//   - EnumerateParallel returns the identical list while expanding the top
//     concept's children on separate goroutines.
//   - Optional hooks (OnConcept), a concept limit (MaxConcepts), a logger and
//     work counters (Stats).
//
// How
//
//	Each parent is processed in two phases.
//
//	  1. Sweep. For every attribute j from the parent's start attribute, the
//	     candidate extent {o ∈ parent.Extent : o has j} is written into a
//	     single scratch buffer. If it equals the parent extent, j joins the
//	     parent's intent in place. If it is empty, j is skipped. Otherwise
//	     the canonicity test decides: the candidate is new exactly when no
//	     attribute k < j outside the parent's intent is shared by all of its
//	     objects. A canonical candidate is copied out into a new concept,
//	     appended to the result and queued with start attribute j+1.
//	  2. Drain. The queued children are expanded in FIFO order, each one
//	     running both phases one level deeper.
//
//	The canonicity test reads the parent's intent, so every in-place addition
//	must land before any child is expanded; the two-phase structure
//	guarantees that. Likewise the scratch buffer is reused by every frame, so
//	a candidate is always copied before the next write or descent.
//
// Concurrency
//
//	A walker (scratch buffer, per-depth queues, output) is never shared, so
//	concurrent Enumerate calls on the same context are safe. EnumerateParallel
//	gives each branch its own walker and reads the context concurrently.
//	Sequential runs have no cancellation; EnumerateParallel honors its
//	context between branches and on every emitted concept.
//
// Complexity (n objects, m attributes, C concepts)
//
//   - Output size C can be exponential in min(n, m) (e.g. 2ⁿ for a
//     contranominal scale); that is a property of concept lattices.
//   - Per candidate: O(|extent|) to build, O(j·|extent|) for the canonicity
//     test, which dominates. No allocation happens for rejected candidates.
//   - Memory: O(n) scratch, O(m) queues per depth, plus the output.
//
// Usage
//
//	concepts, err := inclose.Enumerate(fc)
//	if err != nil {
//		// ErrContextNil, ErrOptionViolation, ErrTooManyConcepts or a hook error
//	}
//
//	concepts, err = inclose.EnumerateParallel(ctx, fc,
//		inclose.WithWorkers(4),
//		inclose.WithMaxConcepts(1_000_000),
//		inclose.WithLogger(logger),
//	)
//
// Errors
//
//   - ErrContextNil       if the context pointer is nil.
//   - ErrOptionViolation  for a negative MaxConcepts or Workers < 1.
//   - ErrTooManyConcepts  when the run exceeds MaxConcepts.
//   - Wrapped OnConcept errors; context errors from EnumerateParallel.
package inclose
