// Package lattice derives the covering relation (Hasse diagram) of a concept
// list and walks it.
//
// Builders
//
//   - Naive compares intents pairwise. It needs only the concept list and is
//     the reference implementation; its quadratic cost is guarded by
//     WithMaxConcepts (DefaultMaxConcepts unless overridden).
//   - ExtentIntersection intersects each concept's extent with every
//     attribute column it lacks and counts how often each resulting concept
//     is hit. It needs the formal context and scales with n·m rather than n².
//     WithExtentTrie replaces the sorted-extent lookup by a trie.
//
// Both return the same *Cover for the same complete concept list: Children[i]
// holds the immediate sub-concepts of concept i in ascending index order and
// Parents[i] the immediate super-concepts.
//
// Traversals
//
//   - Levels walks the cover breadth-first from the top concept (hooks,
//     depth limit, cancellation) and reports depths, visit order and a
//     shortest-chain parent per concept.
//   - LinearExtension orders all concepts so each precedes its sub-concepts.
//   - Validate re-checks the covering property against the concept intents.
//
// Usage
//
//	concepts, _ := inclose.Enumerate(fc)
//	cover, err := lattice.ExtentIntersection(concepts, fc, lattice.WithExtentTrie())
//	if err != nil {
//		// ErrContextNil, ErrOptionViolation or ErrConceptMissing
//	}
//	levels, _ := lattice.Levels(cover)
//	fmt.Println(len(levels.Layers()), cover.EdgeCount())
package lattice
