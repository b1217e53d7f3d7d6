// Package galois is an in-memory Formal Concept Analysis engine: it takes a
// binary relation between objects and attributes, enumerates every formal
// concept and derives the covering relation (Hasse diagram) of the concept
// lattice.
//
// 🚀 What is inside?
//
//	• bitset/   fixed-length bit rows packed into 64-bit words
//	• formal/   the formal context (cross table), concepts, derivation operators
//	• inclose/  duplicate-free concept enumeration by canonical extension,
//	            sequential or with parallel top-level branches
//	• lattice/  cover builders (naive intent comparison, extent intersection
//	            with an optional extent trie), levels, linear extension, validation
//	• cxt/      Burmeister .cxt reader and writer with line-numbered errors
//	• generate/ random contexts and nominal, ordinal, contranominal scales
//	• cmd/galois command-line front end
//
// ✨ Typical flow
//
//	fc, err := cxt.ParseFile("animals.cxt")
//	concepts, err := inclose.Enumerate(fc)
//	cover, err := lattice.ExtentIntersection(concepts, fc)
//	for _, e := range cover.Edges() {
//		fmt.Println(concepts[e.Parent].Intent, "→", concepts[e.Child].Intent)
//	}
//
// The number of concepts can grow exponentially with the size of the context
// (a contranominal scale of n objects has 2ⁿ); inclose.WithMaxConcepts and
// lattice.WithMaxConcepts bound a run.
package galois
