// Package formal defines the formal context (objects × attributes incidence
// relation) and the formal concept type shared by the concept generator and the
// lattice builders.
//
// What
//
//   - Context: an immutable, row-major bit matrix. Each object's attribute row
//     is packed into Cells() 64-bit words; bit a of row o is set exactly when
//     object o has attribute a. Bits at or beyond Attributes() in the last
//     word of a row are always zero.
//   - Concept: a pair (Extent, Intent) of strictly ascending index slices that
//     is closed under the derivation operators, plus the generating attribute
//     recorded by the search that produced it.
//   - Derivation operators: ExtentOf(intent) = { o : o has every a in intent }
//     and IntentOf(extent) = { a : every o in extent has a }. A pair is a
//     concept iff each side is the derivation of the other (IsConcept).
//
// Contract
//
//	The engine treats a Context as a precondition: constructors validate shape,
//	length and trailing bits once, after which HasAttribute performs no checks.
//	An out-of-range index is a programmer error and panics through normal slice
//	bounds checking. Labels are display-only and never read by algorithms.
//
// Concurrency
//
//	A Context never changes after construction, so any number of goroutines
//	may read it concurrently.
//
// Complexity (n objects, m attributes, W = ceil(m/64))
//
//   - HasAttribute:                O(1)
//   - HasObjectWithAllAttributes:  O(n·W)
//   - ExtentOf(intent):            O(n·|intent|)
//   - IntentOf(extent):            O(|extent|·W + m)
//
// Usage
//
//	ctx, err := formal.FromMatrix([][]bool{
//		{true, false, true},
//		{true, true, false},
//	}, formal.WithObjectLabels("frog", "reed"))
//	if err != nil {
//		// ErrBadShape, ErrBitsLength, ErrTrailingBits or ErrLabelCount
//	}
//	ok := ctx.HasAttribute(0, 2)
//
// Errors
//
//   - ErrBadShape      negative counts or ragged rows.
//   - ErrBitsLength    packed slice length differs from objects·cells.
//   - ErrTrailingBits  a bit beyond the attribute count is set.
//   - ErrLabelCount    label slice length differs from the matching count.
package formal
