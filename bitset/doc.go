// Package bitset provides a fixed-size, word-packed set of small non-negative
// integers used as the row storage of a formal context.
//
// What
//
//   - Bitset holds Len() positions packed into 64-bit words, bit i of the set
//     lives in word i/64 at offset i%64 (least significant bit first).
//   - Positions at or beyond Len() inside the last word are always zero, so
//     word-wise comparisons (Equal, Contains) need no masking.
//   - Intersections come in an allocating form (And) and an in-place form
//     (AndWith) so hot loops can reuse a scratch set.
//
// Why
//
//   - A formal context is a dense boolean matrix; packing a row into
//     ceil(m/64) words keeps HasAttribute at O(1) and makes whole-row
//     operations (intersection, subset) run 64 attributes per instruction.
//
// Complexity (W = ceil(Len/64))
//
//   - Set/Clear/Has: O(1)
//   - And/Or/Equal/Contains/Count: O(W)
//   - Indices: O(W + popcount)
//
// Errors
//
//   - Index arguments outside [0, Len) are programmer errors and panic with a
//     "bitset: index out of range" message; New panics on a negative size.
package bitset
