package bitset

import (
	"fmt"
	"math/bits"
	"strings"
)

// WordSize is the number of positions packed into one storage word.
const WordSize = 64

// log2WordSize converts a position into its word index by shifting.
const log2WordSize = 6

// Bitset is a fixed-length set of positions in [0, Len).
// The zero value is an empty set of length 0.
type Bitset struct {
	words []uint64 // packed storage, len(words) == Words(size)
	size  int      // number of addressable positions
}

// Words returns the number of 64-bit words required to hold n positions.
func Words(n int) int {
	return (n + WordSize - 1) >> log2WordSize
}

// New returns an empty Bitset addressing positions [0, size).
// Panics if size is negative.
func New(size int) Bitset {
	if size < 0 {
		panic(fmt.Sprintf("bitset: negative size %d", size))
	}

	return Bitset{words: make([]uint64, Words(size)), size: size}
}

// FromWords wraps packed words as a Bitset of the given size without copying.
// The caller must guarantee len(words) == Words(size) and that no bit at or
// beyond size is set; Valid reports whether that holds.
func FromWords(words []uint64, size int) Bitset {
	return Bitset{words: words, size: size}
}

// FromIndices returns a Bitset of the given size with every listed position set.
func FromIndices(size int, idx ...int) Bitset {
	b := New(size)
	for _, i := range idx {
		b.Set(i)
	}

	return b
}

// Full returns a Bitset of the given size with every position set.
func Full(size int) Bitset {
	b := New(size)
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.clearTail()

	return b
}

// Len returns the number of addressable positions.
func (b Bitset) Len() int { return b.size }

// Words exposes the packed storage. The slice aliases the set.
func (b Bitset) Words() []uint64 { return b.words }

// Valid reports whether the storage length matches the size and no bit beyond
// Len() is set.
func (b Bitset) Valid() bool {
	if len(b.words) != Words(b.size) {
		return false
	}
	if len(b.words) == 0 {
		return true
	}

	return b.words[len(b.words)-1]&^tailMask(b.size) == 0
}

// Set marks position i.
func (b *Bitset) Set(i int) {
	b.check(i)
	b.words[i>>log2WordSize] |= 1 << (uint(i) & (WordSize - 1))
}

// Clear unmarks position i.
func (b *Bitset) Clear(i int) {
	b.check(i)
	b.words[i>>log2WordSize] &^= 1 << (uint(i) & (WordSize - 1))
}

// Has reports whether position i is marked.
func (b Bitset) Has(i int) bool {
	b.check(i)

	return b.words[i>>log2WordSize]&(1<<(uint(i)&(WordSize-1))) != 0
}

// Count returns the number of marked positions.
func (b Bitset) Count() int {
	total := 0
	for _, w := range b.words {
		total += bits.OnesCount64(w)
	}

	return total
}

// IsEmpty reports whether no position is marked.
func (b Bitset) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// IsFull reports whether every position in [0, Len) is marked.
func (b Bitset) IsFull() bool {
	return b.Count() == b.size
}

// Clone returns an independent copy of b.
func (b Bitset) Clone() Bitset {
	out := Bitset{words: make([]uint64, len(b.words)), size: b.size}
	copy(out.words, b.words)

	return out
}

// And returns a new set holding the intersection of b and other.
// Both sets must have the same length.
func (b Bitset) And(other Bitset) Bitset {
	out := b.Clone()
	out.AndWith(other)

	return out
}

// AndWith intersects b with other in place.
func (b *Bitset) AndWith(other Bitset) {
	b.sameLen(other)
	for i := range b.words {
		b.words[i] &= other.words[i]
	}
}

// Or returns a new set holding the union of b and other.
func (b Bitset) Or(other Bitset) Bitset {
	out := b.Clone()
	out.OrWith(other)

	return out
}

// OrWith unions other into b in place.
func (b *Bitset) OrWith(other Bitset) {
	b.sameLen(other)
	for i := range b.words {
		b.words[i] |= other.words[i]
	}
}

// Equal reports whether b and other have the same length and members.
func (b Bitset) Equal(other Bitset) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.words {
		if b.words[i] != other.words[i] {
			return false
		}
	}

	return true
}

// Contains reports whether every member of other is also a member of b.
func (b Bitset) Contains(other Bitset) bool {
	b.sameLen(other)
	for i := range b.words {
		if other.words[i]&^b.words[i] != 0 {
			return false
		}
	}

	return true
}

// Indices returns the marked positions in ascending order.
func (b Bitset) Indices() []int {
	out := make([]int, 0, b.Count())
	for wi, w := range b.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, wi<<log2WordSize+tz)
			w &= w - 1
		}
	}

	return out
}

// String renders the set as a cross table row, "X" for members and "." otherwise.
func (b Bitset) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for i := 0; i < b.size; i++ {
		if b.Has(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}

	return sb.String()
}

// clearTail zeroes the unused high bits of the last word.
func (b *Bitset) clearTail() {
	if len(b.words) == 0 {
		return
	}
	b.words[len(b.words)-1] &= tailMask(b.size)
}

// tailMask returns the mask of valid bits in the last word of a size-n set.
func tailMask(n int) uint64 {
	r := uint(n) & (WordSize - 1)
	if r == 0 {
		return ^uint64(0)
	}

	return 1<<r - 1
}

func (b Bitset) check(i int) {
	if i < 0 || i >= b.size {
		panic(fmt.Sprintf("bitset: index out of range: %d not in [0,%d)", i, b.size))
	}
}

func (b Bitset) sameLen(other Bitset) {
	if b.size != other.size {
		panic(fmt.Sprintf("bitset: length mismatch %d != %d", b.size, other.size))
	}
}
