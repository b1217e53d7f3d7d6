package inclose

import "github.com/katalvlaran/galois/formal"

// buffer is the object-index scratch region shared by every candidate test of
// one walker. A candidate written into it is only valid until the next fill;
// it must be copied into a concept before any descent reuses the buffer.
type buffer struct {
	idx []int
}

func newBuffer(objects int) buffer {
	return buffer{idx: make([]int, objects)}
}

// fill writes { o ∈ extent : o has attribute a } and returns the written prefix.
func (b *buffer) fill(fc *formal.Context, extent []int, a int) []int {
	n := 0
	for _, o := range extent {
		if fc.HasAttribute(o, a) {
			b.idx[n] = o
			n++
		}
	}

	return b.idx[:n]
}

// pending is a child concept waiting for expansion together with the first
// attribute its own sweep starts from.
type pending struct {
	concept *formal.Concept
	start   int
}

// queue is the FIFO of children collected during one parent's sweep.
// Walkers keep one queue per recursion depth and reset it on entry, so the
// backing arrays are reused across siblings.
type queue struct {
	items []pending
	head  int
}

func (q *queue) reset() {
	clear(q.items) // drop concept pointers held from the previous sibling
	q.items = q.items[:0]
	q.head = 0
}

func (q *queue) push(c *formal.Concept, start int) {
	q.items = append(q.items, pending{concept: c, start: start})
}

func (q *queue) pop() (pending, bool) {
	if q.head == len(q.items) {
		return pending{}, false
	}
	p := q.items[q.head]
	q.head++

	return p, true
}

func (q *queue) len() int { return len(q.items) - q.head }
