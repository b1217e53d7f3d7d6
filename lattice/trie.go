package lattice

import "github.com/katalvlaran/galois/formal"

// trie maps extents, read as ascending object sequences, to concept indices.
// Lookup costs O(|extent|) map probes regardless of the number of concepts.
type trie struct {
	root   trieNode
	ranked []int
}

type trieNode struct {
	next    map[int]*trieNode
	concept int // -1 when no concept ends here
}

func newTrie(concepts []formal.Concept) *trie {
	t := &trie{root: trieNode{concept: -1}}
	for i, c := range concepts {
		t.insert(c.Extent, i)
	}
	// concepts are visited in the same order as with sizeIndex
	t.ranked = newSizeIndex(concepts).ranked

	return t
}

// insert keeps the first concept stored for an extent.
func (t *trie) insert(extent []int, concept int) {
	node := &t.root
	for _, o := range extent {
		child, ok := node.next[o]
		if !ok {
			if node.next == nil {
				node.next = make(map[int]*trieNode)
			}
			child = &trieNode{concept: -1}
			node.next[o] = child
		}
		node = child
	}
	if node.concept < 0 {
		node.concept = concept
	}
}

func (t *trie) find(extent []int) (int, bool) {
	node := &t.root
	for _, o := range extent {
		child, ok := node.next[o]
		if !ok {
			return 0, false
		}
		node = child
	}

	return node.concept, node.concept >= 0
}

func (t *trie) order() []int { return t.ranked }
