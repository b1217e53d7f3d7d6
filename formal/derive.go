package formal

import "slices"

// ExtentOf returns the objects having every attribute in intent (intent′),
// ascending. The empty intent derives to all objects.
// Complexity: O(objects·|intent|).
func (c *Context) ExtentOf(intent []int) []int {
	out := make([]int, 0, c.objects)
	for o := 0; o < c.objects; o++ {
		if c.hasAll(o, intent) {
			out = append(out, o)
		}
	}

	return out
}

// IntentOf returns the attributes shared by every object in extent (extent′),
// ascending. The empty extent derives to all attributes.
// Complexity: O(|extent|·cells + attributes).
func (c *Context) IntentOf(extent []int) []int {
	acc := make([]uint64, c.cells)
	for w := range acc {
		acc[w] = ^uint64(0)
	}
	if c.cells > 0 {
		acc[c.cells-1] = tailMask(c.attributes)
	}
	for _, o := range extent {
		row := c.bits[o*c.cells : (o+1)*c.cells]
		for w := range acc {
			acc[w] &= row[w]
		}
	}

	out := make([]int, 0, c.attributes)
	for a := 0; a < c.attributes; a++ {
		if acc[a>>6]&(1<<(uint(a)&63)) != 0 {
			out = append(out, a)
		}
	}

	return out
}

// IsConcept reports whether (extent, intent) is closed: extent′ = intent and
// intent′ = extent. Both slices must be ascending.
func (c *Context) IsConcept(extent, intent []int) bool {
	return slices.Equal(c.ExtentOf(intent), extent) && slices.Equal(c.IntentOf(extent), intent)
}

// Closure returns the concept generated by an attribute set: (B′, B″).
func (c *Context) Closure(intent []int) Concept {
	extent := c.ExtentOf(intent)

	return Concept{Extent: extent, Intent: c.IntentOf(extent)}
}

func (c *Context) hasAll(o int, intent []int) bool {
	for _, a := range intent {
		if !c.HasAttribute(o, a) {
			return false
		}
	}

	return true
}
