package formal

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/katalvlaran/galois/bitset"
)

// Context is an immutable objects × attributes incidence relation stored as a
// row-major bit matrix of cells words per object.
type Context struct {
	name       string
	objects    int
	attributes int
	cells      int      // words per object row = ceil(attributes/64)
	bits       []uint64 // row o occupies bits[o*cells : (o+1)*cells]

	objectLabels    []string // nil or len == objects
	attributeLabels []string // nil or len == attributes
}

// NewContext builds a Context from packed rows.
// bits must hold exactly objects·ceil(attributes/64) words, row-major, with
// bit a of row o set iff object o has attribute a. The slice is copied.
//
// Errors: ErrBadShape, ErrBitsLength, ErrTrailingBits, ErrLabelCount.
// Complexity: O(objects·cells).
func NewContext(bits []uint64, objects, attributes int, opts ...Option) (*Context, error) {
	if objects < 0 || attributes < 0 {
		return nil, fmt.Errorf("NewContext: %d objects, %d attributes: %w", objects, attributes, ErrBadShape)
	}
	cells := bitset.Words(attributes)
	if len(bits) != objects*cells {
		return nil, fmt.Errorf("NewContext: got %d words, want %d: %w", len(bits), objects*cells, ErrBitsLength)
	}

	// Reject stray bits in the tail of each row once, here, so HasAttribute
	// and word-wise row comparisons never need masking.
	if cells > 0 {
		tail := tailMask(attributes)
		for o := 0; o < objects; o++ {
			if bits[(o+1)*cells-1]&^tail != 0 {
				return nil, fmt.Errorf("NewContext: object %d: %w", o, ErrTrailingBits)
			}
		}
	}

	c := &Context{
		objects:    objects,
		attributes: attributes,
		cells:      cells,
		bits:       append([]uint64(nil), bits...),
	}
	if err := c.apply(opts); err != nil {
		return nil, err
	}

	return c, nil
}

// FromRows builds a Context from one Bitset per object, each of length attributes.
// Errors: ErrBadShape on a row of the wrong length, plus NewContext errors.
func FromRows(rows []bitset.Bitset, attributes int, opts ...Option) (*Context, error) {
	if attributes < 0 {
		return nil, fmt.Errorf("FromRows: %d attributes: %w", attributes, ErrBadShape)
	}
	cells := bitset.Words(attributes)
	packed := make([]uint64, 0, len(rows)*cells)
	for o, r := range rows {
		if r.Len() != attributes {
			return nil, fmt.Errorf("FromRows: row %d has length %d, want %d: %w", o, r.Len(), attributes, ErrBadShape)
		}
		packed = append(packed, r.Words()...)
	}

	return NewContext(packed, len(rows), attributes, opts...)
}

// FromMatrix builds a Context from a boolean cross table. All rows must have
// the same length; an empty matrix yields a 0×0 context.
func FromMatrix(m [][]bool, opts ...Option) (*Context, error) {
	attributes := 0
	if len(m) > 0 {
		attributes = len(m[0])
	}
	rows := make([]bitset.Bitset, len(m))
	for o, row := range m {
		if len(row) != attributes {
			return nil, fmt.Errorf("FromMatrix: row %d has length %d, want %d: %w", o, len(row), attributes, ErrBadShape)
		}
		rows[o] = bitset.New(attributes)
		for a, has := range row {
			if has {
				rows[o].Set(a)
			}
		}
	}

	return FromRows(rows, attributes, opts...)
}

// apply resolves options and validates label counts.
func (c *Context) apply(opts []Option) error {
	var o contextOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.objectLabels != nil && len(o.objectLabels) != c.objects {
		return fmt.Errorf("NewContext: %d object labels for %d objects: %w", len(o.objectLabels), c.objects, ErrLabelCount)
	}
	if o.attributeLabels != nil && len(o.attributeLabels) != c.attributes {
		return fmt.Errorf("NewContext: %d attribute labels for %d attributes: %w", len(o.attributeLabels), c.attributes, ErrLabelCount)
	}
	c.name = o.name
	c.objectLabels = o.objectLabels
	c.attributeLabels = o.attributeLabels

	return nil
}

// Name returns the display name, possibly empty.
func (c *Context) Name() string { return c.name }

// Objects returns the number of objects (rows).
func (c *Context) Objects() int { return c.objects }

// Attributes returns the number of attributes (columns).
func (c *Context) Attributes() int { return c.attributes }

// Cells returns the number of 64-bit words per object row.
func (c *Context) Cells() int { return c.cells }

// HasAttribute reports whether object o has attribute a.
// Indices are not validated; out-of-range values are a contract violation.
// Complexity: O(1).
func (c *Context) HasAttribute(o, a int) bool {
	return c.bits[o*c.cells+a>>6]&(1<<(uint(a)&63)) != 0
}

// HasObjectWithAllAttributes reports whether some object has every attribute.
// A context without objects has no such object; with zero attributes every
// object qualifies vacuously.
// Complexity: O(objects·cells).
func (c *Context) HasObjectWithAllAttributes() bool {
	if c.cells == 0 {
		return c.objects > 0
	}
	tail := tailMask(c.attributes)
	for o := 0; o < c.objects; o++ {
		row := c.bits[o*c.cells : (o+1)*c.cells]
		full := row[c.cells-1] == tail
		for w := 0; full && w < c.cells-1; w++ {
			full = row[w] == ^uint64(0)
		}
		if full {
			return true
		}
	}

	return false
}

// Row returns a copy of object o's attribute row.
func (c *Context) Row(o int) bitset.Bitset {
	words := make([]uint64, c.cells)
	copy(words, c.bits[o*c.cells:(o+1)*c.cells])

	return bitset.FromWords(words, c.attributes)
}

// Column returns the set of objects having attribute a (its attribute extent)
// as a bitset over objects.
// Complexity: O(objects).
func (c *Context) Column(a int) bitset.Bitset {
	col := bitset.New(c.objects)
	for o := 0; o < c.objects; o++ {
		if c.HasAttribute(o, a) {
			col.Set(o)
		}
	}

	return col
}

// Incidences returns the number of (object, attribute) pairs in the relation.
func (c *Context) Incidences() int {
	total := 0
	for _, w := range c.bits {
		total += bits.OnesCount64(w)
	}

	return total
}

// Density returns the fraction of filled cells, 0 for an empty table.
func (c *Context) Density() float64 {
	if c.objects == 0 || c.attributes == 0 {
		return 0
	}

	return float64(c.Incidences()) / float64(c.objects*c.attributes)
}

// ObjectLabel returns the label of object o, or its decimal index when unlabeled.
func (c *Context) ObjectLabel(o int) string {
	if c.objectLabels == nil {
		return strconv.Itoa(o)
	}

	return c.objectLabels[o]
}

// AttributeLabel returns the label of attribute a, or its decimal index when unlabeled.
func (c *Context) AttributeLabel(a int) string {
	if c.attributeLabels == nil {
		return strconv.Itoa(a)
	}

	return c.attributeLabels[a]
}

// tailMask returns the valid-bit mask of the last word of an n-bit row.
func tailMask(n int) uint64 {
	r := uint(n) & 63
	if r == 0 {
		return ^uint64(0)
	}

	return 1<<r - 1
}
