// Package fixtures holds the reference contexts used by tests, examples and
// benchmarks across the module, together with their known lattice sizes.
package fixtures

import (
	"fmt"

	"github.com/katalvlaran/galois/formal"
)

// Known lattice sizes for the reference contexts.
const (
	DigitsConcepts      = 48
	DigitsCoverEdges    = 120
	LiveInWaterConcepts = 19
	LiveInWaterEdges    = 32
)

// Fixture is a named cross table, one string per object over the attribute
// letters in Attributes.
type Fixture struct {
	Name       string
	Objects    []string
	Attributes []string
	Rows       []string // Rows[o] lists the attribute letters object o has
	Concepts   int
	Edges      int
}

// Digits is the seven-segment calculator display: objects are the digits 0-9,
// attributes are the segments a (top), b (upper right), c (lower right),
// d (bottom), e (lower left), f (upper left) and g (middle).
var Digits = Fixture{
	Name:       "digits",
	Objects:    []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
	Attributes: []string{"a", "b", "c", "d", "e", "f", "g"},
	Rows: []string{
		"abcdef", "bc", "abdeg", "abcdg", "bcfg",
		"acdfg", "cdefg", "abc", "abcdefg", "abcfg",
	},
	Concepts: DigitsConcepts,
	Edges:    DigitsCoverEdges,
}

// LiveInWater is the classic "living beings and water" context.
var LiveInWater = Fixture{
	Name:    "liveinwater",
	Objects: []string{"leech", "bream", "frog", "dog", "spike-weed", "reed", "bean", "maize"},
	Attributes: []string{
		"needs water to live", "lives in water", "lives on land",
		"needs chlorophyll", "two seed leaves", "one seed leaf",
		"can move around", "has limbs", "suckles its offspring",
	},
	Rows: []string{
		"abg", "abgh", "abcgh", "acghi",
		"abdf", "abcdf", "acde", "acdf",
	},
	Concepts: LiveInWaterConcepts,
	Edges:    LiveInWaterEdges,
}

// All lists every reference fixture.
var All = []Fixture{Digits, LiveInWater}

// Context builds the formal context of f. Attribute letters are 'a' + index.
func (f Fixture) Context() (*formal.Context, error) {
	m := make([][]bool, len(f.Rows))
	for o, row := range f.Rows {
		m[o] = make([]bool, len(f.Attributes))
		for _, ch := range row {
			a := int(ch - 'a')
			if a < 0 || a >= len(f.Attributes) {
				return nil, fmt.Errorf("fixtures: %s: object %d: bad attribute %q", f.Name, o, ch)
			}
			m[o][a] = true
		}
	}

	return formal.FromMatrix(m,
		formal.WithName(f.Name),
		formal.WithObjectLabels(f.Objects...),
		formal.WithAttributeLabels(f.Attributes...),
	)
}

// MustContext is Context for package-level test setup; it panics on error.
func (f Fixture) MustContext() *formal.Context {
	ctx, err := f.Context()
	if err != nil {
		panic(err)
	}

	return ctx
}
