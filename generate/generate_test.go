package generate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/generate"
)

// TestRandom_Errors checks validation order: size, density, rng.
func TestRandom_Errors(t *testing.T) {
	_, err := generate.Random(-1, 3, 0.5, generate.WithSeed(1))
	assert.ErrorIs(t, err, generate.ErrTooFewObjects)

	_, err = generate.Random(3, 3, 1.5, generate.WithSeed(1))
	assert.ErrorIs(t, err, generate.ErrInvalidDensity)

	_, err = generate.Random(3, 3, 0.5)
	assert.ErrorIs(t, err, generate.ErrNeedRandSource)
	assert.Contains(t, err.Error(), "Random")
}

// TestRandom_DegenerateDensities needs no RNG.
func TestRandom_DegenerateDensities(t *testing.T) {
	empty, err := generate.Random(4, 5, 0)
	require.NoError(t, err)
	assert.Zero(t, empty.Incidences())

	full, err := generate.Random(4, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, full.Incidences())
	assert.True(t, full.HasObjectWithAllAttributes())
}

// TestRandom_Deterministic verifies that equal seeds yield equal tables.
func TestRandom_Deterministic(t *testing.T) {
	a, err := generate.Random(20, 70, 0.3, generate.WithSeed(42))
	require.NoError(t, err)
	b, err := generate.Random(20, 70, 0.3, generate.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	for o := 0; o < a.Objects(); o++ {
		assert.True(t, a.Row(o).Equal(b.Row(o)), "row %d", o)
	}
	assert.InDelta(t, 0.3, a.Density(), 0.1)
}

// TestScales checks the incidence pattern of the three standard scales.
func TestScales(t *testing.T) {
	nom, err := generate.Nominal(4)
	require.NoError(t, err)
	ord, err := generate.Ordinal(4)
	require.NoError(t, err)
	contra, err := generate.Contranominal(4)
	require.NoError(t, err)

	for o := 0; o < 4; o++ {
		for a := 0; a < 4; a++ {
			assert.Equal(t, o == a, nom.HasAttribute(o, a))
			assert.Equal(t, a <= o, ord.HasAttribute(o, a))
			assert.Equal(t, o != a, contra.HasAttribute(o, a))
		}
	}

	_, err = generate.Contranominal(-1)
	assert.ErrorIs(t, err, generate.ErrTooFewObjects)

	zero, err := generate.Nominal(0)
	require.NoError(t, err)
	assert.Zero(t, zero.Objects())
}

// TestLabels verifies default and custom label schemes.
func TestLabels(t *testing.T) {
	fc, err := generate.Nominal(3, generate.WithName("nominal"))
	require.NoError(t, err)
	assert.Equal(t, "nominal", fc.Name())
	assert.Equal(t, "g2", fc.ObjectLabel(2))
	assert.Equal(t, "m0", fc.AttributeLabel(0))

	fc, err = generate.Ordinal(3,
		generate.WithObjectLabels(generate.DecimalLabelFn),
		generate.WithAttributeLabels(generate.ExcelColumnLabelFn),
	)
	require.NoError(t, err)
	assert.Equal(t, "1", fc.ObjectLabel(1))
	assert.Equal(t, "C", fc.AttributeLabel(2))

	fc, err = generate.Ordinal(2, generate.WithoutLabels())
	require.NoError(t, err)
	assert.Equal(t, "1", fc.AttributeLabel(1))
}

// TestLabelFns covers each scheme and its panics.
func TestLabelFns(t *testing.T) {
	assert.Equal(t, "A", generate.ExcelColumnLabelFn(0))
	assert.Equal(t, "Z", generate.ExcelColumnLabelFn(25))
	assert.Equal(t, "AA", generate.ExcelColumnLabelFn(26))
	assert.Equal(t, "ZZ", generate.ExcelColumnLabelFn(701))
	assert.Equal(t, "AAA", generate.ExcelColumnLabelFn(702))
	assert.Equal(t, "x7", generate.PrefixLabelFn("x")(7))
	assert.Equal(t, "12", generate.DecimalLabelFn(12))

	assert.Panics(t, func() { generate.ExcelColumnLabelFn(-1) })
	assert.Panics(t, func() { generate.PrefixLabelFn("x")(-1) })
	assert.Panics(t, func() { generate.WithRand(nil) })
	assert.Panics(t, func() { generate.WithObjectLabels(nil) })
	assert.Panics(t, func() { generate.WithAttributeLabels(nil) })
}
