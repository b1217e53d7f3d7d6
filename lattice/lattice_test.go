package lattice_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/formal"
	"github.com/katalvlaran/galois/generate"
	"github.com/katalvlaran/galois/inclose"
	"github.com/katalvlaran/galois/internal/fixtures"
	"github.com/katalvlaran/galois/lattice"
)

// builders runs every cover construction variant on the same input.
var builders = map[string]func([]formal.Concept, *formal.Context) (*lattice.Cover, error){
	"naive": func(cs []formal.Concept, _ *formal.Context) (*lattice.Cover, error) {
		return lattice.Naive(cs)
	},
	"extent": func(cs []formal.Concept, fc *formal.Context) (*lattice.Cover, error) {
		return lattice.ExtentIntersection(cs, fc)
	},
	"extent-trie": func(cs []formal.Concept, fc *formal.Context) (*lattice.Cover, error) {
		return lattice.ExtentIntersection(cs, fc, lattice.WithExtentTrie())
	},
}

func enumerate(t testing.TB, fc *formal.Context) []formal.Concept {
	t.Helper()
	concepts, err := inclose.Enumerate(fc)
	require.NoError(t, err)

	return concepts
}

// requireAgreement builds the cover with every variant, checks it is valid
// and that all variants return the same relation.
func requireAgreement(t *testing.T, fc *formal.Context, concepts []formal.Concept) *lattice.Cover {
	t.Helper()
	want, err := lattice.Naive(concepts, lattice.WithMaxConcepts(0))
	require.NoError(t, err)
	require.NoError(t, lattice.Validate(concepts, want))

	for name, build := range builders {
		got, err := build(concepts, fc)
		require.NoError(t, err, name)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%s disagrees with naive (-naive +%s):\n%s", name, name, diff)
		}
	}

	return want
}

func TestBuilders_Fixtures(t *testing.T) {
	for _, fx := range fixtures.All {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			fc := fx.MustContext()
			concepts := enumerate(t, fc)
			cover := requireAgreement(t, fc, concepts)
			assert.Equal(t, fx.Edges, cover.EdgeCount())
			assert.Equal(t, 0, cover.Top())
		})
	}
}

func TestBuilders_Random(t *testing.T) {
	shapes := []struct {
		objects, attributes int
		density             float64
	}{
		{6, 6, 0.5},
		{15, 10, 0.3},
		{10, 15, 0.55},
		{25, 8, 0.4},
		{8, 66, 0.85},
	}
	for _, s := range shapes {
		for seed := int64(1); seed <= 8; seed++ {
			fc, err := generate.Random(s.objects, s.attributes, s.density, generate.WithSeed(seed))
			require.NoError(t, err)
			t.Run(fmt.Sprintf("%dx%d_s%d", s.objects, s.attributes, seed), func(t *testing.T) {
				requireAgreement(t, fc, enumerate(t, fc))
			})
		}
	}
}

func TestBuilders_AnyInputOrder(t *testing.T) {
	fc := fixtures.Digits.MustContext()
	concepts := enumerate(t, fc)
	reversed := make([]formal.Concept, len(concepts))
	for i, c := range concepts {
		reversed[len(concepts)-1-i] = c
	}
	cover := requireAgreement(t, fc, reversed)
	assert.Equal(t, fixtures.DigitsCoverEdges, cover.EdgeCount())
	assert.Equal(t, len(concepts)-1, cover.Top())
}

func TestBuilders_Scales(t *testing.T) {
	fc, err := generate.Contranominal(5)
	require.NoError(t, err)
	cover := requireAgreement(t, fc, enumerate(t, fc))
	// Boolean lattice of 5 atoms: every subset covers its one-smaller subsets.
	assert.Equal(t, 5*(1<<4), cover.EdgeCount())

	fc, err = generate.Ordinal(6)
	require.NoError(t, err)
	cover = requireAgreement(t, fc, enumerate(t, fc))
	assert.Equal(t, 5, cover.EdgeCount())
}

func TestBuilders_SingleConcept(t *testing.T) {
	fc, err := formal.FromMatrix([][]bool{{true}})
	require.NoError(t, err)
	concepts := enumerate(t, fc)
	require.Len(t, concepts, 1)
	cover := requireAgreement(t, fc, concepts)
	assert.Zero(t, cover.EdgeCount())
	assert.Equal(t, 0, cover.Top())
	assert.Equal(t, 0, cover.Bottom())
}

func TestBuilders_Errors(t *testing.T) {
	fc := fixtures.Digits.MustContext()
	concepts := enumerate(t, fc)

	_, err := lattice.Naive(concepts, lattice.WithMaxConcepts(10))
	assert.ErrorIs(t, err, lattice.ErrTooLarge)

	_, err = lattice.Naive(concepts, lattice.WithMaxConcepts(-1))
	assert.ErrorIs(t, err, lattice.ErrOptionViolation)

	_, err = lattice.ExtentIntersection(concepts, nil)
	assert.ErrorIs(t, err, lattice.ErrContextNil)

	// drop an atom-level concept so some intersection has nowhere to land
	incomplete := append([]formal.Concept{}, concepts[:1]...)
	incomplete = append(incomplete, concepts[2:]...)
	_, err = lattice.ExtentIntersection(incomplete, fc)
	assert.ErrorIs(t, err, lattice.ErrConceptMissing)
	_, err = lattice.ExtentIntersection(incomplete, fc, lattice.WithExtentTrie())
	assert.ErrorIs(t, err, lattice.ErrConceptMissing)
}

func TestCover_Edges(t *testing.T) {
	fc := fixtures.LiveInWater.MustContext()
	cover, err := lattice.Naive(enumerate(t, fc))
	require.NoError(t, err)

	edges := cover.Edges()
	require.Len(t, edges, fixtures.LiveInWaterEdges)
	assert.Equal(t, lattice.Edge{Parent: 0, Child: 1}, edges[0])
	assert.Equal(t, []int{1, 2, 3, 4}, cover.Children[0])
	assert.Equal(t, []int{8, 9, 13, 15}, cover.Parents[18])
	assert.Equal(t, 18, cover.Bottom())
}

func TestValidate_Rejects(t *testing.T) {
	fc := fixtures.LiveInWater.MustContext()
	concepts := enumerate(t, fc)
	good, err := lattice.Naive(concepts)
	require.NoError(t, err)

	clone := func() *lattice.Cover {
		c := &lattice.Cover{
			Children: make([][]int, len(good.Children)),
			Parents:  make([][]int, len(good.Parents)),
		}
		for i := range good.Children {
			c.Children[i] = append([]int{}, good.Children[i]...)
			c.Parents[i] = append([]int{}, good.Parents[i]...)
		}
		return c
	}

	assert.ErrorIs(t, lattice.Validate(concepts, nil), lattice.ErrCoverNil)
	assert.ErrorIs(t, lattice.Validate(concepts[:3], good), lattice.ErrInvalidCover)

	// transitive edge top→bottom
	bad := clone()
	bad.Children[0] = append(bad.Children[0], 18)
	bad.Parents[18] = append(bad.Parents[18], 0)
	assert.ErrorIs(t, lattice.Validate(concepts, bad), lattice.ErrInvalidCover)

	// reversed edge
	bad = clone()
	bad.Children[1] = append(bad.Children[1], 0)
	bad.Parents[0] = append(bad.Parents[0], 1)
	assert.ErrorIs(t, lattice.Validate(concepts, bad), lattice.ErrInvalidCover)

	// one-sided edge
	bad = clone()
	bad.Parents[5] = bad.Parents[5][:1]
	assert.ErrorIs(t, lattice.Validate(concepts, bad), lattice.ErrInvalidCover)

	// missing edge leaves a second maximal concept
	bad = clone()
	bad.Children[0] = bad.Children[0][1:]
	bad.Parents[1] = []int{}
	assert.ErrorIs(t, lattice.Validate(concepts, bad), lattice.ErrInvalidCover)
}
