package inclose_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/formal"
)

// key renders a concept as a stable string for set comparisons.
func key(c formal.Concept) string {
	return fmt.Sprint(c.Extent, c.Intent)
}

// bruteForceIntents returns every closed attribute set of fc by closing the
// family of object rows under intersection (the full attribute set is the
// intersection of the empty family).
func bruteForceIntents(fc *formal.Context) []string {
	full := make([]int, fc.Attributes())
	for a := range full {
		full[a] = a
	}
	closed := map[string][]int{fmt.Sprint(full): full}
	for o := 0; o < fc.Objects(); o++ {
		row := fc.Row(o).Indices()
		for _, c := range mapValues(closed) {
			meet := intersect(c, row)
			closed[fmt.Sprint(meet)] = meet
		}
	}
	out := make([]string, 0, len(closed))
	for k := range closed {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

func mapValues(m map[string][]int) [][]int {
	out := make([][]int, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}

	return out
}

func intersect(a, b []int) []int {
	out := []int{}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// intents returns the sorted intent keys of concepts.
func intents(concepts []formal.Concept) []string {
	out := make([]string, len(concepts))
	for i, c := range concepts {
		out[i] = fmt.Sprint(c.Intent)
	}
	sort.Strings(out)

	return out
}

// requireSound checks closure soundness, ordering, uniqueness and the
// top/bottom placement rules for a complete enumeration of fc.
func requireSound(t *testing.T, fc *formal.Context, concepts []formal.Concept) {
	t.Helper()
	require.NotEmpty(t, concepts)

	seen := make(map[string]int, len(concepts))
	for i, c := range concepts {
		assert.True(t, sort.IntsAreSorted(c.Extent), "concept %d extent not ascending", i)
		assert.True(t, sort.IntsAreSorted(c.Intent), "concept %d intent not ascending", i)
		assert.Equal(t, fc.ExtentOf(c.Intent), c.Extent, "concept %d extent not closed", i)
		assert.Equal(t, fc.IntentOf(c.Extent), c.Intent, "concept %d intent not closed", i)
		if prev, dup := seen[key(c)]; dup {
			t.Errorf("concept %d duplicates concept %d: %s", i, prev, key(c))
		}
		seen[key(c)] = i
	}

	assert.Len(t, concepts[0].Extent, fc.Objects(), "top extent must hold every object")

	synthetic := 0
	for _, c := range concepts {
		if len(c.Extent) == 0 && len(c.Intent) == fc.Attributes() {
			synthetic++
		}
	}
	if fc.Objects() > 0 && !fc.HasObjectWithAllAttributes() {
		assert.Equal(t, 1, synthetic, "synthetic bottom expected exactly once")
		last := concepts[len(concepts)-1]
		assert.Empty(t, last.Extent, "synthetic bottom must be last")
	} else if fc.Objects() > 0 {
		assert.Zero(t, synthetic, "no empty-extent bottom expected")
	}
}
