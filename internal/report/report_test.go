package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/galois/inclose"
	"github.com/katalvlaran/galois/internal/fixtures"
	"github.com/katalvlaran/galois/internal/report"
	"github.com/katalvlaran/galois/lattice"
)

func TestConcepts_JSON(t *testing.T) {
	fc := fixtures.LiveInWater.MustContext()
	concepts, err := inclose.Enumerate(fc)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, "json", report.Concepts(fc, concepts)))

	var got report.ConceptList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, fixtures.LiveInWaterConcepts, got.Count)
	assert.Equal(t, "liveinwater", got.Context.Name)
	assert.Equal(t, []string{"needs water to live"}, got.Concepts[0].Intent)
	assert.Equal(t, []string{"dog"}, got.Concepts[15].Extent)
	assert.Empty(t, got.Concepts[18].Extent)
}

func TestLattice_YAML(t *testing.T) {
	fc := fixtures.Digits.MustContext()
	concepts, err := inclose.Enumerate(fc)
	require.NoError(t, err)
	cover, err := lattice.Naive(concepts)
	require.NoError(t, err)

	var buf bytes.Buffer
	doc := report.NewLattice(fc, concepts, cover, "naive", nil)
	require.NoError(t, report.Encode(&buf, "yaml", doc))

	var got report.Lattice
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "naive", got.Algorithm)
	assert.Len(t, got.Concepts, fixtures.DigitsConcepts)
	assert.Len(t, got.Edges, fixtures.DigitsCoverEdges)
	assert.Nil(t, got.Levels)
	assert.NotContains(t, buf.String(), "levels:")
}

func TestEncode_UnknownFormat(t *testing.T) {
	err := report.Encode(&bytes.Buffer{}, "xml", struct{}{})
	assert.ErrorIs(t, err, report.ErrFormat)
	assert.NotEmpty(t, errors.GetAllHints(err))
}
