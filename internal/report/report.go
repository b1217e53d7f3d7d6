// Package report turns concepts and covers into labelled documents and
// encodes them as JSON or YAML.
package report

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/galois/formal"
	"github.com/katalvlaran/galois/lattice"
)

// ErrFormat is returned for an unsupported encoding name.
var ErrFormat = errors.New("report: unknown format")

// Concept is a concept with object and attribute labels resolved.
type Concept struct {
	Index     int      `json:"index" yaml:"index"`
	Extent    []string `json:"extent" yaml:"extent"`
	Intent    []string `json:"intent" yaml:"intent"`
	Generator int      `json:"generator" yaml:"generator"`
}

// Edge is a cover pair by concept index.
type Edge struct {
	Parent int `json:"parent" yaml:"parent"`
	Child  int `json:"child" yaml:"child"`
}

// Summary describes the input context.
type Summary struct {
	Name       string  `json:"name,omitempty" yaml:"name,omitempty"`
	Objects    int     `json:"objects" yaml:"objects"`
	Attributes int     `json:"attributes" yaml:"attributes"`
	Density    float64 `json:"density" yaml:"density"`
}

// ConceptList is the output of the concepts command.
type ConceptList struct {
	Context  Summary   `json:"context" yaml:"context"`
	Count    int       `json:"count" yaml:"count"`
	Concepts []Concept `json:"concepts" yaml:"concepts"`
}

// Lattice is the output of the lattice command.
type Lattice struct {
	Context   Summary   `json:"context" yaml:"context"`
	Algorithm string    `json:"algorithm" yaml:"algorithm"`
	Concepts  []Concept `json:"concepts" yaml:"concepts"`
	Edges     []Edge    `json:"edges" yaml:"edges"`
	Levels    [][]int   `json:"levels,omitempty" yaml:"levels,omitempty"`
}

// Concepts labels a concept list.
func Concepts(fc *formal.Context, concepts []formal.Concept) *ConceptList {
	return &ConceptList{
		Context:  summarize(fc),
		Count:    len(concepts),
		Concepts: label(fc, concepts),
	}
}

// NewLattice labels a concept list with its cover; levels may be nil.
func NewLattice(fc *formal.Context, concepts []formal.Concept, cover *lattice.Cover, algorithm string, levels [][]int) *Lattice {
	edges := make([]Edge, 0, cover.EdgeCount())
	for _, e := range cover.Edges() {
		edges = append(edges, Edge{Parent: e.Parent, Child: e.Child})
	}

	return &Lattice{
		Context:   summarize(fc),
		Algorithm: algorithm,
		Concepts:  label(fc, concepts),
		Edges:     edges,
		Levels:    levels,
	}
}

// Encode writes v to w as "json" (indented) or "yaml".
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "report: json")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "report: yaml")
		}
		return errors.Wrap(enc.Close(), "report: yaml")
	default:
		return errors.WithHint(errors.Wrapf(ErrFormat, "%q", format), `use "json" or "yaml"`)
	}
}

func summarize(fc *formal.Context) Summary {
	return Summary{
		Name:       fc.Name(),
		Objects:    fc.Objects(),
		Attributes: fc.Attributes(),
		Density:    fc.Density(),
	}
}

func label(fc *formal.Context, concepts []formal.Concept) []Concept {
	out := make([]Concept, len(concepts))
	for i, c := range concepts {
		extent := make([]string, len(c.Extent))
		for k, o := range c.Extent {
			extent[k] = fc.ObjectLabel(o)
		}
		intent := make([]string, len(c.Intent))
		for k, a := range c.Intent {
			intent[k] = fc.AttributeLabel(a)
		}
		out[i] = Concept{Index: i, Extent: extent, Intent: intent, Generator: c.Generator}
	}

	return out
}
