package generate

import (
	"fmt"

	"github.com/katalvlaran/galois/bitset"
	"github.com/katalvlaran/galois/formal"
)

// Method tags used as error context.
const (
	methodRandom        = "Random"
	methodNominal       = "Nominal"
	methodOrdinal       = "Ordinal"
	methodContranominal = "Contranominal"
)

const (
	densityMin = 0.0
	densityMax = 1.0
)

// Random returns an objects × attributes context whose incidences are drawn
// independently with probability density.
func Random(objects, attributes int, density float64, opts ...Option) (*formal.Context, error) {
	if objects < 0 || attributes < 0 {
		return nil, fmt.Errorf("%s: %d×%d: %w", methodRandom, objects, attributes, ErrTooFewObjects)
	}
	if density < densityMin || density > densityMax {
		return nil, fmt.Errorf("%s: density=%.6f not in [%.1f,%.1f]: %w",
			methodRandom, density, densityMin, densityMax, ErrInvalidDensity)
	}
	cfg := newConfig(opts...)
	// RNG is only required for true sampling.
	if cfg.rng == nil && density > densityMin && density < densityMax {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	rows := make([]bitset.Bitset, objects)
	for o := range rows {
		rows[o] = bitset.New(attributes)
		for a := 0; a < attributes; a++ {
			if density == densityMax || (density > densityMin && cfg.rng.Float64() < density) {
				rows[o].Set(a)
			}
		}
	}

	return build(methodRandom, rows, attributes, cfg)
}

// Nominal returns the n×n identity scale: object i has exactly attribute i.
func Nominal(n int, opts ...Option) (*formal.Context, error) {
	return scale(methodNominal, n, func(o, a int) bool { return o == a }, opts)
}

// Ordinal returns the n×n ordinal scale: object i has attributes 0..i.
func Ordinal(n int, opts ...Option) (*formal.Context, error) {
	return scale(methodOrdinal, n, func(o, a int) bool { return a <= o }, opts)
}

// Contranominal returns the n×n contranominal scale: object i has every
// attribute except i. Its lattice is the full Boolean lattice of 2ⁿ concepts.
func Contranominal(n int, opts ...Option) (*formal.Context, error) {
	return scale(methodContranominal, n, func(o, a int) bool { return o != a }, opts)
}

// scale fills an n×n table from the incidence predicate has.
func scale(method string, n int, has func(o, a int) bool, opts []Option) (*formal.Context, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d < 0: %w", method, n, ErrTooFewObjects)
	}
	rows := make([]bitset.Bitset, n)
	for o := range rows {
		rows[o] = bitset.New(n)
		for a := 0; a < n; a++ {
			if has(o, a) {
				rows[o].Set(a)
			}
		}
	}

	return build(method, rows, n, newConfig(opts...))
}

// build attaches labels and name, then packs rows into a formal.Context.
func build(method string, rows []bitset.Bitset, attributes int, cfg config) (*formal.Context, error) {
	fopts := []formal.Option{formal.WithName(cfg.name)}
	if !cfg.unlabelled {
		fopts = append(fopts,
			formal.WithObjectLabels(labels(cfg.objectFn, len(rows))...),
			formal.WithAttributeLabels(labels(cfg.attrFn, attributes)...),
		)
	}
	fc, err := formal.FromRows(rows, attributes, fopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return fc, nil
}

func labels(fn LabelFn, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fn(i)
	}

	return out
}
