// Package generate builds synthetic formal contexts for tests, examples and
// benchmarks: random cross tables of a given density and the standard scales
// of Formal Concept Analysis.
//
// Constructors:
//
//   - Random(n, m, density):  each incidence drawn independently with
//     probability density (requires WithSeed or WithRand unless density is
//     0 or 1).
//   - Nominal(n):        n×n identity; n+2 concepts for n ≥ 2.
//   - Ordinal(n):        object i has attributes 0..i; a chain of n concepts.
//   - Contranominal(n):  object i has every attribute except i; 2ⁿ concepts,
//     the worst case for any enumerator.
//
// Labels come from a LabelFn per axis (WithObjectLabels/WithAttributeLabels);
// defaults are "g0","g1",… for objects and "m0","m1",… for attributes.
//
// Guarantees:
//
//   - Determinism: same parameters, options and seed ⇒ identical contexts.
//     Random draws in object-major, attribute-ascending order.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewObjects, ErrInvalidDensity, ErrNeedRandSource)
//     wrapped with the method name.
package generate
