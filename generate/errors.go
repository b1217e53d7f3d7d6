package generate

import "errors"

// ErrTooFewObjects indicates a negative size parameter.
var ErrTooFewObjects = errors.New("generate: parameter too small")

// ErrInvalidDensity indicates a density outside the closed interval [0,1].
var ErrInvalidDensity = errors.New("generate: density out of range")

// ErrNeedRandSource indicates a stochastic constructor was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("generate: rng is required")
