package generate

import "math/rand"

// Option customizes a constructor by mutating its config before generation.
type Option func(*config)

// config aggregates every generator knob. It is resolved once per call.
type config struct {
	rng        *rand.Rand // nil means no randomness available
	objectFn   LabelFn
	attrFn     LabelFn
	name       string
	unlabelled bool
}

const (
	defaultObjectPrefix    = "g"
	defaultAttributePrefix = "m"
)

func newConfig(opts ...Option) config {
	cfg := config{
		objectFn: PrefixLabelFn(defaultObjectPrefix),
		attrFn:   PrefixLabelFn(defaultAttributePrefix),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a seeded *rand.Rand (deterministic draws).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithObjectLabels sets the object label scheme. Panics on nil.
func WithObjectLabels(fn LabelFn) Option {
	if fn == nil {
		panic("generate: WithObjectLabels(nil)")
	}

	return func(c *config) { c.objectFn = fn }
}

// WithAttributeLabels sets the attribute label scheme. Panics on nil.
func WithAttributeLabels(fn LabelFn) Option {
	if fn == nil {
		panic("generate: WithAttributeLabels(nil)")
	}

	return func(c *config) { c.attrFn = fn }
}

// WithName sets the context name.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithoutLabels builds contexts without label metadata.
func WithoutLabels() Option {
	return func(c *config) { c.unlabelled = true }
}
