package inclose

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/galois/formal"
)

// Sentinel errors for concept enumeration.
var (
	// ErrContextNil is returned when a nil *formal.Context is passed.
	ErrContextNil = errors.New("inclose: context is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("inclose: invalid option supplied")

	// ErrTooManyConcepts is returned when the enumeration exceeds MaxConcepts.
	ErrTooManyConcepts = errors.New("inclose: concept limit exceeded")
)

// Option configures enumeration via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Enumerate is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for an enumeration run.
type Options struct {
	// Logger receives a Debug summary once the run completes.
	Logger *zap.Logger

	// OnConcept is called once per concept as soon as its intent is final.
	// Calls follow processing order, which differs from the order of the
	// returned slice. Returning an error aborts the run with that error.
	// EnumerateParallel serializes calls.
	OnConcept func(c formal.Concept) error

	// MaxConcepts, if > 0, aborts the run with ErrTooManyConcepts once more
	// concepts than this have been produced.
	MaxConcepts int

	// Workers bounds the number of concurrently expanded top-level branches
	// in EnumerateParallel. Enumerate ignores it.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op logger and hook, no concept
// limit and one worker per available CPU.
func DefaultOptions() Options {
	return Options{
		Logger:      zap.NewNop(),
		OnConcept:   func(formal.Concept) error { return nil },
		MaxConcepts: 0,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger used for the end-of-run summary.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnConcept registers a per-concept callback.
func WithOnConcept(fn func(c formal.Concept) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnConcept = fn
		}
	}
}

// WithMaxConcepts limits the number of concepts a run may produce.
//
//	n > 0:  abort with ErrTooManyConcepts beyond n concepts
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxConcepts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxConcepts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxConcepts = n
	}
}

// WithWorkers bounds parallel branch expansion; n must be at least 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// Stats counts the work done by one enumeration run.
type Stats struct {
	// Concepts is the number of concepts returned, synthetic bottom included.
	Concepts int

	// Candidates counts (parent, attribute) pairs examined.
	Candidates int

	// Closures counts attributes appended in place to a parent's intent.
	Closures int

	// Empty counts candidates skipped because no object of the parent has the attribute.
	Empty int

	// Rejected counts candidates that failed the canonicity test.
	Rejected int

	// Synthetic reports whether an empty-extent bottom was appended.
	Synthetic bool
}

// add accumulates branch statistics into s.
func (s *Stats) add(o Stats) {
	s.Candidates += o.Candidates
	s.Closures += o.Closures
	s.Empty += o.Empty
	s.Rejected += o.Rejected
}

// fields renders s as structured log fields.
func (s Stats) fields() []zap.Field {
	return []zap.Field{
		zap.Int("concepts", s.Concepts),
		zap.Int("candidates", s.Candidates),
		zap.Int("closures", s.Closures),
		zap.Int("empty", s.Empty),
		zap.Int("rejected", s.Rejected),
		zap.Bool("synthetic_bottom", s.Synthetic),
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
