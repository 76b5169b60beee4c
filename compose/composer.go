package compose

import (
	"context"

	"github.com/giuliop/gf2fn/internal/logging"
	"github.com/giuliop/gf2fn/workerpool"
)

// Strategy selects which recombination algorithm Compose uses; both
// produce the same observable Function.
type Strategy int

const (
	// StrategySets is the set-of-monomials memo and greedy scheduler.
	StrategySets Strategy = iota
	// StrategyBasis is the growing shared-basis BitVec product.
	StrategyBasis
)

// Metrics reports diagnostics about a single Compose call, useful
// since the expansions memo can grow as
// deg(outer)*|inner_i|^deg(outer).
type Metrics struct {
	CandidatesConsidered int
	BasisSize            int
	StagesRun            int
}

type config struct {
	maxOuterOrder int
	strategy      Strategy
}

// Option configures a Composer.
type Option func(*config)

// WithMaxOuterOrder bounds the order of intermediate products the
// greedy scheduler (StrategySets) will consider. Ignored by
// StrategyBasis. A value <= 0 (the
// default) computes the bound per-call as the maximum cardinality
// among the outer function's own required monomials.
func WithMaxOuterOrder(n int) Option {
	return func(c *config) { c.maxOuterOrder = n }
}

// WithStrategy selects the composition algorithm.
func WithStrategy(s Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// Composer performs symbolic composition of two Inputs, using a
// shared Pool for its internal concurrent stages.
type Composer struct {
	pool *workerpool.Pool
	cfg  config
}

// NewComposer returns a Composer backed by pool. A nil pool falls
// back to a pool of workerpool.DefaultSize workers.
func NewComposer(pool *workerpool.Pool, opts ...Option) *Composer {
	if pool == nil {
		pool = workerpool.New(workerpool.DefaultSize)
	}
	cfg := config{strategy: StrategySets}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Composer{pool: pool, cfg: cfg}
}

// Compose returns outer composed with inner: a Function over
// inner.InputLen variables equivalent to outer(inner(x)).
func (c *Composer) Compose(ctx context.Context, outer, inner Input) (Input, Metrics, error) {
	if err := validateComposeShapes(outer, inner); err != nil {
		return Input{}, Metrics{}, err
	}
	log := logging.Logger().With().
		Int("outerMonomials", len(outer.Monomials)).
		Int("innerMonomials", len(inner.Monomials)).
		Int("innerInputLen", inner.InputLen).
		Logger()

	switch c.cfg.strategy {
	case StrategyBasis:
		log.Debug().Msg("composing via growing basis")
		return c.composeViaBasis(ctx, outer, inner)
	default:
		log.Debug().Msg("composing via monomial sets")
		return c.composeViaSets(ctx, outer, inner)
	}
}
