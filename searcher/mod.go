package searcher

import (
	"fmt"
	"nim/experiments/metrics"
	"nim/game"
	"time"

	"golang.org/x/exp/rand"
)

// Searcher picks the CPU's move from a pile snapshot. Searchers never touch
// a Match; they only see piles and always return a legal move. Calling one on
// an empty board is a programming error and panics.
type Searcher interface {
	FindNextMove(piles game.Piles) game.Move
	// Search also reports what the search cost (zero unless WithMetrics was given)
	Search(piles game.Piles) (game.Move, metrics.SearchMetric)
}

type Option func(c *config)

type config struct {
	traces  int
	rng     *rand.Rand
	metrics metrics.Collector
}

func WithTraces(traces int) Option {
	return func(c *config) {
		if traces > 0 {
			c.traces = traces
		}
	}
}

// WithRand makes playouts reproducible. Without it every searcher draws
// from its own time-seeded source.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func newConfig(options []Option) *config {
	c := &config{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return c
}

// New returns the searcher for a difficulty tier: exact Nim-sum play on hard,
// Monte-Carlo playouts on easy and normal. Options given here override the
// tier's defaults.
func New(difficulty game.Difficulty, options ...Option) (Searcher, error) {
	switch difficulty {
	case game.Hard:
		return NewOptimal(options...), nil
	case game.Normal:
		return NewMonteCarlo(append([]Option{WithTraces(NormalTraces)}, options...)...), nil
	case game.Easy:
		return NewMonteCarlo(append([]Option{WithTraces(EasyTraces)}, options...)...), nil
	default:
		return nil, fmt.Errorf("unknown difficulty: %d", difficulty)
	}
}

// ChooseMove runs a fresh, independently randomized searcher for the tier.
func ChooseMove(piles game.Piles, difficulty game.Difficulty) game.Move {
	s, err := New(difficulty)
	if err != nil {
		panic(err)
	}
	return s.FindNextMove(piles)
}

func mustBeLive(piles game.Piles) {
	if !piles.Live() {
		panic("cannot search for a move on an empty board")
	}
}
