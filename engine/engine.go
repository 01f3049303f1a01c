package engine

import (
	"fmt"
	"nim/game"
	"nim/meta"
	"nim/searcher"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Clock is the monotonic time source the driver measures frames with.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type Intent int

const (
	SelectLeft Intent = iota
	SelectRight
	AmountUp
	AmountDown
	Confirm
)

var intentNames = []string{"select_left", "select_right", "amount_up", "amount_down", "confirm"}

func (i Intent) String() string {
	if i < 0 || int(i) >= len(intentNames) {
		return fmt.Sprintf("intent(%d)", int(i))
	}
	return intentNames[i]
}

// Engine drives one match in real time. Update is called once per frame; it
// lets a taken move settle before handing the turn over, paces the CPU and
// runs the active clock. Engine is not safe for concurrent use.
type Engine struct {
	match    *game.Match
	cpu      searcher.Searcher
	clock    Clock
	last     time.Time
	cpuDelay time.Duration
	settle   time.Duration

	settleLeft time.Duration
	cpuLeft    time.Duration
	planned    *game.Move // computed CPU move waiting for the delay to pass
}

type Option func(o *options)

type options struct {
	clock    Clock
	sink     game.Sink
	rng      *rand.Rand
	cpuDelay time.Duration
	settle   time.Duration
	searcher searcher.Searcher
	piles    game.Piles
}

func WithClock(clock Clock) Option {
	return func(o *options) { o.clock = clock }
}

func WithSink(sink game.Sink) Option {
	return func(o *options) { o.sink = sink }
}

// WithRand seeds both the starting piles and the CPU playouts.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

func WithCPUDelay(delay time.Duration) Option {
	return func(o *options) {
		if delay >= 0 {
			o.cpuDelay = delay
		}
	}
}

func WithSettle(settle time.Duration) Option {
	return func(o *options) {
		if settle >= 0 {
			o.settle = settle
		}
	}
}

// WithSearcher replaces the searcher picked from the opponent's tier.
func WithSearcher(s searcher.Searcher) Option {
	return func(o *options) { o.searcher = s }
}

// WithPiles starts from fixed piles instead of random ones.
func WithPiles(piles game.Piles) Option {
	return func(o *options) { o.piles = piles }
}

func New(settings game.Settings, opts ...Option) (*Engine, error) {
	o := &options{ // Default values
		clock:    realClock{},
		cpuDelay: meta.CPU_DELAY,
		settle:   meta.SETTLE,
	}
	for _, opt := range opts {
		opt(o)
	}

	matchOptions := []game.Option{game.WithRand(o.rng), game.WithSink(o.sink)}
	if o.piles != nil {
		matchOptions = append(matchOptions, game.WithPiles(o.piles))
	}
	match := game.NewMatch(settings, matchOptions...)

	cpu := o.searcher
	if cpu == nil && match.Mode() == game.VsCPU {
		var err error
		cpu, err = searcher.New(match.Difficulty(), searcher.WithRand(o.rng))
		if err != nil {
			return nil, fmt.Errorf("failed to create cpu opponent: %w", err)
		}
	}

	log.Info().
		Str("match", match.ID().String()).
		Ints("piles", match.Piles()).
		Msgf("starting %s", settings)

	return &Engine{
		match:    match,
		cpu:      cpu,
		clock:    o.clock,
		last:     o.clock.Now(),
		cpuDelay: o.cpuDelay,
		settle:   o.settle,
	}, nil
}

// Update advances the match by the time elapsed since the previous call.
func (e *Engine) Update() game.Status {
	now := e.clock.Now()
	elapsed := max(now.Sub(e.last), 0)
	e.last = now

	if e.match.Decided() {
		return game.Terminal
	}

	if e.match.Pending() {
		e.settleLeft -= elapsed
		if e.settleLeft > 0 {
			return game.Continue
		}
		status, err := e.match.AdvanceTurn()
		if err != nil || status == game.Terminal {
			return game.Terminal
		}
		if e.match.CPUToMove() {
			e.plan()
		}
		return game.Continue
	}

	if e.planned != nil {
		e.cpuLeft -= elapsed
		if e.cpuLeft > 0 {
			return game.Continue
		}
		move := *e.planned
		e.planned = nil
		e.take(move)
		return game.Continue
	}

	return e.match.TickClock(elapsed)
}

// plan computes the CPU move right away and holds it back for the delay.
func (e *Engine) plan() {
	move, metric := e.cpu.Search(e.match.Piles())
	log.Debug().
		Str("match", e.match.ID().String()).
		Str("move", move.String()).
		Int("candidates", metric.Candidates).
		Int("playouts", metric.Playouts).
		Msg("cpu move planned")
	e.planned = &move
	e.cpuLeft = e.cpuDelay
}

func (e *Engine) take(move game.Move) {
	if _, err := e.match.ApplyMove(move.Pile, move.Amount); err != nil {
		// searchers only return legal moves
		panic(fmt.Sprintf("cpu move %s rejected: %v", move, err))
	}
	e.settleLeft = e.settle
}

// Intent applies a human input. Inputs that are not allowed right now are
// rejected with the reason and leave the match unchanged.
func (e *Engine) Intent(intent Intent) error {
	var err error
	switch intent {
	case SelectLeft:
		err = e.match.SelectPile(-1)
	case SelectRight:
		err = e.match.SelectPile(1)
	case AmountUp:
		err = e.match.AdjustAmount(1)
	case AmountDown:
		err = e.match.AdjustAmount(-1)
	case Confirm:
		if _, err = e.match.Confirm(); err == nil {
			e.settleLeft = e.settle
		}
	default:
		err = fmt.Errorf("unknown intent %d", int(intent))
	}

	if err != nil {
		log.Debug().Err(err).Str("intent", intent.String()).Msg("intent ignored")
	}
	return err
}

func (e *Engine) Snapshot() game.Snapshot { return e.match.Snapshot() }

func (e *Engine) Match() *game.Match { return e.match }

func (e *Engine) Done() bool { return e.match.Decided() }
