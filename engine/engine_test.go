package engine

import (
	"nim/experiments/metrics"
	"nim/game"
	"nim/meta"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

type fixedSearcher struct {
	move  game.Move
	calls int
}

func (s *fixedSearcher) FindNextMove(piles game.Piles) game.Move {
	move, _ := s.Search(piles)
	return move
}

func (s *fixedSearcher) Search(game.Piles) (game.Move, metrics.SearchMetric) {
	s.calls++
	return s.move, metrics.SearchMetric{}
}

func newTestEngine(t *testing.T, piles game.Piles, opponent game.Opponent, tc game.TimeControl, opts ...Option) (*Engine, *fakeClock, *[]game.Event) {
	t.Helper()
	clock := newFakeClock()
	events := &[]game.Event{}
	sink := game.SinkFunc(func(e game.Event) { *events = append(*events, e) })

	opts = append([]Option{
		WithClock(clock),
		WithSink(sink),
		WithPiles(piles),
		WithRand(rand.New(rand.NewSource(1))),
	}, opts...)
	e, err := New(game.Settings{Board: game.Small, Opponent: opponent, TimeControl: tc}, opts...)
	require.NoError(t, err)
	return e, clock, events
}

func TestEngineAgainstCPU(t *testing.T) {
	e, clock, events := newTestEngine(t, game.Piles{1, 2}, game.CPUHard, game.Classic)

	require.NoError(t, e.Intent(Confirm))
	require.Equal(t, game.Piles{0, 2}, e.Snapshot().Piles)
	require.Equal(t, 305*time.Second, e.Match().Clock(0), "Increment should be credited on the move")

	t.Log("the move settles before the turn is handed over")
	clock.Advance(meta.SETTLE - meta.FRAME)
	require.Equal(t, game.Continue, e.Update())
	require.True(t, e.Snapshot().Pending)
	require.ErrorIs(t, e.Intent(SelectRight), game.ErrMovePending)

	clock.Advance(meta.FRAME)
	e.Update()
	require.False(t, e.Snapshot().Pending)
	require.Equal(t, 1, e.Snapshot().Turn)
	require.ErrorIs(t, e.Intent(Confirm), game.ErrNotYourTurn)

	t.Log("the cpu move is held back for the delay")
	clock.Advance(meta.CPU_DELAY - meta.FRAME)
	e.Update()
	require.Equal(t, game.Piles{0, 2}, e.Snapshot().Piles)

	clock.Advance(meta.FRAME)
	e.Update()
	require.Equal(t, game.Piles{0, 0}, e.Snapshot().Piles)
	require.False(t, e.Done())

	clock.Advance(meta.SETTLE)
	require.Equal(t, game.Terminal, e.Update())
	require.True(t, e.Done())
	require.Equal(t, game.Outcome{Winner: 1, Reason: game.Depletion}, e.Snapshot().Outcome)
	require.Equal(t, 305*time.Second, e.Match().Clock(0), "Human clock should not run while moves settle or the cpu thinks")

	kinds := []game.EventKind{}
	for _, event := range *events {
		kinds = append(kinds, event.Kind)
	}
	require.Equal(t, []game.EventKind{game.MoveTaken, game.MoveTaken, game.MatchDecided}, kinds)
}

func TestEngineClock(t *testing.T) {
	t.Run("human running out of time loses to the cpu", func(t *testing.T) {
		e, clock, _ := newTestEngine(t, game.Piles{3, 4}, game.CPUEasy, game.Bullet)

		clock.Advance(10 * time.Second)
		require.Equal(t, game.Continue, e.Update())
		require.Equal(t, 5*time.Second, e.Match().Clock(0))

		clock.Advance(6 * time.Second)
		require.Equal(t, game.Terminal, e.Update())
		require.Equal(t, game.Outcome{Winner: 1, Reason: game.Timeout}, e.Snapshot().Outcome)
		require.Zero(t, e.Match().Clock(0))
	})

	t.Run("second player running out of time loses a two player match", func(t *testing.T) {
		e, clock, _ := newTestEngine(t, game.Piles{3, 4}, game.Human, game.Bullet)
		require.NoError(t, e.Intent(Confirm))
		clock.Advance(meta.SETTLE)
		e.Update()
		require.Equal(t, 1, e.Snapshot().Turn)

		clock.Advance(15 * time.Second)
		require.Equal(t, game.Terminal, e.Update())
		require.Equal(t, game.Outcome{Winner: 0, Reason: game.Timeout}, e.Snapshot().Outcome)
		require.Equal(t, 16*time.Second, e.Match().Clock(0))
	})

	t.Run("clock going backwards charges nothing", func(t *testing.T) {
		e, clock, _ := newTestEngine(t, game.Piles{3, 4}, game.CPUEasy, game.Bullet)

		clock.Advance(-5 * time.Second)
		e.Update()
		require.Equal(t, 15*time.Second, e.Match().Clock(0))

		clock.Advance(time.Second)
		e.Update()
		require.Equal(t, 14*time.Second, e.Match().Clock(0))
	})

	t.Run("updates after the match is decided do nothing", func(t *testing.T) {
		e, clock, _ := newTestEngine(t, game.Piles{3}, game.CPUEasy, game.Bullet)
		clock.Advance(time.Minute)
		require.Equal(t, game.Terminal, e.Update())

		clock.Advance(time.Minute)
		require.Equal(t, game.Terminal, e.Update())
		require.Equal(t, game.Outcome{Winner: 1, Reason: game.Timeout}, e.Snapshot().Outcome)
	})
}

func TestEngineOptions(t *testing.T) {
	t.Run("custom searcher without pacing", func(t *testing.T) {
		cpu := &fixedSearcher{move: game.Move{Pile: 1, Amount: 1}}
		e, _, _ := newTestEngine(t, game.Piles{2, 3}, game.CPUNormal, game.Classic,
			WithSearcher(cpu), WithCPUDelay(0), WithSettle(0))

		require.NoError(t, e.Intent(AmountUp))
		require.NoError(t, e.Intent(Confirm))
		require.Equal(t, game.Piles{0, 3}, e.Snapshot().Piles)

		e.Update() // hand over and plan
		require.Equal(t, 1, cpu.calls)
		e.Update() // apply
		require.Equal(t, game.Piles{0, 2}, e.Snapshot().Piles)
		e.Update() // hand back
		require.Equal(t, 0, e.Snapshot().Turn)
		require.Equal(t, 1, cpu.calls)
	})

	t.Run("negative delays are ignored", func(t *testing.T) {
		e, _, _ := newTestEngine(t, game.Piles{2}, game.CPUEasy, game.Classic,
			WithCPUDelay(-time.Second), WithSettle(-time.Second))
		require.Equal(t, meta.CPU_DELAY, e.cpuDelay)
		require.Equal(t, meta.SETTLE, e.settle)
	})

	t.Run("two player matches have no cpu", func(t *testing.T) {
		e, _, _ := newTestEngine(t, game.Piles{2}, game.Human, game.Classic)
		require.Nil(t, e.cpu)
	})
}

func TestIntent(t *testing.T) {
	e, _, _ := newTestEngine(t, game.Piles{4, 0, 5}, game.Human, game.Classic)

	require.NoError(t, e.Intent(SelectRight))
	require.NoError(t, e.Intent(AmountUp))
	require.NoError(t, e.Intent(AmountUp))
	require.NoError(t, e.Intent(AmountDown))
	require.Equal(t, 2, e.Snapshot().Selected)
	require.Equal(t, 2, e.Snapshot().Amount)

	require.NoError(t, e.Intent(SelectLeft))
	require.Equal(t, 0, e.Snapshot().Selected)

	require.Error(t, e.Intent(Intent(42)))
	require.Equal(t, "intent(42)", Intent(42).String())
	require.Equal(t, "confirm", Confirm.String())
}
