package game

import (
	"fmt"
	"time"

	"nim/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Match is the whole state of one game of Nim. It is owned by a single driver
// and only mutated through its methods, one turn at a time.
type Match struct {
	id          uuid.UUID
	piles       Piles
	turn        int
	mode        Mode
	difficulty  Difficulty
	timeControl TimeControl
	clocks      [Players]time.Duration
	clockOn     bool
	outcome     Outcome
	selected    int
	amount      int
	pending     bool // a move was applied but the turn has not advanced yet
	sink        Sink
}

type Option func(s *setup)

type setup struct {
	rng   *rand.Rand
	sink  Sink
	piles Piles
}

// WithRand draws the starting piles from rng instead of a time-seeded source.
func WithRand(rng *rand.Rand) Option {
	return func(s *setup) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithSink(sink Sink) Option {
	return func(s *setup) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithPiles starts the match from fixed piles instead of random ones.
func WithPiles(piles Piles) Option {
	return func(s *setup) {
		s.piles = piles.Copy()
	}
}

// MoveResult describes an applied move. Depleted means the board is empty and
// the following AdvanceTurn will decide the match.
type MoveResult struct {
	Move     Move
	Mover    int
	Depleted bool
	Snapshot Snapshot
}

// Snapshot is a read-only copy of the match for presentation.
type Snapshot struct {
	ID       uuid.UUID
	Piles    Piles
	Mode     Mode
	Turn     int
	Selected int
	Amount   int
	Clocks   [Players]time.Duration
	ClockOn  bool
	Pending  bool
	Outcome  Outcome
}

// NewMatch starts a match: piles are drawn uniformly from the board size's
// range, player 0 moves first and both clocks start at the base time.
func NewMatch(settings Settings, options ...Option) *Match {
	s := &setup{sink: nopSink{}}
	for _, option := range options {
		option(s)
	}

	piles := s.piles
	if piles == nil {
		if s.rng == nil {
			s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
		}
		piles = randomPiles(settings.Board, s.rng)
	}
	for _, stones := range piles {
		if stones < 0 {
			panic("piles cannot hold negative stones")
		}
	}
	if !piles.Live() {
		panic("Must start a match with at least one stone")
	}

	base := settings.TimeControl.Base()
	m := &Match{
		id:          uuid.New(),
		piles:       piles,
		turn:        0,
		mode:        settings.Mode(),
		difficulty:  settings.Difficulty(),
		timeControl: settings.TimeControl,
		clocks:      [Players]time.Duration{base, base},
		clockOn:     true,
		outcome:     undecided(),
		selected:    piles.FirstNonEmpty(),
		amount:      1,
		sink:        s.sink,
	}

	log.Debug().
		Str("match", m.id.String()).
		Ints("piles", piles).
		Msgf("new match: %s", settings)
	return m
}

func randomPiles(board BoardSize, rng *rand.Rand) Piles {
	count, lo, hi := board.Layout()
	piles := make(Piles, count)
	for i := range piles {
		piles[i] = lo + rng.Intn(hi-lo+1)
	}
	return piles
}

func (m *Match) ID() uuid.UUID            { return m.id }
func (m *Match) Piles() Piles             { return m.piles.Copy() }
func (m *Match) Turn() int                { return m.turn }
func (m *Match) Mode() Mode               { return m.mode }
func (m *Match) Difficulty() Difficulty   { return m.difficulty }
func (m *Match) TimeControl() TimeControl { return m.timeControl }
func (m *Match) Outcome() Outcome         { return m.outcome }
func (m *Match) Decided() bool            { return m.outcome.Decided() }
func (m *Match) Pending() bool            { return m.pending }

func (m *Match) Clock(player int) time.Duration {
	return m.clocks[player]
}

// ApplyMove takes stones for the active player. The move is re-validated
// against the current piles; a rejected move leaves the match untouched.
// On success the match waits for AdvanceTurn before accepting anything else.
func (m *Match) ApplyMove(pile, amount int) (MoveResult, error) {
	if m.outcome.Decided() {
		return MoveResult{}, ErrGameOver
	}
	if m.pending {
		return MoveResult{}, ErrMovePending
	}
	if !m.LegalMove(pile, amount) {
		return MoveResult{}, fmt.Errorf("%w: pile %d amount %d", ErrIllegalMove, pile, amount)
	}

	mover := m.turn
	m.piles[pile] -= amount
	// Fischer increment goes to the mover
	if m.clockOn && m.HasClock(mover) {
		m.clocks[mover] += m.timeControl.Increment()
	}
	m.selected = pile
	m.amount = amount
	m.pending = true

	m.emit(Event{
		Kind:   MoveTaken,
		Pile:   pile,
		Amount: amount,
		Mover:  mover,
		Stones: min(amount, meta.MAX_STONE_SOUNDS),
		Winner: NoWinner,
	})

	return MoveResult{
		Move:     Move{Pile: pile, Amount: amount},
		Mover:    mover,
		Depleted: !m.piles.Live(),
		Snapshot: m.Snapshot(),
	}, nil
}

// AdvanceTurn completes the pending move. An empty board ends the match in
// favour of the player who just moved; otherwise the other player is up with
// the first nonempty pile selected.
func (m *Match) AdvanceTurn() (Status, error) {
	if m.outcome.Decided() {
		return Terminal, ErrGameOver
	}
	if !m.pending {
		return Continue, ErrNoPendingMove
	}
	m.pending = false

	if !m.piles.Live() {
		m.decide(m.turn, Depletion)
		return Terminal, nil
	}

	m.turn = 1 - m.turn
	m.selected = m.piles.FirstNonEmpty()
	m.amount = 1
	return Continue, nil
}

// TickClock charges elapsed time to the active player's clock. Nothing is
// charged while a move is pending, after the match is decided, or when the
// active player has no clock. Negative elapsed time counts as zero.
func (m *Match) TickClock(elapsed time.Duration) Status {
	if m.outcome.Decided() {
		return Terminal
	}
	if m.pending || !m.clockOn || !m.HasClock(m.turn) {
		return Continue
	}

	m.clocks[m.turn] -= max(elapsed, 0)
	if m.clocks[m.turn] > 0 {
		return Continue
	}

	m.clocks[m.turn] = 0
	// Only the human clock runs against the CPU, so the CPU takes every timeout.
	winner := 1
	if m.mode == TwoPlayer {
		winner = 1 - m.turn
	}
	m.decide(winner, Timeout)
	return Terminal
}

func (m *Match) decide(winner int, reason Reason) {
	m.outcome = Outcome{Winner: winner, Reason: reason}
	m.clockOn = false

	log.Debug().
		Str("match", m.id.String()).
		Int("winner", winner).
		Str("reason", reason.String()).
		Msg("match decided")

	m.emit(Event{Kind: MatchDecided, Mover: m.turn, Winner: winner, Reason: reason})
}

func (m *Match) emit(event Event) {
	event.MatchID = m.id
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Str("event", event.Kind.String()).Msg("notification sink failed")
		}
	}()
	m.sink.Notify(event)
}

func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		ID:       m.id,
		Piles:    m.piles.Copy(),
		Mode:     m.mode,
		Turn:     m.turn,
		Selected: m.selected,
		Amount:   m.amount,
		Clocks:   m.clocks,
		ClockOn:  m.clockOn,
		Pending:  m.pending,
		Outcome:  m.outcome,
	}
}
