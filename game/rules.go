package game

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game is over - no moves allowed")
	ErrMovePending   = errors.New("previous move has not been advanced")
	ErrNoPendingMove = errors.New("no move to advance")
	ErrNotYourTurn   = errors.New("not a human turn")
)

// Reason tells how a match was decided.
type Reason int

const (
	NoReason Reason = iota
	Depletion
	Timeout
)

var reasonNames = []string{"", "normal", "timeout"}

func (r Reason) String() string { return nameOf(reasonNames, int(r)) }

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Outcome is undecided until Reason is set; once decided it never changes.
type Outcome struct {
	Winner int    `json:"winner"`
	Reason Reason `json:"reason"`
}

func undecided() Outcome {
	return Outcome{Winner: NoWinner, Reason: NoReason}
}

func (o Outcome) Decided() bool {
	return o.Reason != NoReason
}

func (o Outcome) String() string {
	if !o.Decided() {
		return "undecided"
	}
	return fmt.Sprintf("player %d wins (%s)", o.Winner, o.Reason)
}

// LegalMove reports whether taking amount stones from pile is allowed right now.
// It never mutates the match.
func (m *Match) LegalMove(pile, amount int) bool {
	return m.piles.Legal(Move{Pile: pile, Amount: amount})
}

// HasClock reports whether the player's clock runs. The CPU never has one.
func (m *Match) HasClock(player int) bool {
	return player == 0 || m.mode == TwoPlayer
}

// HumanToMove reports whether the active seat belongs to a person.
func (m *Match) HumanToMove() bool {
	return m.mode == TwoPlayer || m.turn == 0
}

// CPUToMove reports whether the driver should consult the decision engine.
func (m *Match) CPUToMove() bool {
	return !m.outcome.Decided() && !m.pending && m.mode == VsCPU && m.turn == 1
}
