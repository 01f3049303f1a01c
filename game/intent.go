package game

import "errors"

// canAct guards the player intents: a person may only steer the selection on
// their own turn while no move is animating.
func (m *Match) canAct() error {
	if m.outcome.Decided() {
		return ErrGameOver
	}
	if m.pending {
		return ErrMovePending
	}
	if !m.HumanToMove() {
		return ErrNotYourTurn
	}
	return nil
}

// SelectPile moves the selection to the next nonempty pile in direction dir
// (negative for left, positive for right), wrapping around the board. The
// selected amount is clamped to the new pile.
func (m *Match) SelectPile(dir int) error {
	if err := m.canAct(); err != nil {
		return err
	}
	step := 1
	if dir < 0 {
		step = -1
	}

	n := len(m.piles)
	for i := 1; i <= n; i++ {
		j := ((m.selected+step*i)%n + n) % n
		if m.piles[j] > 0 {
			m.selected = j
			m.amount = min(m.amount, m.piles[j])
			return nil
		}
	}
	return nil
}

// AdjustAmount changes the selected amount by delta, kept within 1 and the
// selected pile's size.
func (m *Match) AdjustAmount(delta int) error {
	if err := m.canAct(); err != nil {
		return err
	}
	m.amount = max(1, min(m.piles[m.selected], m.amount+delta))
	return nil
}

// Confirm takes the current selection. An illegal selection is rejected
// without touching the board and reported to the sink as MoveRejected.
func (m *Match) Confirm() (MoveResult, error) {
	if err := m.canAct(); err != nil {
		return MoveResult{}, err
	}
	result, err := m.ApplyMove(m.selected, m.amount)
	if errors.Is(err, ErrIllegalMove) {
		m.emit(Event{
			Kind:   MoveRejected,
			Pile:   m.selected,
			Amount: m.amount,
			Mover:  m.turn,
			Winner: NoWinner,
		})
	}
	return result, err
}

// Selection returns the pile and amount the active player would take on Confirm.
func (m *Match) Selection() Move {
	return Move{Pile: m.selected, Amount: m.amount}
}
