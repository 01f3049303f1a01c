package game

import "nim/utils"

// Piles holds the stone count of every pile. Order is fixed for the whole
// match and counts only ever decrease.
type Piles []int

func (p Piles) Copy() Piles {
	piles := make(Piles, len(p))
	copy(piles, p)
	return piles
}

func (p Piles) Sum() int {
	return utils.Sum([]int(p))
}

// NimSum is the xor of all pile sizes. Zero means the player to move loses
// against optimal play.
func (p Piles) NimSum() int {
	return utils.Xor([]int(p))
}

// Live reports whether any stone is left.
func (p Piles) Live() bool {
	return p.FirstNonEmpty() >= 0
}

// FirstNonEmpty returns the lowest index holding stones, or -1 when the board is empty.
func (p Piles) FirstNonEmpty() int {
	return utils.FindIndexFunc([]int(p), func(stones int) bool { return stones > 0 })
}

// Legal reports whether the move takes between 1 and all stones of an existing nonempty pile.
func (p Piles) Legal(move Move) bool {
	if move.Pile < 0 || move.Pile >= len(p) {
		return false
	}
	stones := p[move.Pile]
	return stones > 0 && move.Amount >= 1 && move.Amount <= stones
}

// LegalMoves enumerates every legal move by increasing pile index, then increasing amount.
func (p Piles) LegalMoves() []Move {
	moves := make([]Move, 0, p.Sum())
	for pile, stones := range p {
		for amount := 1; amount <= stones; amount++ {
			moves = append(moves, Move{Pile: pile, Amount: amount})
		}
	}
	return moves
}

// Play returns a copy of the piles with the move applied. The move must be legal.
func (p Piles) Play(move Move) Piles {
	if !p.Legal(move) {
		panic("cannot play illegal move: " + move.String())
	}
	piles := p.Copy()
	piles[move.Pile] -= move.Amount
	return piles
}
