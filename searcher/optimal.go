package searcher

import (
	"nim/experiments/metrics"
	"nim/game"
)

// Optimal plays perfect Nim: it moves to a position whose Nim-sum is zero
// whenever one exists.
type Optimal struct {
	metrics metrics.Collector
}

func NewOptimal(options ...Option) *Optimal {
	c := newConfig(options)
	return &Optimal{metrics: c.metrics}
}

func (o *Optimal) FindNextMove(piles game.Piles) game.Move {
	move, _ := o.Search(piles)
	return move
}

func (o *Optimal) Search(piles game.Piles) (game.Move, metrics.SearchMetric) {
	mustBeLive(piles)
	o.metrics.Start(0)

	move := optimalMove(piles)
	o.metrics.AddCandidate()
	return move, o.metrics.Complete()
}

func optimalMove(piles game.Piles) game.Move {
	x := piles.NimSum()
	if x != 0 {
		for i, stones := range piles {
			if target := stones ^ x; target < stones {
				return game.Move{Pile: i, Amount: stones - target}
			}
		}
	}
	// Losing position: every move loses against perfect play, take the smallest
	return game.Move{Pile: piles.FirstNonEmpty(), Amount: 1}
}
