package searcher

import (
	"nim/experiments/metrics"
	"nim/game"

	"golang.org/x/exp/rand"
)

// MonteCarlo scores every legal move by the share of random playouts the
// mover goes on to win, and plays the best one. It does no tree search.
type MonteCarlo struct {
	traces  int
	rng     *rand.Rand
	metrics metrics.Collector
}

func NewMonteCarlo(options ...Option) *MonteCarlo {
	c := newConfig(options)
	if c.traces <= 0 {
		panic("Must specify playout traces")
	}
	return &MonteCarlo{
		traces:  c.traces,
		rng:     c.rng,
		metrics: c.metrics,
	}
}

func (mc *MonteCarlo) Traces() int {
	return mc.traces
}

func (mc *MonteCarlo) FindNextMove(piles game.Piles) game.Move {
	move, _ := mc.Search(piles)
	return move
}

// Search evaluates candidates by increasing pile then amount. A move that
// empties the board wins outright and is returned without sampling. Ties keep
// the first candidate seen.
func (mc *MonteCarlo) Search(piles game.Piles) (game.Move, metrics.SearchMetric) {
	mustBeLive(piles)
	mc.metrics.Start(mc.traces)

	moves := piles.LegalMoves()
	best, bestWins := moves[0], -1
	scratch := make(game.Piles, len(piles))
	for _, move := range moves {
		mc.metrics.AddCandidate()
		next := piles.Play(move)
		if !next.Live() {
			mc.metrics.SetShortCircuit()
			return move, mc.metrics.Complete()
		}

		wins := 0
		for i := 0; i < mc.traces; i++ {
			copy(scratch, next)
			// Opponent moves first after our candidate
			if rollout(scratch, false, mc.rng) {
				wins++
			}
			mc.metrics.AddPlayout()
		}
		if wins > bestWins {
			best, bestWins = move, wins
		}
	}
	return best, mc.metrics.Complete()
}

// rollout plays uniformly random moves on piles (mutating them) until the
// board is empty. mine says whether the evaluated side is to move; the result
// is true iff that side took the last stone.
func rollout(piles game.Piles, mine bool, rng *rand.Rand) bool {
	nonEmpty := make([]int, 0, len(piles))
	for {
		nonEmpty = nonEmpty[:0]
		for i, stones := range piles {
			if stones > 0 {
				nonEmpty = append(nonEmpty, i)
			}
		}
		if len(nonEmpty) == 0 {
			return !mine
		}

		pile := nonEmpty[rng.Intn(len(nonEmpty))] // Random rollout policy
		piles[pile] -= 1 + rng.Intn(piles[pile])
		mine = !mine
	}
}
