package engine

import (
	"fmt"
	"nim/experiments/metrics"
	"nim/game"
	"nim/meta"
	"nim/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// Agent is a searcher seated at a match together with the tier it plays.
type Agent struct {
	Searcher   searcher.Searcher
	Difficulty game.Difficulty
}

// Local plays a whole match between two agents without pacing or clocks.
type Local struct {
	match  *game.Match
	agents [game.Players]Agent
}

func NewLocal(match *game.Match, agents [game.Players]Agent) *Local {
	for _, agent := range agents {
		if agent.Searcher == nil {
			panic("Must seat an agent on both sides")
		}
	}
	return &Local{match: match, agents: agents}
}

// Run executes the game loop until the board is empty and returns the winning
// seat, or game.NoWinner if the move limit stopped the game first.
func (l *Local) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: l.match.Turn(),
		Winner:         game.NoWinner,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	step := 1
	for !l.match.Decided() && step <= meta.MAX_TURNS {
		player := l.match.Turn()
		agent := l.agents[player]

		move, searchMetric := agent.Searcher.Search(l.match.Piles())
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Difficulty:   agent.Difficulty,
			Move:         move,
			SearchMetric: searchMetric,
		})

		if _, err := l.match.ApplyMove(move.Pile, move.Amount); err != nil {
			panic(fmt.Sprintf("player %d chose %s: %v", player, move, err))
		}
		if _, err := l.match.AdvanceTurn(); err != nil {
			panic(fmt.Sprintf("failed to advance turn: %v", err))
		}
		step++
	}

	if !l.match.Decided() {
		log.Warn().Msgf("stopped after %d moves without a winner", meta.MAX_TURNS)
	}

	outcome := l.match.Outcome()
	gameMetric.Winner = outcome.Winner
	gameMetric.Reason = outcome.Reason
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	return outcome.Winner, gameMetric, moveMetrics
}
