package experiments

import (
	"fmt"
	"nim/engine"
	"nim/experiments/metrics"
	"nim/game"
	"nim/meta"
	"nim/searcher"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var tierConfigs = []metrics.AgentConfig{
	{ID: 1, Difficulty: game.Easy},
	{ID: 2, Difficulty: game.Normal},
	{ID: 3, Difficulty: game.Hard},
}

type Options struct {
	Games int // per matchup
	Board game.BoardSize
	Dir   string    // results root
	Sink  game.Sink // receives the events of every game
	Seed  uint64    // 0 seeds from the time
}

func (o Options) withDefaults() Options {
	if o.Games <= 0 {
		o.Games = meta.EXPERIMENT_GAMES
	}
	if o.Dir == "" {
		o.Dir = "experiments/results"
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	return o
}

type Result struct {
	Dir   string
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  map[int]int // per AgentConfig.ID
}

// RunDifficultyExperiment plays every CPU tier against every other one.
func RunDifficultyExperiment(o Options) (Result, error) {
	matchUps := [][2]metrics.AgentConfig{}
	for i := range tierConfigs {
		for j := i + 1; j < len(tierConfigs); j++ {
			matchUps = append(matchUps, [2]metrics.AgentConfig{tierConfigs[i], tierConfigs[j]})
		}
	}
	return runExperiment("difficulty", o, tierConfigs, matchUps)
}

func runExperiment(name string, o Options, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) (Result, error) {
	o = o.withDefaults()
	rng := rand.New(rand.NewSource(o.Seed))

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Uint64("seed", o.Seed).Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < o.Games; i++ {
			// Agent1 always moves first, so swapping seats alternates the starting agent
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}

			winner, gameMetric, moveMetrics, err := runGame(o, rng, first, second)
			if err != nil {
				return Result{}, err
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				Board:      o.Board,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: player %d", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	dir, err := store(name, o.Dir, configs, gameRecords, moveRecords)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Dir:   dir,
		Games: gameRecords,
		Moves: moveRecords,
		Wins:  Summarize(gameRecords),
	}, nil
}

// runGame plays one match between two searchers on a fresh board.
func runGame(o Options, rng *rand.Rand, first, second metrics.AgentConfig) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := [game.Players]engine.Agent{}
	for seat, config := range []metrics.AgentConfig{first, second} {
		s, err := createSearcher(config, rng)
		if err != nil {
			return game.NoWinner, metrics.GameMetric{}, nil, err
		}
		agents[seat] = engine.Agent{Searcher: s, Difficulty: config.Difficulty}
	}

	// two-player mode keeps the cpu seat rules out of self-play
	settings := game.Settings{Board: o.Board, Opponent: game.Human}
	match := game.NewMatch(settings, game.WithRand(rng), game.WithSink(o.Sink))

	winner, gameMetric, moveMetrics := engine.NewLocal(match, agents).Run()
	return winner, gameMetric, moveMetrics, nil
}

func createSearcher(config metrics.AgentConfig, rng *rand.Rand) (searcher.Searcher, error) {
	options := []searcher.Option{searcher.WithRand(rng), searcher.WithMetrics()}
	if config.Traces > 0 {
		options = append(options, searcher.WithTraces(config.Traces))
	}
	return searcher.New(config.Difficulty, options...)
}

func store(name, root string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")

	return writer.Dir(), nil
}

// Summarize counts the wins of every agent and logs the tally.
func Summarize(records []metrics.GameRecord) map[int]int {
	wins := map[int]int{}
	played := map[int]int{}
	for _, record := range records {
		played[record.Agent1]++
		played[record.Agent2]++
		switch record.Winner {
		case 0:
			wins[record.Agent1]++
		case 1:
			wins[record.Agent2]++
		}
	}

	for id, games := range played {
		log.Info().
			Int("agent", id).
			Int("wins", wins[id]).
			Int("games", games).
			Msgf("agent %d won %d of %d games", id, wins[id], games)
	}
	return wins
}
