package experiments

import (
	"nim/experiments/metrics"
	"nim/game"
	"nim/searcher"
)

// RunTracesExperiment measures how playing strength grows with the playout
// count by pairing Monte-Carlo agents against the normal tier.
func RunTracesExperiment(o Options) (Result, error) {
	baseline := metrics.AgentConfig{ID: 0, Difficulty: game.Normal, Traces: searcher.NormalTraces}
	configs := []metrics.AgentConfig{
		{ID: 1, Difficulty: game.Normal, Traces: 1},
		{ID: 2, Difficulty: game.Normal, Traces: searcher.EasyTraces},
		{ID: 3, Difficulty: game.Normal, Traces: 30},
		{ID: 4, Difficulty: game.Normal, Traces: 120},
		{ID: 5, Difficulty: game.Normal, Traces: 240},
	}

	// Each matchup pairs the baseline agent against a traces agent
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("traces", o, append(configs, baseline), matchUps)
}
