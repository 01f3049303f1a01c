package main

import (
	"flag"
	"fmt"
	"nim/config"
	"nim/engine"
	"nim/experiments"
	"nim/game"
	"nim/meta"
	"nim/notify"
	"nim/searcher"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	run := flag.String("run", "difficulty", "What to run: difficulty, traces or demo")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	sinks := notify.Multi{notify.NewLogSink(log.Logger)}
	if cfg.NATSURL != "" {
		nc, err := notify.Connect(cfg.NATSURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up event publishing")
		}
		defer nc.Drain()
		sinks = append(sinks, notify.NewNATSSink(nc, notify.DefaultSubjectPrefix))
		log.Info().Str("url", cfg.NATSURL).Msg("publishing match events")
	}

	options := experiments.Options{
		Games: cfg.ExperimentGames,
		Board: cfg.Board,
		Dir:   cfg.ExperimentDir,
		Sink:  sinks,
	}

	switch *run {
	case "difficulty":
		_, err = experiments.RunDifficultyExperiment(options)
	case "traces":
		_, err = experiments.RunTracesExperiment(options)
	case "demo":
		err = runDemo(cfg, sinks)
	default:
		err = fmt.Errorf("unknown run %q", *run)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *run)
	}
}

// runDemo plays one paced match in real time with the human seat on autopilot.
func runDemo(cfg config.Config, sink game.Sink) error {
	e, err := engine.New(cfg.Settings(),
		engine.WithSink(sink),
		engine.WithCPUDelay(cfg.CPUDelay),
		engine.WithSettle(cfg.Settle),
	)
	if err != nil {
		return err
	}
	pilot := searcher.NewOptimal()

	ticker := time.NewTicker(meta.FRAME)
	defer ticker.Stop()
	for range ticker.C {
		if e.Update() == game.Terminal {
			break
		}
		snapshot := e.Snapshot()
		if snapshot.Pending || !e.Match().HumanToMove() {
			continue
		}
		steer(e, snapshot, pilot.FindNextMove(snapshot.Piles))
	}

	log.Info().Msgf("demo over: %s", e.Snapshot().Outcome)
	return nil
}

// steer issues one intent per frame towards the target move.
func steer(e *engine.Engine, snapshot game.Snapshot, target game.Move) {
	var intent engine.Intent
	switch {
	case snapshot.Selected != target.Pile:
		intent = engine.SelectRight
	case snapshot.Amount < target.Amount:
		intent = engine.AmountUp
	case snapshot.Amount > target.Amount:
		intent = engine.AmountDown
	default:
		intent = engine.Confirm
	}
	_ = e.Intent(intent)
}
