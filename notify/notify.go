// Package notify holds the sinks match events are fanned out to.
package notify

import (
	"nim/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogSink writes every event to a zerolog logger at debug level.
type LogSink struct {
	logger zerolog.Logger
}

func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(event game.Event) {
	e := s.logger.Debug().
		Str("kind", event.Kind.String()).
		Str("match", event.MatchID.String())

	switch event.Kind {
	case game.MatchDecided:
		e = e.Int("winner", event.Winner).Str("reason", event.Reason.String())
	default:
		e = e.Int("mover", event.Mover).Int("pile", event.Pile).Int("amount", event.Amount)
	}
	e.Msg(event.String())
}

// Multi delivers each event to every sink. A sink that panics is skipped
// without affecting the others.
type Multi []game.Sink

func (m Multi) Notify(event game.Event) {
	for _, sink := range m {
		notifySafely(sink, event)
	}
}

func notifySafely(sink game.Sink, event game.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Str("event", event.Kind.String()).Msg("sink failed")
		}
	}()
	sink.Notify(event)
}
