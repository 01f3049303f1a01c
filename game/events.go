package game

import (
	"fmt"

	"github.com/google/uuid"
)

type EventKind int

const (
	MoveTaken EventKind = iota
	MatchDecided
	MoveRejected
)

var eventNames = []string{"move_taken", "match_decided", "move_rejected"}

func (k EventKind) String() string { return nameOf(eventNames, int(k)) }

func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event is a fire-and-forget notification for sinks such as audio or logs.
// Stones is the number of stone-removed sub-events of a take, capped at
// MaxStoneSounds.
type Event struct {
	Kind    EventKind `json:"kind"`
	MatchID uuid.UUID `json:"match_id"`
	Pile    int       `json:"pile"`
	Amount  int       `json:"amount"`
	Mover   int       `json:"mover"`
	Stones  int       `json:"stones,omitempty"`
	Winner  int       `json:"winner"`
	Reason  Reason    `json:"reason,omitempty"`
}

func (e Event) String() string {
	switch e.Kind {
	case MoveTaken:
		return fmt.Sprintf("player %d took %d from pile %d", e.Mover, e.Amount, e.Pile)
	case MatchDecided:
		return fmt.Sprintf("player %d won (%s)", e.Winner, e.Reason)
	case MoveRejected:
		return fmt.Sprintf("player %d cannot take %d from pile %d", e.Mover, e.Amount, e.Pile)
	}
	return e.Kind.String()
}

// Sink receives match events. It cannot fail the match: a panicking sink is
// recovered and logged.
type Sink interface {
	Notify(event Event)
}

type SinkFunc func(event Event)

func (f SinkFunc) Notify(event Event) { f(event) }

type nopSink struct{}

func (nopSink) Notify(Event) {}
