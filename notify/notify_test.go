package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"nim/game"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	subject string
	data    []byte
}

type mockPublisher struct {
	messages []published
	err      error
}

func (p *mockPublisher) Publish(subject string, data []byte) error {
	p.messages = append(p.messages, published{subject: subject, data: data})
	return p.err
}

var matchID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func TestNATSSink(t *testing.T) {
	t.Run("publishes json on a per-match subject", func(t *testing.T) {
		publisher := &mockPublisher{}
		sink := NewNATSSink(publisher, "")

		sink.Notify(game.Event{Kind: game.MatchDecided, MatchID: matchID, Winner: 1, Reason: game.Timeout})

		require.Len(t, publisher.messages, 1)
		msg := publisher.messages[0]
		require.Equal(t, "nim.6ba7b810-9dad-11d1-80b4-00c04fd430c8.match_decided", msg.subject)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(msg.data, &payload))
		assert.Equal(t, "match_decided", payload["kind"])
		assert.Equal(t, "timeout", payload["reason"])
		assert.Equal(t, float64(1), payload["winner"])
		assert.Equal(t, matchID.String(), payload["match_id"])
	})

	t.Run("swallows publish errors", func(t *testing.T) {
		publisher := &mockPublisher{err: errors.New("connection closed")}
		sink := NewNATSSink(publisher, "arena")

		require.NotPanics(t, func() {
			sink.Notify(game.Event{Kind: game.MoveTaken, MatchID: matchID, Amount: 2})
		})
		require.Equal(t, "arena.6ba7b810-9dad-11d1-80b4-00c04fd430c8.move_taken", publisher.messages[0].subject)
	})
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf))

	sink.Notify(game.Event{Kind: game.MoveTaken, MatchID: matchID, Pile: 2, Amount: 3, Mover: 1})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "move_taken", entry["kind"])
	assert.Equal(t, float64(2), entry["pile"])
	assert.Equal(t, float64(3), entry["amount"])
	assert.Equal(t, "player 1 took 3 from pile 2", entry["message"])
}

func TestMulti(t *testing.T) {
	var got []game.EventKind
	record := game.SinkFunc(func(e game.Event) { got = append(got, e.Kind) })
	broken := game.SinkFunc(func(game.Event) { panic("boom") })

	Multi{broken, record, record}.Notify(game.Event{Kind: game.MoveRejected})

	require.Equal(t, []game.EventKind{game.MoveRejected, game.MoveRejected}, got)
}
