package notify

import (
	"encoding/json"
	"fmt"
	"nim/game"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

const DefaultSubjectPrefix = "nim"

// Publisher is the part of *nats.Conn the sink needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSSink publishes events as JSON on <prefix>.<match id>.<kind>. Publishing
// is fire-and-forget: failures are logged and dropped.
type NATSSink struct {
	publisher Publisher
	prefix    string
}

func NewNATSSink(publisher Publisher, prefix string) *NATSSink {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSSink{publisher: publisher, prefix: prefix}
}

func (s *NATSSink) Subject(event game.Event) string {
	return fmt.Sprintf("%s.%s.%s", s.prefix, event.MatchID, event.Kind)
}

func (s *NATSSink) Notify(event game.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Warn().Err(err).Str("event", event.Kind.String()).Msg("failed to encode event")
		return
	}
	subject := s.Subject(event)
	if err := s.publisher.Publish(subject, data); err != nil {
		log.Warn().Err(err).Str("subject", subject).Msg("failed to publish event")
	}
}

// Connect dials the broker with reconnects enabled.
func Connect(url string) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name("nim"),
		nats.Timeout(10 * time.Second),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(5),
	}
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", url, err)
	}
	return nc, nil
}
