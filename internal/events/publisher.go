package events

import (
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/ariefcatur/go-supplychain/internal/kafkax"
)

// Publisher wraps the async producer behind a nil-safe emit. Services hold one
// regardless of whether Kafka is configured; with no producer every Emit is a
// no-op, and the HTTP pipeline remains the propagation path of record.
type Publisher struct {
	Producer *kafkax.Producer
	Service  string
}

func (p *Publisher) Emit(eventType, correlationID string, payload any) {
	if p == nil || p.Producer == nil {
		return
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      p.Service,
		CorrelationID: correlationID,
		Payload:       kafkax.MustMarshal(payload),
	}
	p.Producer.Publish(PartitionKey(correlationID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
