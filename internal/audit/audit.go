// Package audit persists lifecycle events consumed from Kafka so the admin
// service can serve a recent-activity feed.
package audit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ariefcatur/go-supplychain/internal/events"
)

type Store interface {
	Upsert(ctx context.Context, env events.Envelope) error
	Recent(ctx context.Context, limit int) ([]events.Envelope, error)
}

type Repo struct{ C *mongo.Collection }

// Upsert writes the envelope keyed on its event id. Kafka delivers at least
// once; replays land on the same document.
func (r *Repo) Upsert(ctx context.Context, env events.Envelope) error {
	_, err := r.C.UpdateOne(ctx,
		bson.M{"event_id": env.EventID},
		bson.M{"$setOnInsert": bson.M{
			"event_id":       env.EventID,
			"event_type":     env.EventType,
			"event_version":  env.EventVersion,
			"occurred_at":    env.OccurredAt,
			"producer":       env.Producer,
			"correlation_id": env.CorrelationID,
			"payload":        string(env.Payload),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *Repo) Recent(ctx context.Context, limit int) ([]events.Envelope, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.C.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []events.Envelope
	for cur.Next(ctx) {
		var doc struct {
			EventID       string    `bson:"event_id"`
			EventType     string    `bson:"event_type"`
			EventVersion  int       `bson:"event_version"`
			OccurredAt    time.Time `bson:"occurred_at"`
			Producer      string    `bson:"producer"`
			CorrelationID string    `bson:"correlation_id"`
			Payload       string    `bson:"payload"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, events.Envelope{
			EventID:       doc.EventID,
			EventType:     doc.EventType,
			EventVersion:  doc.EventVersion,
			OccurredAt:    doc.OccurredAt,
			Producer:      doc.Producer,
			CorrelationID: doc.CorrelationID,
			Payload:       json.RawMessage(doc.Payload),
		})
	}
	return out, cur.Err()
}

// HandleMessage decodes a lifecycle envelope and stores it. Malformed
// messages are logged and committed so they do not wedge the partition.
func HandleMessage(store Store) func(ctx context.Context, m kafka.Message) error {
	return func(ctx context.Context, m kafka.Message) error {
		var env events.Envelope
		if err := json.Unmarshal(m.Value, &env); err != nil {
			log.Printf("audit: skipping malformed event at offset %d: %v", m.Offset, err)
			return nil
		}
		if env.EventID == "" {
			log.Printf("audit: skipping event without id at offset %d", m.Offset)
			return nil
		}
		return store.Upsert(ctx, env)
	}
}
