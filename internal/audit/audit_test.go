package audit

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-supplychain/internal/events"
)

type memStore struct {
	mu   sync.Mutex
	byID map[string]events.Envelope
}

func newMemStore() *memStore {
	return &memStore{byID: map[string]events.Envelope{}}
}

func (s *memStore) Upsert(_ context.Context, env events.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[env.EventID]; ok {
		return nil
	}
	s.byID[env.EventID] = env
	return nil
}

func (s *memStore) Recent(_ context.Context, limit int) ([]events.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]events.Envelope, 0, len(s.byID))
	for _, e := range s.byID {
		out = append(out, e)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func message(t *testing.T, env events.Envelope) kafka.Message {
	t.Helper()
	b, err := json.Marshal(env)
	require.NoError(t, err)
	return kafka.Message{Value: b}
}

func TestHandleMessageStoresEnvelope(t *testing.T) {
	store := newMemStore()
	h := HandleMessage(store)

	env := events.Envelope{
		EventID:    "e1",
		EventType:  events.EventOrderPlaced,
		OccurredAt: time.Now().UTC(),
		Producer:   "retailer",
		Payload:    json.RawMessage(`{"orderId":"abc"}`),
	}
	require.NoError(t, h(context.Background(), message(t, env)))

	got, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].EventID)
	assert.Equal(t, events.EventOrderPlaced, got[0].EventType)
}

func TestHandleMessageDeduplicates(t *testing.T) {
	store := newMemStore()
	h := HandleMessage(store)

	env := events.Envelope{EventID: "e1", EventType: events.EventOrderPlaced}
	m := message(t, env)
	require.NoError(t, h(context.Background(), m))
	require.NoError(t, h(context.Background(), m))

	got, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestHandleMessageSkipsMalformed(t *testing.T) {
	store := newMemStore()
	h := HandleMessage(store)

	assert.NoError(t, h(context.Background(), kafka.Message{Value: []byte("not json")}),
		"malformed messages must commit, not retry forever")
	assert.NoError(t, h(context.Background(), message(t, events.Envelope{EventType: "NoID"})))

	got, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
