package distributor

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ariefcatur/go-supplychain/internal/status"
)

type memStore struct {
	mu        sync.Mutex
	shipments map[string]*Shipment
}

func newMemStore() *memStore { return &memStore{shipments: map[string]*Shipment{}} }

func (m *memStore) Insert(_ context.Context, s *Shipment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	cp := *s
	m.shipments[s.ID.Hex()] = &cp
	return nil
}

func (m *memStore) ByStatus(_ context.Context, st status.Status) ([]Shipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Shipment
	for _, s := range m.shipments {
		if s.Status == st {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStore) ByID(_ context.Context, id string) (*Shipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.shipments[id]
	if !ok {
		return nil, ErrShipmentNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memStore) Save(_ context.Context, s *Shipment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.UpdatedAt = time.Now().UTC()
	cp := *s
	m.shipments[s.ID.Hex()] = &cp
	return nil
}

func receivedShipment(t *testing.T, svc *Service) *Shipment {
	t.Helper()
	sh, err := svc.Receive(context.Background(), ReceiveShipmentInput{
		ManufacturerOrderID: primitive.NewObjectID().Hex(),
		RetailerEmail:       "a@x.com",
		ProductName:         "Chair",
		ProductID:           "P-1",
		Quantity:            5,
	})
	require.NoError(t, err)
	return sh
}

var trackingPattern = regexp.MustCompile(`^TRK\d{7}$`)

func TestGenerateTrackingNumberPattern(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Regexp(t, trackingPattern, GenerateTrackingNumber())
	}
}

func TestReceiveCreatesPendingShipment(t *testing.T) {
	svc := &Service{Store: newMemStore()}
	sh := receivedShipment(t, svc)
	assert.Equal(t, status.Pending, sh.Status)
	assert.Empty(t, sh.TrackingNumber)
}

func TestProcessAssignsGeneratedTrackingNumber(t *testing.T) {
	svc := &Service{Store: newMemStore()}
	sh := receivedShipment(t, svc)

	got, err := svc.Process(context.Background(), ProcessShipmentInput{
		ShipmentID: sh.ID.Hex(), ShippingMethod: "Air", EstimatedDelivery: "2026-09-10",
	})
	require.NoError(t, err)
	assert.Equal(t, status.Shipped, got.Status)
	assert.Regexp(t, trackingPattern, got.TrackingNumber)
	require.NotNil(t, got.ShipDate)
	assert.Equal(t, "Air", got.ShippingMethod)
}

func TestProcessKeepsSuppliedShipDate(t *testing.T) {
	svc := &Service{Store: newMemStore()}
	sh := receivedShipment(t, svc)

	shipDate := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)
	got, err := svc.Process(context.Background(), ProcessShipmentInput{
		ShipmentID: sh.ID.Hex(), ShippingMethod: "Air", ShipDate: &shipDate,
	})
	require.NoError(t, err)
	require.NotNil(t, got.ShipDate)
	assert.True(t, got.ShipDate.Equal(shipDate), "supplied ship date must be stored, got %v", got.ShipDate)
}

func TestProcessKeepsSuppliedTrackingNumber(t *testing.T) {
	svc := &Service{Store: newMemStore()}
	sh := receivedShipment(t, svc)

	got, err := svc.Process(context.Background(), ProcessShipmentInput{
		ShipmentID: sh.ID.Hex(), TrackingNumber: "TRK0000042", ShippingMethod: "Sea",
	})
	require.NoError(t, err)
	assert.Equal(t, "TRK0000042", got.TrackingNumber)
}

func TestProcessUnknownShipment(t *testing.T) {
	svc := &Service{Store: newMemStore()}
	_, err := svc.Process(context.Background(), ProcessShipmentInput{ShipmentID: primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

func TestMarkDelivered(t *testing.T) {
	store := newMemStore()
	svc := &Service{Store: store}
	sh := receivedShipment(t, svc)

	// a pending shipment cannot be delivered before dispatch
	_, err := svc.MarkDelivered(context.Background(), sh.ID.Hex())
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Process(context.Background(), ProcessShipmentInput{ShipmentID: sh.ID.Hex()})
	require.NoError(t, err)

	got, err := svc.MarkDelivered(context.Background(), sh.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, status.Delivered, got.Status)
	require.NotNil(t, got.DeliveryDate)

	// delivered is terminal
	_, err = svc.Process(context.Background(), ProcessShipmentInput{ShipmentID: sh.ID.Hex()})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
