package distributor

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/ariefcatur/go-supplychain/internal/events"
	"github.com/ariefcatur/go-supplychain/internal/status"
)

var ErrInvalidTransition = errors.New("shipment status cannot move backward")

type Service struct {
	Store  Store
	Events *events.Publisher
}

type ReceiveShipmentInput struct {
	ManufacturerOrderID string `json:"manufacturerOrderId"`
	RetailerEmail       string `json:"retailerEmail"`
	ProductName         string `json:"productName"`
	ProductID           string `json:"productId"`
	Quantity            int    `json:"quantity"`
}

type ProcessShipmentInput struct {
	ShipmentID        string     `json:"shipmentId"`
	TrackingNumber    string     `json:"trackingNumber"`
	ShippingMethod    string     `json:"shippingMethod"`
	ShipDate          *time.Time `json:"shipDate"`
	EstimatedDelivery string     `json:"estimatedDelivery"`
}

// GenerateTrackingNumber returns "TRK" plus 7 zero-padded random digits.
func GenerateTrackingNumber() string {
	return fmt.Sprintf("TRK%07d", rand.Intn(10000000))
}

// Receive stores the completed order as a Pending shipment.
func (s *Service) Receive(ctx context.Context, in ReceiveShipmentInput) (*Shipment, error) {
	sh := &Shipment{
		ManufacturerOrderID: in.ManufacturerOrderID,
		RetailerEmail:       in.RetailerEmail,
		ProductName:         in.ProductName,
		ProductID:           in.ProductID,
		Quantity:            in.Quantity,
		Status:              status.Pending,
	}
	if err := s.Store.Insert(ctx, sh); err != nil {
		return nil, err
	}
	s.Events.Emit(events.EventShipmentReceived, sh.ID.Hex(), events.ShipmentPayload{
		ShipmentID: sh.ID.Hex(), Status: string(status.Pending),
	})
	return sh, nil
}

func (s *Service) Pending(ctx context.Context) ([]Shipment, error) {
	return s.Store.ByStatus(ctx, status.Pending)
}

func (s *Service) Shipped(ctx context.Context) ([]Shipment, error) {
	return s.Store.ByStatus(ctx, status.Shipped)
}

func (s *Service) Delivered(ctx context.Context) ([]Shipment, error) {
	return s.Store.ByStatus(ctx, status.Delivered)
}

// Process dispatches a pending shipment: tracking number assigned (generated
// when the caller supplies none), ship date defaulting to now. No retailer
// callback happens here; the shipment does not carry the retailer order id.
func (s *Service) Process(ctx context.Context, in ProcessShipmentInput) (*Shipment, error) {
	sh, err := s.Store.ByID(ctx, in.ShipmentID)
	if err != nil {
		return nil, err
	}
	if !status.Shipment.Allows(sh.Status, status.Shipped) {
		return nil, ErrInvalidTransition
	}

	sh.Status = status.Shipped
	sh.TrackingNumber = in.TrackingNumber
	if sh.TrackingNumber == "" {
		sh.TrackingNumber = GenerateTrackingNumber()
	}
	sh.ShippingMethod = in.ShippingMethod
	shipDate := time.Now().UTC()
	if in.ShipDate != nil {
		shipDate = *in.ShipDate
	}
	sh.ShipDate = &shipDate
	sh.EstimatedDelivery = in.EstimatedDelivery
	if err := s.Store.Save(ctx, sh); err != nil {
		return nil, err
	}

	s.Events.Emit(events.EventShipmentProcessed, sh.ID.Hex(), events.ShipmentPayload{
		ShipmentID: sh.ID.Hex(), TrackingNumber: sh.TrackingNumber, Status: string(status.Shipped),
	})
	return sh, nil
}

// MarkDelivered closes out a shipped shipment.
func (s *Service) MarkDelivered(ctx context.Context, shipmentID string) (*Shipment, error) {
	sh, err := s.Store.ByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if !status.Shipment.Allows(sh.Status, status.Delivered) {
		return nil, ErrInvalidTransition
	}

	sh.Status = status.Delivered
	now := time.Now().UTC()
	sh.DeliveryDate = &now
	if err := s.Store.Save(ctx, sh); err != nil {
		return nil, err
	}

	s.Events.Emit(events.EventShipmentDelivered, sh.ID.Hex(), events.ShipmentPayload{
		ShipmentID: sh.ID.Hex(), TrackingNumber: sh.TrackingNumber, Status: string(status.Delivered),
	})
	return sh, nil
}
