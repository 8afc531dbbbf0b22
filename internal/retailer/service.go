package retailer

import (
	"context"
	"errors"

	"github.com/ariefcatur/go-supplychain/internal/events"
	"github.com/ariefcatur/go-supplychain/internal/httpx"
	"github.com/ariefcatur/go-supplychain/internal/status"
)

var (
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("order status cannot move backward")
)

type Service struct {
	Store       Store
	Notifier    *httpx.Notifier
	Events      *events.Publisher
	SupplierURL string
}

type PlaceOrderInput struct {
	RetailerEmail   string `json:"retailerEmail"`
	ProductName     string `json:"productName"`
	ProductMaterial string `json:"productMaterial"`
	Quantity        int    `json:"quantity"`
}

// forwardedOrder is the payload the supplier's receive endpoint expects.
type forwardedOrder struct {
	OrderID         string `json:"orderId"`
	RetailerEmail   string `json:"retailerEmail"`
	ProductName     string `json:"productName"`
	ProductMaterial string `json:"productMaterial"`
	Quantity        int    `json:"quantity"`
	Status          string `json:"status"`
}

// PlaceOrder persists the order as Pending, then forwards it to the supplier.
// The order counts as placed even when forwarding fails.
func (s *Service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*Order, error) {
	o := &Order{
		RetailerEmail:   in.RetailerEmail,
		ProductName:     in.ProductName,
		ProductMaterial: in.ProductMaterial,
		Quantity:        in.Quantity,
		Status:          status.Pending,
	}
	if err := s.Store.Insert(ctx, o); err != nil {
		return nil, err
	}

	s.Notifier.Post(ctx, s.SupplierURL+"/orders", forwardedOrder{
		OrderID:         o.ID.Hex(),
		RetailerEmail:   o.RetailerEmail,
		ProductName:     o.ProductName,
		ProductMaterial: o.ProductMaterial,
		Quantity:        o.Quantity,
		Status:          string(status.Pending),
	})
	s.Events.Emit(events.EventOrderPlaced, o.ID.Hex(), events.OrderPlacedPayload{
		OrderID:         o.ID.Hex(),
		RetailerEmail:   o.RetailerEmail,
		ProductName:     o.ProductName,
		ProductMaterial: o.ProductMaterial,
		Quantity:        o.Quantity,
	})
	return o, nil
}

func (s *Service) Orders(ctx context.Context) ([]Order, error) {
	return s.Store.All(ctx)
}

func (s *Service) OrdersByEmail(ctx context.Context, email string) ([]Order, error) {
	return s.Store.ByEmail(ctx, email)
}

// UpdateStatus is the callback target for the downstream services.
func (s *Service) UpdateStatus(ctx context.Context, id string, to status.Status) (*Order, error) {
	o, err := s.Store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !status.Retailer.Known(to) {
		return nil, ErrUnknownStatus
	}
	if !status.Retailer.Allows(o.Status, to) {
		return nil, ErrInvalidTransition
	}
	from := o.Status
	o.Status = to
	if err := s.Store.Save(ctx, o); err != nil {
		return nil, err
	}
	if from != to {
		s.Events.Emit(events.EventOrderStatusChanged, id, events.StatusChangedPayload{
			OrderID: id, From: string(from), To: string(to),
		})
	}
	return o, nil
}
