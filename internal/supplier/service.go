package supplier

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
	Store           Store
	Notifier        *httpx.Notifier
	Events          *events.Publisher
	RetailerURL     string
	ManufacturerURL string
}

type ReceiveOrderInput struct {
	OrderID         string `json:"orderId"`
	RetailerEmail   string `json:"retailerEmail"`
	ProductName     string `json:"productName"`
	ProductMaterial string `json:"productMaterial"`
	Quantity        int    `json:"quantity"`
}

type UpdateOrderInput struct {
	OrderID              string `json:"orderId"`
	Status               string `json:"status"`
	ProductID            string `json:"productId"`
	Brand                string `json:"brand"`
	Color                string `json:"color"`
	ManufacturedLocation string `json:"manufacturedLocation"`
	ManufacturedDate     string `json:"manufacturedDate"`
}

// statusCallback is what the retailer's PATCH /orders/status expects.
type statusCallback struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// manufacturerOrder is the payload the manufacturer's receive endpoint expects.
type manufacturerOrder struct {
	SupplierOrderID string `json:"supplierOrderId"`
	RetailerEmail   string `json:"retailerEmail"`
	ProductName     string `json:"productName"`
	ProductMaterial string `json:"productMaterial"`
	Quantity        int    `json:"quantity"`
}

// Receive stores the forwarded retailer order as a local Pending copy.
func (s *Service) Receive(ctx context.Context, in ReceiveOrderInput) (*Order, error) {
	o := &Order{
		OriginalOrderID: in.OrderID,
		RetailerEmail:   in.RetailerEmail,
		ProductName:     in.ProductName,
		ProductMaterial: in.ProductMaterial,
		Quantity:        in.Quantity,
		Status:          status.Pending,
	}
	if err := s.Store.InsertOrder(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) Orders(ctx context.Context) ([]Order, error) {
	return s.Store.Orders(ctx)
}

func (s *Service) OrdersInProduction(ctx context.Context) ([]Order, error) {
	return s.Store.OrdersInProduction(ctx)
}

// UpdateOrderStatus applies a status change, gating Pending->Accepted on the
// material inventory. Stock is decremented exactly once, here, before the
// order itself is persisted. The retailer callback afterwards is best-effort.
func (s *Service) UpdateOrderStatus(ctx context.Context, in UpdateOrderInput) (*Order, error) {
	o, err := s.Store.OrderByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	to := status.Status(in.Status)
	if !status.Supplier.Known(to) {
		return nil, ErrUnknownStatus
	}
	if !status.Supplier.Allows(o.Status, to) {
		return nil, ErrInvalidTransition
	}

	if o.Status == status.Pending && to == status.Accepted {
		if _, err := s.Store.DecrementStock(ctx, o.ProductMaterial, o.Quantity); err != nil {
			return nil, err
		}
	}

	from := o.Status
	o.Status = to
	if in.ProductID != "" {
		o.ProductID = in.ProductID
	}
	if in.Brand != "" {
		o.Brand = in.Brand
	}
	if in.Color != "" {
		o.Color = in.Color
	}
	if in.ManufacturedLocation != "" {
		o.ManufacturedLocation = in.ManufacturedLocation
	}
	if in.ManufacturedDate != "" {
		o.ManufacturedDate = in.ManufacturedDate
	}
	if err := s.Store.SaveOrder(ctx, o); err != nil {
		return nil, err
	}

	s.Notifier.Patch(ctx, s.RetailerURL+"/orders/status", statusCallback{
		OrderID: o.OriginalOrderID,
		Status:  string(to),
	})
	if from != to {
		s.Events.Emit(events.EventOrderStatusChanged, o.ID.Hex(), events.StatusChangedPayload{
			OrderID: o.ID.Hex(), From: string(from), To: string(to),
		})
	}
	return o, nil
}

// ForwardToManufacturer marks the order Accepted, records the assigned
// manufacturer and hands the order down the chain. The three steps are
// independent: a failed notification never rolls back the local write.
func (s *Service) ForwardToManufacturer(ctx context.Context, orderID, manufacturerID string) (*Order, error) {
	o, err := s.Store.OrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !status.Supplier.Allows(o.Status, status.Accepted) {
		return nil, ErrInvalidTransition
	}

	o.Status = status.Accepted
	o.ManufacturerID = manufacturerID
	if err := s.Store.SaveOrder(ctx, o); err != nil {
		return nil, err
	}

	s.Notifier.Post(ctx, s.ManufacturerURL+"/orders", manufacturerOrder{
		SupplierOrderID: o.ID.Hex(),
		RetailerEmail:   o.RetailerEmail,
		ProductName:     o.ProductName,
		ProductMaterial: o.ProductMaterial,
		Quantity:        o.Quantity,
	})
	s.Notifier.Patch(ctx, s.RetailerURL+"/orders/status", statusCallback{
		OrderID: o.OriginalOrderID,
		Status:  string(status.Accepted),
	})
	s.Events.Emit(events.EventOrderForwarded, o.ID.Hex(), events.StatusChangedPayload{
		OrderID: o.ID.Hex(), From: string(status.Accepted), To: string(status.Accepted),
	})
	return o, nil
}

func (s *Service) Materials(ctx context.Context) ([]Material, error) {
	return s.Store.Materials(ctx)
}

// SetStock is the manual stock-correction path: an absolute overwrite keyed by
// material name.
func (s *Service) SetStock(ctx context.Context, name string, stock int) (*Material, error) {
	return s.Store.SetStock(ctx, name, stock)
}
