package manufacturer

import (
	"context"
	"errors"

	"github.com/ariefcatur/go-supplychain/internal/events"
	"github.com/ariefcatur/go-supplychain/internal/httpx"
	"github.com/ariefcatur/go-supplychain/internal/status"
)

var ErrInvalidTransition = errors.New("order status cannot move backward")

// completionUpstreamStatus is what the supplier is told when production
// completes. The supplier vocabulary has no "Production Completed" step on its
// retailer-facing side, so completion is reported as Shipped.
const completionUpstreamStatus = status.Shipped

type Service struct {
	Store          Store
	Notifier       *httpx.Notifier
	Events         *events.Publisher
	SupplierURL    string
	DistributorURL string
}

type ReceiveOrderInput struct {
	SupplierOrderID string `json:"supplierOrderId"`
	RetailerEmail   string `json:"retailerEmail"`
	ProductName     string `json:"productName"`
	ProductMaterial string `json:"productMaterial"`
	Quantity        int    `json:"quantity"`
}

type CreateProductInput struct {
	OrderID              string `json:"orderId"`
	ProductID            string `json:"productId"`
	Brand                string `json:"brand"`
	Color                string `json:"color"`
	ManufacturedLocation string `json:"manufacturedLocation"`
	ManufacturedDate     string `json:"manufacturedDate"`
}

type statusCallback struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// shipmentNotice is the payload the distributor's receive endpoint expects.
type shipmentNotice struct {
	ManufacturerOrderID string `json:"manufacturerOrderId"`
	RetailerEmail       string `json:"retailerEmail"`
	ProductName         string `json:"productName"`
	ProductID           string `json:"productId"`
	Quantity            int    `json:"quantity"`
}

// Receive stores the forwarded supplier order with status Accepted.
func (s *Service) Receive(ctx context.Context, in ReceiveOrderInput) (*Order, error) {
	o := &Order{
		SupplierOrderID: in.SupplierOrderID,
		RetailerEmail:   in.RetailerEmail,
		ProductName:     in.ProductName,
		ProductMaterial: in.ProductMaterial,
		Quantity:        in.Quantity,
		Status:          status.Accepted,
	}
	if err := s.Store.Insert(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) NewOrders(ctx context.Context) ([]Order, error) {
	return s.Store.ByStatus(ctx, status.Accepted)
}

func (s *Service) OrdersInProduction(ctx context.Context) ([]Order, error) {
	return s.Store.ByStatus(ctx, status.InProduction)
}

func (s *Service) CompletedOrders(ctx context.Context) ([]Order, error) {
	return s.Store.ByStatus(ctx, status.ProductionCompleted)
}

// CreateProduct attaches product metadata and moves the order into production,
// then tells the supplier.
func (s *Service) CreateProduct(ctx context.Context, in CreateProductInput) (*Order, error) {
	o, err := s.Store.ByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if !status.Manufacturer.Allows(o.Status, status.InProduction) {
		return nil, ErrInvalidTransition
	}

	o.ProductID = in.ProductID
	o.Brand = in.Brand
	o.Color = in.Color
	o.ManufacturedLocation = in.ManufacturedLocation
	o.ManufacturedDate = in.ManufacturedDate
	o.Status = status.InProduction
	if err := s.Store.Save(ctx, o); err != nil {
		return nil, err
	}

	s.Notifier.Patch(ctx, s.SupplierURL+"/orders/status", statusCallback{
		OrderID: o.SupplierOrderID,
		Status:  string(status.InProduction),
	})
	s.Events.Emit(events.EventProductCreated, o.ID.Hex(), events.StatusChangedPayload{
		OrderID: o.ID.Hex(), From: string(status.Accepted), To: string(status.InProduction),
	})
	return o, nil
}

// CompleteProduction finishes the order locally, reports upstream and hands
// the finished goods to the distributor. The three steps are independent;
// notification failures are logged and dropped.
func (s *Service) CompleteProduction(ctx context.Context, orderID string) (*Order, error) {
	o, err := s.Store.ByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !status.Manufacturer.Allows(o.Status, status.ProductionCompleted) {
		return nil, ErrInvalidTransition
	}

	o.Status = status.ProductionCompleted
	if err := s.Store.Save(ctx, o); err != nil {
		return nil, err
	}

	s.Notifier.Patch(ctx, s.SupplierURL+"/orders/status", statusCallback{
		OrderID: o.SupplierOrderID,
		Status:  string(completionUpstreamStatus),
	})
	s.Notifier.Post(ctx, s.DistributorURL+"/shipments", shipmentNotice{
		ManufacturerOrderID: o.ID.Hex(),
		RetailerEmail:       o.RetailerEmail,
		ProductName:         o.ProductName,
		ProductID:           o.ProductID,
		Quantity:            o.Quantity,
	})
	s.Events.Emit(events.EventProductionCompleted, o.ID.Hex(), events.StatusChangedPayload{
		OrderID: o.ID.Hex(), From: string(status.InProduction), To: string(status.ProductionCompleted),
	})
	return o, nil
}
