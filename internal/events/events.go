package events

import (
	"encoding/json"
	"time"
)

const (
	EventOrderPlaced         = "OrderPlaced"
	EventOrderStatusChanged  = "OrderStatusChanged"
	EventOrderForwarded      = "OrderForwarded"
	EventProductCreated      = "ProductCreated"
	EventProductionCompleted = "ProductionCompleted"
	EventShipmentReceived    = "ShipmentReceived"
	EventShipmentProcessed   = "ShipmentProcessed"
	EventShipmentDelivered   = "ShipmentDelivered"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"` // the local record id
	Payload       json.RawMessage `json:"payload"`
}

type OrderPlacedPayload struct {
	OrderID         string `json:"orderId"`
	RetailerEmail   string `json:"retailerEmail"`
	ProductName     string `json:"productName"`
	ProductMaterial string `json:"productMaterial"`
	Quantity        int    `json:"quantity"`
}

type StatusChangedPayload struct {
	OrderID string `json:"orderId"`
	From    string `json:"from"`
	To      string `json:"to"`
}

type ShipmentPayload struct {
	ShipmentID     string `json:"shipmentId"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Status         string `json:"status"`
}
