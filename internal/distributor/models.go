package distributor

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ariefcatur/go-supplychain/internal/status"
)

// Shipment is the distributor's record of a completed order. It references
// the manufacturer order only: the original retailer order id never reaches
// this service, which is why there is no retailer callback from here.
type Shipment struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ManufacturerOrderID string             `bson:"manufacturerOrderId" json:"manufacturerOrderId"`
	RetailerEmail       string             `bson:"retailerEmail" json:"retailerEmail"`
	ProductName         string             `bson:"productName" json:"productName"`
	ProductID           string             `bson:"productId" json:"productId"`
	Quantity            int                `bson:"quantity" json:"quantity"`
	Status              status.Status      `bson:"status" json:"status"`

	TrackingNumber    string     `bson:"trackingNumber,omitempty" json:"trackingNumber,omitempty"`
	ShippingMethod    string     `bson:"shippingMethod,omitempty" json:"shippingMethod,omitempty"`
	ShipDate          *time.Time `bson:"shipDate,omitempty" json:"shipDate,omitempty"`
	EstimatedDelivery string     `bson:"estimatedDelivery,omitempty" json:"estimatedDelivery,omitempty"`
	DeliveryDate      *time.Time `bson:"deliveryDate,omitempty" json:"deliveryDate,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
