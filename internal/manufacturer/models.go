package manufacturer

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ariefcatur/go-supplychain/internal/status"
)

// Order is the manufacturer's local copy, keyed back to the supplier order.
// It starts life Accepted; product fields arrive when production starts.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SupplierOrderID string             `bson:"supplierOrderId" json:"supplierOrderId"`
	RetailerEmail   string             `bson:"retailerEmail" json:"retailerEmail"`
	ProductName     string             `bson:"productName" json:"productName"`
	ProductMaterial string             `bson:"productMaterial" json:"productMaterial"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	Status          status.Status      `bson:"status" json:"status"`

	ProductID            string `bson:"productId,omitempty" json:"productId,omitempty"`
	Brand                string `bson:"brand,omitempty" json:"brand,omitempty"`
	Color                string `bson:"color,omitempty" json:"color,omitempty"`
	ManufacturedLocation string `bson:"manufacturedLocation,omitempty" json:"manufacturedLocation,omitempty"`
	ManufacturedDate     string `bson:"manufacturedDate,omitempty" json:"manufacturedDate,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
