package retailer

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ariefcatur/go-supplychain/internal/status"
)

// Order is the retailer's system-of-record copy. Status only ever changes via
// the update-status callback the downstream services invoke.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RetailerEmail   string             `bson:"retailerEmail" json:"retailerEmail"`
	ProductName     string             `bson:"productName" json:"productName"`
	ProductMaterial string             `bson:"productMaterial" json:"productMaterial"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	Status          status.Status      `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
