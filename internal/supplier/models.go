package supplier

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ariefcatur/go-supplychain/internal/status"
)

// Order is the supplier's local copy of a retailer order, keyed back to the
// originating order via OriginalOrderID. Product fields are filled in once
// production starts.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OriginalOrderID string             `bson:"originalOrderId" json:"originalOrderId"`
	RetailerEmail   string             `bson:"retailerEmail" json:"retailerEmail"`
	ProductName     string             `bson:"productName" json:"productName"`
	ProductMaterial string             `bson:"productMaterial" json:"productMaterial"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	Status          status.Status      `bson:"status" json:"status"`
	ManufacturerID  string             `bson:"manufacturerId,omitempty" json:"manufacturerId,omitempty"`

	ProductID            string `bson:"productId,omitempty" json:"productId,omitempty"`
	Brand                string `bson:"brand,omitempty" json:"brand,omitempty"`
	Color                string `bson:"color,omitempty" json:"color,omitempty"`
	ManufacturedLocation string `bson:"manufacturedLocation,omitempty" json:"manufacturedLocation,omitempty"`
	ManufacturedDate     string `bson:"manufacturedDate,omitempty" json:"manufacturedDate,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Material is a raw-good inventory line. Stock never goes below zero.
type Material struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Stock int                `bson:"stock" json:"stock"`
}

// DefaultMaterials seeds the inventory on first startup.
var DefaultMaterials = []Material{
	{Name: "Leather", Stock: 100},
	{Name: "Plastic", Stock: 150},
	{Name: "Metal", Stock: 80},
	{Name: "Wood", Stock: 120},
	{Name: "Fabric", Stock: 200},
}
