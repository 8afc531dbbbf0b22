package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin        = "Admin"
	RoleSupplier     = "Supplier"
	RoleManufacturer = "Manufacturer"
	RoleDistributor  = "Distributor"
	RoleRetailer     = "Retailer"
)

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"`
	Roles         []string           `bson:"roles" json:"roles"`
	CompanyName   string             `bson:"companyName,omitempty" json:"companyName,omitempty"`
	StoreName     string             `bson:"storeName,omitempty" json:"storeName,omitempty"`
	ContactNumber string             `bson:"contactNumber,omitempty" json:"contactNumber,omitempty"`
	TwoFAEnabled  bool               `bson:"twoFAEnabled" json:"twoFAEnabled"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// PrimaryRole is the role reported after verification when none was requested.
func (u *User) PrimaryRole() string {
	if len(u.Roles) == 0 {
		return ""
	}
	return u.Roles[0]
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
