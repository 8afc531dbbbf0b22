package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetailerFlowAdvancesForwardOnly(t *testing.T) {
	assert.True(t, Retailer.Allows(Pending, Accepted))
	assert.True(t, Retailer.Allows(Pending, Rejected))
	assert.True(t, Retailer.Allows(Accepted, InProduction))
	assert.True(t, Retailer.Allows(InProduction, Shipped))
	assert.True(t, Retailer.Allows(Shipped, Delivered))

	// never backward
	assert.False(t, Retailer.Allows(Accepted, Pending))
	assert.False(t, Retailer.Allows(Shipped, InProduction))
	assert.False(t, Retailer.Allows(Delivered, Shipped))
	assert.False(t, Retailer.Allows(Rejected, Accepted))

	// no skipping the production hop
	assert.False(t, Retailer.Allows(Pending, Shipped))
	assert.False(t, Retailer.Allows(Accepted, Delivered))
}

func TestRepeatedStatusIsAllowed(t *testing.T) {
	// the forward flow PATCHes Accepted after update-status already set it
	assert.True(t, Retailer.Allows(Accepted, Accepted))
	assert.True(t, Supplier.Allows(Accepted, Accepted))
}

func TestSupplierFlowAcceptsManufacturerShippedReport(t *testing.T) {
	// production completion is reported upstream as Shipped
	assert.True(t, Supplier.Allows(InProduction, Shipped))
	assert.True(t, Supplier.Allows(ProductionCompleted, Shipped))
	assert.False(t, Supplier.Allows(Shipped, InProduction))
}

func TestManufacturerFlow(t *testing.T) {
	assert.True(t, Manufacturer.Allows(Accepted, InProduction))
	assert.True(t, Manufacturer.Allows(InProduction, ProductionCompleted))
	assert.False(t, Manufacturer.Allows(ProductionCompleted, InProduction))
	assert.False(t, Manufacturer.Allows(Accepted, ProductionCompleted))
}

func TestShipmentFlow(t *testing.T) {
	assert.True(t, Shipment.Allows(Pending, Shipped))
	assert.True(t, Shipment.Allows(Shipped, Delivered))
	assert.False(t, Shipment.Allows(Pending, Delivered))
	assert.False(t, Shipment.Allows(Delivered, Pending))
}

func TestKnown(t *testing.T) {
	assert.True(t, Shipment.Known(Pending))
	assert.False(t, Shipment.Known(InProduction))
	assert.False(t, Retailer.Known(Status("Lost")))
}
