package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(month time.Month) time.Time {
	return time.Date(2025, month, 15, 0, 0, 0, 0, time.UTC)
}

func TestCountOrders(t *testing.T) {
	orders := []Order{
		{Status: "Pending"},
		{Status: "Pending"},
		{Status: "In Production"},
		{Status: "Shipped"},
		{Status: "Delivered"},
		{Status: "Accepted"}, // counted in the total only
	}

	s := CountOrders(orders)
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 1, s.InProduction)
	assert.Equal(t, 1, s.Shipped)
	assert.Equal(t, 1, s.Delivered)
}

func TestStockStatusBuckets(t *testing.T) {
	assert.Equal(t, "Low", StockStatus(0))
	assert.Equal(t, "Low", StockStatus(20))
	assert.Equal(t, "Medium", StockStatus(21))
	assert.Equal(t, "Medium", StockStatus(50))
	assert.Equal(t, "Good", StockStatus(51))
}

func TestClassifyMaterials(t *testing.T) {
	stats := ClassifyMaterials([]Material{
		{Name: "Leather", Stock: 100},
		{Name: "Metal", Stock: 35},
		{Name: "Wood", Stock: 5},
	})
	require.Len(t, stats, 3)
	assert.Equal(t, MaterialStat{Name: "Leather", Stock: 100, Status: "Good"}, stats[0])
	assert.Equal(t, MaterialStat{Name: "Metal", Stock: 35, Status: "Medium"}, stats[1])
	assert.Equal(t, MaterialStat{Name: "Wood", Stock: 5, Status: "Low"}, stats[2])
}

func TestOrderHistoryCoversAllMonths(t *testing.T) {
	hist := OrderHistory([]Order{
		{CreatedAt: date(time.January)},
		{CreatedAt: date(time.January)},
		{CreatedAt: date(time.July)},
	})

	require.Len(t, hist, 12)
	assert.Equal(t, 2, hist["Jan"])
	assert.Equal(t, 1, hist["Jul"])
	assert.Equal(t, 0, hist["Dec"])
}

func TestMaterialDistribution(t *testing.T) {
	dist := MaterialDistribution([]Order{
		{ProductMaterial: "Wood"},
		{ProductMaterial: "Wood"},
		{ProductMaterial: "Metal"},
	})
	assert.Equal(t, map[string]int{"Wood": 2, "Metal": 1}, dist)
}

func TestCompletionRate(t *testing.T) {
	c := Completion([]Order{
		{Status: "Delivered"},
		{Status: "Delivered"},
		{Status: "Pending"},
		{Status: "Shipped"},
	})
	assert.Equal(t, 4, c.Total)
	assert.Equal(t, 2, c.Completed)
	assert.InDelta(t, 50.0, c.Rate, 0.001)
}

func TestCompletionRateEmpty(t *testing.T) {
	c := Completion(nil)
	assert.Equal(t, 0, c.Total)
	assert.Zero(t, c.Rate)
}

func TestSimulateUsage(t *testing.T) {
	usage := SimulateUsage([]Material{{Name: "Fabric", Stock: 200}})
	require.Len(t, usage, 1)

	u := usage[0]
	assert.Equal(t, "Fabric", u.Name)
	assert.Equal(t, 200, u.CurrentStock)
	assert.Equal(t, 20, u.ReorderLevel)
	require.Len(t, u.MonthlyUsage, 6)
	for _, n := range u.MonthlyUsage {
		assert.GreaterOrEqual(t, n, 10)
		assert.LessOrEqual(t, n, 59)
	}
}
