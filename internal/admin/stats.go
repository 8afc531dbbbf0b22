package admin

import (
	"math/rand"

	"github.com/ariefcatur/go-supplychain/internal/status"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type OrderStats struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	InProduction int `json:"inProduction"`
	Shipped      int `json:"shipped"`
	Delivered    int `json:"delivered"`
}

func CountOrders(orders []Order) OrderStats {
	s := OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch status.Status(o.Status) {
		case status.Pending:
			s.Pending++
		case status.InProduction:
			s.InProduction++
		case status.Shipped:
			s.Shipped++
		case status.Delivered:
			s.Delivered++
		}
	}
	return s
}

type MaterialStat struct {
	Name   string `json:"name"`
	Stock  int    `json:"stock"`
	Status string `json:"status"`
}

// StockStatus buckets a stock level: Low at 20 or below, Medium at 50 or
// below, Good above that.
func StockStatus(stock int) string {
	switch {
	case stock <= 20:
		return "Low"
	case stock <= 50:
		return "Medium"
	default:
		return "Good"
	}
}

func ClassifyMaterials(materials []Material) []MaterialStat {
	out := make([]MaterialStat, 0, len(materials))
	for _, m := range materials {
		out = append(out, MaterialStat{Name: m.Name, Stock: m.Stock, Status: StockStatus(m.Stock)})
	}
	return out
}

// OrderHistory buckets orders by creation month. Every month appears, zero or
// not, so charts always get twelve bars.
func OrderHistory(orders []Order) map[string]int {
	hist := make(map[string]int, len(monthNames))
	for _, m := range monthNames {
		hist[m] = 0
	}
	for _, o := range orders {
		hist[monthNames[o.CreatedAt.Month()-1]]++
	}
	return hist
}

// ProcessingStages are average days per stage. Real measurement needs
// timestamps the services do not record, so the dashboard shows fixed values.
type ProcessingStages struct {
	OrderToAcceptance      float64 `json:"orderToAcceptance"`
	AcceptanceToProduction float64 `json:"acceptanceToProduction"`
	ProductionToShipping   float64 `json:"productionToShipping"`
	ShippingToDelivery     float64 `json:"shippingToDelivery"`
}

func DefaultProcessingStages() ProcessingStages {
	return ProcessingStages{
		OrderToAcceptance:      1.2,
		AcceptanceToProduction: 2.5,
		ProductionToShipping:   1.8,
		ShippingToDelivery:     3.2,
	}
}

func MaterialDistribution(orders []Order) map[string]int {
	dist := map[string]int{}
	for _, o := range orders {
		dist[o.ProductMaterial]++
	}
	return dist
}

type CompletionRate struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Rate      float64 `json:"rate"`
}

func Completion(orders []Order) CompletionRate {
	c := CompletionRate{Total: len(orders)}
	for _, o := range orders {
		if status.Status(o.Status) == status.Delivered {
			c.Completed++
		}
	}
	if c.Total > 0 {
		c.Rate = float64(c.Completed) / float64(c.Total) * 100
	}
	return c
}

type MaterialUsage struct {
	Name         string `json:"name"`
	MonthlyUsage []int  `json:"monthlyUsage"`
	CurrentStock int    `json:"currentStock"`
	ReorderLevel int    `json:"reorderLevel"`
}

// SimulateUsage fabricates six months of per-material consumption, 10..59
// units a month. The supplier keeps no usage ledger to derive this from.
func SimulateUsage(materials []Material) []MaterialUsage {
	out := make([]MaterialUsage, 0, len(materials))
	for _, m := range materials {
		usage := make([]int, 6)
		for i := range usage {
			usage[i] = 10 + rand.Intn(50)
		}
		out = append(out, MaterialUsage{
			Name:         m.Name,
			MonthlyUsage: usage,
			CurrentStock: m.Stock,
			ReorderLevel: 20,
		})
	}
	return out
}

type UserStats struct {
	Retailers     int `json:"retailers"`
	Suppliers     int `json:"suppliers"`
	Manufacturers int `json:"manufacturers"`
	Distributors  int `json:"distributors"`
}

// DefaultUserStats reports fixed counts; the login service does not expose a
// user listing.
func DefaultUserStats() UserStats {
	return UserStats{Retailers: 15, Suppliers: 8, Manufacturers: 5, Distributors: 3}
}
