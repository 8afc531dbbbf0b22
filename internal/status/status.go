package status

type Status string

const (
	Pending             Status = "Pending"
	Accepted            Status = "Accepted"
	Rejected            Status = "Rejected"
	InProduction        Status = "In Production"
	ProductionCompleted Status = "Production Completed"
	Shipped             Status = "Shipped"
	Delivered           Status = "Delivered"
)

// Flow is the set of allowed forward transitions for one service's vocabulary.
// A status never moves backward; re-applying the current status is a no-op and
// always allowed (upstream callbacks repeat themselves).
type Flow map[Status]map[Status]bool

func (f Flow) Allows(from, to Status) bool {
	if from == to {
		return true
	}
	return f[from][to]
}

// Known reports whether s belongs to this vocabulary at all.
func (f Flow) Known(s Status) bool {
	_, ok := f[s]
	return ok
}

// Retailer orders: the system-of-record view of the whole pipeline.
var Retailer = Flow{
	Pending:      {Accepted: true, Rejected: true},
	Accepted:     {InProduction: true},
	InProduction: {Shipped: true},
	Shipped:      {Delivered: true},
	Rejected:     {},
	Delivered:    {},
}

// Supplier orders. The manufacturer reports "Shipped" straight from
// "In Production" when production completes, so that hop is allowed too.
var Supplier = Flow{
	Pending:             {Accepted: true, Rejected: true},
	Accepted:            {InProduction: true},
	InProduction:        {ProductionCompleted: true, Shipped: true},
	ProductionCompleted: {Shipped: true},
	Shipped:             {Delivered: true},
	Rejected:            {},
	Delivered:           {},
}

// Manufacturer orders start life Accepted.
var Manufacturer = Flow{
	Accepted:            {InProduction: true},
	InProduction:        {ProductionCompleted: true},
	ProductionCompleted: {Shipped: true},
	Shipped:             {},
}

// Shipment lifecycle at the distributor.
var Shipment = Flow{
	Pending:   {Shipped: true},
	Shipped:   {Delivered: true},
	Delivered: {},
}
