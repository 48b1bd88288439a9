package sim

import "math"

// InventoryRecord is one entry in a customer's consumption history.
type InventoryRecord struct {
	Time      float64 `json:"time"`
	Inventory float64 `json:"inventory"`
	Demand    float64 `json:"demand"`
	Fulfilled float64 `json:"fulfilled"`
	Shortage  float64 `json:"shortage"`
}

// OrderRecord is one entry in a customer's delivery history.
type OrderRecord struct {
	Time            float64 `json:"time"`
	AmountRequested float64 `json:"amount_requested"`
	AmountReceived  float64 `json:"amount_received"`
	InventoryAfter  float64 `json:"inventory_after"`
}

// CustomerSite is a consumption site whose inventory depletes continuously
// and must be resupplied before stockout.
// Invariant: 0 <= CurrentInventory <= MaxInventory.
type CustomerSite struct {
	ID               string
	Name             string
	Location         string
	DemandRate       float64 // units per hour
	CurrentInventory float64
	MinInventory     float64
	MaxInventory     float64
	InventoryHistory []InventoryRecord
	OrdersHistory    []OrderRecord
}

// CustomerStatus is a point-in-time summary of a customer site.
type CustomerStatus struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	Inventory        float64 `json:"inventory"`
	MinInventory     float64 `json:"min_inventory"`
	InventoryDeficit float64 `json:"inventory_deficit"`
	FillCapacity     float64 `json:"fill_capacity"`
}

// NewCustomerSite builds a customer from its configuration. Initial inventory
// is clamped into [0, max inventory].
func NewCustomerSite(cfg CustomerConfig) *CustomerSite {
	inventory := min(cfg.InitialInventory, cfg.MaxInventory)
	inventory = max(inventory, 0)
	return &CustomerSite{
		ID:               cfg.ID,
		Name:             cfg.Name,
		Location:         cfg.Location,
		DemandRate:       cfg.DemandRate,
		CurrentInventory: inventory,
		MinInventory:     cfg.MinInventory,
		MaxInventory:     cfg.MaxInventory,
	}
}

// Status returns the current status of the customer site.
func (c *CustomerSite) Status() CustomerStatus {
	return CustomerStatus{
		ID:               c.ID,
		Name:             c.Name,
		Location:         c.Location,
		Inventory:        c.CurrentInventory,
		MinInventory:     c.MinInventory,
		InventoryDeficit: max(0, c.MinInventory-c.CurrentInventory),
		FillCapacity:     c.MaxInventory - c.CurrentInventory,
	}
}

// Consume depletes inventory over one time step ending at now. Demand is
// DemandRate * period; consumption is clamped to the available inventory and
// the shortfall is recorded as shortage. Returns the amount consumed.
func (c *CustomerSite) Consume(period, now float64) float64 {
	demand := c.DemandRate * period
	fulfilled := min(demand, c.CurrentInventory)
	c.CurrentInventory -= fulfilled
	c.InventoryHistory = append(c.InventoryHistory, InventoryRecord{
		Time:      now,
		Inventory: c.CurrentInventory,
		Demand:    demand,
		Fulfilled: fulfilled,
		Shortage:  max(0, demand-fulfilled),
	})
	return fulfilled
}

// ReceiveDelivery adds product to inventory, clamped to the site's free
// capacity, records the order, and returns the amount actually received.
func (c *CustomerSite) ReceiveDelivery(amount, now float64) float64 {
	received := min(amount, c.MaxInventory-c.CurrentInventory)
	received = max(received, 0)
	c.CurrentInventory += received
	c.OrdersHistory = append(c.OrdersHistory, OrderRecord{
		Time:            now,
		AmountRequested: amount,
		AmountReceived:  received,
		InventoryAfter:  c.CurrentInventory,
	})
	return received
}

// DaysOfSupply returns how many days the current inventory lasts at the
// current demand rate. A non-positive demand rate means the inventory never
// depletes, reported as +Inf.
func (c *CustomerSite) DaysOfSupply() float64 {
	if c.DemandRate <= 0 {
		return math.Inf(1)
	}
	return c.CurrentInventory / (c.DemandRate * 24)
}
