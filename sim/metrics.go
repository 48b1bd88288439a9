package sim

import (
	"fmt"
	"sort"
)

// CustomerMetrics are the per-customer KPIs computed from consumption events.
type CustomerMetrics struct {
	AvgInventory  float64 `json:"avg_inventory"`
	MinInventory  float64 `json:"min_inventory"`
	StockoutHours float64 `json:"stockout_hours"`
	ServiceLevel  float64 `json:"service_level"`
}

// ShipMetrics are the per-ship KPIs computed from completion events and the
// ship's travel history.
type ShipMetrics struct {
	TotalDistance float64 `json:"total_distance"`
	NumDeliveries int     `json:"num_deliveries"`
	NumResupplies int     `json:"num_resupplies"`
}

// Metrics aggregates the KPIs of a finished run.
type Metrics struct {
	OverallServiceLevel float64                    `json:"overall_service_level"`
	TotalStockoutEvents int                        `json:"total_stockout_events"`
	CustomerMetrics     map[string]CustomerMetrics `json:"customer_metrics"`
	ShipMetrics         map[string]ShipMetrics     `json:"ship_metrics"`
}

// customerAccumulator folds a single customer's consumption events.
type customerAccumulator struct {
	count        int
	inventorySum float64
	inventoryMin float64
	stockouts    int
}

// ComputeMetrics is the pure post-run aggregation over the final event log
// and entity state. It tolerates empty logs and empty rosters: with zero
// customers the overall service level is 0, not NaN, and nothing errors.
func ComputeMetrics(log *EventLog, ships map[string]*Ship, distances DistanceMatrix, params Params) *Metrics {
	m := &Metrics{
		CustomerMetrics: make(map[string]CustomerMetrics),
		ShipMetrics:     make(map[string]ShipMetrics),
	}

	perCustomer := make(map[string]*customerAccumulator)
	deliveries := make(map[string]int)
	resupplies := make(map[string]int)

	for _, ev := range log.Events() {
		switch p := ev.Payload.(type) {
		case ConsumptionPayload:
			acc, ok := perCustomer[p.CustomerID]
			if !ok {
				acc = &customerAccumulator{inventoryMin: p.CurrentInventory}
				perCustomer[p.CustomerID] = acc
			}
			acc.count++
			acc.inventorySum += p.CurrentInventory
			acc.inventoryMin = min(acc.inventoryMin, p.CurrentInventory)
			if p.CurrentInventory == 0 {
				acc.stockouts++
				m.TotalStockoutEvents++
			}
		case DeliveryCompletedPayload:
			deliveries[p.ShipID]++
		case ResupplyCompletedPayload:
			resupplies[p.ShipID]++
		case DeliveryStartedPayload, ShipArrivedPayload, DeliveryFailedPayload, ResupplyStartedPayload:
			// No metric derives from these kinds.
		}
	}

	// A customer with no consumption events (zero-length run) has no metrics
	// entry; consumption events imply a positive duration, so the service
	// level division is safe.
	serviceLevelSum := 0.0
	for id, acc := range perCustomer {
		stockoutHours := float64(acc.stockouts) * params.TimeStep
		serviceLevel := 1.0 - stockoutHours/params.SimulationDuration
		m.CustomerMetrics[id] = CustomerMetrics{
			AvgInventory:  acc.inventorySum / float64(acc.count),
			MinInventory:  acc.inventoryMin,
			StockoutHours: stockoutHours,
			ServiceLevel:  serviceLevel,
		}
		serviceLevelSum += serviceLevel
	}
	if len(m.CustomerMetrics) > 0 {
		m.OverallServiceLevel = serviceLevelSum / float64(len(m.CustomerMetrics))
	}

	for id, ship := range ships {
		sm := ShipMetrics{
			NumDeliveries: deliveries[id],
			NumResupplies: resupplies[id],
		}
		for _, journey := range ship.TravelHistory {
			// Only legs still resolvable in the matrix count toward distance.
			if d, err := distances.Between(journey.Departure, journey.Destination); err == nil {
				sm.TotalDistance += d
			}
		}
		m.ShipMetrics[id] = sm
	}

	return m
}

// Print displays the aggregated metrics at the end of a run, in stable id
// order.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Overall Service Level : %.2f%%\n", m.OverallServiceLevel*100)
	fmt.Printf("Stockout Events       : %d\n", m.TotalStockoutEvents)
	for _, id := range sortedKeys(m.CustomerMetrics) {
		cm := m.CustomerMetrics[id]
		fmt.Printf("Customer %-12s : avg inv %.1f, min inv %.1f, stockout %.1fh, service %.2f%%\n",
			id, cm.AvgInventory, cm.MinInventory, cm.StockoutHours, cm.ServiceLevel*100)
	}
	for _, id := range sortedKeys(m.ShipMetrics) {
		sm := m.ShipMetrics[id]
		fmt.Printf("Ship %-16s : distance %.1f, deliveries %d, resupplies %d\n",
			id, sm.TotalDistance, sm.NumDeliveries, sm.NumResupplies)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
