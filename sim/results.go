package sim

import "time"

// RunMetadata describes a finished run: wall-clock bounds plus the effective
// parameter set and roster sizes.
type RunMetadata struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds float64   `json:"duration_seconds"`
	Params          Params    `json:"params"`
	NumShips        int       `json:"num_ships"`
	NumCustomers    int       `json:"num_customers"`
}

// ShipHistoryRecord is one journey leg flattened for the results document.
type ShipHistoryRecord struct {
	ShipID        string  `json:"ship_id"`
	ShipName      string  `json:"ship_name"`
	Departure     string  `json:"departure"`
	Destination   string  `json:"destination"`
	DepartureTime float64 `json:"departure_time"`
	ArrivalTime   float64 `json:"arrival_time"`
	Cargo         float64 `json:"cargo"`
}

// CustomerHistoryRecord is one inventory record flattened for the results
// document.
type CustomerHistoryRecord struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Time         float64 `json:"time"`
	Inventory    float64 `json:"inventory"`
	Demand       float64 `json:"demand"`
	Fulfilled    float64 `json:"fulfilled"`
	Shortage     float64 `json:"shortage"`
}

// Results is the document a run produces and hands to the persistence
// collaborator.
type Results struct {
	Metadata         RunMetadata             `json:"metadata"`
	Events           []TraceEvent            `json:"events"`
	Metrics          *Metrics                `json:"metrics"`
	ShipsHistory     []ShipHistoryRecord     `json:"ships_history"`
	CustomersHistory []CustomerHistoryRecord `json:"customers_history"`
}

// buildResults assembles the results document from the event log and the
// final entity state. Histories are flattened in roster order so the document
// is deterministic for a given snapshot.
func (sim *Simulation) buildResults(start, end time.Time) *Results {
	res := &Results{
		Metadata: RunMetadata{
			StartTime:       start,
			EndTime:         end,
			DurationSeconds: end.Sub(start).Seconds(),
			Params:          sim.Params,
			NumShips:        len(sim.Ships),
			NumCustomers:    len(sim.Customers),
		},
		Events:  sim.Log.Events(),
		Metrics: ComputeMetrics(sim.Log, sim.Ships, sim.Distances, sim.Params),
	}

	for _, id := range sim.shipOrder {
		ship := sim.Ships[id]
		for _, journey := range ship.TravelHistory {
			res.ShipsHistory = append(res.ShipsHistory, ShipHistoryRecord{
				ShipID:        ship.ID,
				ShipName:      ship.Name,
				Departure:     journey.Departure,
				Destination:   journey.Destination,
				DepartureTime: journey.DepartureTime,
				ArrivalTime:   journey.ArrivalTime,
				Cargo:         journey.Cargo,
			})
		}
	}
	for _, id := range sim.customerOrder {
		customer := sim.Customers[id]
		for _, record := range customer.InventoryHistory {
			res.CustomersHistory = append(res.CustomersHistory, CustomerHistoryRecord{
				CustomerID:   customer.ID,
				CustomerName: customer.Name,
				Time:         record.Time,
				Inventory:    record.Inventory,
				Demand:       record.Demand,
				Fulfilled:    record.Fulfilled,
				Shortage:     record.Shortage,
			})
		}
	}

	return res
}
