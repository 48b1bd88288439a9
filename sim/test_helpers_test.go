package sim

// testConfig is the baseline snapshot most engine tests start from: one ship
// at the port and one customer a 4-hour sail away. With a demand of 100/h and
// a 1-day threshold the customer first drops below threshold on its first
// tick, which makes event timing easy to compute by hand.
func testConfig() *Config {
	return &Config{
		Ships: []ShipConfig{
			{ID: "ship_1", Name: "Test Vessel", Capacity: 10000, Speed: 25, InitialLocation: "port_main", InitialCargo: 8000},
		},
		Customers: []CustomerConfig{
			{ID: "customer_1", Name: "Site Alpha", Location: "site_a", DemandRate: 100, InitialInventory: 2400, MinInventory: 1000, MaxInventory: 6000},
		},
		Distances: DistanceMatrix{
			"port_main": {"port_main": 0, "site_a": 100},
			"site_a":    {"port_main": 100, "site_a": 0},
		},
		Params: testParams(),
	}
}

func testParams() Params {
	p := DefaultParams()
	p.SimulationDuration = 24
	p.ResupplyThresholdDays = 1
	return p
}

// eventsOfKind filters the log down to one event kind, in emission order.
func eventsOfKind(log *EventLog, kind EventKind) []TraceEvent {
	var out []TraceEvent
	for _, ev := range log.Events() {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}
