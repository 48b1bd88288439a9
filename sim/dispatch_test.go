package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dispatchConfig builds a snapshot with two ships at the port and one customer
// already below its resupply target, so dispatch has a real decision to make.
func dispatchConfig(cargo1, cargo2 float64) *Config {
	cfg := testConfig()
	cfg.Ships = []ShipConfig{
		{ID: "ship_1", Name: "Vessel One", Capacity: 10000, Speed: 25, InitialLocation: "port_main", InitialCargo: cargo1},
		{ID: "ship_2", Name: "Vessel Two", Capacity: 10000, Speed: 25, InitialLocation: "port_main", InitialCargo: cargo2},
	}
	cfg.Customers[0].InitialInventory = 2000
	return cfg
}

func startedShipID(t *testing.T, log *EventLog) string {
	t.Helper()
	started := eventsOfKind(log, EventDeliveryStarted)
	require.Len(t, started, 1)
	return started[0].Payload.(DeliveryStartedPayload).ShipID
}

func TestDispatch_PicksShipWithMostCargo(t *testing.T) {
	s, err := NewSimulation(dispatchConfig(4000, 6000), nil)
	require.NoError(t, err)

	s.dispatch(s.Customers["customer_1"])

	assert.Equal(t, "ship_2", startedShipID(t, s.Log))
}

func TestDispatch_TieGoesToLowestShipID(t *testing.T) {
	s, err := NewSimulation(dispatchConfig(5000, 5000), nil)
	require.NoError(t, err)

	s.dispatch(s.Customers["customer_1"])

	assert.Equal(t, "ship_1", startedShipID(t, s.Log))
}

func TestDispatch_SkipsBusyShips(t *testing.T) {
	s, err := NewSimulation(dispatchConfig(6000, 4000), nil)
	require.NoError(t, err)
	s.Ships["ship_1"].BusyUntil = 10 // mid-trip

	s.dispatch(s.Customers["customer_1"])

	assert.Equal(t, "ship_2", startedShipID(t, s.Log))
}

func TestDispatch_NoEligibleShipLogsFailure(t *testing.T) {
	s, err := NewSimulation(dispatchConfig(0, 0), nil)
	require.NoError(t, err)

	s.dispatch(s.Customers["customer_1"])

	failed := eventsOfKind(s.Log, EventDeliveryFailed)
	require.Len(t, failed, 1)
	p := failed[0].Payload.(DeliveryFailedPayload)
	assert.Equal(t, "customer_1", p.CustomerID)
	assert.Equal(t, ReasonNoShipsAvailable, p.Reason)
	// Target is 80% of max inventory (4800), current inventory is 2000.
	assert.Equal(t, 2800.0, p.NeededAmount)
	assert.Empty(t, eventsOfKind(s.Log, EventDeliveryStarted))
}

func TestDispatch_NoOpWhenAtOrAboveTarget(t *testing.T) {
	cfg := dispatchConfig(5000, 5000)
	cfg.Customers[0].InitialInventory = 4800
	s, err := NewSimulation(cfg, nil)
	require.NoError(t, err)

	s.dispatch(s.Customers["customer_1"])

	assert.Equal(t, 0, s.Log.Len())
}

// Two customers falling below threshold on the same tick must not both get
// the single ship: the travel leg commits synchronously, so the second
// dispatch sees the ship busy.
func TestDispatch_SameTickNeverDoubleBooksAShip(t *testing.T) {
	cfg := &Config{
		Ships: []ShipConfig{
			{ID: "ship_1", Name: "Vessel One", Capacity: 10000, Speed: 25, InitialLocation: "port_main", InitialCargo: 8000},
		},
		Customers: []CustomerConfig{
			{ID: "customer_1", Name: "Site Alpha", Location: "site_a", DemandRate: 100, InitialInventory: 2000, MinInventory: 1000, MaxInventory: 6000},
			{ID: "customer_2", Name: "Site Beta", Location: "site_b", DemandRate: 100, InitialInventory: 2000, MinInventory: 1000, MaxInventory: 6000},
		},
		Distances: DistanceMatrix{
			"port_main": {"port_main": 0, "site_a": 100, "site_b": 100},
			"site_a":    {"port_main": 100, "site_a": 0, "site_b": 50},
			"site_b":    {"port_main": 100, "site_a": 50, "site_b": 0},
		},
		Params: testParams(),
	}
	cfg.Params.SimulationDuration = 1

	s, err := NewSimulation(cfg, nil)
	require.NoError(t, err)
	s.Run()

	started := eventsOfKind(s.Log, EventDeliveryStarted)
	failed := eventsOfKind(s.Log, EventDeliveryFailed)
	require.Len(t, started, 1)
	require.Len(t, failed, 1)

	// Customer processes start in id order, so customer_1 wins the ship.
	assert.Equal(t, "customer_1", started[0].Payload.(DeliveryStartedPayload).CustomerID)
	assert.Equal(t, "customer_2", failed[0].Payload.(DeliveryFailedPayload).CustomerID)
	assert.Equal(t, 1.0, started[0].Time)
	assert.Equal(t, 1.0, failed[0].Time)
}
