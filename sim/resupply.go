package sim

import "github.com/sirupsen/logrus"

// startResupply sends a ship back to the port to top off. Like startDelivery,
// the travel leg is committed synchronously so the ship stays busy from the
// instant the decision is made.
func (sim *Simulation) startResupply(ship *Ship) {
	now := sim.Clock
	port := sim.Params.PortLocation

	sim.Log.Append(now, ResupplyStartedPayload{
		ShipID:          ship.ID,
		ShipName:        ship.Name,
		CurrentLocation: ship.CurrentLocation,
		Destination:     port,
		CurrentCargo:    ship.CurrentCargo,
	})

	if ship.CurrentLocation != port {
		arrival, err := ship.TravelTo(port, sim.Distances, now)
		if err != nil {
			logrus.Errorf("[t=%010.3f] resupply of %s aborted: %v", now, ship.ID, err)
			return
		}
		sim.Schedule(&resupplyArrival{at: arrival, shipID: ship.ID})
		return
	}

	sim.beginLoading(ship)
}

// resupplyArrival resumes a resupply run when the ship reaches the port.
type resupplyArrival struct {
	at     float64
	shipID string
}

func (e *resupplyArrival) Timestamp() float64 { return e.at }

func (e *resupplyArrival) Execute(sim *Simulation) {
	sim.beginLoading(sim.Ships[e.shipID])
}

// beginLoading runs the port side of a resupply: the fixed processing delay
// followed by loading at the configured rate. The ship is held busy until
// loading completes.
func (sim *Simulation) beginLoading(ship *Ship) {
	now := sim.Clock

	sim.Log.Append(now, ShipArrivedPayload{
		ShipID:   ship.ID,
		ShipName: ship.Name,
		Location: ship.CurrentLocation,
	})

	loadTime := (ship.Capacity - ship.CurrentCargo) / sim.Params.LoadingRate
	done := now + sim.Params.PortResupplyDelay + loadTime
	ship.BusyUntil = done

	sim.Schedule(&resupplyCompletion{at: done, shipID: ship.ID})
}

// resupplyCompletion tops the ship off and releases it for dispatch.
type resupplyCompletion struct {
	at     float64
	shipID string
}

func (e *resupplyCompletion) Timestamp() float64 { return e.at }

func (e *resupplyCompletion) Execute(sim *Simulation) {
	ship := sim.Ships[e.shipID]

	ship.Load(ship.Capacity - ship.CurrentCargo)
	sim.Log.Append(sim.Clock, ResupplyCompletedPayload{
		ShipID:        ship.ID,
		ShipName:      ship.Name,
		Location:      ship.CurrentLocation,
		NewCargoLevel: ship.CurrentCargo,
	})

	ship.BusyUntil = sim.Clock
}
