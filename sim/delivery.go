package sim

import "github.com/sirupsen/logrus"

// resupplyCargoFraction is the cargo level, as a fraction of capacity, below
// which a ship heads back to the port after completing a delivery.
const resupplyCargoFraction = 0.2

// startDelivery begins a delivery trip at the current instant. The ship is
// committed synchronously: TravelTo advances BusyUntil to the arrival time
// before control returns to the dispatcher, so no other dispatch within the
// same tick can select it. A route lookup failure terminates only this trip.
func (sim *Simulation) startDelivery(ship *Ship, customer *CustomerSite, requested float64) {
	now := sim.Clock

	sim.Log.Append(now, DeliveryStartedPayload{
		ShipID:          ship.ID,
		ShipName:        ship.Name,
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		RequestedAmount: requested,
		AvailableCargo:  ship.CurrentCargo,
	})

	arrival, err := ship.TravelTo(customer.Location, sim.Distances, now)
	if err != nil {
		logrus.Errorf("[t=%010.3f] delivery %s -> %s aborted: %v", now, ship.ID, customer.ID, err)
		return
	}

	sim.Schedule(&deliveryArrival{
		at:         arrival,
		shipID:     ship.ID,
		customerID: customer.ID,
		requested:  requested,
	})
}

// deliveryArrival resumes a delivery trip when the ship reaches the customer:
// it fixes the unload amount against the cargo on board and holds the ship
// busy for the unloading interval.
type deliveryArrival struct {
	at         float64
	shipID     string
	customerID string
	requested  float64
}

func (e *deliveryArrival) Timestamp() float64 { return e.at }

func (e *deliveryArrival) Execute(sim *Simulation) {
	ship := sim.Ships[e.shipID]
	customer := sim.Customers[e.customerID]

	sim.Log.Append(sim.Clock, ShipArrivedPayload{
		ShipID:       ship.ID,
		ShipName:     ship.Name,
		Location:     customer.Location,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
	})

	amount := min(e.requested, ship.CurrentCargo)
	done := sim.Clock + amount/sim.Params.UnloadingRate
	ship.BusyUntil = done // hold the ship through unloading

	sim.Schedule(&deliveryCompletion{
		at:         done,
		shipID:     e.shipID,
		customerID: e.customerID,
		amount:     amount,
	})
}

// deliveryCompletion finishes the trip once unloading ends: cargo moves from
// ship to customer, the completion event is logged with the amount actually
// received, and the ship either chains into a resupply run or goes idle.
type deliveryCompletion struct {
	at         float64
	shipID     string
	customerID string
	amount     float64
}

func (e *deliveryCompletion) Timestamp() float64 { return e.at }

func (e *deliveryCompletion) Execute(sim *Simulation) {
	ship := sim.Ships[e.shipID]
	customer := sim.Customers[e.customerID]

	unloaded := ship.Unload(e.amount)
	received := customer.ReceiveDelivery(unloaded, sim.Clock)

	sim.Log.Append(sim.Clock, DeliveryCompletedPayload{
		ShipID:             ship.ID,
		ShipName:           ship.Name,
		CustomerID:         customer.ID,
		CustomerName:       customer.Name,
		AmountDelivered:    received,
		CustomerInventory:  customer.CurrentInventory,
		ShipRemainingCargo: ship.CurrentCargo,
	})

	if ship.CurrentCargo < resupplyCargoFraction*ship.Capacity {
		sim.startResupply(ship)
		return
	}
	ship.BusyUntil = sim.Clock
}
