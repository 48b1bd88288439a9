package sim

import "github.com/sirupsen/logrus"

// resupplyTargetFraction is the fill level a delivery aims for, as a fraction
// of the customer's maximum inventory.
const resupplyTargetFraction = 0.8

// dispatch matches an under-supplied customer to an idle, cargo-bearing ship.
// Among eligible ships it picks the one with the most cargo; exact ties go to
// the lowest ship id (the roster scan runs in sorted-id order, so the first
// maximum seen wins). If no ship qualifies a delivery_failed event is logged
// and nothing retries: the customer re-evaluates on its next consumption tick.
func (sim *Simulation) dispatch(customer *CustomerSite) {
	now := sim.Clock

	target := resupplyTargetFraction * customer.MaxInventory
	needed := target - customer.CurrentInventory
	if needed <= 0 {
		return
	}

	var chosen *Ship
	for _, id := range sim.shipOrder {
		ship := sim.Ships[id]
		if !ship.EligibleForDispatch(now) {
			continue
		}
		if chosen == nil || ship.CurrentCargo > chosen.CurrentCargo {
			chosen = ship
		}
	}

	if chosen == nil {
		logrus.Warnf("[t=%010.3f] no ships available for %s (needs %.1f)", now, customer.ID, needed)
		sim.Log.Append(now, DeliveryFailedPayload{
			CustomerID:   customer.ID,
			Reason:       ReasonNoShipsAvailable,
			NeededAmount: needed,
		})
		return
	}

	sim.startDelivery(chosen, customer, needed)
}
