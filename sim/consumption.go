package sim

// consumptionTick advances one customer's consumption loop by a single time
// step: consume, record, and re-trigger dispatch if supply runs short. The
// process runs indefinitely; it ends only when the horizon stops resuming it.
type consumptionTick struct {
	at         float64
	customerID string
}

func (e *consumptionTick) Timestamp() float64 { return e.at }

func (e *consumptionTick) Execute(sim *Simulation) {
	customer := sim.Customers[e.customerID]
	step := sim.Params.TimeStep

	consumed := customer.Consume(step, sim.Clock)
	sim.Log.Append(sim.Clock, ConsumptionPayload{
		CustomerID:       customer.ID,
		CustomerName:     customer.Name,
		AmountConsumed:   consumed,
		CurrentInventory: customer.CurrentInventory,
		DaysOfSupply:     customer.DaysOfSupply(),
	})

	if customer.DaysOfSupply() < sim.Params.ResupplyThresholdDays {
		sim.dispatch(customer)
	}

	sim.Schedule(&consumptionTick{at: e.at + step, customerID: e.customerID})
}
