package sim

import (
	"container/heap"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// Simulation is the core object that holds virtual time, the entity roster,
// and the event loop. It is single-threaded: processes are logically
// concurrent but never execute simultaneously, so entities are mutated
// without locks, always between waits and never inside one.
type Simulation struct {
	Clock   float64 // virtual time in hours
	Horizon float64 // configured simulation duration

	Params    Params
	Distances DistanceMatrix
	Ships     map[string]*Ship
	Customers map[string]*CustomerSite

	// Rosters are scanned in sorted-id order so dispatch decisions and
	// process start order are deterministic regardless of map iteration.
	shipOrder     []string
	customerOrder []string

	// EventQueue holds pending process resumptions keyed by
	// (wake time, submission sequence).
	EventQueue EventQueue
	seq        uint64

	Log *EventLog
}

// NewSimulation builds a fresh engine from a configuration snapshot, applying
// the given parameter overrides after defaults load and before setup. The
// snapshot is not retained; entities are constructed from copies, so
// concurrent use of one Config across engines is safe.
func NewSimulation(cfg *Config, overrides map[string]any) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	params := cfg.Params
	for name, value := range overrides {
		if err := params.Apply(name, value); err != nil {
			return nil, err
		}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		Horizon:   params.SimulationDuration,
		Params:    params,
		Distances: cfg.Distances,
		Ships:     make(map[string]*Ship, len(cfg.Ships)),
		Customers: make(map[string]*CustomerSite, len(cfg.Customers)),
		Log:       &EventLog{},
	}
	for _, sc := range cfg.Ships {
		ship := NewShip(sc)
		s.Ships[ship.ID] = ship
		s.shipOrder = append(s.shipOrder, ship.ID)
	}
	for _, cc := range cfg.Customers {
		customer := NewCustomerSite(cc)
		s.Customers[customer.ID] = customer
		s.customerOrder = append(s.customerOrder, customer.ID)
	}
	sort.Strings(s.shipOrder)
	sort.Strings(s.customerOrder)
	return s, nil
}

// Schedule queues an event for execution at its timestamp, assigning the next
// submission sequence number. Events past the horizon are still accepted here
// and discarded by the run loop when popped.
func (sim *Simulation) Schedule(ev Event) {
	heap.Push(&sim.EventQueue, &pendingWakeup{at: ev.Timestamp(), seq: sim.seq, ev: ev})
	sim.seq++
}

// Run drives all processes until the horizon truncates them and returns the
// results document. Consumption processes start in customer-id order; every
// other process is spawned by dispatch during the run.
func (sim *Simulation) Run() *Results {
	start := time.Now()

	for _, id := range sim.customerOrder {
		sim.Schedule(&consumptionTick{at: sim.Params.TimeStep, customerID: id})
	}
	for _, id := range sim.shipOrder {
		logrus.Debugf("ship ready: %+v", sim.Ships[id].Status())
	}

	for sim.EventQueue.Len() > 0 {
		w := heap.Pop(&sim.EventQueue).(*pendingWakeup)
		if w.at > sim.Horizon {
			// The queue is time-ordered: everything left is due later
			// still. Discard, don't defer.
			break
		}
		sim.Clock = w.at
		logrus.Debugf("[t=%010.3f] executing %T", sim.Clock, w.ev)
		w.ev.Execute(sim)
	}
	end := time.Now()
	logrus.Infof("[t=%010.3f] simulation ended with %d events", sim.Clock, sim.Log.Len())

	return sim.buildResults(start, end)
}
