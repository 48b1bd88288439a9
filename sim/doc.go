// Package sim provides the core discrete-event simulation engine for the
// maritime resupply network.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: the Event interface and the pending-wakeup priority queue
//   - simulator.go: the clock, the event loop, and run setup/teardown
//   - ship.go / customer.go: the two mutable entities all processes touch
//
// # Architecture
//
// The engine is a cooperative, single-threaded scheduler. Every logical
// process (per-customer consumption, per-trip delivery, per-reload resupply)
// is an explicit state machine: each state is an Event whose Execute method
// runs one synchronous step against the Simulation and schedules the next
// wakeup. Entities are mutated only inside Execute, never across a wait, so
// no locking is needed and runs are reproducible.
//
// The event loop pops the pending wakeup with the smallest
// (wake time, submission sequence) pair. The sequence number guarantees FIFO
// ordering for wakeups sharing a timestamp, which makes the emitted event log
// byte-identical across runs of the same configuration snapshot.
//
// Processes append domain events (eventlog.go) as they run. After the horizon
// truncates the run, the metrics engine (metrics.go) folds the log and the
// final entity state into per-customer, per-ship, and system-wide KPIs, and
// results.go packages everything into the document handed to persistence.
package sim
