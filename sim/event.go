package sim

// Event is a pending process resumption. Each event carries the virtual time
// at which it wants to run and an Execute method that advances its process by
// one synchronous step when invoked.
type Event interface {
	Timestamp() float64
	Execute(sim *Simulation)
}

// pendingWakeup pairs an event with the submission sequence number assigned
// when it was scheduled. The sequence breaks timestamp ties in strict
// submission order, so simultaneous wakeups replay deterministically.
type pendingWakeup struct {
	at  float64
	seq uint64
	ev  Event
}

// EventQueue implements heap.Interface and orders pending wakeups by
// (wake time, submission sequence).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []*pendingWakeup

func (eq EventQueue) Len() int { return len(eq) }

func (eq EventQueue) Less(i, j int) bool {
	if eq[i].at != eq[j].at {
		return eq[i].at < eq[j].at
	}
	return eq[i].seq < eq[j].seq
}

func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(*pendingWakeup))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*eq = old[0 : n-1]
	return item
}
