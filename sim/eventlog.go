package sim

import (
	"encoding/json"
	"math"
)

// EventKind enumerates the closed set of domain event variants.
type EventKind string

const (
	EventConsumption       EventKind = "consumption"
	EventDeliveryStarted   EventKind = "delivery_started"
	EventShipArrived       EventKind = "ship_arrived"
	EventDeliveryCompleted EventKind = "delivery_completed"
	EventDeliveryFailed    EventKind = "delivery_failed"
	EventResupplyStarted   EventKind = "resupply_started"
	EventResupplyCompleted EventKind = "resupply_completed"
)

// ReasonNoShipsAvailable is the delivery_failed reason emitted when no idle,
// cargo-bearing ship exists at dispatch time.
const ReasonNoShipsAvailable = "no_ships_available"

// Payload is the sealed interface implemented by the per-kind event payloads.
// Keeping the set closed lets the metrics engine switch exhaustively.
type Payload interface {
	kind() EventKind
}

// TraceEvent is one entry of the append-only event log. It serializes to a
// flat object: {"time": ..., "type": ..., <payload fields>}.
type TraceEvent struct {
	Time    float64
	Kind    EventKind
	Payload Payload
}

// MarshalJSON flattens the payload fields next to time and type, matching the
// results document contract.
func (e TraceEvent) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(e.Payload)
	if err != nil {
		return nil, err
	}
	flat := map[string]any{}
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, err
	}
	flat["time"] = e.Time
	flat["type"] = string(e.Kind)
	return json.Marshal(flat)
}

// EventLog is the append-only record of domain events. The scheduler resumes
// processes in non-decreasing time order, so appends arrive time-ordered.
type EventLog struct {
	events []TraceEvent
}

// Append records an event at time t.
func (l *EventLog) Append(t float64, p Payload) {
	l.events = append(l.events, TraceEvent{Time: t, Kind: p.kind(), Payload: p})
}

// Events returns the recorded events in emission order.
func (l *EventLog) Events() []TraceEvent {
	return l.events
}

// Len returns the number of recorded events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// ConsumptionPayload records one consumption tick of a customer.
type ConsumptionPayload struct {
	CustomerID       string  `json:"customer_id"`
	CustomerName     string  `json:"customer_name"`
	AmountConsumed   float64 `json:"amount_consumed"`
	CurrentInventory float64 `json:"current_inventory"`
	DaysOfSupply     float64 `json:"days_of_supply"`
}

func (ConsumptionPayload) kind() EventKind { return EventConsumption }

// MarshalJSON serializes an infinite days-of-supply (demand rate <= 0) as
// null, which strict JSON decoders accept.
func (p ConsumptionPayload) MarshalJSON() ([]byte, error) {
	type alias ConsumptionPayload
	var days *float64
	if !math.IsInf(p.DaysOfSupply, 1) {
		days = &p.DaysOfSupply
	}
	return json.Marshal(struct {
		alias
		DaysOfSupply *float64 `json:"days_of_supply"`
	}{alias(p), days})
}

// DeliveryStartedPayload records a dispatch matching a ship to a customer.
type DeliveryStartedPayload struct {
	ShipID          string  `json:"ship_id"`
	ShipName        string  `json:"ship_name"`
	CustomerID      string  `json:"customer_id"`
	CustomerName    string  `json:"customer_name"`
	RequestedAmount float64 `json:"requested_amount"`
	AvailableCargo  float64 `json:"available_cargo"`
}

func (DeliveryStartedPayload) kind() EventKind { return EventDeliveryStarted }

// ShipArrivedPayload records a ship reaching a customer site or the port.
type ShipArrivedPayload struct {
	ShipID       string `json:"ship_id"`
	ShipName     string `json:"ship_name"`
	Location     string `json:"location"`
	CustomerID   string `json:"customer_id,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
}

func (ShipArrivedPayload) kind() EventKind { return EventShipArrived }

// DeliveryCompletedPayload records cargo handed over to a customer.
type DeliveryCompletedPayload struct {
	ShipID             string  `json:"ship_id"`
	ShipName           string  `json:"ship_name"`
	CustomerID         string  `json:"customer_id"`
	CustomerName       string  `json:"customer_name"`
	AmountDelivered    float64 `json:"amount_delivered"`
	CustomerInventory  float64 `json:"customer_inventory"`
	ShipRemainingCargo float64 `json:"ship_remaining_cargo"`
}

func (DeliveryCompletedPayload) kind() EventKind { return EventDeliveryCompleted }

// DeliveryFailedPayload records a dispatch that found no eligible ship. There
// is no automatic retry; the customer re-triggers on its next consumption
// tick if still below threshold.
type DeliveryFailedPayload struct {
	CustomerID   string  `json:"customer_id"`
	Reason       string  `json:"reason"`
	NeededAmount float64 `json:"needed_amount"`
}

func (DeliveryFailedPayload) kind() EventKind { return EventDeliveryFailed }

// ResupplyStartedPayload records a ship heading back to the port to reload.
type ResupplyStartedPayload struct {
	ShipID          string  `json:"ship_id"`
	ShipName        string  `json:"ship_name"`
	CurrentLocation string  `json:"current_location"`
	Destination     string  `json:"destination"`
	CurrentCargo    float64 `json:"current_cargo"`
}

func (ResupplyStartedPayload) kind() EventKind { return EventResupplyStarted }

// ResupplyCompletedPayload records a ship topped off at the port.
type ResupplyCompletedPayload struct {
	ShipID        string  `json:"ship_id"`
	ShipName      string  `json:"ship_name"`
	Location      string  `json:"location"`
	NewCargoLevel float64 `json:"new_cargo_level"`
}

func (ResupplyCompletedPayload) kind() EventKind { return EventResupplyCompleted }
