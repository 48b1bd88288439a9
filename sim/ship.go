package sim

// JourneyRecord captures one leg of a ship's travel history.
type JourneyRecord struct {
	Departure     string  `json:"departure"`
	Destination   string  `json:"destination"`
	DepartureTime float64 `json:"departure_time"`
	ArrivalTime   float64 `json:"arrival_time"`
	Cargo         float64 `json:"cargo"`
}

// Ship is a vessel carrying cargo between the port and customer sites.
// Invariants: 0 <= CurrentCargo <= Capacity, and BusyUntil only increases
// while the ship is engaged on a trip or a reload.
type Ship struct {
	ID              string
	Name            string
	Capacity        float64
	Speed           float64 // distance units per hour
	CurrentLocation string
	CurrentCargo    float64
	BusyUntil       float64
	TravelHistory   []JourneyRecord
}

// ShipStatus is a point-in-time summary of a ship, used for logging and
// run metadata.
type ShipStatus struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Location          string  `json:"location"`
	Cargo             float64 `json:"cargo"`
	AvailableCapacity float64 `json:"available_capacity"`
	BusyUntil         float64 `json:"busy_until"`
}

// NewShip builds a ship from its configuration. Initial cargo is clamped into
// [0, capacity].
func NewShip(cfg ShipConfig) *Ship {
	cargo := min(cfg.InitialCargo, cfg.Capacity)
	cargo = max(cargo, 0)
	return &Ship{
		ID:              cfg.ID,
		Name:            cfg.Name,
		Capacity:        cfg.Capacity,
		Speed:           cfg.Speed,
		CurrentLocation: cfg.InitialLocation,
		CurrentCargo:    cargo,
	}
}

// Status returns the current status of the ship.
func (s *Ship) Status() ShipStatus {
	return ShipStatus{
		ID:                s.ID,
		Name:              s.Name,
		Location:          s.CurrentLocation,
		Cargo:             s.CurrentCargo,
		AvailableCapacity: s.Capacity - s.CurrentCargo,
		BusyUntil:         s.BusyUntil,
	}
}

// Load adds cargo, clamped to the remaining capacity, and returns the amount
// actually loaded. Load(0) is a no-op.
func (s *Ship) Load(amount float64) float64 {
	actual := min(amount, s.Capacity-s.CurrentCargo)
	actual = max(actual, 0)
	s.CurrentCargo += actual
	return actual
}

// Unload removes cargo, clamped to the amount on board, and returns the
// amount actually unloaded. Unload(0) is a no-op.
func (s *Ship) Unload(amount float64) float64 {
	actual := min(amount, s.CurrentCargo)
	actual = max(actual, 0)
	s.CurrentCargo -= actual
	return actual
}

// TravelTo starts a journey to destination at time now. It returns the
// arrival time, records the journey, moves the ship, and advances BusyUntil
// to the arrival time. On ErrRouteNotFound the ship is left untouched.
func (s *Ship) TravelTo(destination string, distances DistanceMatrix, now float64) (float64, error) {
	distance, err := distances.Between(s.CurrentLocation, destination)
	if err != nil {
		return 0, err
	}
	arrival := now + distance/s.Speed
	s.TravelHistory = append(s.TravelHistory, JourneyRecord{
		Departure:     s.CurrentLocation,
		Destination:   destination,
		DepartureTime: now,
		ArrivalTime:   arrival,
		Cargo:         s.CurrentCargo,
	})
	s.CurrentLocation = destination
	s.BusyUntil = arrival
	return arrival, nil
}

// EligibleForDispatch reports whether the dispatcher may assign this ship a
// delivery at time now: it must be idle and carrying cargo.
func (s *Ship) EligibleForDispatch(now float64) bool {
	return s.BusyUntil <= now && s.CurrentCargo > 0
}
