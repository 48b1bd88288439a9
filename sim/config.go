package sim

import (
	"errors"
	"fmt"
)

// ErrMalformedConfig is returned when the configuration snapshot is missing a
// required field or carries a value the engine cannot run. It is fatal at
// setup, before the clock starts.
var ErrMalformedConfig = errors.New("malformed configuration")

// ShipConfig is one ship entry of the configuration snapshot.
type ShipConfig struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Capacity        float64 `json:"capacity" yaml:"capacity"`
	Speed           float64 `json:"speed" yaml:"speed"`
	InitialLocation string  `json:"initial_location" yaml:"initial_location"`
	InitialCargo    float64 `json:"initial_cargo" yaml:"initial_cargo"`
}

// CustomerConfig is one customer entry of the configuration snapshot.
type CustomerConfig struct {
	ID               string  `json:"id" yaml:"id"`
	Name             string  `json:"name" yaml:"name"`
	Location         string  `json:"location" yaml:"location"`
	DemandRate       float64 `json:"demand_rate" yaml:"demand_rate"`
	InitialInventory float64 `json:"initial_inventory" yaml:"initial_inventory"`
	MinInventory     float64 `json:"min_inventory" yaml:"min_inventory"`
	MaxInventory     float64 `json:"max_inventory" yaml:"max_inventory"`
}

// Config is the read-only configuration snapshot the engine is built from.
// Entities are constructed fresh from it on every run, so one Config may back
// any number of isolated simulations.
type Config struct {
	Ships     []ShipConfig     `json:"ships" yaml:"ships"`
	Customers []CustomerConfig `json:"customers" yaml:"customers"`
	Distances DistanceMatrix   `json:"distances" yaml:"distances"`
	Params    Params           `json:"params" yaml:"params"`
}

// Validate checks the snapshot for missing required fields and impossible
// values. Parameter validation runs separately after overrides are applied.
func (c *Config) Validate() error {
	shipIDs := make(map[string]bool, len(c.Ships))
	for i, s := range c.Ships {
		switch {
		case s.ID == "":
			return fmt.Errorf("%w: ships[%d]: id is required", ErrMalformedConfig, i)
		case s.Name == "":
			return fmt.Errorf("%w: ship %s: name is required", ErrMalformedConfig, s.ID)
		case s.InitialLocation == "":
			return fmt.Errorf("%w: ship %s: initial_location is required", ErrMalformedConfig, s.ID)
		case s.Capacity <= 0:
			return fmt.Errorf("%w: ship %s: capacity must be positive, got %v", ErrMalformedConfig, s.ID, s.Capacity)
		case s.Speed <= 0:
			return fmt.Errorf("%w: ship %s: speed must be positive, got %v", ErrMalformedConfig, s.ID, s.Speed)
		case s.InitialCargo < 0:
			return fmt.Errorf("%w: ship %s: initial_cargo must not be negative, got %v", ErrMalformedConfig, s.ID, s.InitialCargo)
		}
		if shipIDs[s.ID] {
			return fmt.Errorf("%w: duplicate ship id %s", ErrMalformedConfig, s.ID)
		}
		shipIDs[s.ID] = true
	}

	customerIDs := make(map[string]bool, len(c.Customers))
	for i, cu := range c.Customers {
		switch {
		case cu.ID == "":
			return fmt.Errorf("%w: customers[%d]: id is required", ErrMalformedConfig, i)
		case cu.Name == "":
			return fmt.Errorf("%w: customer %s: name is required", ErrMalformedConfig, cu.ID)
		case cu.Location == "":
			return fmt.Errorf("%w: customer %s: location is required", ErrMalformedConfig, cu.ID)
		case cu.DemandRate < 0:
			return fmt.Errorf("%w: customer %s: demand_rate must not be negative, got %v", ErrMalformedConfig, cu.ID, cu.DemandRate)
		case cu.MaxInventory <= 0:
			return fmt.Errorf("%w: customer %s: max_inventory must be positive, got %v", ErrMalformedConfig, cu.ID, cu.MaxInventory)
		case cu.MinInventory < 0 || cu.MinInventory > cu.MaxInventory:
			return fmt.Errorf("%w: customer %s: min_inventory must be within [0, max_inventory]", ErrMalformedConfig, cu.ID)
		case cu.InitialInventory < 0:
			return fmt.Errorf("%w: customer %s: initial_inventory must not be negative, got %v", ErrMalformedConfig, cu.ID, cu.InitialInventory)
		}
		if customerIDs[cu.ID] {
			return fmt.Errorf("%w: duplicate customer id %s", ErrMalformedConfig, cu.ID)
		}
		customerIDs[cu.ID] = true
	}

	return c.Distances.Validate()
}
