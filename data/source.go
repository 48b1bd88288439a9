// Package data provides the external collaborators of the simulation engine:
// configuration sources and results persistence. The engine itself only ever
// sees a sim.Config snapshot and hands back a sim.Results document; everything
// about where those live (JSON directory, YAML scenario file, SQLite,
// Postgres) stays behind the Source interface.
package data

import (
	"fmt"

	"github.com/maritime-sim/maritime-sim/sim"
)

// Source supplies a configuration snapshot and accepts the results document.
// Reads happen once, at setup; SaveResults is called once, at run end, and is
// best-effort: a persistence failure never invalidates the in-memory results.
type Source interface {
	Ships() ([]sim.ShipConfig, error)
	Customers() ([]sim.CustomerConfig, error)
	Distances() (sim.DistanceMatrix, error)
	Params() (sim.Params, error)
	SaveResults(res *sim.Results) error
}

// LoadConfig assembles a full configuration snapshot from a Source.
func LoadConfig(src Source) (*sim.Config, error) {
	ships, err := src.Ships()
	if err != nil {
		return nil, fmt.Errorf("load ships: %w", err)
	}
	customers, err := src.Customers()
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	distances, err := src.Distances()
	if err != nil {
		return nil, fmt.Errorf("load distance matrix: %w", err)
	}
	params, err := src.Params()
	if err != nil {
		return nil, fmt.Errorf("load simulation params: %w", err)
	}
	return &sim.Config{
		Ships:     ships,
		Customers: customers,
		Distances: distances,
		Params:    params,
	}, nil
}
