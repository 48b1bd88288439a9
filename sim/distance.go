package sim

import (
	"errors"
	"fmt"
)

// ErrRouteNotFound is returned when a ship is asked to travel between two
// locations the distance matrix has no entry for. It is fatal to the single
// process that requested the travel; the rest of the run continues.
var ErrRouteNotFound = errors.New("route not found")

// DistanceMatrix maps origin -> destination -> distance. Distances are
// non-negative and a missing entry is a routing error, never a zero.
type DistanceMatrix map[string]map[string]float64

// Between returns the distance from one location to another, or
// ErrRouteNotFound if the matrix has no entry for the pair.
func (m DistanceMatrix) Between(from, to string) (float64, error) {
	row, ok := m[from]
	if !ok {
		return 0, fmt.Errorf("%w: from %s to %s", ErrRouteNotFound, from, to)
	}
	d, ok := row[to]
	if !ok {
		return 0, fmt.Errorf("%w: from %s to %s", ErrRouteNotFound, from, to)
	}
	return d, nil
}

// Validate rejects negative distances.
func (m DistanceMatrix) Validate() error {
	for from, row := range m {
		for to, d := range row {
			if d < 0 {
				return fmt.Errorf("%w: distance from %s to %s is negative (%v)", ErrMalformedConfig, from, to, d)
			}
		}
	}
	return nil
}
