package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/maritime-sim/maritime-sim/sim"
)

// JSONSource reads the configuration snapshot from a directory of JSON files
// (ships.json, customers.json, distances.json, simulation_params.json) and
// writes results documents next to them.
type JSONSource struct {
	Dir string
}

// NewJSONSource opens a JSON data directory, creating it and seeding example
// data files for any that are missing, so a fresh checkout runs out of the
// box.
func NewJSONSource(dir string) (*JSONSource, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &JSONSource{Dir: dir}
	if err := s.seedMissing(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONSource) seedMissing() error {
	example := ExampleConfig()
	seeds := []struct {
		name string
		v    any
	}{
		{"ships.json", example.Ships},
		{"customers.json", example.Customers},
		{"distances.json", example.Distances},
		{"simulation_params.json", example.Params},
	}
	for _, seed := range seeds {
		path := filepath.Join(s.Dir, seed.name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		raw, err := json.MarshalIndent(seed.v, "", "  ")
		if err != nil {
			return fmt.Errorf("seed %s: %w", seed.name, err)
		}
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return fmt.Errorf("seed %s: %w", seed.name, err)
		}
		logrus.Infof("seeded example %s", path)
	}
	return nil
}

func (s *JSONSource) read(name string, v any) error {
	raw, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Ships reads ships.json.
func (s *JSONSource) Ships() ([]sim.ShipConfig, error) {
	var ships []sim.ShipConfig
	if err := s.read("ships.json", &ships); err != nil {
		return nil, err
	}
	return ships, nil
}

// Customers reads customers.json.
func (s *JSONSource) Customers() ([]sim.CustomerConfig, error) {
	var customers []sim.CustomerConfig
	if err := s.read("customers.json", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// Distances reads distances.json.
func (s *JSONSource) Distances() (sim.DistanceMatrix, error) {
	var matrix sim.DistanceMatrix
	if err := s.read("distances.json", &matrix); err != nil {
		return nil, err
	}
	return matrix, nil
}

// Params reads simulation_params.json over the default parameter set, so a
// partial file only overrides what it names.
func (s *JSONSource) Params() (sim.Params, error) {
	params := sim.DefaultParams()
	if err := s.read("simulation_params.json", &params); err != nil {
		return sim.Params{}, err
	}
	return params, nil
}

// SaveResults writes the results document to results_<timestamp>.json in the
// data directory.
func (s *JSONSource) SaveResults(res *sim.Results) error {
	raw, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	path := filepath.Join(s.Dir, fmt.Sprintf("results_%s.json", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	logrus.Infof("results saved to %s", path)
	return nil
}

// ExampleConfig is the canonical example snapshot seeded into empty data
// directories: a three-ship fleet serving three customer sites around one
// main port.
func ExampleConfig() *sim.Config {
	return &sim.Config{
		Ships: []sim.ShipConfig{
			{ID: "ship_1", Name: "Vessel Alpha", Capacity: 100000, Speed: 25, InitialLocation: "port_main", InitialCargo: 80000},
			{ID: "ship_2", Name: "Vessel Beta", Capacity: 75000, Speed: 30, InitialLocation: "port_main", InitialCargo: 60000},
			{ID: "ship_3", Name: "Vessel Gamma", Capacity: 120000, Speed: 20, InitialLocation: "port_main", InitialCargo: 100000},
		},
		Customers: []sim.CustomerConfig{
			{ID: "customer_1", Name: "Manufacturing Plant A", Location: "location_a", DemandRate: 1000, InitialInventory: 48000, MinInventory: 24000, MaxInventory: 120000},
			{ID: "customer_2", Name: "Distribution Center B", Location: "location_b", DemandRate: 750, InitialInventory: 36000, MinInventory: 18000, MaxInventory: 90000},
			{ID: "customer_3", Name: "Processing Facility C", Location: "location_c", DemandRate: 1200, InitialInventory: 57600, MinInventory: 28800, MaxInventory: 144000},
		},
		Distances: sim.DistanceMatrix{
			"port_main":  {"port_main": 0, "location_a": 420, "location_b": 650, "location_c": 530},
			"location_a": {"port_main": 420, "location_a": 0, "location_b": 310, "location_c": 275},
			"location_b": {"port_main": 650, "location_a": 310, "location_b": 0, "location_c": 390},
			"location_c": {"port_main": 530, "location_a": 275, "location_b": 390, "location_c": 0},
		},
		Params: sim.DefaultParams(),
	}
}
