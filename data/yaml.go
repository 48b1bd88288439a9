package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/maritime-sim/maritime-sim/sim"
)

// Scenario is a single-file YAML description of a run: a full configuration
// snapshot plus an optional named set of parameter overrides, the way study
// scenarios are versioned and compared.
type Scenario struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Ships       []sim.ShipConfig     `yaml:"ships"`
	Customers   []sim.CustomerConfig `yaml:"customers"`
	Distances   sim.DistanceMatrix   `yaml:"distances"`
	Params      sim.Params           `yaml:"params"`
	Overrides   map[string]any       `yaml:"overrides,omitempty"`
}

// ScenarioSource reads the configuration snapshot from one scenario YAML
// file. Results documents are written as JSON next to the scenario.
type ScenarioSource struct {
	Path string

	scenario *Scenario
}

// NewScenarioSource points at a scenario file; it is read lazily on first
// access.
func NewScenarioSource(path string) *ScenarioSource {
	return &ScenarioSource{Path: path}
}

func (s *ScenarioSource) load() (*Scenario, error) {
	if s.scenario != nil {
		return s.scenario, nil
	}
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	// Pre-populate defaults so a partial params block only overrides what it
	// names.
	scenario := &Scenario{Params: sim.DefaultParams()}
	if err := yaml.Unmarshal(raw, scenario); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", s.Path, err)
	}
	s.scenario = scenario
	return scenario, nil
}

// Ships returns the scenario fleet.
func (s *ScenarioSource) Ships() ([]sim.ShipConfig, error) {
	scenario, err := s.load()
	if err != nil {
		return nil, err
	}
	return scenario.Ships, nil
}

// Customers returns the scenario customer sites.
func (s *ScenarioSource) Customers() ([]sim.CustomerConfig, error) {
	scenario, err := s.load()
	if err != nil {
		return nil, err
	}
	return scenario.Customers, nil
}

// Distances returns the scenario distance matrix.
func (s *ScenarioSource) Distances() (sim.DistanceMatrix, error) {
	scenario, err := s.load()
	if err != nil {
		return nil, err
	}
	return scenario.Distances, nil
}

// Params returns the scenario parameters with the scenario's own overrides
// applied on top.
func (s *ScenarioSource) Params() (sim.Params, error) {
	scenario, err := s.load()
	if err != nil {
		return sim.Params{}, err
	}
	params := scenario.Params
	for name, value := range scenario.Overrides {
		if err := params.Apply(name, value); err != nil {
			return sim.Params{}, fmt.Errorf("scenario override: %w", err)
		}
	}
	return params, nil
}

// SaveResults writes the results document as results_<scenario>_<timestamp>.json
// beside the scenario file.
func (s *ScenarioSource) SaveResults(res *sim.Results) error {
	name := "scenario"
	if s.scenario != nil && s.scenario.Name != "" {
		name = s.scenario.Name
	}
	raw, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	path := filepath.Join(filepath.Dir(s.Path),
		fmt.Sprintf("results_%s_%s.json", name, time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	logrus.Infof("results saved to %s", path)
	return nil
}
