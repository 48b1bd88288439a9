package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maritime-sim/maritime-sim/sim"
)

const testScenario = `
name: harbor_test
description: single-ship scenario used by the source tests
ships:
  - id: ship_1
    name: Vessel One
    capacity: 10000
    speed: 25
    initial_location: port_main
    initial_cargo: 8000
customers:
  - id: customer_1
    name: Site Alpha
    location: site_a
    demand_rate: 100
    initial_inventory: 2400
    min_inventory: 1000
    max_inventory: 6000
distances:
  port_main:
    port_main: 0
    site_a: 100
  site_a:
    port_main: 100
    site_a: 0
params:
  simulation_duration: 48
overrides:
  time_step: 0.5
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScenarioSource_LoadsFullSnapshot(t *testing.T) {
	src := NewScenarioSource(writeScenario(t, testScenario))

	cfg, err := LoadConfig(src)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Len(t, cfg.Ships, 1)
	assert.Equal(t, "ship_1", cfg.Ships[0].ID)
	assert.Equal(t, 8000.0, cfg.Ships[0].InitialCargo)
	require.Len(t, cfg.Customers, 1)
	assert.Equal(t, "site_a", cfg.Customers[0].Location)

	d, err := cfg.Distances.Between("port_main", "site_a")
	require.NoError(t, err)
	assert.Equal(t, 100.0, d)
}

func TestScenarioSource_ParamsMergeDefaultsAndOverrides(t *testing.T) {
	src := NewScenarioSource(writeScenario(t, testScenario))

	params, err := src.Params()
	require.NoError(t, err)

	// From the params block.
	assert.Equal(t, 48.0, params.SimulationDuration)
	// From the overrides block.
	assert.Equal(t, 0.5, params.TimeStep)
	// Untouched defaults.
	assert.Equal(t, 5000.0, params.LoadingRate)
	assert.Equal(t, "port_main", params.PortLocation)
}

func TestScenarioSource_UnknownOverrideFails(t *testing.T) {
	src := NewScenarioSource(writeScenario(t, `
name: broken
overrides:
  warp_factor: 9
`))

	_, err := src.Params()
	require.Error(t, err)
	assert.ErrorIs(t, err, sim.ErrUnknownParam)
}

func TestScenarioSource_MissingFileFails(t *testing.T) {
	src := NewScenarioSource(filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := src.Ships()
	assert.Error(t, err)
}

func TestScenarioSource_SaveResultsUsesScenarioName(t *testing.T) {
	path := writeScenario(t, testScenario)
	src := NewScenarioSource(path)
	_, err := src.Ships() // force the lazy load so the name is known
	require.NoError(t, err)

	res := &sim.Results{Metrics: &sim.Metrics{OverallServiceLevel: 1.0}}
	require.NoError(t, src.SaveResults(res))

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), "results_harbor_test_*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
