package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams_Values(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 720.0, p.SimulationDuration)
	assert.Equal(t, 1.0, p.TimeStep)
	assert.Equal(t, 3.0, p.ResupplyThresholdDays)
	assert.Equal(t, 5000.0, p.LoadingRate)
	assert.Equal(t, 4000.0, p.UnloadingRate)
	assert.Equal(t, 12.0, p.PortResupplyDelay)
	assert.Equal(t, "port_main", p.PortLocation)
	assert.Equal(t, int64(42), p.RandomSeed)
}

func TestParams_Apply_CoercesNumericTypes(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "float64", value: 48.0},
		{name: "float32", value: float32(48)},
		{name: "int", value: 48},
		{name: "int64", value: int64(48)},
		{name: "string", value: "48"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			require.NoError(t, p.Apply("simulation_duration", tt.value))
			assert.Equal(t, 48.0, p.SimulationDuration)
		})
	}
}

func TestParams_Apply_AllNames(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Apply("time_step", 0.5))
	require.NoError(t, p.Apply("resupply_threshold_days", 2.0))
	require.NoError(t, p.Apply("loading_rate", 6000.0))
	require.NoError(t, p.Apply("unloading_rate", 3000.0))
	require.NoError(t, p.Apply("port_resupply_delay", 6.0))
	require.NoError(t, p.Apply("port_location", "port_west"))
	require.NoError(t, p.Apply("random_seed", 7))

	assert.Equal(t, 0.5, p.TimeStep)
	assert.Equal(t, 2.0, p.ResupplyThresholdDays)
	assert.Equal(t, 6000.0, p.LoadingRate)
	assert.Equal(t, 3000.0, p.UnloadingRate)
	assert.Equal(t, 6.0, p.PortResupplyDelay)
	assert.Equal(t, "port_west", p.PortLocation)
	assert.Equal(t, int64(7), p.RandomSeed)
}

func TestParams_Apply_UnknownNameFails(t *testing.T) {
	p := DefaultParams()
	err := p.Apply("warp_factor", 9.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownParam))
}

func TestParams_Apply_BadValuesFail(t *testing.T) {
	p := DefaultParams()
	assert.Error(t, p.Apply("time_step", "not a number"))
	assert.Error(t, p.Apply("time_step", []int{1}))
	assert.Error(t, p.Apply("port_location", 42))
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		ok     bool
	}{
		{name: "defaults", mutate: func(p *Params) {}, ok: true},
		{name: "zero duration allowed", mutate: func(p *Params) { p.SimulationDuration = 0 }, ok: true},
		{name: "zero time step", mutate: func(p *Params) { p.TimeStep = 0 }, ok: false},
		{name: "negative loading rate", mutate: func(p *Params) { p.LoadingRate = -1 }, ok: false},
		{name: "zero unloading rate", mutate: func(p *Params) { p.UnloadingRate = 0 }, ok: false},
		{name: "negative port delay", mutate: func(p *Params) { p.PortResupplyDelay = -1 }, ok: false},
		{name: "negative threshold", mutate: func(p *Params) { p.ResupplyThresholdDays = -0.5 }, ok: false},
		{name: "missing port location", mutate: func(p *Params) { p.PortLocation = "" }, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedConfig))
			}
		})
	}
}
