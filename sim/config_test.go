package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate_AcceptsBaseline(t *testing.T) {
	assert.NoError(t, testConfig().Validate())
}

func TestConfig_Validate_RejectsMalformedSnapshots(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "ship missing id", mutate: func(c *Config) { c.Ships[0].ID = "" }},
		{name: "ship missing name", mutate: func(c *Config) { c.Ships[0].Name = "" }},
		{name: "ship missing location", mutate: func(c *Config) { c.Ships[0].InitialLocation = "" }},
		{name: "ship zero capacity", mutate: func(c *Config) { c.Ships[0].Capacity = 0 }},
		{name: "ship negative speed", mutate: func(c *Config) { c.Ships[0].Speed = -10 }},
		{name: "ship negative cargo", mutate: func(c *Config) { c.Ships[0].InitialCargo = -1 }},
		{name: "duplicate ship id", mutate: func(c *Config) { c.Ships = append(c.Ships, c.Ships[0]) }},
		{name: "customer missing id", mutate: func(c *Config) { c.Customers[0].ID = "" }},
		{name: "customer missing location", mutate: func(c *Config) { c.Customers[0].Location = "" }},
		{name: "customer negative demand", mutate: func(c *Config) { c.Customers[0].DemandRate = -5 }},
		{name: "customer zero max inventory", mutate: func(c *Config) { c.Customers[0].MaxInventory = 0 }},
		{name: "customer min above max", mutate: func(c *Config) { c.Customers[0].MinInventory = 7000 }},
		{name: "customer negative inventory", mutate: func(c *Config) { c.Customers[0].InitialInventory = -1 }},
		{name: "duplicate customer id", mutate: func(c *Config) { c.Customers = append(c.Customers, c.Customers[0]) }},
		{name: "negative distance", mutate: func(c *Config) { c.Distances["port_main"]["site_a"] = -100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedConfig), "want ErrMalformedConfig, got %v", err)
		})
	}
}

func TestDistanceMatrix_Between(t *testing.T) {
	m := DistanceMatrix{"port_main": {"site_a": 100}}

	d, err := m.Between("port_main", "site_a")
	require.NoError(t, err)
	assert.Equal(t, 100.0, d)

	_, err = m.Between("port_main", "site_b")
	assert.True(t, errors.Is(err, ErrRouteNotFound))

	_, err = m.Between("site_b", "port_main")
	assert.True(t, errors.Is(err, ErrRouteNotFound))
}
