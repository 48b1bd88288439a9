package sim

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownParam is returned when a parameter override names a parameter the
// engine does not know.
var ErrUnknownParam = errors.New("unknown simulation parameter")

// Params holds the named simulation parameters. All times are in simulated
// hours, rates in units per hour.
type Params struct {
	SimulationDuration    float64 `json:"simulation_duration" yaml:"simulation_duration"`
	TimeStep              float64 `json:"time_step" yaml:"time_step"`
	ResupplyThresholdDays float64 `json:"resupply_threshold_days" yaml:"resupply_threshold_days"`
	LoadingRate           float64 `json:"loading_rate" yaml:"loading_rate"`
	UnloadingRate         float64 `json:"unloading_rate" yaml:"unloading_rate"`
	PortResupplyDelay     float64 `json:"port_resupply_delay" yaml:"port_resupply_delay"`
	PortLocation          string  `json:"port_location,omitempty" yaml:"port_location,omitempty"`
	RandomSeed            int64   `json:"random_seed" yaml:"random_seed"`
}

// DefaultParams returns the canonical parameter set: a 30-day run with hourly
// ticks and a 3-day resupply threshold.
func DefaultParams() Params {
	return Params{
		SimulationDuration:    720.0,
		TimeStep:              1.0,
		ResupplyThresholdDays: 3.0,
		LoadingRate:           5000.0,
		UnloadingRate:         4000.0,
		PortResupplyDelay:     12.0,
		PortLocation:          "port_main",
		RandomSeed:            42,
	}
}

// Apply sets a single parameter by its wire name. Values may arrive as any
// numeric type (JSON decodes to float64, SQL rows to strings), so Apply
// coerces before assigning. Unknown names return ErrUnknownParam.
func (p *Params) Apply(name string, value any) error {
	switch name {
	case "simulation_duration":
		return coerceFloat(name, value, &p.SimulationDuration)
	case "time_step":
		return coerceFloat(name, value, &p.TimeStep)
	case "resupply_threshold_days":
		return coerceFloat(name, value, &p.ResupplyThresholdDays)
	case "loading_rate":
		return coerceFloat(name, value, &p.LoadingRate)
	case "unloading_rate":
		return coerceFloat(name, value, &p.UnloadingRate)
	case "port_resupply_delay":
		return coerceFloat(name, value, &p.PortResupplyDelay)
	case "port_location":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("parameter %s: expected string, got %T", name, value)
		}
		p.PortLocation = s
		return nil
	case "random_seed":
		var f float64
		if err := coerceFloat(name, value, &f); err != nil {
			return err
		}
		p.RandomSeed = int64(f)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
}

// Validate rejects parameter sets the engine cannot run. A non-positive
// simulation duration is allowed and yields a zero-length run.
func (p Params) Validate() error {
	if p.TimeStep <= 0 {
		return fmt.Errorf("%w: time_step must be positive, got %v", ErrMalformedConfig, p.TimeStep)
	}
	if p.LoadingRate <= 0 {
		return fmt.Errorf("%w: loading_rate must be positive, got %v", ErrMalformedConfig, p.LoadingRate)
	}
	if p.UnloadingRate <= 0 {
		return fmt.Errorf("%w: unloading_rate must be positive, got %v", ErrMalformedConfig, p.UnloadingRate)
	}
	if p.PortResupplyDelay < 0 {
		return fmt.Errorf("%w: port_resupply_delay must not be negative, got %v", ErrMalformedConfig, p.PortResupplyDelay)
	}
	if p.ResupplyThresholdDays < 0 {
		return fmt.Errorf("%w: resupply_threshold_days must not be negative, got %v", ErrMalformedConfig, p.ResupplyThresholdDays)
	}
	if p.PortLocation == "" {
		return fmt.Errorf("%w: port_location is required", ErrMalformedConfig)
	}
	return nil
}

func coerceFloat(name string, value any, dst *float64) error {
	switch v := value.(type) {
	case float64:
		*dst = v
	case float32:
		*dst = float64(v)
	case int:
		*dst = float64(v)
	case int64:
		*dst = float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parameter %s: cannot parse %q as number: %w", name, v, err)
		}
		*dst = f
	default:
		return fmt.Errorf("parameter %s: expected number, got %T", name, value)
	}
	return nil
}
