package building

import "fmt"

// Tunable parameter bounds exposed by the dashboard controls.
const (
	MinSetpointC = 16.0
	MaxSetpointC = 30.0
	MaxDays      = 7
)

// Config is the immutable input for one simulation run.
type Config struct {
	Season          Season  `json:"season"`
	StepMinutes     int     `json:"step_minutes"`
	Days            int     `json:"days"`
	HVACSetpointC   float64 `json:"hvac_setpoint_c"`
	ChillerMaxKW    float64 `json:"chiller_max_kw"`
	SolarCapacityKW float64 `json:"solar_capacity_kw"`
}

// DefaultConfig mirrors the dashboard's initial control values.
func DefaultConfig() Config {
	return Config{
		Season:          Summer,
		StepMinutes:     60,
		Days:            1,
		HVACSetpointC:   25,
		ChillerMaxKW:    2.2,
		SolarCapacityKW: 3.0,
	}
}

// Validate rejects any out-of-range field before simulation starts.
func (c Config) Validate() error {
	if _, err := ProfileFor(c.Season); err != nil {
		return err
	}
	if c.StepMinutes <= 0 {
		return &ConfigError{Field: "step_minutes", Reason: "must be positive"}
	}
	if (24*60)%c.StepMinutes != 0 {
		return &ConfigError{Field: "step_minutes", Reason: fmt.Sprintf("%d does not evenly divide 24 hours", c.StepMinutes)}
	}
	if c.Days < 1 {
		return &ConfigError{Field: "days", Reason: "horizon must be at least one day"}
	}
	if c.Days > MaxDays {
		return &ConfigError{Field: "days", Reason: fmt.Sprintf("horizon is capped at %d days", MaxDays)}
	}
	if c.HVACSetpointC < MinSetpointC || c.HVACSetpointC > MaxSetpointC {
		return &ConfigError{Field: "hvac_setpoint_c", Reason: fmt.Sprintf("must be between %.0f and %.0f", MinSetpointC, MaxSetpointC)}
	}
	if c.ChillerMaxKW < 0 {
		return &ConfigError{Field: "chiller_max_kw", Reason: "must not be negative"}
	}
	if c.SolarCapacityKW < 0 {
		return &ConfigError{Field: "solar_capacity_kw", Reason: "must not be negative"}
	}
	return nil
}

// Steps returns the number of timesteps in the run.
func (c Config) Steps() int {
	return c.Days * 24 * 60 / c.StepMinutes
}

// StepHours returns the step size in hours, the integration factor
// between instantaneous kW and kWh.
func (c Config) StepHours() float64 {
	return float64(c.StepMinutes) / 60
}
