package sim

import (
	"math"

	"github.com/yeleshwarapu/energy-dashboard/internal/building"
)

// solarModel reports generation as a negative, offsetting power: a
// bell-shaped curve over the season's solar-available window, scaled
// by the rated panel capacity, zero outside the window.
type solarModel struct {
	capacityKW float64
}

func newSolarModel(cfg building.Config) (solarModel, error) {
	if cfg.SolarCapacityKW < 0 {
		return solarModel{}, &building.ConfigError{Field: "solar_capacity_kw", Reason: "must not be negative"}
	}
	return solarModel{capacityKW: cfg.SolarCapacityKW}, nil
}

func (m solarModel) Subsystem() building.Subsystem { return building.SubSolar }

func (m solarModel) PowerDraw(ts building.Timestep, profile building.SeasonProfile, intensity float64) (float64, error) {
	start, end := profile.SolarWindow()
	h := ts.HourOfDay
	if h < start || h >= end || end <= start {
		return 0, nil
	}
	bell := math.Sin(math.Pi * (h - start) / (end - start))
	return -m.capacityKW * bell * intensity, nil
}
