package sim

import (
	"github.com/yeleshwarapu/energy-dashboard/internal/building"
)

// Rated powers (kW) of the fixed building loads.
const (
	lightingRatedKW   = 0.7
	fridgeRatedKW     = 0.18
	dishwasherRatedKW = 1.2
	microwaveRatedKW  = 1.2
	ovenRatedKW       = 2.5
	washerRatedKW     = 0.5
	dryerRatedKW      = 4.0
	tvRatedKW         = 0.15
	computerRatedKW   = 0.1
	evChargerRatedKW  = 7.0
)

// LoadModel is the shared capability of every subsystem model: given a
// timestep, the active season profile and the schedule intensity for
// its subsystem, produce an instantaneous power draw in kW. Models are
// stateless values; tunable parameters are validated at construction.
type LoadModel interface {
	Subsystem() building.Subsystem
	PowerDraw(ts building.Timestep, profile building.SeasonProfile, intensity float64) (float64, error)
}

// applianceModel is a scheduled on/off or variable-intensity load with
// a fixed power rating (fridge, dishwasher, TV, ...).
type applianceModel struct {
	sub     building.Subsystem
	ratedKW float64
}

func (m applianceModel) Subsystem() building.Subsystem { return m.sub }

func (m applianceModel) PowerDraw(_ building.Timestep, _ building.SeasonProfile, intensity float64) (float64, error) {
	return intensity * m.ratedKW, nil
}

// lightingModel scales the scheduled intensity by the seasonal
// lighting multiplier (shorter winter daylight raises usage).
type lightingModel struct {
	ratedKW float64
}

func (m lightingModel) Subsystem() building.Subsystem { return building.SubLighting }

func (m lightingModel) PowerDraw(_ building.Timestep, profile building.SeasonProfile, intensity float64) (float64, error) {
	return intensity * m.ratedKW * profile.LightingFactor, nil
}

// evModel draws the full charger rating whenever the charging window
// is scheduled on. There is no partial-intensity charging.
type evModel struct {
	ratedKW float64
}

func (m evModel) Subsystem() building.Subsystem { return building.SubEVCharger }

func (m evModel) PowerDraw(_ building.Timestep, _ building.SeasonProfile, intensity float64) (float64, error) {
	if intensity > 0 {
		return m.ratedKW, nil
	}
	return 0, nil
}
