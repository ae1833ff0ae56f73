package sim

import (
	"github.com/yeleshwarapu/energy-dashboard/internal/building"
)

// hvacParams are the tunables shared by all HVAC components.
type hvacParams struct {
	Mode         building.HVACMode
	SetpointC    float64
	ChillerMaxKW float64
}

// hvacComponent models one part of the HVAC plant (chiller, pump or
// fan). Draw follows the gap between ambient temperature and the
// thermostat setpoint: duty = clamp(alpha * gap, 0, 1), clamped to the
// component's maximum power. A chiller cap of zero means the plant is
// off, so the pump and fan report zero as well.
type hvacComponent struct {
	sub    building.Subsystem
	maxKW  float64
	alpha  float64
	params hvacParams
}

func (m hvacComponent) Subsystem() building.Subsystem { return m.sub }

func (m hvacComponent) PowerDraw(ts building.Timestep, profile building.SeasonProfile, _ float64) (float64, error) {
	if m.params.ChillerMaxKW == 0 {
		return 0, nil
	}
	ambient := profile.AmbientTemp(ts.HourOfDay)
	gap := ambient - m.params.SetpointC
	if m.params.Mode == building.ModeHeat {
		gap = m.params.SetpointC - ambient
	}
	duty := m.alpha * gap
	if duty < 0 {
		duty = 0
	}
	if duty > 1 {
		duty = 1
	}
	return duty * m.maxKW, nil
}

// newHVACComponents builds the chiller, pump and fan for the season's
// operating mode. Mild seasons run smaller auxiliaries with a lower
// duty-cycle response.
func newHVACComponents(cfg building.Config, profile building.SeasonProfile) ([]LoadModel, error) {
	if cfg.ChillerMaxKW < 0 {
		return nil, &building.ConfigError{Field: "chiller_max_kw", Reason: "must not be negative"}
	}
	if cfg.HVACSetpointC < building.MinSetpointC || cfg.HVACSetpointC > building.MaxSetpointC {
		return nil, &building.ConfigError{Field: "hvac_setpoint_c", Reason: "outside thermostat range"}
	}
	params := hvacParams{
		Mode:         profile.Mode,
		SetpointC:    cfg.HVACSetpointC,
		ChillerMaxKW: cfg.ChillerMaxKW,
	}

	chillerAlpha, pumpKW, pumpAlpha, fanKW, fanAlpha := 0.07, 0.15, 0.07, 0.4, 0.10
	if params.Mode == building.ModeMild {
		chillerAlpha, pumpKW, pumpAlpha, fanKW, fanAlpha = 0.03, 0.05, 0.03, 0.2, 0.05
	}

	return []LoadModel{
		hvacComponent{sub: building.SubChiller, maxKW: cfg.ChillerMaxKW, alpha: chillerAlpha, params: params},
		hvacComponent{sub: building.SubPump, maxKW: pumpKW, alpha: pumpAlpha, params: params},
		hvacComponent{sub: building.SubFan, maxKW: fanKW, alpha: fanAlpha, params: params},
	}, nil
}
