// Package sim contains the load models and the simulation engine that
// drives them over a time horizon. A run is a pure function of its
// Config: no randomness, no I/O, no state shared across runs.
package sim

import (
	"time"

	"github.com/yeleshwarapu/energy-dashboard/internal/building"
	"github.com/yeleshwarapu/energy-dashboard/internal/schedule"
)

// Row is one timestep of the result: instantaneous power per
// subsystem, aligned with Result.Columns.
type Row struct {
	Step   building.Timestep
	Values []float64
}

// Result is the full time series produced by a run. Columns are every
// subsystem leaf in a fixed order, solar generation (signed negative)
// last. The analytics layer reads it, never mutates it.
type Result struct {
	Config  building.Config
	Columns []building.Subsystem
	Rows    []Row
}

// ColumnIndex returns the position of a subsystem column, or -1.
func (r *Result) ColumnIndex(sub building.Subsystem) int {
	for i, c := range r.Columns {
		if c == sub {
			return i
		}
	}
	return -1
}

// Run executes a full simulation. Configuration is validated before
// any work begins; on any error the run aborts with no partial result.
func Run(cfg building.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	profile, err := building.ProfileFor(cfg.Season)
	if err != nil {
		return nil, err
	}
	models, err := buildModels(cfg, profile)
	if err != nil {
		return nil, err
	}

	columns := make([]building.Subsystem, len(models))
	for i, m := range models {
		columns[i] = m.Subsystem()
	}

	steps := cfg.Steps()
	res := &Result{
		Config:  cfg,
		Columns: columns,
		Rows:    make([]Row, 0, steps),
	}

	for i := 0; i < steps; i++ {
		minute := i * cfg.StepMinutes
		day := minute / (24 * 60)
		ts := building.Timestep{
			Index:     i,
			Minute:    minute,
			HourOfDay: float64(minute%(24*60)) / 60,
			Day:       day,
			Weekday:   time.Weekday((int(time.Monday) + day) % 7),
			Season:    cfg.Season,
		}

		values := make([]float64, len(models))
		for j, m := range models {
			intensity, err := schedule.Intensity(m.Subsystem(), cfg.Season, ts)
			if err != nil {
				return nil, err
			}
			kw, err := m.PowerDraw(ts, profile, intensity)
			if err != nil {
				return nil, err
			}
			values[j] = kw
		}
		res.Rows = append(res.Rows, Row{Step: ts, Values: values})
	}

	return res, nil
}

// buildModels assembles every load model in column order. The solar
// model comes last so generation is always the final column.
func buildModels(cfg building.Config, profile building.SeasonProfile) ([]LoadModel, error) {
	hvac, err := newHVACComponents(cfg, profile)
	if err != nil {
		return nil, err
	}
	solar, err := newSolarModel(cfg)
	if err != nil {
		return nil, err
	}

	models := append([]LoadModel{}, hvac...)
	models = append(models,
		lightingModel{ratedKW: lightingRatedKW},
		applianceModel{sub: building.SubFridge, ratedKW: fridgeRatedKW},
		applianceModel{sub: building.SubDishwasher, ratedKW: dishwasherRatedKW},
		applianceModel{sub: building.SubMicrowave, ratedKW: microwaveRatedKW},
		applianceModel{sub: building.SubOven, ratedKW: ovenRatedKW},
		applianceModel{sub: building.SubWasher, ratedKW: washerRatedKW},
		applianceModel{sub: building.SubDryer, ratedKW: dryerRatedKW},
		applianceModel{sub: building.SubTV, ratedKW: tvRatedKW},
		applianceModel{sub: building.SubComputer, ratedKW: computerRatedKW},
		evModel{ratedKW: evChargerRatedKW},
		solar,
	)
	return models, nil
}
