// Package analytics derives summary statistics and recommendations
// from a completed simulation result. Everything here is recomputed
// fresh per run; the result itself is never mutated.
package analytics

import (
	"errors"

	"github.com/yeleshwarapu/energy-dashboard/internal/building"
	"github.com/yeleshwarapu/energy-dashboard/internal/sim"
)

var ErrEmptyResult = errors.New("simulation result has no rows")

// Peak is the timestep and category with the maximum instantaneous
// non-solar power. Ties go to the earliest timestep.
type Peak struct {
	KW       float64           `json:"kw"`
	Step     building.Timestep `json:"step"`
	Category building.Category `json:"category"`
}

// ComponentShare is one leaf's integrated energy and its percentage of
// total non-solar consumption.
type ComponentShare struct {
	Subsystem building.Subsystem `json:"subsystem"`
	KWh       float64            `json:"kwh"`
	Percent   float64            `json:"percent"`
}

// CategoryShare aggregates a top-level category; its total equals the
// sum of its components.
type CategoryShare struct {
	Category   building.Category `json:"category"`
	KWh        float64           `json:"kwh"`
	Percent    float64           `json:"percent"`
	Components []ComponentShare  `json:"components,omitempty"`
}

// DailyEnergy is one simulated day's consumption and generation,
// feeding the daily bar chart.
type DailyEnergy struct {
	Day            int     `json:"day"`
	ConsumptionKWh float64 `json:"consumption_kwh"`
	SolarKWh       float64 `json:"solar_kwh"`
}

// Summary is the derived analytics for one run.
type Summary struct {
	Peak            Peak            `json:"peak"`
	Shares          []CategoryShare `json:"shares"`
	SolarOffsetPct  float64         `json:"solar_offset_pct"`
	TotalEnergyKWh  float64         `json:"total_energy_kwh"`
	SolarKWh        float64         `json:"solar_kwh"`
	PricePerKWh     float64         `json:"price_per_kwh"`
	TotalCost       float64         `json:"total_cost"`
	NightHVACKWh    float64         `json:"night_hvac_kwh"`
	Daily           []DailyEnergy   `json:"daily"`
	Recommendations []string        `json:"recommendations"`
}

// nightEndHour bounds the night window (00:00 up to 07:00) used for
// the night-time HVAC rule.
const nightEndHour = 7.0

// Summarize computes the full analytics summary for a result.
func Summarize(res *sim.Result) (*Summary, error) {
	if res == nil || len(res.Rows) == 0 {
		return nil, ErrEmptyResult
	}
	profile, err := building.ProfileFor(res.Config.Season)
	if err != nil {
		return nil, err
	}
	stepHours := res.Config.StepHours()

	// Integrate each column (rectangular rule, consistent with the
	// fixed step size).
	colKWh := make([]float64, len(res.Columns))
	for _, row := range res.Rows {
		for i, kw := range row.Values {
			colKWh[i] += kw * stepHours
		}
	}

	var totalKWh, solarKWh float64
	for i, sub := range res.Columns {
		if sub.Generation() {
			solarKWh += -colKWh[i]
		} else {
			totalKWh += colKWh[i]
		}
	}

	s := &Summary{
		TotalEnergyKWh: totalKWh,
		SolarKWh:       solarKWh,
		PricePerKWh:    profile.PricePerKWh,
		TotalCost:      totalKWh * profile.PricePerKWh,
		Peak:           findPeak(res),
		Shares:         categoryShares(res.Columns, colKWh, totalKWh),
		NightHVACKWh:   nightHVAC(res, stepHours),
		Daily:          dailyTotals(res, stepHours),
	}

	if totalKWh > 0 {
		s.SolarOffsetPct = solarKWh / totalKWh * 100
	}
	if s.SolarOffsetPct > 100 {
		s.SolarOffsetPct = 100 // excess generation is not negative offset
	}
	if s.SolarOffsetPct < 0 {
		s.SolarOffsetPct = 0
	}

	s.Recommendations = recommend(s)
	return s, nil
}

// findPeak scans every timestep for the category with the highest
// instantaneous non-solar power. Strict comparison keeps the earliest
// timestep on ties.
func findPeak(res *sim.Result) Peak {
	var peak Peak
	for _, row := range res.Rows {
		perCategory := map[building.Category]float64{}
		for i, sub := range res.Columns {
			if sub.Generation() {
				continue
			}
			perCategory[sub.Category] += row.Values[i]
		}
		// Deterministic category order: walk columns, not the map.
		seen := map[building.Category]bool{}
		for _, sub := range res.Columns {
			if sub.Generation() || seen[sub.Category] {
				continue
			}
			seen[sub.Category] = true
			if kw := perCategory[sub.Category]; kw > peak.KW {
				peak = Peak{KW: kw, Step: row.Step, Category: sub.Category}
			}
		}
	}
	return peak
}

func categoryShares(columns []building.Subsystem, colKWh []float64, totalKWh float64) []CategoryShare {
	var order []building.Category
	byCat := map[building.Category]*CategoryShare{}

	pct := func(kwh float64) float64 {
		if totalKWh <= 0 {
			return 0
		}
		return kwh / totalKWh * 100
	}

	for i, sub := range columns {
		if sub.Generation() {
			continue
		}
		cs, ok := byCat[sub.Category]
		if !ok {
			cs = &CategoryShare{Category: sub.Category}
			byCat[sub.Category] = cs
			order = append(order, sub.Category)
		}
		cs.KWh += colKWh[i]
		if sub.Component != "" {
			cs.Components = append(cs.Components, ComponentShare{
				Subsystem: sub,
				KWh:       colKWh[i],
				Percent:   pct(colKWh[i]),
			})
		}
	}

	shares := make([]CategoryShare, 0, len(order))
	for _, cat := range order {
		cs := byCat[cat]
		cs.Percent = pct(cs.KWh)
		shares = append(shares, *cs)
	}
	return shares
}

func nightHVAC(res *sim.Result, stepHours float64) float64 {
	var kwh float64
	for _, row := range res.Rows {
		if row.Step.HourOfDay >= nightEndHour {
			continue
		}
		for i, sub := range res.Columns {
			if sub.Category == building.CategoryHVAC {
				kwh += row.Values[i] * stepHours
			}
		}
	}
	return kwh
}

func dailyTotals(res *sim.Result, stepHours float64) []DailyEnergy {
	daily := make([]DailyEnergy, res.Config.Days)
	for _, row := range res.Rows {
		d := row.Step.Day
		if d < 0 || d >= len(daily) {
			continue
		}
		daily[d].Day = d
		for i, sub := range res.Columns {
			kwh := row.Values[i] * stepHours
			if sub.Generation() {
				daily[d].SolarKWh += -kwh
			} else {
				daily[d].ConsumptionKWh += kwh
			}
		}
	}
	return daily
}

// HVACShare returns the HVAC category's share of total consumption.
func (s *Summary) HVACShare() (CategoryShare, bool) {
	for _, cs := range s.Shares {
		if cs.Category == building.CategoryHVAC {
			return cs, true
		}
	}
	return CategoryShare{}, false
}
