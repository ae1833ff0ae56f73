// Package schedule provides the season- and weekday-aware usage tables
// that approximate human behavior for each load category. Lookups are
// pure functions of their inputs; the tables are built once and never
// mutated.
package schedule

import (
	"time"

	"github.com/yeleshwarapu/energy-dashboard/internal/building"
)

type dayMask uint8

func bit(w time.Weekday) dayMask { return 1 << uint(w) }

var (
	maskAll      = dayMask(0x7f)
	maskWeekends = bit(time.Saturday) | bit(time.Sunday)
	maskWeekdays = maskAll &^ maskWeekends
)

// block is one on-period within a day: [Start, End) in hours of day,
// at a fixed intensity level, active on the masked weekdays.
type block struct {
	Start float64
	End   float64
	Level float64
	Days  dayMask
}

type key struct {
	Sub    building.Subsystem
	Season building.Season
}

var table = buildTable()

// Intensity returns the expected usage fraction in [0,1] for a
// subsystem at a point in simulated time. Unknown subsystem/season
// combinations are a ModelError, never a silent zero.
func Intensity(sub building.Subsystem, season building.Season, ts building.Timestep) (float64, error) {
	blocks, ok := table[key{Sub: sub, Season: season}]
	if !ok {
		return 0, &building.ModelError{Subsystem: sub, Season: season, Reason: "no schedule entry"}
	}
	level := 0.0
	for _, b := range blocks {
		if b.Days&bit(ts.Weekday) == 0 {
			continue
		}
		if ts.HourOfDay >= b.Start && ts.HourOfDay < b.End {
			if b.Level > level {
				level = b.Level
			}
		}
	}
	return level, nil
}

func on(start, end float64, days dayMask) block {
	return block{Start: start, End: end, Level: 1, Days: days}
}

func always() []block {
	return []block{on(0, 24, maskAll)}
}

func buildTable() map[key][]block {
	t := make(map[key][]block)
	for _, season := range building.Seasons() {
		profile, err := building.ProfileFor(season)
		if err != nil {
			panic(err) // closed season set, cannot happen
		}
		_, dusk := profile.SolarWindow()

		add := func(sub building.Subsystem, blocks []block) {
			t[key{Sub: sub, Season: season}] = blocks
		}

		// Thermostat-driven and irradiance-driven subsystems are
		// always available; their models decide the actual draw.
		add(building.SubChiller, always())
		add(building.SubPump, always())
		add(building.SubFan, always())
		add(building.SubSolar, always())

		// Lights come on for a short morning block and again from
		// dusk, longer on weekends.
		add(building.SubLighting, []block{
			on(6, 7, maskWeekdays),
			on(5, 7, maskWeekends),
			on(dusk, 22, maskWeekdays),
			on(dusk, 23, maskWeekends),
		})

		// Kitchen: fridge runs continuously, meals drive the rest.
		add(building.SubFridge, always())
		add(building.SubDishwasher, []block{
			on(20, 21, maskAll),
			on(8, 9, maskWeekends),
		})
		add(building.SubMicrowave, []block{
			on(8, 9, maskAll),
			on(13, 14, maskAll),
			on(19, 20, maskAll),
		})
		add(building.SubOven, []block{on(18, 19, maskWeekends)})

		// Laundry concentrates on weekend late mornings; the dryer
		// follows the washer by an hour.
		add(building.SubWasher, []block{on(11, 12, maskWeekends)})
		add(building.SubDryer, []block{on(12, 13, maskWeekends)})

		add(building.SubTV, []block{
			on(19, 22, maskWeekdays),
			on(18, 23, maskWeekends),
		})
		add(building.SubComputer, []block{on(17, 21, maskWeekdays)})

		// EV charges overnight three times a week: plugged in at
		// 22:00 Tue/Thu/Sat, topped up until 04:00 the next morning.
		add(building.SubEVCharger, []block{
			on(22, 24, bit(time.Tuesday)|bit(time.Thursday)|bit(time.Saturday)),
			on(0, 4, bit(time.Wednesday)|bit(time.Friday)|bit(time.Sunday)),
		})
	}
	return t
}
