package building

import (
	"fmt"
	"math"
)

// Season selects the seasonal profile for a simulation run
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
	Winter Season = "winter"
)

// HVACMode defines how the HVAC plant responds to the temperature gap
type HVACMode string

const (
	ModeCool HVACMode = "cool" // draw rises as ambient exceeds setpoint
	ModeHeat HVACMode = "heat" // draw rises as ambient falls below setpoint
	ModeMild HVACMode = "mild" // cooling with reduced duty-cycle response
)

// SeasonProfile holds the season-specific constants that parameterize
// every load model for a run. One immutable profile per season.
type SeasonProfile struct {
	Season         Season
	MinTempC       float64
	MaxTempC       float64
	SolarHours     float64 // daily solar-available window, centered on noon
	PricePerKWh    float64 // ₹ per kWh
	LightingFactor float64
	Mode           HVACMode
}

var profiles = map[Season]SeasonProfile{
	Summer: {Season: Summer, MinTempC: 22, MaxTempC: 34, SolarHours: 10, PricePerKWh: 9, LightingFactor: 1.0, Mode: ModeCool},
	Winter: {Season: Winter, MinTempC: 5, MaxTempC: 16, SolarHours: 7, PricePerKWh: 10, LightingFactor: 1.3, Mode: ModeHeat},
	Spring: {Season: Spring, MinTempC: 15, MaxTempC: 25, SolarHours: 10, PricePerKWh: 8, LightingFactor: 1.0, Mode: ModeMild},
	Fall:   {Season: Fall, MinTempC: 14, MaxTempC: 24, SolarHours: 9, PricePerKWh: 8, LightingFactor: 1.0, Mode: ModeMild},
}

// ProfileFor returns the immutable profile for a season.
func ProfileFor(s Season) (SeasonProfile, error) {
	p, ok := profiles[s]
	if !ok {
		return SeasonProfile{}, &ConfigError{Field: "season", Reason: fmt.Sprintf("unknown season %q", s)}
	}
	return p, nil
}

// Seasons lists all supported seasons in calendar order.
func Seasons() []Season {
	return []Season{Spring, Summer, Fall, Winter}
}

// AmbientTemp returns the outdoor temperature at a time of day, a
// sinusoid over the season's range peaking at 15:00 and bottoming
// out at 03:00.
func (p SeasonProfile) AmbientTemp(hourOfDay float64) float64 {
	mid := (p.MinTempC + p.MaxTempC) / 2
	amp := (p.MaxTempC - p.MinTempC) / 2
	return mid + amp*math.Sin(2*math.Pi*(hourOfDay-9)/24)
}

// SolarWindow returns the start and end hour of the solar-available
// window, centered on noon.
func (p SeasonProfile) SolarWindow() (start, end float64) {
	start = 12 - p.SolarHours/2
	return start, start + p.SolarHours
}
