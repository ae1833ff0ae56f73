package building

import (
	"math"
	"testing"
)

func TestProfileFor(t *testing.T) {
	for _, season := range Seasons() {
		p, err := ProfileFor(season)
		if err != nil {
			t.Fatalf("%s: %v", season, err)
		}
		if p.Season != season {
			t.Errorf("%s: profile carries season %s", season, p.Season)
		}
		if p.MinTempC >= p.MaxTempC {
			t.Errorf("%s: temperature range inverted", season)
		}
		if p.SolarHours <= 0 || p.PricePerKWh <= 0 || p.LightingFactor <= 0 {
			t.Errorf("%s: non-positive profile constant", season)
		}
	}

	if _, err := ProfileFor("autumn"); err == nil {
		t.Error("expected error for unknown season")
	}
}

func TestAmbientTemp(t *testing.T) {
	p, _ := ProfileFor(Summer)

	// Sinusoid peaks at 15:00 and bottoms out at 03:00.
	if got := p.AmbientTemp(15); math.Abs(got-p.MaxTempC) > 1e-9 {
		t.Errorf("AmbientTemp(15) = %.3f, want %.3f", got, p.MaxTempC)
	}
	if got := p.AmbientTemp(3); math.Abs(got-p.MinTempC) > 1e-9 {
		t.Errorf("AmbientTemp(3) = %.3f, want %.3f", got, p.MinTempC)
	}

	// Never leaves the seasonal range.
	for h := 0.0; h < 24; h += 0.25 {
		temp := p.AmbientTemp(h)
		if temp < p.MinTempC-1e-9 || temp > p.MaxTempC+1e-9 {
			t.Fatalf("AmbientTemp(%.2f) = %.3f outside [%.1f, %.1f]", h, temp, p.MinTempC, p.MaxTempC)
		}
	}
}

func TestSolarWindow(t *testing.T) {
	for _, season := range Seasons() {
		p, _ := ProfileFor(season)
		start, end := p.SolarWindow()
		if math.Abs((end-start)-p.SolarHours) > 1e-9 {
			t.Errorf("%s: window width %.2f, want %.2f", season, end-start, p.SolarHours)
		}
		if math.Abs((start+end)/2-12) > 1e-9 {
			t.Errorf("%s: window not centered on noon", season)
		}
	}
}

func TestSubsystemPath(t *testing.T) {
	if got := SubChiller.Path(); got != "HVAC/Chiller" {
		t.Errorf("Path() = %q", got)
	}
	if got := SubLighting.Path(); got != "Lighting" {
		t.Errorf("Path() = %q", got)
	}
	if !SubSolar.Generation() || SubFridge.Generation() {
		t.Error("Generation() misclassified a subsystem")
	}
}
