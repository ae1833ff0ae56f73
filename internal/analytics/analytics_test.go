package analytics

import (
	"math"
	"testing"

	"github.com/yeleshwarapu/energy-dashboard/internal/building"
	"github.com/yeleshwarapu/energy-dashboard/internal/sim"
)

func mustSummarize(t *testing.T, cfg building.Config) *Summary {
	t.Helper()
	res, err := sim.Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	s, err := Summarize(res)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	return s
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil); err == nil {
		t.Error("expected error for nil result")
	}
	if _, err := Summarize(&sim.Result{Config: building.DefaultConfig()}); err == nil {
		t.Error("expected error for empty result")
	}
}

func TestSharesSumToTotal(t *testing.T) {
	for _, season := range building.Seasons() {
		t.Run(string(season), func(t *testing.T) {
			cfg := building.DefaultConfig()
			cfg.Season = season
			cfg.Days = 7
			s := mustSummarize(t, cfg)

			var kwh, pct float64
			for _, cs := range s.Shares {
				kwh += cs.KWh
				pct += cs.Percent

				var childKWh float64
				for _, c := range cs.Components {
					childKWh += c.KWh
				}
				if len(cs.Components) > 0 && math.Abs(childKWh-cs.KWh) > 1e-9 {
					t.Errorf("%s: children sum %.4f != parent %.4f", cs.Category, childKWh, cs.KWh)
				}
			}

			if math.Abs(kwh-s.TotalEnergyKWh) > 1e-9 {
				t.Errorf("shares sum %.4f kWh, total %.4f", kwh, s.TotalEnergyKWh)
			}
			if math.Abs(pct-100) > 1e-6 {
				t.Errorf("share percentages sum to %.4f, want 100", pct)
			}
		})
	}
}

func TestSolarOffsetBounds(t *testing.T) {
	tests := []struct {
		name    string
		solarKW float64
	}{
		{"no panels", 0},
		{"default capacity", 3},
		{"oversized array", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := building.DefaultConfig()
			cfg.SolarCapacityKW = tt.solarKW
			s := mustSummarize(t, cfg)

			if s.SolarOffsetPct < 0 || s.SolarOffsetPct > 100 {
				t.Errorf("solar offset %.2f%% outside [0,100]", s.SolarOffsetPct)
			}
			if tt.solarKW == 0 && s.SolarOffsetPct != 0 {
				t.Errorf("offset %.2f%% with no panels", s.SolarOffsetPct)
			}
			if tt.solarKW == 500 && s.SolarOffsetPct != 100 {
				t.Errorf("oversized array offset %.2f%%, want capped 100", s.SolarOffsetPct)
			}
		})
	}
}

func TestTotalCost(t *testing.T) {
	for _, season := range building.Seasons() {
		t.Run(string(season), func(t *testing.T) {
			cfg := building.DefaultConfig()
			cfg.Season = season
			s := mustSummarize(t, cfg)

			profile, _ := building.ProfileFor(season)
			if s.PricePerKWh != profile.PricePerKWh {
				t.Errorf("price %.1f, want %.1f", s.PricePerKWh, profile.PricePerKWh)
			}
			if s.TotalCost != s.TotalEnergyKWh*profile.PricePerKWh {
				t.Errorf("cost %.4f != %.4f kWh x %.1f", s.TotalCost, s.TotalEnergyKWh, profile.PricePerKWh)
			}
		})
	}
}

func TestSummerPeakScenario(t *testing.T) {
	// Summer, hourly steps, one day, setpoint 24 °C, chiller cap 3 kW:
	// the peak must land on HVAC at the hottest hour (15:00) and HVAC
	// must be the largest consumption category.
	cfg := building.Config{
		Season:          building.Summer,
		StepMinutes:     60,
		Days:            1,
		HVACSetpointC:   24,
		ChillerMaxKW:    3,
		SolarCapacityKW: 3,
	}
	s := mustSummarize(t, cfg)

	if s.Peak.Category != building.CategoryHVAC {
		t.Errorf("peak category %s, want HVAC", s.Peak.Category)
	}
	if s.Peak.Step.HourOfDay != 15 {
		t.Errorf("peak at %.2f, want the hottest hour 15:00", s.Peak.Step.HourOfDay)
	}

	hvac, ok := s.HVACShare()
	if !ok {
		t.Fatal("no HVAC share")
	}
	for _, cs := range s.Shares {
		if cs.Category == building.CategoryHVAC || cs.KWh == 0 {
			continue
		}
		if cs.KWh >= hvac.KWh {
			t.Errorf("%s (%.2f kWh) >= HVAC (%.2f kWh)", cs.Category, cs.KWh, hvac.KWh)
		}
	}
}

func TestWinterOffsetBelowSummer(t *testing.T) {
	base := building.Config{
		StepMinutes:     60,
		Days:            1,
		HVACSetpointC:   24,
		ChillerMaxKW:    2.2,
		SolarCapacityKW: 3,
	}

	summer := base
	summer.Season = building.Summer
	winter := base
	winter.Season = building.Winter

	sSummer := mustSummarize(t, summer)
	sWinter := mustSummarize(t, winter)

	if sWinter.SolarOffsetPct >= sSummer.SolarOffsetPct {
		t.Errorf("winter offset %.2f%% not below summer %.2f%%",
			sWinter.SolarOffsetPct, sSummer.SolarOffsetPct)
	}
}

func TestDailyTotals(t *testing.T) {
	cfg := building.DefaultConfig()
	cfg.Days = 7
	s := mustSummarize(t, cfg)

	if len(s.Daily) != 7 {
		t.Fatalf("got %d daily totals, want 7", len(s.Daily))
	}

	var total, solar float64
	for i, d := range s.Daily {
		if d.Day != i {
			t.Errorf("daily[%d].Day = %d", i, d.Day)
		}
		if d.ConsumptionKWh <= 0 {
			t.Errorf("day %d has no consumption", i)
		}
		total += d.ConsumptionKWh
		solar += d.SolarKWh
	}
	if math.Abs(total-s.TotalEnergyKWh) > 1e-9 {
		t.Errorf("daily consumption sums to %.4f, total %.4f", total, s.TotalEnergyKWh)
	}
	if math.Abs(solar-s.SolarKWh) > 1e-9 {
		t.Errorf("daily solar sums to %.4f, total %.4f", solar, s.SolarKWh)
	}
}

func TestNightHVACWinter(t *testing.T) {
	// Winter heating runs hard overnight, so the night window must
	// account for a nonzero slice of HVAC energy.
	cfg := building.DefaultConfig()
	cfg.Season = building.Winter
	cfg.HVACSetpointC = 24
	s := mustSummarize(t, cfg)

	if s.NightHVACKWh <= 0 {
		t.Error("no night-time HVAC energy in winter")
	}
	hvac, _ := s.HVACShare()
	if s.NightHVACKWh > hvac.KWh {
		t.Errorf("night HVAC %.2f exceeds total HVAC %.2f", s.NightHVACKWh, hvac.KWh)
	}
}
