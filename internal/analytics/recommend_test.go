package analytics

import (
	"strings"
	"testing"

	"github.com/yeleshwarapu/energy-dashboard/internal/building"
)

func summaryWith(mutate func(*Summary)) *Summary {
	s := &Summary{
		SolarOffsetPct: 50,
		TotalEnergyKWh: 30,
		Peak:           Peak{KW: 4, Category: building.CategoryHVAC},
		Shares: []CategoryShare{
			{Category: building.CategoryHVAC, KWh: 10, Percent: 33},
			{Category: building.CategoryKitchen, KWh: 20, Percent: 67},
		},
	}
	mutate(s)
	return s
}

func TestRecommendRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Summary)
		want   string
	}{
		{
			name:   "low solar offset",
			mutate: func(s *Summary) { s.SolarOffsetPct = 10 },
			want:   "solar capacity",
		},
		{
			name:   "high peak",
			mutate: func(s *Summary) { s.Peak.KW = 12 },
			want:   "off-peak",
		},
		{
			name: "night hvac",
			mutate: func(s *Summary) {
				s.Shares[0] = CategoryShare{Category: building.CategoryHVAC, KWh: 40, Percent: 60}
				s.NightHVACKWh = 8
			},
			want: "setpoint at night",
		},
		{
			name:   "high energy",
			mutate: func(s *Summary) { s.TotalEnergyKWh = 250 },
			want:   "audit appliances",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := recommend(summaryWith(tt.mutate))
			for _, r := range recs {
				if strings.Contains(r, tt.want) {
					return
				}
			}
			t.Errorf("no recommendation containing %q in %v", tt.want, recs)
		})
	}
}

func TestRecommendFallback(t *testing.T) {
	recs := recommend(summaryWith(func(s *Summary) {}))
	if len(recs) != 1 || !strings.Contains(recs[0], "typical range") {
		t.Errorf("expected only the fallback recommendation, got %v", recs)
	}
}

func TestRecommendOrderIsFixed(t *testing.T) {
	s := summaryWith(func(s *Summary) {
		s.SolarOffsetPct = 5
		s.Peak.KW = 15
		s.TotalEnergyKWh = 300
	})

	a := recommend(s)
	b := recommend(s)
	if len(a) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("recommendation order is not deterministic")
		}
	}
	if !strings.Contains(a[0], "solar") {
		t.Errorf("first rule should be the solar rule, got %q", a[0])
	}
}

func TestHVACNightRulePredicate(t *testing.T) {
	// The rule needs both a dominant HVAC share and meaningful
	// night-time energy; either alone must not fire it.
	onlyShare := summaryWith(func(s *Summary) {
		s.Shares[0] = CategoryShare{Category: building.CategoryHVAC, KWh: 40, Percent: 60}
		s.NightHVACKWh = 0
	})
	for _, r := range recommend(onlyShare) {
		if strings.Contains(r, "setpoint at night") {
			t.Error("rule fired without night energy")
		}
	}

	onlyNight := summaryWith(func(s *Summary) {
		s.NightHVACKWh = 5
	})
	for _, r := range recommend(onlyNight) {
		if strings.Contains(r, "setpoint at night") {
			t.Error("rule fired without dominant HVAC share")
		}
	}
}
