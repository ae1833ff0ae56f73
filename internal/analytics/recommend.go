package analytics

// Recommendation rule thresholds.
const (
	lowSolarOffsetPct = 20.0
	highPeakKW        = 10.0
	highHVACSharePct  = 50.0
	nightHVACFraction = 0.1 // of total HVAC energy
	highEnergyKWh     = 200.0
)

// Rule is a pure predicate over summary fields. Rules are evaluated in
// a fixed order; each match appends one recommendation.
type Rule struct {
	Name string
	When func(*Summary) bool
	Text string
}

var rules = []Rule{
	{
		Name: "low-solar-offset",
		When: func(s *Summary) bool { return s.SolarOffsetPct < lowSolarOffsetPct },
		Text: "Consider increasing solar capacity to offset more demand.",
	},
	{
		Name: "high-peak",
		When: func(s *Summary) bool { return s.Peak.KW > highPeakKW },
		Text: "Peak load is high; consider shifting flexible loads to off-peak hours.",
	},
	{
		Name: "night-hvac",
		When: func(s *Summary) bool {
			hvac, ok := s.HVACShare()
			if !ok || hvac.KWh <= 0 {
				return false
			}
			return hvac.Percent > highHVACSharePct && s.NightHVACKWh > nightHVACFraction*hvac.KWh
		},
		Text: "Reduce the HVAC setpoint at night to cut heating and cooling costs.",
	},
	{
		Name: "high-energy",
		When: func(s *Summary) bool { return s.TotalEnergyKWh > highEnergyKWh },
		Text: "Overall energy use is high; audit appliances for efficiency.",
	},
}

func recommend(s *Summary) []string {
	var out []string
	for _, r := range rules {
		if r.When(s) {
			out = append(out, r.Text)
		}
	}
	if len(out) == 0 {
		out = append(out, "Energy usage is within typical range.")
	}
	return out
}
