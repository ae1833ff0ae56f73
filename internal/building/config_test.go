package building

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "default config is valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "15 minute steps over 7 days",
			mutate: func(c *Config) { c.StepMinutes = 15; c.Days = 7 },
		},
		{
			name:    "unknown season",
			mutate:  func(c *Config) { c.Season = "monsoon" },
			wantErr: true,
		},
		{
			name:    "zero step",
			mutate:  func(c *Config) { c.StepMinutes = 0 },
			wantErr: true,
		},
		{
			name:    "step does not divide 24 hours",
			mutate:  func(c *Config) { c.StepMinutes = 7 },
			wantErr: true,
		},
		{
			name:    "zero day horizon",
			mutate:  func(c *Config) { c.Days = 0 },
			wantErr: true,
		},
		{
			name:    "horizon beyond cap",
			mutate:  func(c *Config) { c.Days = 30 },
			wantErr: true,
		},
		{
			name:    "setpoint below range",
			mutate:  func(c *Config) { c.HVACSetpointC = 5 },
			wantErr: true,
		},
		{
			name:    "negative chiller max",
			mutate:  func(c *Config) { c.ChillerMaxKW = -1 },
			wantErr: true,
		},
		{
			name:    "negative solar capacity",
			mutate:  func(c *Config) { c.SolarCapacityKW = -0.5 },
			wantErr: true,
		},
		{
			name:   "chiller max of zero is allowed",
			mutate: func(c *Config) { c.ChillerMaxKW = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("error %v is not ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigSteps(t *testing.T) {
	tests := []struct {
		name string
		step int
		days int
		want int
	}{
		{"1 day hourly", 60, 1, 24},
		{"1 day 15 min", 15, 1, 96},
		{"7 days hourly", 60, 7, 168},
		{"7 days 15 min", 15, 7, 672},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.StepMinutes = tt.step
			cfg.Days = tt.days
			if got := cfg.Steps(); got != tt.want {
				t.Errorf("Steps() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConfigErrorField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChillerMaxKW = -2

	err := cfg.Validate()
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cerr.Field != "chiller_max_kw" {
		t.Errorf("Field = %q, want chiller_max_kw", cerr.Field)
	}
}
