package airshow

import (
	"testing"
	"time"
)

func TestValidateAndParseDefaults(t *testing.T) {
	cfg, err := ValidateAndParse(map[string]interface{}{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.NumDrones != 9 {
		t.Errorf("NumDrones = %d, want 9", cfg.NumDrones)
	}
	if cfg.TickRateHz != 240 {
		t.Errorf("TickRateHz = %d, want 240", cfg.TickRateHz)
	}
	if cfg.SpeedMultiplier != 4.0 {
		t.Errorf("SpeedMultiplier = %v, want 4.0", cfg.SpeedMultiplier)
	}
	if cfg.PhaseDuration != 8*time.Second {
		t.Errorf("PhaseDuration = %v, want 8s", cfg.PhaseDuration)
	}
	if cfg.RealTime {
		t.Error("RealTime should default to false")
	}
}

func TestValidateAndParseOverrides(t *testing.T) {
	cfg, err := ValidateAndParse(map[string]interface{}{
		"num_drones":       4,
		"tick_rate_hz":     120,
		"speed_multiplier": 1,
		"phase_duration":   "30s",
		"spacing":          0.8,
		"altitude":         2.0,
		"report_interval":  5 * time.Second,
		"real_time":        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.NumDrones != 4 {
		t.Errorf("NumDrones = %d, want 4", cfg.NumDrones)
	}
	if cfg.TickRateHz != 120 {
		t.Errorf("TickRateHz = %d, want 120", cfg.TickRateHz)
	}
	if cfg.SpeedMultiplier != 1.0 {
		t.Errorf("SpeedMultiplier = %v, want 1.0", cfg.SpeedMultiplier)
	}
	if cfg.PhaseDuration != 30*time.Second {
		t.Errorf("PhaseDuration = %v, want 30s", cfg.PhaseDuration)
	}
	if cfg.Spacing != 0.8 {
		t.Errorf("Spacing = %v, want 0.8", cfg.Spacing)
	}
	if cfg.Altitude != 2.0 {
		t.Errorf("Altitude = %v, want 2.0", cfg.Altitude)
	}
	if cfg.ReportInterval != 5*time.Second {
		t.Errorf("ReportInterval = %v, want 5s", cfg.ReportInterval)
	}
	if !cfg.RealTime {
		t.Error("RealTime = false, want true")
	}
}

func TestValidateAndParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]interface{}
	}{
		{"zero drones", map[string]interface{}{"num_drones": 0}},
		{"drone type", map[string]interface{}{"num_drones": "nine"}},
		{"zero tick rate", map[string]interface{}{"tick_rate_hz": 0}},
		{"negative speed", map[string]interface{}{"speed_multiplier": -1.0}},
		{"bad phase duration", map[string]interface{}{"phase_duration": "forever"}},
		{"zero spacing", map[string]interface{}{"spacing": 0.0}},
		{"zero altitude", map[string]interface{}{"altitude": 0}},
		{"bad real_time", map[string]interface{}{"real_time": 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParse(tt.params); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
