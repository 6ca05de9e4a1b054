package patrol

import (
	"testing"
	"time"
)

func TestValidateAndParseDefaults(t *testing.T) {
	cfg, err := ValidateAndParse(map[string]interface{}{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.NumDrones != 6 {
		t.Errorf("NumDrones = %d, want 6", cfg.NumDrones)
	}
	if cfg.Duration != 2*time.Minute {
		t.Errorf("Duration = %v, want 2m", cfg.Duration)
	}
	if cfg.CenterZ != 1.5 {
		t.Errorf("CenterZ = %v, want 1.5", cfg.CenterZ)
	}
	if cfg.BatteryDrainRate != 0.5 {
		t.Errorf("BatteryDrainRate = %v, want 0.5", cfg.BatteryDrainRate)
	}
}

func TestValidateAndParseCenter(t *testing.T) {
	cfg, err := ValidateAndParse(map[string]interface{}{
		"center_x": 2.0,
		"center_y": -3,
		"center_z": 2.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.CenterX != 2.0 || cfg.CenterY != -3.0 || cfg.CenterZ != 2.5 {
		t.Errorf("center = (%v, %v, %v), want (2, -3, 2.5)", cfg.CenterX, cfg.CenterY, cfg.CenterZ)
	}
}

func TestValidateAndParseDrainRate(t *testing.T) {
	cfg, err := ValidateAndParse(map[string]interface{}{"battery_drain_rate": 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BatteryDrainRate != 2.0 {
		t.Errorf("BatteryDrainRate = %v, want 2.0", cfg.BatteryDrainRate)
	}

	// Zero drain is allowed for endless patrols
	cfg, err = ValidateAndParse(map[string]interface{}{"battery_drain_rate": 0.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BatteryDrainRate != 0 {
		t.Errorf("BatteryDrainRate = %v, want 0", cfg.BatteryDrainRate)
	}
}

func TestValidateAndParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]interface{}
	}{
		{"zero drones", map[string]interface{}{"num_drones": 0}},
		{"bad duration", map[string]interface{}{"duration": "untilsunset"}},
		{"zero duration", map[string]interface{}{"duration": "0s"}},
		{"ground center", map[string]interface{}{"center_z": 0.0}},
		{"center type", map[string]interface{}{"center_x": "left"}},
		{"negative drain", map[string]interface{}{"battery_drain_rate": -0.5}},
		{"bad report interval", map[string]interface{}{"report_interval": "often"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParse(tt.params); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
