package patrol

import (
	"fmt"
	"time"
)

// Config holds the configuration for the Orbit Patrol scenario
type Config struct {
	NumDrones        int
	TickRateHz       int
	SpeedMultiplier  float64
	Duration         time.Duration
	CenterX          float64
	CenterY          float64
	CenterZ          float64
	BatteryDrainRate float64
	ReportInterval   time.Duration
	RealTime         bool
}

// ValidateAndParse validates and parses raw parameters into a Config
func ValidateAndParse(params map[string]interface{}) (*Config, error) {
	cfg := &Config{
		NumDrones:        6,
		TickRateHz:       240,
		SpeedMultiplier:  4.0,
		Duration:         2 * time.Minute,
		CenterZ:          1.5,
		BatteryDrainRate: 0.5,
		ReportInterval:   5 * time.Second,
	}

	// num_drones
	if v, ok := params["num_drones"]; ok {
		switch val := v.(type) {
		case int:
			cfg.NumDrones = val
		case float64:
			cfg.NumDrones = int(val)
		default:
			return nil, fmt.Errorf("num_drones must be an integer")
		}
	}
	if cfg.NumDrones < 1 {
		return nil, fmt.Errorf("num_drones must be at least 1")
	}

	// tick_rate_hz
	if v, ok := params["tick_rate_hz"]; ok {
		switch val := v.(type) {
		case int:
			cfg.TickRateHz = val
		case float64:
			cfg.TickRateHz = int(val)
		default:
			return nil, fmt.Errorf("tick_rate_hz must be an integer")
		}
	}
	if cfg.TickRateHz < 1 {
		return nil, fmt.Errorf("tick_rate_hz must be at least 1")
	}

	// speed_multiplier
	if v, ok := params["speed_multiplier"]; ok {
		switch val := v.(type) {
		case float64:
			cfg.SpeedMultiplier = val
		case int:
			cfg.SpeedMultiplier = float64(val)
		default:
			return nil, fmt.Errorf("speed_multiplier must be a number")
		}
	}
	if cfg.SpeedMultiplier <= 0 {
		return nil, fmt.Errorf("speed_multiplier must be greater than 0")
	}

	// duration (simulated patrol time, Go duration string)
	if v, ok := params["duration"]; ok {
		switch val := v.(type) {
		case time.Duration:
			cfg.Duration = val
		default:
			d, err := time.ParseDuration(fmt.Sprintf("%v", val))
			if err != nil {
				return nil, fmt.Errorf("invalid duration format: %w", err)
			}
			cfg.Duration = d
		}
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("duration must be greater than 0")
	}

	// center_x, center_y, center_z
	for key, dst := range map[string]*float64{
		"center_x": &cfg.CenterX,
		"center_y": &cfg.CenterY,
		"center_z": &cfg.CenterZ,
	} {
		if v, ok := params[key]; ok {
			switch val := v.(type) {
			case float64:
				*dst = val
			case int:
				*dst = float64(val)
			default:
				return nil, fmt.Errorf("%s must be a number (meters)", key)
			}
		}
	}
	if cfg.CenterZ <= 0 {
		return nil, fmt.Errorf("center_z must be greater than 0")
	}

	// battery_drain_rate (percent per minute)
	if v, ok := params["battery_drain_rate"]; ok {
		switch val := v.(type) {
		case float64:
			cfg.BatteryDrainRate = val
		case int:
			cfg.BatteryDrainRate = float64(val)
		default:
			return nil, fmt.Errorf("battery_drain_rate must be a number (percent per minute)")
		}
	}
	if cfg.BatteryDrainRate < 0 {
		return nil, fmt.Errorf("battery_drain_rate must be >= 0")
	}

	// report_interval (simulated time between fleet reports)
	if v, ok := params["report_interval"]; ok {
		switch val := v.(type) {
		case time.Duration:
			cfg.ReportInterval = val
		default:
			d, err := time.ParseDuration(fmt.Sprintf("%v", val))
			if err != nil {
				return nil, fmt.Errorf("invalid report_interval format: %w", err)
			}
			cfg.ReportInterval = d
		}
	}
	if cfg.ReportInterval <= 0 {
		return nil, fmt.Errorf("report_interval must be greater than 0")
	}

	// real_time
	if v, ok := params["real_time"]; ok {
		switch val := v.(type) {
		case bool:
			cfg.RealTime = val
		case string:
			cfg.RealTime = val == "true" || val == "1" || val == "yes"
		default:
			return nil, fmt.Errorf("real_time must be a boolean")
		}
	}

	return cfg, nil
}
