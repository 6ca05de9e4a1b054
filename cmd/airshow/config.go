package airshow

import (
	"fmt"
	"time"
)

// Config holds the configuration for the Airshow scenario
type Config struct {
	NumDrones       int
	TickRateHz      int
	SpeedMultiplier float64
	PhaseDuration   time.Duration
	Spacing         float64
	Altitude        float64
	ReportInterval  time.Duration
	RealTime        bool
}

// ValidateAndParse validates and parses raw parameters into a Config
func ValidateAndParse(params map[string]interface{}) (*Config, error) {
	cfg := &Config{
		NumDrones:       9,
		TickRateHz:      240,
		SpeedMultiplier: 4.0,
		PhaseDuration:   8 * time.Second,
		Spacing:         1.2,
		Altitude:        1.5,
		ReportInterval:  2 * time.Second,
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

	// phase_duration (simulated time per formation, Go duration string)
	if v, ok := params["phase_duration"]; ok {
		switch val := v.(type) {
		case time.Duration:
			cfg.PhaseDuration = val
		default:
			d, err := time.ParseDuration(fmt.Sprintf("%v", val))
			if err != nil {
				return nil, fmt.Errorf("invalid phase_duration format: %w", err)
			}
			cfg.PhaseDuration = d
		}
	}
	if cfg.PhaseDuration <= 0 {
		return nil, fmt.Errorf("phase_duration must be greater than 0")
	}

	// spacing
	if v, ok := params["spacing"]; ok {
		switch val := v.(type) {
		case float64:
			cfg.Spacing = val
		case int:
			cfg.Spacing = float64(val)
		default:
			return nil, fmt.Errorf("spacing must be a number (meters)")
		}
	}
	if cfg.Spacing <= 0 {
		return nil, fmt.Errorf("spacing must be greater than 0")
	}

	// altitude
	if v, ok := params["altitude"]; ok {
		switch val := v.(type) {
		case float64:
			cfg.Altitude = val
		case int:
			cfg.Altitude = float64(val)
		default:
			return nil, fmt.Errorf("altitude must be a number (meters)")
		}
	}
	if cfg.Altitude <= 0 {
		return nil, fmt.Errorf("altitude must be greater than 0")
	}

	// report_interval (simulated time between fleet summaries)
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
