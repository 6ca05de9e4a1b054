package utils

import (
	"testing"
	"time"

	"github.com/skylark-sim/swarmkit/pkg/simulation"
)

func TestParseEnvValue(t *testing.T) {
	tests := []struct {
		name      string
		paramType string
		value     string
		want      interface{}
		wantErr   bool
	}{
		{"integer", "integer", "42", 42, false},
		{"integer invalid", "integer", "forty", nil, true},
		{"float", "float", "2.5", 2.5, false},
		{"float invalid", "float", "fast", nil, true},
		{"string", "string", "circle", "circle", false},
		{"boolean true", "boolean", "true", true, false},
		{"boolean invalid", "boolean", "maybe", nil, true},
		{"duration", "duration", "90s", 90 * time.Second, false},
		{"duration invalid", "duration", "soon", nil, true},
		{"unsupported type", "matrix", "1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnvValue(tt.value, simulation.Parameter{Name: "p", Type: tt.paramType})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestSkipPromptsUsesEnvOverride(t *testing.T) {
	t.Setenv("SWARMKIT_SKIP_PROMPTS", "true")
	t.Setenv("SWARMKIT_NUM_DRONES", "12")

	got, err := promptForParameter(simulation.Parameter{
		Name:    "num_drones",
		Type:    "integer",
		Default: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 12 {
		t.Errorf("got %v, want 12", got)
	}
}

func TestSkipPromptsFallsBackToDefault(t *testing.T) {
	t.Setenv("SWARMKIT_SKIP_PROMPTS", "true")

	got, err := promptForParameter(simulation.Parameter{
		Name:    "spacing",
		Type:    "float",
		Default: 1.2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.2 {
		t.Errorf("got %v, want 1.2", got)
	}
}

func TestSkipPromptsRequiredWithoutDefault(t *testing.T) {
	t.Setenv("SWARMKIT_SKIP_PROMPTS", "true")

	if _, err := promptForParameter(simulation.Parameter{
		Name:     "duration",
		Type:     "duration",
		Required: true,
	}); err == nil {
		t.Error("expected error for required parameter with no default")
	}
}

func TestPromptForParametersSkipped(t *testing.T) {
	t.Setenv("SWARMKIT_SKIP_PROMPTS", "true")
	t.Setenv("SWARMKIT_REAL_TIME", "true")

	params, err := PromptForParameters([]simulation.Parameter{
		{Name: "num_drones", Type: "integer", Default: 9},
		{Name: "real_time", Type: "boolean", Default: false},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params["num_drones"] != 9 {
		t.Errorf("num_drones = %v, want 9", params["num_drones"])
	}
	if params["real_time"] != true {
		t.Errorf("real_time = %v, want true", params["real_time"])
	}
}
