package airshow

import (
	"context"
	"testing"

	"github.com/skylark-sim/swarmkit/pkg/world"
)

func TestRunRequiresConfigure(t *testing.T) {
	s := NewAirshowScenario()
	if err := s.Run(context.Background(), world.New(1, 240)); err == nil {
		t.Error("expected error running unconfigured scenario")
	}
}

func TestRunCompletesAllPhases(t *testing.T) {
	s := NewAirshowScenario()
	err := s.Configure(map[string]interface{}{
		"num_drones":      4,
		"phase_duration":  "100ms",
		"report_interval": "1m",
	})
	if err != nil {
		t.Fatalf("configure failed: %v", err)
	}

	w := world.New(4, 240)
	if err := s.Run(context.Background(), w); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Seven phases of 0.1 simulated seconds each.
	if got := w.Snapshot().Timestamp; got < 0.7 {
		t.Errorf("simulated time = %v, want at least 0.7", got)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	s := NewAirshowScenario()
	err := s.Configure(map[string]interface{}{
		"num_drones":      2,
		"phase_duration":  "10m",
		"report_interval": "1h",
	})
	if err != nil {
		t.Fatalf("configure failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Run(ctx, world.New(2, 240)); err == nil {
		t.Error("expected context error from cancelled run")
	}
}
