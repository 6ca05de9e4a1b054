package patrol

import (
	"context"
	"fmt"
	"time"

	"github.com/skylark-sim/swarmkit/pkg/logger"
	"github.com/skylark-sim/swarmkit/pkg/report"
	"github.com/skylark-sim/swarmkit/pkg/simulation"
	"github.com/skylark-sim/swarmkit/pkg/world"
)

// PatrolScenario puts the fleet into layered orbits around a point and
// holds them there until the patrol duration or the battery runs out.
type PatrolScenario struct {
	config   *Config
	stopChan chan struct{}
}

// NewPatrolScenario creates a new instance
func NewPatrolScenario() simulation.Scenario {
	return &PatrolScenario{
		stopChan: make(chan struct{}),
	}
}

// Name returns the scenario name
func (s *PatrolScenario) Name() string {
	return "Orbit Patrol"
}

// Description returns the scenario description
func (s *PatrolScenario) Description() string {
	return "Sends N drones into staggered orbits around a monitor point and reports fleet health"
}

// Configure sets up the scenario with provided parameters
func (s *PatrolScenario) Configure(params map[string]interface{}) error {
	cfg, err := ValidateAndParse(params)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	s.config = cfg
	return nil
}

// Run executes the scenario
func (s *PatrolScenario) Run(ctx context.Context, w *world.World) error {
	if s.config == nil {
		return fmt.Errorf("scenario not configured")
	}

	cfg := s.config
	logger.Infof("Starting %s with %d drones around (%.1f, %.1f, %.1f) for %s",
		s.Name(), cfg.NumDrones, cfg.CenterX, cfg.CenterY, cfg.CenterZ, cfg.Duration)

	w.SetBatteryDrainRate(cfg.BatteryDrainRate)
	w.Enqueue(world.Command{
		Type:   world.CmdSpeed,
		Params: map[string]interface{}{"speed": cfg.SpeedMultiplier},
	})
	w.Enqueue(world.Command{
		Type:   world.CmdTakeoff,
		All:    true,
		Params: map[string]interface{}{"altitude": cfg.CenterZ},
	})

	// Climb out before assigning orbits so the staged radii start clean.
	if err := s.advance(ctx, w, 5.0); err != nil {
		return err
	}

	w.Enqueue(world.Command{
		Type: world.CmdMonitor,
		Params: map[string]interface{}{
			"x": cfg.CenterX,
			"y": cfg.CenterY,
			"z": cfg.CenterZ,
		},
	})
	logger.Progress("Fleet on station, patrolling")

	if err := s.advance(ctx, w, cfg.Duration.Seconds()); err != nil {
		return err
	}

	logger.Progress("Patrol complete, landing")
	w.Enqueue(world.Command{Type: world.CmdLand, All: true})
	if err := s.advance(ctx, w, 10.0); err != nil {
		return err
	}

	report.PrintFleet(w.Snapshot())
	logger.Successf("%s completed after %.1f simulated seconds", s.Name(), w.Snapshot().Timestamp)
	return nil
}

// Stop gracefully stops the scenario
func (s *PatrolScenario) Stop() error {
	close(s.stopChan)
	return nil
}

// advance steps the world for the given amount of simulated time, printing
// a fleet summary at each report interval. Stops early once every drone
// has drained its battery.
func (s *PatrolScenario) advance(ctx context.Context, w *world.World, seconds float64) error {
	var ticker *time.Ticker
	if s.config.RealTime {
		ticker = time.NewTicker(time.Second / time.Duration(s.config.TickRateHz))
		defer ticker.Stop()
	}

	until := w.Snapshot().Timestamp + seconds
	nextReport := w.Snapshot().Timestamp + s.config.ReportInterval.Seconds()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopChan:
			logger.Info("Scenario stopped by user")
			return nil
		default:
		}

		if ticker != nil {
			<-ticker.C
		}

		simTime := w.Step()
		if simTime >= nextReport {
			snap := w.Snapshot()
			report.PrintSummary(snap)
			if fleetDrained(snap) {
				logger.Warn("All batteries drained, ending patrol")
				return nil
			}
			nextReport += s.config.ReportInterval.Seconds()
		}
		if simTime >= until {
			return nil
		}
	}
}

func fleetDrained(snap world.Snapshot) bool {
	for _, d := range snap.Drones {
		if d.Battery > 0 {
			return false
		}
	}
	return len(snap.Drones) > 0
}

func init() {
	if err := simulation.Register(NewPatrolScenario()); err != nil {
		logger.Errorf("Failed to register Orbit Patrol scenario: %v", err)
	}
}
