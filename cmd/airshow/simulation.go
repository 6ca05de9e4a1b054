package airshow

import (
	"context"
	"fmt"
	"time"

	"github.com/skylark-sim/swarmkit/pkg/logger"
	"github.com/skylark-sim/swarmkit/pkg/report"
	"github.com/skylark-sim/swarmkit/pkg/simulation"
	"github.com/skylark-sim/swarmkit/pkg/world"
)

// AirshowScenario flies the fleet through every formation in sequence.
type AirshowScenario struct {
	config   *Config
	stopChan chan struct{}
}

// NewAirshowScenario creates a new instance
func NewAirshowScenario() simulation.Scenario {
	return &AirshowScenario{
		stopChan: make(chan struct{}),
	}
}

// Name returns the scenario name
func (s *AirshowScenario) Name() string {
	return "Airshow"
}

// Description returns the scenario description
func (s *AirshowScenario) Description() string {
	return "Takes off N drones and cycles them through line, circle, grid, vee and waypoint formations"
}

// Configure sets up the scenario with provided parameters
func (s *AirshowScenario) Configure(params map[string]interface{}) error {
	cfg, err := ValidateAndParse(params)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	s.config = cfg
	return nil
}

// phase is one segment of the show, with the commands it opens with.
type phase struct {
	name     string
	commands []world.Command
}

// Run executes the scenario
func (s *AirshowScenario) Run(ctx context.Context, w *world.World) error {
	if s.config == nil {
		return fmt.Errorf("scenario not configured")
	}

	cfg := s.config
	logger.Infof("Starting %s with %d drones at %dHz, %.1fx speed", s.Name(), cfg.NumDrones, cfg.TickRateHz, cfg.SpeedMultiplier)

	w.Enqueue(world.Command{
		Type:   world.CmdSpeed,
		Params: map[string]interface{}{"speed": cfg.SpeedMultiplier},
	})

	alt := cfg.Altitude
	spacing := cfg.Spacing
	phases := []phase{
		{"takeoff", []world.Command{{
			Type:   world.CmdTakeoff,
			All:    true,
			Params: map[string]interface{}{"altitude": alt},
		}}},
		{"line", []world.Command{formationCmd(world.FormationLine, alt, spacing)}},
		{"circle", []world.Command{formationCmd(world.FormationCircle, alt, spacing)}},
		{"grid", []world.Command{formationCmd(world.FormationGrid, alt, spacing)}},
		{"vee", []world.Command{formationCmd(world.FormationVee, alt, spacing)}},
		{"waypoint", []world.Command{{
			Type:   world.CmdWaypoint,
			Params: map[string]interface{}{"x": 0.0, "y": 0.0, "z": alt},
		}}},
		{"land", []world.Command{{Type: world.CmdLand, All: true}}},
	}

	for _, p := range phases {
		logger.Progress(fmt.Sprintf("Phase: %s", p.name))
		for _, cmd := range p.commands {
			w.Enqueue(cmd)
		}
		if err := s.advance(ctx, w, cfg.PhaseDuration.Seconds()); err != nil {
			return err
		}
		report.PrintFleet(w.Snapshot())
	}

	logger.Successf("%s completed after %.1f simulated seconds", s.Name(), w.Snapshot().Timestamp)
	return nil
}

// Stop gracefully stops the scenario
func (s *AirshowScenario) Stop() error {
	close(s.stopChan)
	return nil
}

// advance steps the world for the given amount of simulated time, printing
// fleet summaries along the way. With real_time set it paces stepping to
// the tick rate instead of running flat out.
func (s *AirshowScenario) advance(ctx context.Context, w *world.World, seconds float64) error {
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
			report.PrintSummary(w.Snapshot())
			nextReport += s.config.ReportInterval.Seconds()
		}
		if simTime >= until {
			return nil
		}
	}
}

func formationCmd(pattern string, altitude, spacing float64) world.Command {
	return world.Command{
		Type: world.CmdFormation,
		Params: map[string]interface{}{
			"pattern": pattern,
			"x":       0.0,
			"y":       0.0,
			"z":       altitude,
			"spacing": spacing,
			"radius":  spacing * 1.5,
		},
	}
}

func init() {
	if err := simulation.Register(NewAirshowScenario()); err != nil {
		logger.Errorf("Failed to register Airshow scenario: %v", err)
	}
}
