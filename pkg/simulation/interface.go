package simulation

import (
	"context"

	"github.com/skylark-sim/swarmkit/pkg/world"
)

// Scenario defines the interface every runnable scenario implements.
type Scenario interface {
	// Name returns the scenario name shown in the CLI.
	Name() string

	// Description returns a brief description of what the scenario does.
	Description() string

	// Configure sets up the scenario with the provided parameters.
	Configure(params map[string]interface{}) error

	// Run drives the provided world until the scenario completes or the
	// context is cancelled.
	Run(ctx context.Context, w *world.World) error

	// Stop gracefully shuts down the scenario.
	Stop() error
}
