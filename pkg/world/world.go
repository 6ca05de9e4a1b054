// Package world is the host layer around the swarm physics core. It
// owns the command queue, the speed multiplier and the slower battery
// cadence, so callers (scenarios, bindings) can enqueue commands from
// any goroutine while a single loop drives Step.
package world

import (
	"sync"

	"github.com/skylark-sim/swarmkit/pkg/logger"
	"github.com/skylark-sim/swarmkit/pkg/swarm"
	"github.com/skylark-sim/swarmkit/pkg/vector"
)

// DefaultBatteryDrainRate is percent per minute for non-idle drones.
const DefaultBatteryDrainRate = 0.5

// batteryInterval is how much simulated time passes between battery
// updates, in seconds.
const batteryInterval = 1.0

// Snapshot is the state returned to pollers each frame.
type Snapshot struct {
	Drones    []swarm.DroneState `json:"drones"`
	Timestamp float64            `json:"timestamp"`
}

// World wraps a Swarm with a thread-safe command queue and the control
// cadence. Enqueue may be called concurrently; Step and Snapshot must be
// driven from the owning loop.
type World struct {
	swarm *swarm.Swarm
	log   logger.Logger

	mu    sync.Mutex
	queue []Command

	batteryDrainRate  float64
	lastBatteryUpdate float64
	stepCount         int
}

// New creates a world around a fresh swarm of count drones ticking at
// rateHz.
func New(count, rateHz int) *World {
	return &World{
		swarm:            swarm.New(count, rateHz),
		log:              logger.WithPrefix("world"),
		batteryDrainRate: DefaultBatteryDrainRate,
	}
}

// Swarm exposes the underlying engine for direct queries.
func (w *World) Swarm() *swarm.Swarm {
	return w.swarm
}

// SetBatteryDrainRate overrides the battery drain, percent per minute.
func (w *World) SetBatteryDrainRate(rate float64) {
	w.batteryDrainRate = rate
}

// Enqueue queues a command for the next Step. Safe for concurrent use.
func (w *World) Enqueue(cmd Command) {
	w.mu.Lock()
	w.queue = append(w.queue, cmd)
	w.mu.Unlock()
}

// Step applies every queued command as one batch, then runs physics.
// With a speed multiplier above 1 it runs whole extra fixed-dt steps
// rather than one larger step. Battery drain runs once per simulated
// second. Returns the new simulation time.
func (w *World) Step() float64 {
	w.mu.Lock()
	pending := w.queue
	w.queue = nil
	w.mu.Unlock()

	for _, cmd := range pending {
		w.execute(cmd)
	}

	steps := int(w.swarm.SpeedMultiplier())
	if steps < 1 {
		steps = 1
	}
	simTime := w.swarm.StepN(steps)
	w.stepCount += steps

	if simTime-w.lastBatteryUpdate >= batteryInterval {
		w.swarm.UpdateBatteries(w.batteryDrainRate)
		w.lastBatteryUpdate = simTime
	}

	return simTime
}

// StepCount returns the number of physics steps run so far.
func (w *World) StepCount() int {
	return w.stepCount
}

// Snapshot returns the current drone states and simulation timestamp.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Drones:    w.swarm.States(),
		Timestamp: w.swarm.Time(),
	}
}

// ids resolves a command's target drones.
func (w *World) ids(cmd Command) []int {
	if cmd.All {
		all := make([]int, w.swarm.Count())
		for i := range all {
			all[i] = i
		}
		return all
	}
	return cmd.IDs
}

// firstID returns the addressed drone for single-drone commands, or -1
// (which the swarm silently ignores) when none was given.
func firstID(cmd Command) int {
	if len(cmd.IDs) == 0 {
		return -1
	}
	return cmd.IDs[0]
}

// execute dispatches one command to the swarm.
func (w *World) execute(cmd Command) {
	switch cmd.Type {
	case CmdTakeoff:
		altitude := floatParam(cmd.Params, "altitude", 1.0)
		w.swarm.Takeoff(w.ids(cmd), altitude)
		w.log.Debugf("takeoff to %.2fm", altitude)

	case CmdLand:
		w.swarm.Land(w.ids(cmd))
		w.log.Debug("landing")

	case CmdHover:
		w.swarm.Hover(w.ids(cmd))
		w.log.Debug("hovering")

	case CmdGoto:
		id := firstID(cmd)
		x := floatParam(cmd.Params, "x", 0)
		y := floatParam(cmd.Params, "y", 0)
		z := floatParam(cmd.Params, "z", 1.5)
		yaw := floatParam(cmd.Params, "yaw", 0)
		w.swarm.Goto(id, x, y, z, yaw)
		w.log.Debugf("drone %d going to (%.2f, %.2f, %.2f)", id, x, y, z)

	case CmdVelocity:
		id := firstID(cmd)
		w.swarm.SetVelocity(id,
			floatParam(cmd.Params, "vx", 0),
			floatParam(cmd.Params, "vy", 0),
			floatParam(cmd.Params, "vz", 0),
			floatParam(cmd.Params, "yaw_rate", 0),
		)
		w.log.Debugf("drone %d velocity set", id)

	case CmdFormation:
		w.executeFormation(cmd)

	case CmdWaypoint:
		x := floatParam(cmd.Params, "x", 0)
		y := floatParam(cmd.Params, "y", 0)
		z := floatParam(cmd.Params, "z", 1.5)
		w.swarm.Waypoint(x, y, z)
		w.log.Debugf("waypoint (%.2f, %.2f, %.2f)", x, y, z)

	case CmdMonitor:
		x := floatParam(cmd.Params, "x", 0)
		y := floatParam(cmd.Params, "y", 0)
		z := floatParam(cmd.Params, "z", 1.5)
		w.swarm.Monitor(x, y, z)
		w.log.Debugf("monitor mode at (%.2f, %.2f, %.2f)", x, y, z)

	case CmdSpeed:
		speed := floatParam(cmd.Params, "speed", 1.0)
		w.swarm.SetSpeed(speed)
		w.log.Debugf("speed set to %.1fx", speed)

	case CmdReset:
		w.swarm.Reset()
		w.stepCount = 0
		w.lastBatteryUpdate = 0
		w.log.Debug("reset")

	case CmdSpawn:
		num := intParam(cmd.Params, "num", 5)
		w.swarm.Respawn(num)
		w.stepCount = 0
		w.lastBatteryUpdate = 0
		w.log.Debugf("respawned with %d drones", num)

	default:
		w.log.Warnf("unknown command type %q dropped", cmd.Type)
	}
}

// executeFormation dispatches the formation sub-commands.
func (w *World) executeFormation(cmd Command) {
	center := vector.New(
		floatParam(cmd.Params, "x", 0),
		floatParam(cmd.Params, "y", 0),
		floatParam(cmd.Params, "z", 1.5),
	)
	spacing := floatParam(cmd.Params, "spacing", 1.0)
	radius := floatParam(cmd.Params, "radius", 1.5)
	axis := stringParam(cmd.Params, "axis", swarm.AxisX)
	pattern := stringParam(cmd.Params, "pattern", "")

	switch pattern {
	case FormationLine:
		w.swarm.FormationLine(center, spacing, axis)
	case FormationCircle:
		w.swarm.FormationCircle(center, radius)
	case FormationGrid:
		w.swarm.FormationGrid(center, spacing)
	case FormationVee:
		w.swarm.FormationVee(center, spacing)
	default:
		w.log.Warnf("unknown formation %q dropped", pattern)
		return
	}
	w.log.Debugf("formation %q commanded", pattern)
}
