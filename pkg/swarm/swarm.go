// Package swarm implements the drone swarm physics core: per-drone PID
// position control over a first-order velocity response model, a mode
// state machine, orbital monitoring, formation layouts, and a fixed-rate
// tick engine that advances all drones in parallel.
//
// The engine has no internal clock. A host drives it synchronously via
// Step/StepN and issues commands between ticks; commands never run
// concurrently with a tick.
package swarm

import (
	"math"
	"runtime"
	"sync"

	"github.com/skylark-sim/swarmkit/pkg/vector"
)

// Swarm owns an ordered collection of drones (insertion order is id
// order) and the fixed physics timestep. All methods must be called from
// a single goroutine; Step itself fans out internally.
type Swarm struct {
	drones          []*Drone
	simTime         float64
	physicsDt       float64
	maxVelocity     float64
	speedMultiplier float64

	// Present iff a monitor command is in effect.
	monitorCenter     *vector.Vec3
	monitorOrbitSpeed float64

	workers int
}

// New creates a swarm of count drones laid out on a grid, ticking at
// rateHz. A rateHz below 1 is floored to 1 so the timestep stays finite.
func New(count int, rateHz int) *Swarm {
	if rateHz < 1 {
		rateHz = 1
	}

	s := &Swarm{
		physicsDt:         1.0 / float64(rateHz),
		maxVelocity:       DefaultMaxVelocity,
		speedMultiplier:   1.0,
		monitorOrbitSpeed: DefaultOrbitSpeed,
		workers:           runtime.NumCPU(),
	}
	s.spawn(count)
	return s
}

// spawn rebuilds the drone collection on the initial grid.
func (s *Swarm) spawn(count int) {
	gridSize := int(math.Ceil(math.Sqrt(float64(count))))

	s.drones = make([]*Drone, 0, count)
	for i := 0; i < count; i++ {
		row := i / gridSize
		col := i % gridSize
		x := (float64(col) - float64(gridSize)/2.0) * SpawnGridSpacing
		y := (float64(row) - float64(gridSize)/2.0) * SpawnGridSpacing
		s.drones = append(s.drones, NewDrone(i, x, y, SpawnHeight))
	}
}

// SetWorkers overrides the number of goroutines used by Step. Values
// below 1 are floored to 1. The final state after a tick is identical
// for any worker count.
func (s *Swarm) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	s.workers = n
}

// Step advances every drone by one fixed timestep and returns the new
// simulation time. Broadcast parameters are snapshotted once before
// fan-out; drones share no mutable state within a tick, so the chunked
// workers need no locks.
func (s *Swarm) Step() float64 {
	dt := s.physicsDt
	maxVel := s.maxVelocity * s.speedMultiplier
	center := s.monitorCenter
	orbitSpeed := s.monitorOrbitSpeed

	n := len(s.drones)
	workers := s.workers
	if workers > n {
		workers = n
	}

	if workers <= 1 {
		for _, d := range s.drones {
			d.Step(dt, maxVel, center, orbitSpeed)
		}
	} else {
		chunk := (n + workers - 1) / workers

		var wg sync.WaitGroup
		for start := 0; start < n; start += chunk {
			end := start + chunk
			if end > n {
				end = n
			}

			wg.Add(1)
			go func(drones []*Drone) {
				defer wg.Done()
				for _, d := range drones {
					d.Step(dt, maxVel, center, orbitSpeed)
				}
			}(s.drones[start:end])
		}
		wg.Wait()
	}

	s.simTime += dt
	return s.simTime
}

// StepN runs n sequential fixed-dt steps. Error accumulates per
// sub-step, never as one large step.
func (s *Swarm) StepN(n int) float64 {
	for i := 0; i < n; i++ {
		s.Step()
	}
	return s.simTime
}

// States returns a snapshot of every drone, in id order.
func (s *Swarm) States() []DroneState {
	states := make([]DroneState, 0, len(s.drones))
	for _, d := range s.drones {
		states = append(states, DroneState{
			ID:       d.ID,
			Serial:   d.Serial,
			Position: d.Position,
			Velocity: d.Velocity,
			Yaw:      d.Yaw,
			Battery:  d.Battery,
			Healthy:  d.Healthy,
			Mode:     d.Mode.String(),
		})
	}
	return states
}

// Time returns the accumulated simulation time in seconds.
func (s *Swarm) Time() float64 {
	return s.simTime
}

// Count returns the number of drones.
func (s *Swarm) Count() int {
	return len(s.drones)
}

// SetSpeed sets the simulation speed multiplier and rescales the
// velocity limit with it.
func (s *Swarm) SetSpeed(multiplier float64) {
	s.speedMultiplier = multiplier
	s.maxVelocity = DefaultMaxVelocity * multiplier
}

// SpeedMultiplier returns the current speed multiplier.
func (s *Swarm) SpeedMultiplier() float64 {
	return s.speedMultiplier
}

// valid reports whether id addresses a drone. Out-of-range ids are
// silently ignored by every command, never reported.
func (s *Swarm) valid(id int) bool {
	return id >= 0 && id < len(s.drones)
}

// allIDs returns the id list 0..n-1 for the *_all command variants.
func (s *Swarm) allIDs() []int {
	ids := make([]int, len(s.drones))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// Takeoff commands the listed drones to climb straight up to altitude.
func (s *Swarm) Takeoff(ids []int, altitude float64) {
	for _, id := range ids {
		if !s.valid(id) {
			continue
		}
		d := s.drones[id]
		d.TargetPosition = vector.New(d.Position.X, d.Position.Y, altitude)
		d.TargetYaw = 0
		d.Mode = ModeTakeoff
		d.ResetPID()
	}
}

// TakeoffAll commands every drone to climb to altitude.
func (s *Swarm) TakeoffAll(altitude float64) {
	s.Takeoff(s.allIDs(), altitude)
}

// Land commands the listed drones to descend and settle.
func (s *Swarm) Land(ids []int) {
	for _, id := range ids {
		if !s.valid(id) {
			continue
		}
		d := s.drones[id]
		d.TargetPosition = vector.New(d.Position.X, d.Position.Y, LandingHeight)
		d.TargetYaw = 0
		d.Mode = ModeLanding
		d.ResetPID()
	}
}

// LandAll commands every drone to land.
func (s *Swarm) LandAll() {
	s.Land(s.allIDs())
}

// Hover freezes the listed drones at their current position and yaw.
// Hover keeps the controller memory: the drone is already at its target.
func (s *Swarm) Hover(ids []int) {
	for _, id := range ids {
		if !s.valid(id) {
			continue
		}
		d := s.drones[id]
		d.TargetPosition = d.Position
		d.TargetYaw = d.Yaw
		d.Mode = ModeHover
	}
}

// HoverAll freezes every drone in place.
func (s *Swarm) HoverAll() {
	s.Hover(s.allIDs())
}

// Goto sends one drone to a world position. The target is clamped into
// the commandable envelope rather than rejected.
func (s *Swarm) Goto(id int, x, y, z, yaw float64) {
	if !s.valid(id) {
		return
	}
	d := s.drones[id]
	d.TargetPosition = vector.New(
		vector.ClampF(x, -FlightBoundXY, FlightBoundXY),
		vector.ClampF(y, -FlightBoundXY, FlightBoundXY),
		vector.ClampF(z, MinGotoHeight, FlightCeiling),
	)
	d.TargetYaw = yaw
	d.Mode = ModeGoto
	d.ResetPID()
}

// SetVelocity puts one drone under direct velocity control. Commands are
// clamped into the velocity and yaw-rate envelopes.
func (s *Swarm) SetVelocity(id int, vx, vy, vz, yawRate float64) {
	if !s.valid(id) {
		return
	}
	d := s.drones[id]
	d.TargetVelocity = vector.New(vx, vy, vz).Clamp(-DefaultMaxVelocity, DefaultMaxVelocity)
	d.YawRate = vector.ClampF(yawRate, -MaxYawRate, MaxYawRate)
	d.Mode = ModeVelocity
}

// Monitor puts the whole swarm into a multi-layer orbital surveillance
// pattern around (x, y, z). Drones are distributed over three radii and
// up to five altitude layers, with start angles evenly spaced so the
// rings fill immediately.
func (s *Swarm) Monitor(x, y, z float64) {
	center := vector.New(x, y, z)
	s.monitorCenter = &center

	n := len(s.drones)
	for i, d := range s.drones {
		// Radii cycle 1.0, 2.0, 3.0.
		d.MonitorRadius = 1.0 + float64(i%3)

		layers := n
		if layers > MonitorMaxLayers {
			layers = MonitorMaxLayers
		}
		layer := i % layers
		offset := (float64(layer) - float64(layers)/2.0) * MonitorLayerSpacing
		d.MonitorAltitude = math.Max(z+offset, MonitorMinAltitude)

		d.MonitorAngle = 2 * math.Pi * float64(i) / float64(n)

		d.Mode = ModeMonitor
		d.ResetPID()
	}
}

// UpdateBatteries drains battery from every non-idle drone. The rate is
// percent per minute; the caller decides the cadence (the host runs it
// once per simulated second). Battery floors at zero.
func (s *Swarm) UpdateBatteries(drainPerMinute float64) {
	for _, d := range s.drones {
		if d.Mode != ModeIdle {
			d.Battery = math.Max(d.Battery-drainPerMinute/60.0, 0)
		}
	}
}

// Reset restores every drone to the initial grid in Idle mode with a
// full battery, and zeroes simulation time. The drone count and serial
// tags are preserved.
func (s *Swarm) Reset() {
	gridSize := int(math.Ceil(math.Sqrt(float64(len(s.drones)))))

	for i, d := range s.drones {
		row := i / gridSize
		col := i % gridSize
		x := (float64(col) - float64(gridSize)/2.0) * SpawnGridSpacing
		y := (float64(row) - float64(gridSize)/2.0) * SpawnGridSpacing

		d.Position = vector.New(x, y, SpawnHeight)
		d.Velocity = vector.Vec3{}
		d.Yaw = 0
		d.YawRate = 0
		d.Mode = ModeIdle
		d.TargetPosition = d.Position
		d.TargetVelocity = vector.Vec3{}
		d.TargetYaw = 0
		d.Battery = 100.0
		d.Healthy = true
		d.ResetPID()
	}

	s.simTime = 0
	s.monitorCenter = nil
}

// Respawn discards the collection and rebuilds it with a new count.
func (s *Swarm) Respawn(count int) {
	s.spawn(count)
	s.simTime = 0
	s.monitorCenter = nil
}
