package swarm

import "math"

// Position controller gains. Tuned for a 240 Hz tick; tests exercise
// alternate tunings through the same control path.
const (
	PositionKp = 2.0
	PositionKi = 0.01
	PositionKd = 0.5

	// IntegralLimit bounds each axis of the PID integral (anti-windup).
	IntegralLimit = 1.0
)

// First-order velocity response model.
const (
	VelocityResponseRate = 5.0 // how fast velocity tracks the command, 1/s
	DragCoefficient      = 0.1 // linear drag, 1/s
)

// Flight envelope. Position is hard-clamped into the flight bounds every
// tick; the wider safety bounds only drive the healthy flag.
const (
	FlightBoundXY  = 10.0
	FlightCeiling  = 5.0
	SafetyBoundXY  = 15.0
	SafetyCeiling  = 10.0
	MinGotoHeight  = 0.1
	LandingHeight  = 0.05
	GroundedHeight = 0.15
)

// Mode machine thresholds.
const (
	TakeoffArriveDist = 0.1  // Takeoff -> Hover when within this of target
	IdleVelocityDecay = 0.95 // per-axis velocity decay per tick in Idle
)

// Swarm-level defaults.
const (
	DefaultTickRateHz   = 240
	DefaultMaxVelocity  = 2.0
	DefaultOrbitSpeed   = 0.3 // rad/s
	SpawnGridSpacing    = 0.5
	SpawnHeight         = 0.1
	MaxYawRate          = math.Pi
	WaypointRingRadius  = 0.8
	MonitorMinAltitude  = 0.5
	MonitorLayerSpacing = 0.6
	MonitorMaxLayers    = 5
)
