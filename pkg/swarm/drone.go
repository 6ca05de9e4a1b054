package swarm

import (
	"math"

	"github.com/google/uuid"

	"github.com/skylark-sim/swarmkit/pkg/vector"
)

// Mode represents a drone's operating mode. Exactly one mode is active
// at a time and selects the control law run each tick.
type Mode int

const (
	ModeIdle Mode = iota
	ModeTakeoff
	ModeLanding
	ModeHover
	ModeGoto
	ModeVelocity
	ModeMonitor
)

// String returns the mode name as reported in state snapshots.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "IDLE"
	case ModeTakeoff:
		return "TAKEOFF"
	case ModeLanding:
		return "LANDING"
	case ModeHover:
		return "HOVER"
	case ModeGoto:
		return "GOTO"
	case ModeVelocity:
		return "VELOCITY"
	case ModeMonitor:
		return "MONITOR"
	default:
		return "UNKNOWN"
	}
}

// Drone holds the full kinematic and control state of a single airframe.
// A drone is owned exclusively by its Swarm: commands mutate targets and
// mode between ticks, step advances physics within a tick. No drone ever
// reads another drone's state.
type Drone struct {
	ID     int
	Serial uuid.UUID

	Position vector.Vec3
	Velocity vector.Vec3
	Yaw      float64
	YawRate  float64
	Mode     Mode

	TargetPosition vector.Vec3
	TargetVelocity vector.Vec3
	TargetYaw      float64

	Battery float64 // percent, 0-100
	Healthy bool

	// Monitor mode orbit assignment.
	MonitorRadius   float64
	MonitorAltitude float64
	MonitorAngle    float64

	// Position controller memory. Reset on every mode-entry command so a
	// stale integral from a previous mode cannot wind into the new one.
	pidIntegral  vector.Vec3
	pidPrevError vector.Vec3
}

// NewDrone returns a grounded, idle drone at the given spawn position.
func NewDrone(id int, x, y, z float64) *Drone {
	pos := vector.New(x, y, z)
	return &Drone{
		ID:              id,
		Serial:          uuid.New(),
		Position:        pos,
		Mode:            ModeIdle,
		TargetPosition:  pos,
		Battery:         100.0,
		Healthy:         true,
		MonitorRadius:   2.0,
		MonitorAltitude: 1.5,
	}
}

// ResetPID clears the position controller memory.
func (d *Drone) ResetPID() {
	d.pidIntegral = vector.Vec3{}
	d.pidPrevError = vector.Vec3{}
}

// Step advances the drone by one fixed physics tick. All arguments are
// swarm-wide broadcast values snapshotted before fan-out, so every drone
// in a tick sees identical globals regardless of worker scheduling.
func (d *Drone) Step(dt, maxVel float64, monitorCenter *vector.Vec3, orbitSpeed float64) {
	switch d.Mode {
	case ModeIdle:
		// Bleed off any residual velocity.
		d.Velocity = d.Velocity.Scale(IdleVelocityDecay)

	case ModeTakeoff, ModeLanding, ModeHover, ModeGoto:
		cmd := d.computePositionControl(dt, maxVel)
		d.applyVelocityControl(cmd, dt)

		dist := d.TargetPosition.Dist(d.Position)
		if d.Mode == ModeLanding && d.Position.Z < GroundedHeight {
			d.Mode = ModeIdle
			d.Velocity = vector.Vec3{}
		} else if d.Mode == ModeTakeoff && dist < TakeoffArriveDist {
			d.Mode = ModeHover
		}

	case ModeVelocity:
		d.applyVelocityControl(d.TargetVelocity, dt)

	case ModeMonitor:
		if monitorCenter != nil {
			d.MonitorAngle += orbitSpeed * dt
			if d.MonitorAngle > 2*math.Pi {
				d.MonitorAngle -= 2 * math.Pi
			}

			d.TargetPosition = vector.New(
				monitorCenter.X+d.MonitorRadius*math.Cos(d.MonitorAngle),
				monitorCenter.Y+d.MonitorRadius*math.Sin(d.MonitorAngle),
				d.MonitorAltitude,
			)

			// Face the point being monitored.
			d.TargetYaw = math.Atan2(
				monitorCenter.Y-d.TargetPosition.Y,
				monitorCenter.X-d.TargetPosition.X,
			)

			cmd := d.computePositionControl(dt, maxVel)
			d.applyVelocityControl(cmd, dt)
		}
	}

	// Yaw tracking runs in every mode, shortest angular path.
	yawErr := d.TargetYaw - d.Yaw
	yawErr = math.Atan2(math.Sin(yawErr), math.Cos(yawErr))
	d.YawRate = vector.ClampF(2.0*yawErr, -MaxYawRate, MaxYawRate)
	d.Yaw += d.YawRate * dt

	// Hard clamp into the flight envelope.
	d.Position.X = vector.ClampF(d.Position.X, -FlightBoundXY, FlightBoundXY)
	d.Position.Y = vector.ClampF(d.Position.Y, -FlightBoundXY, FlightBoundXY)
	d.Position.Z = vector.ClampF(d.Position.Z, 0, FlightCeiling)

	// Health derives from the wider safety envelope and battery; it never
	// stops the drone from being updated.
	d.Healthy = math.Abs(d.Position.X) < SafetyBoundXY &&
		math.Abs(d.Position.Y) < SafetyBoundXY &&
		d.Position.Z >= 0 &&
		d.Position.Z <= SafetyCeiling &&
		d.Battery > 0
}

// computePositionControl runs the per-axis PID position loop and returns
// a velocity command clamped to the swarm's velocity limit.
func (d *Drone) computePositionControl(dt, maxVel float64) vector.Vec3 {
	axis := func(err float64, integral, prevErr *float64) float64 {
		p := PositionKp * err

		*integral += err * dt
		*integral = vector.ClampF(*integral, -IntegralLimit, IntegralLimit)
		i := PositionKi * *integral

		var dTerm float64
		if dt > 0 {
			dTerm = PositionKd * (err - *prevErr) / dt
		}
		*prevErr = err

		return vector.ClampF(p+i+dTerm, -maxVel, maxVel)
	}

	err := d.TargetPosition.Sub(d.Position)
	return vector.Vec3{
		X: axis(err.X, &d.pidIntegral.X, &d.pidPrevError.X),
		Y: axis(err.Y, &d.pidIntegral.Y, &d.pidPrevError.Y),
		Z: axis(err.Z, &d.pidIntegral.Z, &d.pidPrevError.Z),
	}
}

// applyVelocityControl models a damped first-order actuator response to
// the commanded velocity and integrates with explicit Euler. This is the
// single physics kernel shared by every position- and velocity-seeking
// mode.
func (d *Drone) applyVelocityControl(cmd vector.Vec3, dt float64) {
	accel := cmd.Sub(d.Velocity).Scale(VelocityResponseRate).
		Sub(d.Velocity.Scale(DragCoefficient))
	d.Velocity = d.Velocity.Add(accel.Scale(dt))
	d.Position = d.Position.Add(d.Velocity.Scale(dt))
}
