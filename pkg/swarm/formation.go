package swarm

import (
	"math"

	"github.com/skylark-sim/swarmkit/pkg/vector"
)

// Formation axis names accepted by the line layout. Anything else falls
// back to the X axis.
const (
	AxisX = "x"
	AxisY = "y"
)

// Formation layouts are pure functions of the drone count and geometry:
// they return one target position per drone index and know nothing about
// the swarm. The Swarm wrappers dispatch the result through Goto, which
// clamps targets, sets Goto mode and resets controller memory. Altitude
// is shared across a formation (taken from center.Z) and target yaw is
// always zero.

// LineLayout spaces n positions evenly along the chosen axis, centered
// on center.
func LineLayout(n int, center vector.Vec3, spacing float64, axis string) []vector.Vec3 {
	positions := make([]vector.Vec3, 0, n)
	start := -float64(n-1) * spacing / 2.0

	for i := 0; i < n; i++ {
		offset := start + float64(i)*spacing
		switch axis {
		case AxisY:
			positions = append(positions, vector.New(center.X, center.Y+offset, center.Z))
		default:
			positions = append(positions, vector.New(center.X+offset, center.Y, center.Z))
		}
	}
	return positions
}

// CircleLayout spaces n positions evenly by angle around center at the
// given radius, starting at angle zero.
func CircleLayout(n int, center vector.Vec3, radius float64) []vector.Vec3 {
	positions := make([]vector.Vec3, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		positions = append(positions, vector.New(
			center.X+radius*math.Cos(angle),
			center.Y+radius*math.Sin(angle),
			center.Z,
		))
	}
	return positions
}

// GridLayout places n positions on a ceil(sqrt(n)) x rows grid centered
// on center.
func GridLayout(n int, center vector.Vec3, spacing float64) []vector.Vec3 {
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols

	startX := -float64(cols-1) * spacing / 2.0
	startY := -float64(rows-1) * spacing / 2.0

	positions := make([]vector.Vec3, 0, n)
	for i := 0; i < n; i++ {
		row := i / cols
		col := i % cols
		positions = append(positions, vector.New(
			center.X+startX+float64(col)*spacing,
			center.Y+startY+float64(row)*spacing,
			center.Z,
		))
	}
	return positions
}

// VeeLayout puts drone 0 at the apex and alternates followers onto the
// two legs of a 30 degree wedge, each pair one spacing further back.
func VeeLayout(n int, center vector.Vec3, spacing float64) []vector.Vec3 {
	const wedge = math.Pi / 6

	positions := make([]vector.Vec3, 0, n)
	if n > 0 {
		positions = append(positions, center)
	}

	for i := 1; i < n; i++ {
		side := -1.0
		if i%2 == 0 {
			side = 1.0
		}
		back := float64((i + 1) / 2)

		positions = append(positions, vector.New(
			center.X-back*spacing*math.Cos(wedge),
			center.Y+side*back*spacing*math.Sin(wedge),
			center.Z,
		))
	}
	return positions
}

// dispatch sends a layout to the swarm via Goto.
func (s *Swarm) dispatch(positions []vector.Vec3) {
	for i, p := range positions {
		s.Goto(i, p.X, p.Y, p.Z, 0)
	}
}

// FormationLine arranges the whole swarm in a line.
func (s *Swarm) FormationLine(center vector.Vec3, spacing float64, axis string) {
	s.dispatch(LineLayout(len(s.drones), center, spacing, axis))
}

// FormationCircle arranges the whole swarm in a circle.
func (s *Swarm) FormationCircle(center vector.Vec3, radius float64) {
	s.dispatch(CircleLayout(len(s.drones), center, radius))
}

// FormationGrid arranges the whole swarm in a grid.
func (s *Swarm) FormationGrid(center vector.Vec3, spacing float64) {
	s.dispatch(GridLayout(len(s.drones), center, spacing))
}

// FormationVee arranges the whole swarm in a V.
func (s *Swarm) FormationVee(center vector.Vec3, spacing float64) {
	s.dispatch(VeeLayout(len(s.drones), center, spacing))
}

// Waypoint sends a lone drone straight to the point; a larger swarm
// forms a tight circle around it instead.
func (s *Swarm) Waypoint(x, y, z float64) {
	if len(s.drones) == 1 {
		s.Goto(0, x, y, z, 0)
		return
	}
	s.FormationCircle(vector.New(x, y, z), WaypointRingRadius)
}
