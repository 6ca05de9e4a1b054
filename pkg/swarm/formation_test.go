package swarm

import (
	"math"
	"testing"

	"github.com/skylark-sim/swarmkit/pkg/vector"
)

func TestLineLayout(t *testing.T) {
	center := vector.New(1, 2, 1.5)

	t.Run("x axis", func(t *testing.T) {
		got := LineLayout(3, center, 2.0, AxisX)
		want := []vector.Vec3{
			vector.New(-1, 2, 1.5),
			vector.New(1, 2, 1.5),
			vector.New(3, 2, 1.5),
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
			}
		}
	})

	t.Run("y axis", func(t *testing.T) {
		got := LineLayout(3, center, 2.0, AxisY)
		want := []vector.Vec3{
			vector.New(1, 0, 1.5),
			vector.New(1, 2, 1.5),
			vector.New(1, 4, 1.5),
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
			}
		}
	})

	t.Run("unknown axis falls back to x", func(t *testing.T) {
		x := LineLayout(4, center, 1.0, AxisX)
		other := LineLayout(4, center, 1.0, "diagonal")
		for i := range x {
			if x[i] != other[i] {
				t.Errorf("position %d differs from x-axis layout", i)
			}
		}
	})
}

func TestCircleLayoutAngles(t *testing.T) {
	center := vector.New(0, 0, 1)
	got := CircleLayout(4, center, 1.5)

	for i, wantAngle := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		wantX := 1.5 * math.Cos(wantAngle)
		wantY := 1.5 * math.Sin(wantAngle)
		if math.Abs(got[i].X-wantX) > 1e-12 || math.Abs(got[i].Y-wantY) > 1e-12 {
			t.Errorf("position %d: expected (%f, %f), got (%f, %f)", i, wantX, wantY, got[i].X, got[i].Y)
		}
		if got[i].Z != 1 {
			t.Errorf("position %d altitude %f, expected shared center altitude", i, got[i].Z)
		}
	}
}

func TestGridLayout(t *testing.T) {
	got := GridLayout(4, vector.New(0, 0, 2), 1.0)

	// 4 drones: 2x2 grid centered on origin.
	want := []vector.Vec3{
		vector.New(-0.5, -0.5, 2),
		vector.New(0.5, -0.5, 2),
		vector.New(-0.5, 0.5, 2),
		vector.New(0.5, 0.5, 2),
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestGridLayoutRaggedCount(t *testing.T) {
	// 5 drones on a 3-column grid leaves the last row short; everyone
	// still gets a slot.
	got := GridLayout(5, vector.New(0, 0, 1), 1.0)
	if len(got) != 5 {
		t.Fatalf("expected 5 positions, got %d", len(got))
	}
}

func TestVeeLayout(t *testing.T) {
	center := vector.New(0, 0, 1.5)
	got := VeeLayout(5, center, 1.0)

	if got[0] != center {
		t.Errorf("leader not at apex: %v", got[0])
	}

	cos30 := math.Cos(math.Pi / 6)
	sin30 := math.Sin(math.Pi / 6)

	// Odd indexes go to one side, even to the other, pairs stepping back.
	checks := []struct {
		idx  int
		back float64
		side float64
	}{
		{1, 1, -1},
		{2, 1, 1},
		{3, 2, -1},
		{4, 2, 1},
	}
	for _, c := range checks {
		wantX := -c.back * cos30
		wantY := c.side * c.back * sin30
		if math.Abs(got[c.idx].X-wantX) > 1e-12 || math.Abs(got[c.idx].Y-wantY) > 1e-12 {
			t.Errorf("position %d: expected (%f, %f), got (%f, %f)", c.idx, wantX, wantY, got[c.idx].X, got[c.idx].Y)
		}
	}
}

func TestFormationCircleCommand(t *testing.T) {
	s := New(4, DefaultTickRateHz)
	s.FormationCircle(vector.New(0, 0, 1), 1.5)

	layout := CircleLayout(4, vector.New(0, 0, 1), 1.5)
	for i, d := range s.drones {
		if d.Mode != ModeGoto {
			t.Errorf("drone %d not in goto mode", i)
		}
		if math.Abs(d.TargetPosition.X-layout[i].X) > 1e-12 ||
			math.Abs(d.TargetPosition.Y-layout[i].Y) > 1e-12 {
			t.Errorf("drone %d target %v, layout %v", i, d.TargetPosition, layout[i])
		}
		if d.TargetYaw != 0 {
			t.Errorf("drone %d formation yaw %f, expected 0", i, d.TargetYaw)
		}
	}
}

func TestWaypoint(t *testing.T) {
	t.Run("single drone goes direct", func(t *testing.T) {
		s := New(1, DefaultTickRateHz)
		s.Waypoint(1, 2, 1.5)

		d := s.drones[0]
		if d.TargetPosition != vector.New(1, 2, 1.5) {
			t.Errorf("expected direct target, got %v", d.TargetPosition)
		}
	})

	t.Run("multiple drones ring the point", func(t *testing.T) {
		s := New(3, DefaultTickRateHz)
		s.Waypoint(1, 2, 1.5)

		center := vector.New(1, 2, 0)
		for i, d := range s.drones {
			planar := vector.New(d.TargetPosition.X, d.TargetPosition.Y, 0)
			if r := planar.Dist(center); math.Abs(r-WaypointRingRadius) > 1e-12 {
				t.Errorf("drone %d at ring radius %f", i, r)
			}
			if d.TargetPosition.Z != 1.5 {
				t.Errorf("drone %d ring altitude %f", i, d.TargetPosition.Z)
			}
		}
	})
}
