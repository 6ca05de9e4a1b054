package swarm

import (
	"github.com/google/uuid"

	"github.com/skylark-sim/swarmkit/pkg/vector"
)

// DroneState is the read-only snapshot of one drone returned to callers
// polling the swarm each frame.
type DroneState struct {
	ID       int         `json:"id"`
	Serial   uuid.UUID   `json:"serial"`
	Position vector.Vec3 `json:"pos"`
	Velocity vector.Vec3 `json:"vel"`
	Yaw      float64     `json:"yaw"`
	Battery  float64     `json:"battery"`
	Healthy  bool        `json:"healthy"`
	Mode     string      `json:"mode"`
}
