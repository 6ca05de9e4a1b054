package world

// Command types accepted by the world. Unknown types are logged and
// dropped; the simulation never fails on a bad command.
const (
	CmdTakeoff   = "takeoff"
	CmdLand      = "land"
	CmdHover     = "hover"
	CmdGoto      = "goto"
	CmdVelocity  = "velocity"
	CmdFormation = "formation"
	CmdWaypoint  = "waypoint"
	CmdMonitor   = "monitor"
	CmdSpeed     = "speed"
	CmdReset     = "reset"
	CmdSpawn     = "spawn"
)

// Formation pattern names for CmdFormation.
const (
	FormationLine   = "line"
	FormationCircle = "circle"
	FormationGrid   = "grid"
	FormationVee    = "v"
)

// Command is a queued instruction for the swarm. IDs addresses specific
// drones; All addresses every drone and wins over IDs. Params carries
// the command-specific values (altitude, x/y/z, pattern, ...).
type Command struct {
	Type   string
	IDs    []int
	All    bool
	Params map[string]interface{}
}

// floatParam reads a numeric parameter, accepting the int/float64 forms
// that yaml and prompt decoding produce.
func floatParam(params map[string]interface{}, key string, fallback float64) float64 {
	v, ok := params[key]
	if !ok {
		return fallback
	}
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	default:
		return fallback
	}
}

// intParam reads an integer parameter with the same tolerance.
func intParam(params map[string]interface{}, key string, fallback int) int {
	v, ok := params[key]
	if !ok {
		return fallback
	}
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return fallback
	}
}

// stringParam reads a string parameter.
func stringParam(params map[string]interface{}, key, fallback string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}
