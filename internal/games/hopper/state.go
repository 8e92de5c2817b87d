package hopper

// State is the actor's movement state.
type State int

const (
	StateReady  State = iota // Accepting input
	StateMoving              // Hop in progress, input ignored
	StateDead                // Waiting for a new level
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateMoving:
		return "moving"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Cause records why the actor died.
type Cause int

const (
	CauseNone       Cause = iota
	CauseVehicle          // Struck by a vehicle
	CauseFellBehind       // Retreated too far behind the best lane
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseVehicle:
		return "vehicle"
	case CauseFellBehind:
		return "fell_behind"
	default:
		return "unknown"
	}
}
