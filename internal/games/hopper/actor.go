package hopper

import "github.com/vovakirdan/hopper/internal/core"

// GridPos is a cell of the world grid. Lanes below 0 are the start area.
type GridPos struct {
	Col  int
	Lane int
}

// Euler is an orientation in degrees.
type Euler struct {
	Pitch float64
	Yaw   float64
	Roll  float64
}

// Facing yaws for each hop direction.
const (
	YawForward = 0
	YawBack    = 180
	YawLeft    = -90
	YawRight   = 90
)

// Actor is the player character.
type Actor struct {
	Pos   GridPos   // Logical cell; updated as soon as a move is accepted
	World core.Vec3 // Interpolated pose pushed to presentation
	Rot   Euler
	Alive bool
}

// Direction is a single grid step.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// step describes how a direction moves and turns the actor.
type step struct {
	action core.Action
	dCol   int
	dLane  int
	yaw    float64
}

// steps is ordered by input priority: the first triggered action wins.
var steps = [...]step{
	DirUp:    {action: core.ActionUp, dLane: 1, yaw: YawForward},
	DirDown:  {action: core.ActionDown, dLane: -1, yaw: YawBack},
	DirLeft:  {action: core.ActionLeft, dCol: -1, yaw: YawLeft},
	DirRight: {action: core.ActionRight, dCol: 1, yaw: YawRight},
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor returns the highest-priority direction present in the frame.
func directionFor(in core.InputFrame) (Direction, bool) {
	for d, s := range steps {
		if in.Has(s.action) {
			return Direction(d), true
		}
	}
	return 0, false
}
