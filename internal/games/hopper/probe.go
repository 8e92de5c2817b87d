package hopper

import (
	"github.com/vovakirdan/hopper/internal/core"
)

// Actor hitbox half extents on the ground plane.
const (
	ActorHalfWidth = 0.3
	ActorHalfDepth = 0.3
)

// Probe is the presentation-side hit test: it compares the actor's box
// against the vehicles of the lanes around it and reports the first hit to
// the session.
type Probe struct {
	halfW, halfD float64
}

// NewProbe creates a probe with the default actor hitbox.
func NewProbe() Probe {
	return Probe{halfW: ActorHalfWidth, halfD: ActorHalfDepth}
}

// Check returns the contact point of the first vehicle overlapping the
// actor. Dead actors never collide.
func (p Probe) Check(s *Session) (core.Vec3, bool) {
	a := s.Actor()
	if !a.Alive {
		return core.Vec3{}, false
	}

	box := core.BoxAround(a.World.X, a.World.Z, p.halfW, p.halfD)
	center := core.Round(a.World.Z)

	// Mid-hop the box can reach into the neighbouring lanes
	for lane := center - 1; lane <= center+1; lane++ {
		view, ok := s.Window().Lane(lane)
		if !ok {
			continue
		}
		for _, v := range view.Vehicles {
			if v.Box(lane).Intersects(box) {
				return core.Vec3{X: v.X, Y: a.World.Y, Z: float64(lane)}, true
			}
		}
	}
	return core.Vec3{}, false
}

// Detect runs Check and reports a hit to the session. Returns true on a hit.
func (p Probe) Detect(s *Session) bool {
	point, hit := p.Check(s)
	if hit {
		s.ReportCollision(point)
	}
	return hit
}
