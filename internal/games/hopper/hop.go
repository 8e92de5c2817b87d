package hopper

import (
	"math"

	"github.com/vovakirdan/hopper/internal/core"
)

// completionEpsilon absorbs float residue when tick lengths sum to the
// duration.
const completionEpsilon = 1e-9

// Hop is an in-flight move animation. It is polled once per variable tick
// and keeps all of its progress in elapsed, so it can be abandoned or
// resumed at any tick boundary.
type Hop struct {
	from     core.Vec3
	to       core.Vec3
	rot      Euler // Orientation at the start of the hop, new yaw applied
	height   float64
	duration float64
	elapsed  float64
	done     bool
}

// NewHop starts a hop from one pose to another.
func NewHop(from, to core.Vec3, rot Euler, duration, height float64) *Hop {
	return &Hop{
		from:     from,
		to:       to,
		rot:      rot,
		height:   height,
		duration: duration,
	}
}

// Advance moves the animation forward by dt and returns the pose to show.
// On the tick that reaches the duration the pose snaps to the target and
// the starting pitch is restored.
func (h *Hop) Advance(dt float64) (core.Vec3, Euler, bool) {
	if h.done {
		return h.to, h.rot, true
	}

	h.elapsed += dt
	if h.duration <= 0 || h.elapsed >= h.duration-completionEpsilon {
		h.done = true
		return h.to, h.rot, true
	}

	t := h.elapsed / h.duration
	pos := core.LerpVec(h.from, h.to, t)
	pos.Y = h.to.Y + h.height*math.Sin(math.Pi*t)

	rot := h.rot
	rot.Pitch = -5 * math.Pi * math.Cos(math.Pi*t)
	return pos, rot, false
}

// Done reports whether the hop has landed.
func (h *Hop) Done() bool {
	return h.done
}

// Progress returns the completed fraction in [0, 1].
func (h *Hop) Progress() float64 {
	if h.done || h.duration <= 0 {
		return 1
	}
	return core.ClampF(h.elapsed/h.duration, 0, 1)
}

// Target returns the landing pose.
func (h *Hop) Target() core.Vec3 {
	return h.to
}
