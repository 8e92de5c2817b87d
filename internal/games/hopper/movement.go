package hopper

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopper/internal/config"
	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/games/hopper/world"
)

// fallBehindOffset places the synthetic collision point just ahead of the
// actor when it falls too far behind.
var fallBehindOffset = core.Vec3{X: 0, Y: 0.2, Z: 0.5}

// Controller runs the actor state machine: input, move legality, score,
// window advancement and death.
type Controller struct {
	move      config.MovementConfig
	spawn     int
	window    *world.Window
	presenter Presenter
	logger    *log.Logger

	state      State
	actor      Actor
	score      int
	hop        *Hop
	cause      Cause
	deathPoint core.Vec3
}

// NewController creates a controller driving the actor through w.
func NewController(cfg config.HopperConfig, w *world.Window, p Presenter, logger *log.Logger) *Controller {
	c := &Controller{
		move:      cfg.Movement,
		spawn:     cfg.Lanes.SpawnDistance,
		window:    w,
		presenter: p,
		logger:    logger,
	}
	c.Reset()
	return c
}

// Reset puts the actor back on the start cell with a zero score.
func (c *Controller) Reset() {
	c.state = StateReady
	c.score = 0
	c.hop = nil
	c.cause = CauseNone
	c.deathPoint = core.Vec3{}
	c.actor = Actor{
		Pos:   GridPos{Col: 0, Lane: -1},
		World: core.Vec3{X: 0, Y: c.move.StartHeight, Z: -1},
		Alive: true,
	}
}

// HandleInput applies the highest-priority direction in the frame.
// Input is only read in the Ready state. Returns true if a move started.
func (c *Controller) HandleInput(in core.InputFrame) bool {
	if c.state != StateReady {
		return false
	}
	d, ok := directionFor(in)
	if !ok {
		return false
	}
	return c.Move(d)
}

// Move tries a single step. Illegal destinations are ignored.
func (c *Controller) Move(d Direction) bool {
	if c.state != StateReady {
		return false
	}

	s := steps[d]
	dst := GridPos{Col: c.actor.Pos.Col + s.dCol, Lane: c.actor.Pos.Lane + s.dLane}

	ok, err := c.Legal(dst)
	if err != nil {
		c.logger.Warn("move outside lane window", "dir", d, "col", dst.Col, "lane", dst.Lane, "err", err)
		return false
	}
	if !ok {
		return false
	}

	target, err := c.worldPos(dst)
	if err != nil {
		c.logger.Warn("no terrain under destination", "lane", dst.Lane, "err", err)
		return false
	}

	c.actor.Pos = dst
	c.actor.Rot.Yaw = s.yaw
	c.hop = NewHop(c.actor.World, target, c.actor.Rot, c.move.MoveDuration, c.move.HopHeight)
	c.state = StateMoving

	if dst.Lane+1 > c.score {
		c.score = dst.Lane + 1
		c.presenter.RenderScore(c.score)
	}

	c.advanceWindow()

	if dst.Lane < c.score-c.move.FallBehind {
		c.Kill(c.actor.World.Add(fallBehindOffset), CauseFellBehind)
	}
	return true
}

// Legal reports whether the actor may enter dst. The start area has no
// obstacles; lanes from 0 up are checked against the window.
func (c *Controller) Legal(dst GridPos) (bool, error) {
	if dst.Lane < 0 {
		return c.inStartArea(dst), nil
	}
	occupied, err := c.window.IsOccupied(dst.Lane, dst.Col)
	if err != nil {
		return false, err
	}
	return !occupied, nil
}

// inStartArea reports whether p lies in the safe zone behind lane 0.
func (c *Controller) inStartArea(p GridPos) bool {
	return p.Lane >= -c.move.StartDepth && p.Lane < 0 &&
		p.Col > -c.move.StartHalfWidth && p.Col < c.move.StartHalfWidth
}

// worldPos returns the resting world position of a cell.
func (c *Controller) worldPos(p GridPos) (core.Vec3, error) {
	height := c.move.StartHeight
	if p.Lane >= 0 {
		h, err := c.window.HeightAt(p.Lane)
		if err != nil {
			return core.Vec3{}, err
		}
		height = h
	}
	return core.Vec3{X: float64(p.Col), Y: height, Z: float64(p.Lane)}, nil
}

// advanceWindow keeps spawn lanes generated ahead of the actor and drops
// lanes that fell out of range behind it.
func (c *Controller) advanceWindow() {
	lane := c.actor.Pos.Lane
	c.window.EnsureGenerated(lane + c.spawn - 1)
	c.window.EvictBefore(lane - c.spawn + 1)
}

// Advance runs the hop animation for one variable tick. A hop that lands
// after the actor died leaves the Dead state untouched.
func (c *Controller) Advance(dt float64) {
	if c.hop == nil {
		return
	}

	pos, rot, done := c.hop.Advance(dt)
	c.actor.World = pos
	c.actor.Rot = rot
	if !done {
		return
	}

	c.hop = nil
	if c.state == StateMoving {
		c.state = StateReady
	}
}

// Kill ends the run. Repeated calls while dead are ignored.
// Returns true if this call killed the actor.
func (c *Controller) Kill(point core.Vec3, cause Cause) bool {
	if c.state == StateDead {
		return false
	}

	c.state = StateDead
	c.actor.Alive = false
	c.cause = cause
	c.deathPoint = point
	c.presenter.RenderDeath(true)

	c.logger.Info("actor died", "cause", cause, "score", c.score, "lane", c.actor.Pos.Lane, "col", c.actor.Pos.Col)
	return true
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Score returns the best lane reached plus one.
func (c *Controller) Score() int {
	return c.score
}

// Actor returns a copy of the actor.
func (c *Controller) Actor() Actor {
	return c.actor
}

// Cause returns why the actor died, or CauseNone.
func (c *Controller) Cause() Cause {
	return c.cause
}

// DeathPoint returns where the fatal collision happened.
func (c *Controller) DeathPoint() core.Vec3 {
	return c.deathPoint
}

// Hopping reports whether a hop animation is still running.
func (c *Controller) Hopping() bool {
	return c.hop != nil
}
