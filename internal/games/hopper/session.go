package hopper

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopper/internal/config"
	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/games/hopper/world"
)

// Session owns one game: the lane window, the traffic simulator and the
// actor. It is driven by two clocks: Update on every variable tick and
// FixedUpdate on every fixed physics step.
type Session struct {
	cfg       config.HopperConfig
	window    *world.Window
	traffic   *world.Traffic
	ctrl      *Controller
	presenter Presenter
	logger    *log.Logger
	levels    int
}

// NewSession creates a session and starts its first level. A nil presenter
// or logger is replaced with a no-op one.
func NewSession(cfg config.HopperConfig, rng world.Rand, p Presenter, logger *log.Logger) *Session {
	if p == nil {
		p = NopPresenter{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	window := world.NewWindow(world.NewGenerator(cfg, rng), p)
	s := &Session{
		cfg:       cfg,
		window:    window,
		traffic:   world.NewTraffic(cfg.Traffic.WrapBound),
		ctrl:      NewController(cfg, window, p, logger),
		presenter: p,
		logger:    logger,
	}
	s.NewLevel()
	return s
}

// NewLevel discards the current level and starts a fresh one. Every lane
// of the previous level is released and the road cap starts over.
func (s *Session) NewLevel() {
	s.window.Reset()
	s.window.EnsureGenerated(s.cfg.Lanes.SpawnDistance - 1)
	s.ctrl.Reset()
	s.levels++

	a := s.ctrl.Actor()
	s.presenter.RenderScore(0)
	s.presenter.RenderDeath(false)
	s.presenter.RenderActorPosition(a.World, a.Rot)

	s.logger.Debug("level started", "level", s.levels, "lanes", s.window.Len(), "roads", s.window.Roads())
}

// Update runs one variable tick: the hop animation, then either the
// restart trigger (while dead) or movement input.
func (s *Session) Update(dt float64, in core.InputFrame) {
	s.ctrl.Advance(dt)
	a := s.ctrl.Actor()
	s.presenter.RenderActorPosition(a.World, a.Rot)

	if s.ctrl.State() == StateDead {
		if in.Has(core.ActionRestart) {
			s.NewLevel()
		}
		return
	}
	s.ctrl.HandleInput(in)
}

// FixedUpdate runs one fixed physics step.
func (s *Session) FixedUpdate(dt float64) {
	s.traffic.Step(s.window, dt)
}

// ReportCollision is called by presentation when a vehicle hits the actor.
func (s *Session) ReportCollision(point core.Vec3) {
	s.ctrl.Kill(point, CauseVehicle)
}

// State returns the actor state.
func (s *Session) State() State {
	return s.ctrl.State()
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.ctrl.Score()
}

// Actor returns a copy of the actor.
func (s *Session) Actor() Actor {
	return s.ctrl.Actor()
}

// Pose returns the actor's current world position and rotation.
func (s *Session) Pose() (core.Vec3, Euler) {
	a := s.ctrl.Actor()
	return a.World, a.Rot
}

// Cause returns why the actor died in the current level.
func (s *Session) Cause() Cause {
	return s.ctrl.Cause()
}

// Lanes returns snapshots of the retained lanes, lowest first.
func (s *Session) Lanes() []world.LaneView {
	return s.window.Views()
}

// Window exposes the lane window for read-only queries.
func (s *Session) Window() *world.Window {
	return s.window
}

// Controller exposes the movement controller.
func (s *Session) Controller() *Controller {
	return s.ctrl
}

// Levels returns how many levels were started.
func (s *Session) Levels() int {
	return s.levels
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.HopperConfig {
	return s.cfg
}
