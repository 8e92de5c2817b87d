// Package hopper implements an endless lane runner: the actor hops across
// procedurally generated grass and road lanes, dodging traffic, while the
// world is generated ahead of it and released behind it.
package hopper

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopper/internal/config"
	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/registry"
)

// Mode selects how many roads a level may contain.
type Mode int

const (
	ModeClassic Mode = iota // Road cap from configuration
	ModeEndless             // Roads are never capped
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives game events; discarded unless the CLI routes it somewhere
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by new game instances.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Session to the platform's registry interface.
type Game struct {
	mode      Mode
	runtime   core.RuntimeConfig
	cfg       config.HopperConfig
	session   *Session
	presenter *ScreenPresenter
	probe     Probe
	paused    bool
}

// New creates a classic hopper game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a hopper game without a road cap.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "hopper_endless"
	}
	return "hopper"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Hopper (Endless)"
	}
	return "Hopper"
}

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadHopper(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultHopperConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHopperPreset(&cfg, difficultyPreset)
	}
	g.configure(cfg)
}

// configure starts a session with an explicit configuration.
func (g *Game) configure(cfg config.HopperConfig) {
	if g.mode == ModeEndless {
		cfg.Lanes.MaxRoads = -1
	}
	g.cfg = cfg
	g.paused = false
	g.probe = NewProbe()
	g.presenter = NewScreenPresenter(cfg)

	rng := rand.New(rand.NewSource(g.runtime.Seed))
	g.session = NewSession(cfg, rng, g.presenter, logger.WithPrefix(g.ID()))
}

// Update runs one variable tick.
func (g *Game) Update(dt float64, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.session.State() != StateDead {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.session.Update(dt, in)
	return core.StepResult{State: g.State()}
}

// FixedUpdate runs one physics step followed by the collision probe.
func (g *Game) FixedUpdate(dt float64) {
	if g.paused {
		return
	}
	g.session.FixedUpdate(dt)
	g.probe.Detect(g.session)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.presenter.Draw(dst, g.session.Lanes())

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.session.State() == StateDead {
		g.drawCenteredMessage(dst, deathTitle(g.session.Cause()),
			fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score()))
	}
}

// deathTitle returns the banner for a death cause.
func deathTitle(c Cause) string {
	switch c {
	case CauseFellBehind:
		return "LEFT BEHIND"
	default:
		return "SPLAT!"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateDead,
		Paused:   g.paused,
	}
}

// RunReport describes the current run for the history table.
func (g *Game) RunReport() core.RunReport {
	return core.RunReport{
		Cause: g.session.Cause().String(),
		Lanes: g.session.Window().Generated(),
		Roads: g.session.Window().Roads(),
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Register both modes with the registry
func init() {
	registry.Register("hopper", func() registry.Game {
		return New()
	})
	registry.Register("hopper_endless", func() registry.Game {
		return NewEndless()
	})
}
