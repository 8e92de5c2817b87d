package hopper

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/hopper/internal/config"
	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		FixedRate: 50,
		Seed:      seed,
	}
}

// play drives a game with a fixed input script: one hop attempt every 15
// variable ticks, one fixed step every variable tick.
func play(g *Game, ticks int) {
	script := []core.Action{core.ActionUp, core.ActionUp, core.ActionLeft, core.ActionUp, core.ActionRight}
	for i := 0; i < ticks; i++ {
		in := core.NewInputFrame()
		if i%15 == 0 {
			in.Set(script[(i/15)%len(script)])
		}
		g.Update(1.0/60, in)
		g.FixedUpdate(0.02)
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := New()
	g1.runtime = testRuntime(12345)
	g1.configure(config.DefaultHopperConfig())

	g2 := New()
	g2.runtime = testRuntime(12345)
	g2.configure(config.DefaultHopperConfig())

	play(g1, 600)
	play(g2, 600)

	s1, s2 := g1.Session().Snapshot(), g2.Session().Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Determinism failed:\nRun1=%+v\nRun2=%+v", s1, s2)
	}
}

func TestGameSeedsDiffer(t *testing.T) {
	g1 := New()
	g1.runtime = testRuntime(1)
	g1.configure(config.DefaultHopperConfig())

	g2 := New()
	g2.runtime = testRuntime(2)
	g2.configure(config.DefaultHopperConfig())

	if reflect.DeepEqual(g1.Session().Snapshot(), g2.Session().Snapshot()) {
		t.Error("different seeds produced identical worlds")
	}
}

func TestGameModes(t *testing.T) {
	classic, endless := New(), NewEndless()
	classic.Reset(testRuntime(1))
	endless.Reset(testRuntime(1))

	if classic.ID() != "hopper" || endless.ID() != "hopper_endless" {
		t.Errorf("IDs = %q, %q", classic.ID(), endless.ID())
	}
	if classic.cfg.Lanes.MaxRoads < 0 {
		t.Errorf("classic MaxRoads = %d, expected a cap", classic.cfg.Lanes.MaxRoads)
	}
	if endless.cfg.Lanes.MaxRoads != -1 {
		t.Errorf("endless MaxRoads = %d, expected -1", endless.cfg.Lanes.MaxRoads)
	}

	for _, id := range []string{"hopper", "hopper_endless"} {
		if !registry.Exists(id) {
			t.Errorf("%q is not registered", id)
		}
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.runtime = testRuntime(5)
	cfg := config.DefaultHopperConfig()
	cfg.Lanes.MaxRoads = -1
	g.configure(cfg)

	g.Update(0.016, input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.Session().Snapshot()
	g.Update(0.016, input(core.ActionUp))
	g.FixedUpdate(0.02)
	if !reflect.DeepEqual(before, g.Session().Snapshot()) {
		t.Error("paused game changed state")
	}

	g.Update(0.016, input(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))
	dst := core.NewScreen(80, 24)

	g.Render(dst)
	out := dst.String()

	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.ContainsRune(out, '▲') {
		t.Error("actor should be drawn facing forward")
	}
	if !strings.ContainsRune(out, OutsideChar) {
		t.Error("out-of-bounds columns should be drawn")
	}

	g.Session().ReportCollision(core.Vec3{})
	dst.Clear()
	g.Render(dst)
	out = dst.String()
	if !strings.Contains(out, "SPLAT!") || !strings.ContainsRune(out, DeadChar) {
		t.Error("death banner and dead actor should be drawn")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true after death")
	}
	if r := g.RunReport(); r.Cause != "vehicle" || r.Lanes != 20 {
		t.Errorf("RunReport() = %+v", r)
	}
}

func TestScreenPresenterTracksLanes(t *testing.T) {
	cfg := config.DefaultHopperConfig()
	p := NewScreenPresenter(cfg)
	s := NewSession(cfg, allGrass, p, nil)

	for i := 0; i < 40; i++ {
		hop(s, core.ActionUp)
	}
	if p.Sprites() != s.Window().Len() {
		t.Errorf("Sprites() = %d, window holds %d lanes", p.Sprites(), s.Window().Len())
	}
	if p.Score() != s.Score() {
		t.Errorf("presented score %d, session score %d", p.Score(), s.Score())
	}

	s.NewLevel()
	if p.Sprites() != cfg.Lanes.SpawnDistance || p.Dead() {
		t.Errorf("after NewLevel: %d sprites, dead=%v", p.Sprites(), p.Dead())
	}
}

func TestScreenPresenterCameraFollows(t *testing.T) {
	cfg := config.DefaultHopperConfig()
	p := NewScreenPresenter(cfg)
	s := NewSession(cfg, allGrass, p, nil)
	dst := core.NewScreen(80, 24)
	actorRow := dst.Height() - 1 - CameraRows

	for i := 0; i < 30; i++ {
		hop(s, core.ActionUp)
	}
	dst.Clear()
	p.Draw(dst, s.Lanes())

	x := dst.Width() / 2
	if dst.Get(x, actorRow) != '▲' {
		t.Errorf("actor should stay on row %d, got %q", actorRow, dst.Get(x, actorRow))
	}

	// A short retreat moves the actor down the screen, not the camera
	hop(s, core.ActionDown)
	dst.Clear()
	p.Draw(dst, s.Lanes())
	if dst.Get(x, actorRow+1) != '▼' {
		t.Errorf("retreating actor should be one row lower, got %q", dst.Get(x, actorRow+1))
	}
}
