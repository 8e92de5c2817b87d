package tui

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/storage"
)

// scriptedGame records clock calls and reports whatever state the test sets.
type scriptedGame struct {
	state    core.GameState
	updates  []float64
	fixed    int
	fixedDts []float64
	resets   int
}

func (g *scriptedGame) ID() string                { return "scripted" }
func (g *scriptedGame) Title() string             { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig)  { g.resets++ }
func (g *scriptedGame) Render(*core.Screen)       {}
func (g *scriptedGame) State() core.GameState     { return g.state }
func (g *scriptedGame) RunReport() core.RunReport { return core.RunReport{Cause: "vehicle", Lanes: 30, Roads: 5} }

func (g *scriptedGame) Update(dt float64, _ core.InputFrame) core.StepResult {
	g.updates = append(g.updates, dt)
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) FixedUpdate(dt float64) {
	g.fixed++
	g.fixedDts = append(g.fixedDts, dt)
}

func newTestRunner(t *testing.T) (*runner, *scriptedGame, *storage.Store, time.Time) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.DefaultConfig()
	cfg.Seed = 1
	game := &scriptedGame{}
	r := newRunner(game, store, cfg, nil)

	start := time.Unix(1700000000, 0)
	r.start(start)
	return r, game, store, start
}

func TestRunnerClocks(t *testing.T) {
	r, game, _, start := newTestRunner(t)
	in := core.NewInputFrame()

	// 50 Hz physics: 70ms of frames is three whole fixed steps
	r.tick(start.Add(30*time.Millisecond), in)
	r.tick(start.Add(70*time.Millisecond), in)

	if game.resets != 1 {
		t.Errorf("Reset called %d times, expected 1", game.resets)
	}
	if len(game.updates) != 2 {
		t.Fatalf("Update called %d times, expected 2", len(game.updates))
	}
	if math.Abs(game.updates[0]-0.03) > 1e-9 || math.Abs(game.updates[1]-0.04) > 1e-9 {
		t.Errorf("Update dts = %v, expected [0.03 0.04]", game.updates)
	}
	if game.fixed != 3 {
		t.Errorf("FixedUpdate called %d times, expected 3", game.fixed)
	}
	for _, dt := range game.fixedDts {
		if dt != 0.02 {
			t.Errorf("FixedUpdate dt = %v, expected 0.02", dt)
		}
	}
}

func TestRunnerStallCapsFixedSteps(t *testing.T) {
	r, game, _, start := newTestRunner(t)

	r.tick(start.Add(5*time.Second), core.NewInputFrame())
	if game.fixed != maxFixedSteps {
		t.Errorf("FixedUpdate called %d times after a stall, expected %d", game.fixed, maxFixedSteps)
	}
}

func TestRunnerRecordsEachDeathOnce(t *testing.T) {
	r, game, store, start := newTestRunner(t)
	in := core.NewInputFrame()
	now := start

	step := func() {
		now = now.Add(time.Second)
		r.tick(now, in)
	}

	game.state = core.GameState{Score: 7}
	step()
	game.state.GameOver = true
	step()
	step()
	step()

	runs, err := store.RecentRuns("scripted", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run after one death, got %d", len(runs))
	}
	if runs[0].Score != 7 || runs[0].Cause != "vehicle" || runs[0].Lanes != 30 || runs[0].Duration != 2 {
		t.Errorf("Run = %+v", runs[0])
	}

	// The game restarts itself; the next death is a new run
	game.state = core.GameState{Score: 0}
	step()
	game.state = core.GameState{Score: 3, GameOver: true}
	step()

	runs, _ = store.RecentRuns("scripted", 10)
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Score != 3 || runs[0].Duration != 1 {
		t.Errorf("Second run = %+v", runs[0])
	}

	best, _ := store.HighScore("scripted")
	if best != 7 {
		t.Errorf("HighScore() = %d, expected 7", best)
	}
}

func TestRunnerAbandon(t *testing.T) {
	r, game, store, start := newTestRunner(t)

	// Nothing to record before the first point
	r.abandon(start)
	if runs, _ := store.RecentRuns("scripted", 10); len(runs) != 0 {
		t.Fatalf("Abandoning a scoreless run should record nothing, got %d", len(runs))
	}

	game.state = core.GameState{Score: 4}
	r.tick(start.Add(time.Second), core.NewInputFrame())
	r.abandon(start.Add(2 * time.Second))

	runs, _ := store.RecentRuns("scripted", 10)
	if len(runs) != 1 || runs[0].Cause != "quit" || runs[0].Score != 4 {
		t.Errorf("Abandoned run = %+v", runs)
	}
}

func TestRunnerWithoutStore(t *testing.T) {
	game := &scriptedGame{state: core.GameState{Score: 2, GameOver: true}}
	r := newRunner(game, nil, core.DefaultConfig(), nil)
	start := time.Now()
	r.start(start)
	r.tick(start.Add(time.Second), core.NewInputFrame())

	if !r.saved {
		t.Error("Death should be marked handled even without storage")
	}
}
