package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/registry"
	"github.com/vovakirdan/hopper/internal/storage"
)

// maxFixedSteps bounds catch-up physics after a stalled frame.
const maxFixedSteps = 5

// runner drives a game on both clocks and records finished runs.
// It is shared by the local and SSH models, which hold it by pointer.
type runner struct {
	game      registry.Game
	store     *storage.Store
	config    core.RuntimeConfig
	logger    *log.Logger
	stepper   *core.FixedStepper
	lastTick  time.Time
	runStart  time.Time
	gameState core.GameState
	saved     bool // Whether the current death has been recorded
}

func newRunner(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &runner{
		game:    game,
		store:   store,
		config:  cfg,
		logger:  logger,
		stepper: core.NewFixedStepper(cfg.FixedRate, maxFixedSteps),
	}
}

// start resets the game and both clocks.
func (r *runner) start(now time.Time) {
	r.game.Reset(r.config)
	r.stepper.Reset()
	r.lastTick = now
	r.runStart = now
	r.gameState = r.game.State()
	r.saved = false
}

// tick runs one variable update followed by every fixed step that is due.
func (r *runner) tick(now time.Time, in core.InputFrame) {
	elapsed := now.Sub(r.lastTick)
	if elapsed < 0 {
		elapsed = 0
	}
	r.lastTick = now

	r.gameState = r.game.Update(elapsed.Seconds(), in).State
	for n := r.stepper.Advance(elapsed); n > 0; n-- {
		r.game.FixedUpdate(r.config.FixedDelta())
	}
	r.gameState = r.game.State()

	switch {
	case r.gameState.GameOver && !r.saved:
		r.record(now, "")
		r.saved = true
	case !r.gameState.GameOver && r.saved:
		// The game restarted itself after a death
		r.saved = false
		r.runStart = now
	}
}

// abandon records the current run as quit unless it already ended.
func (r *runner) abandon(now time.Time) {
	if r.gameState.GameOver || r.gameState.Score == 0 {
		return
	}
	r.record(now, "quit")
	r.saved = true
}

// record stores the score and run history. Failures are logged, never fatal.
func (r *runner) record(now time.Time, cause string) {
	if r.store == nil {
		return
	}

	report := core.RunReport{Cause: cause}
	if rr, ok := r.game.(registry.RunReporter); ok {
		report = rr.RunReport()
		if cause != "" {
			report.Cause = cause
		}
	}

	if r.gameState.Score > 0 {
		if _, err := r.store.SaveScore(r.game.ID(), r.gameState.Score); err != nil {
			r.logger.Warn("could not save score", "game", r.game.ID(), "err", err)
		}
	}

	run := storage.RunRecord{
		GameID:   r.game.ID(),
		Score:    r.gameState.Score,
		Cause:    report.Cause,
		Lanes:    report.Lanes,
		Roads:    report.Roads,
		Duration: int(now.Sub(r.runStart).Seconds()),
	}
	if _, err := r.store.SaveRun(run); err != nil {
		r.logger.Warn("could not save run", "game", r.game.ID(), "err", err)
		return
	}
	r.logger.Debug("run recorded", "game", run.GameID, "score", run.Score, "cause", run.Cause)
}
