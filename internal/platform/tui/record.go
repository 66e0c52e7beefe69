package tui

import (
	"github.com/charmbracelet/log"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/registry"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/storage"
)

// RunRecorder saves scores and run history when a run ends.
// A nil store turns it into a no-op.
type RunRecorder struct {
	store    *storage.Store
	player   string
	logger   *log.Logger
	recorded bool // current run already saved
}

// NewRunRecorder creates a recorder saving runs under player.
func NewRunRecorder(store *storage.Store, player string, logger *log.Logger) *RunRecorder {
	if logger == nil {
		logger = log.Default()
	}
	return &RunRecorder{store: store, player: player, logger: logger}
}

// Observe is called after every tick. It saves the run once when it ends and
// re-arms when the game starts a new run.
func (r *RunRecorder) Observe(game registry.Game, state core.GameState) {
	if r == nil {
		return
	}
	if !state.GameOver {
		r.recorded = false
		return
	}
	if r.recorded {
		return
	}
	r.recorded = true
	r.save(summaryOf(game, state))
}

// Abandon saves a run the player left before it ended. Runs without a single
// move are not worth keeping.
func (r *RunRecorder) Abandon(game registry.Game, state core.GameState) {
	if r == nil || r.recorded || state.GameOver {
		return
	}
	sum := summaryOf(game, state)
	if sum.Moves == 0 {
		return
	}
	sum.Outcome = core.OutcomeQuit
	r.recorded = true
	r.save(sum)
}

func (r *RunRecorder) save(sum core.RunSummary) {
	if r.store == nil {
		return
	}

	if sum.Score > 0 {
		if _, err := r.store.SaveScore(sum.GameID, sum.Score); err != nil {
			r.logger.Warn("could not save score", "game", sum.GameID, "error", err)
		}
	}

	id, err := r.store.SaveRun(sum, r.player)
	if err != nil {
		r.logger.Warn("could not save run", "game", sum.GameID, "error", err)
		return
	}
	r.logger.Debug("run saved", "id", id, "game", sum.GameID, "outcome", sum.Outcome, "score", sum.Score)
}

// summaryOf asks the game for its run details, falling back to the state.
func summaryOf(game registry.Game, state core.GameState) core.RunSummary {
	if rr, ok := game.(registry.RunReporter); ok {
		return rr.RunSummary()
	}
	return core.RunSummary{
		GameID:  game.ID(),
		Outcome: state.Outcome,
		Score:   state.Score,
	}
}
