package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
)

// ErrRunNotFound is returned by RunByID for an unknown ID.
var ErrRunNotFound = errors.New("storage: run not found")

// Run is one recorded maze run.
type Run struct {
	ID        string
	GameID    string
	Seed      int64
	Width     int
	Height    int
	Outcome   core.Outcome
	Moves     int
	Ticks     int
	Score     int
	Player    string // SSH user name, empty for local play
	CreatedAt time.Time
}

// SaveRun records a run summary under a fresh ID and returns it.
func (s *Store) SaveRun(sum core.RunSummary, player string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, seed, width, height, outcome, moves, ticks, score, player)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, sum.GameID, sum.Seed, sum.Width, sum.Height, string(sum.Outcome),
		sum.Moves, sum.Ticks, sum.Score, player,
	)
	if err != nil {
		return "", fmt.Errorf("storage: save run: %w", err)
	}
	return id, nil
}

const runColumns = `id, game_id, seed, width, height, outcome, moves, ticks, score, player, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var outcome string
	var createdAt any
	err := row.Scan(&r.ID, &r.GameID, &r.Seed, &r.Width, &r.Height, &outcome,
		&r.Moves, &r.Ticks, &r.Score, &r.Player, &createdAt)
	if err != nil {
		return r, err
	}
	r.Outcome = core.Outcome(outcome)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RunByID returns the run stored under id.
func (s *Store) RunByID(id string) (*Run, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("storage: run id %q: %w", id, err)
	}

	r, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: query run: %w", err)
	}
	return &r, nil
}

// RecentRuns returns up to limit runs, newest first. An empty gameID
// matches every game; a non-positive limit means 20.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate runs: %w", err)
	}
	return runs, nil
}

// OutcomeCounts returns how many runs of a game ended with each outcome.
func (s *Store) OutcomeCounts(gameID string) (map[core.Outcome]int, error) {
	rows, err := s.db.Query(`SELECT outcome, COUNT(*) FROM runs WHERE game_id = ? GROUP BY outcome`, gameID)
	if err != nil {
		return nil, fmt.Errorf("storage: count outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[core.Outcome]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("storage: scan outcome: %w", err)
		}
		counts[core.Outcome(outcome)] = n
	}
	return counts, rows.Err()
}
