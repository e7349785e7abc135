// internal/history/store.go
//
// SQLite journal of finished games.
//
// The in-memory record store stays authoritative for gameplay; this journal
// only collects outcomes for the stats endpoint, so callers treat writes as
// best-effort. One row per (token, date): replays of the same finished day
// are ignored by the INSERT OR IGNORE.

package history

import (
	"context"
	"database/sql"
)

// Result is one finished game for one session and date.
type Result struct {
	Token    string
	Date     string // YYYYMMDD
	Won      bool
	Attempts int
}

// Store persists finished games.
type Store struct{ db *sql.DB }

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// InsertResult records a finished game.
// Respects the (token, date) primary key; duplicate inserts are no-ops.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO game_results(token, date, won, attempts)
		 VALUES(?,?,?,?)`, r.Token, r.Date, r.Won, r.Attempts,
	)
	return err
}

// DayStats aggregates one date's finished games.
// Distribution counts wins by the number of attempts used (1..5).
type DayStats struct {
	Date         string      `json:"date"`
	Played       int         `json:"played"`
	Won          int         `json:"won"`
	Lost         int         `json:"lost"`
	Distribution map[int]int `json:"distribution"`
}

// StatsFor returns the aggregate for a date. Dates with no finished games
// return zero counts and an empty distribution.
func (s *Store) StatsFor(ctx context.Context, date string) (DayStats, error) {
	st := DayStats{Date: date, Distribution: make(map[int]int)}
	rows, err := s.db.QueryContext(ctx,
		`SELECT won, attempts, COUNT(1)
		 FROM game_results
		 WHERE date=?
		 GROUP BY won, attempts`, date,
	)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var won bool
		var attempts, n int
		if err := rows.Scan(&won, &attempts, &n); err != nil {
			return st, err
		}
		st.Played += n
		if won {
			st.Won += n
			st.Distribution[attempts] += n
		} else {
			st.Lost += n
		}
	}
	return st, rows.Err()
}
