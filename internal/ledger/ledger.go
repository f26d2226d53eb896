// Package ledger records finished rounds for the lifetime of the process and
// answers summary queries for the end-of-session report and the debug server.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Result is one finished round.
type Result struct {
	SessionID  string    `json:"sessionId"`
	Round      int       `json:"round"`
	Category   string    `json:"category"`
	Word       string    `json:"word"`
	Won        bool      `json:"won"`
	Wrong      int       `json:"wrong"`
	Hints      int       `json:"hints"`
	Points     int       `json:"points"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Summary aggregates a session's rounds.
type Summary struct {
	Rounds     int `json:"rounds"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	Points     int `json:"points"`
	BestPoints int `json:"bestPoints"`
	Hints      int `json:"hints"`
}

// Ledger is an in-memory SQLite table of round results.
type Ledger struct {
	db *sql.DB
}

// Open creates a fresh ledger database identified by name and applies migrations.
// Two ledgers opened with the same name share one database.
func Open(name string) (*Ledger, error) {
	db, err := openDB(name)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Ledger{db: db}, nil
}

// Close releases the database; its contents are discarded.
func (l *Ledger) Close() error { return l.db.Close() }

// Record inserts a finished round.
// A round already recorded for the session is ignored (UNIQUE(session_id, round)).
func (l *Ledger) Record(ctx context.Context, r Result) error {
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now().UTC()
	}
	_, err := l.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO rounds
            (session_id, round, category, word, won, wrong, hints, points, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Round, r.Category, r.Word, boolInt(r.Won), r.Wrong, r.Hints, r.Points,
		r.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Recent returns the latest rounds across all sessions, newest first.
// Default limit is 20 if not specified.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.QueryContext(ctx, `
        SELECT session_id, round, category, word, won, wrong, hints, points, finished_at
        FROM rounds
        ORDER BY id DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		var (
			r        Result
			won      int
			finished string
		)
		if err := rows.Scan(&r.SessionID, &r.Round, &r.Category, &r.Word, &won, &r.Wrong, &r.Hints, &r.Points, &finished); err != nil {
			return nil, err
		}
		r.Won = won != 0
		if r.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("round %s/%d finished_at: %w", r.SessionID, r.Round, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summary aggregates every recorded round of sessionID.
func (l *Ledger) Summary(ctx context.Context, sessionID string) (Summary, error) {
	var s Summary
	err := l.db.QueryRowContext(ctx, `
        SELECT COUNT(1),
               COALESCE(SUM(won), 0),
               COALESCE(SUM(points), 0),
               COALESCE(MAX(points), 0),
               COALESCE(SUM(hints), 0)
        FROM rounds
        WHERE session_id=?`, sessionID,
	).Scan(&s.Rounds, &s.Wins, &s.Points, &s.BestPoints, &s.Hints)
	if err != nil {
		return Summary{}, err
	}
	s.Losses = s.Rounds - s.Wins
	return s, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
