package score

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the list in a SQLite table.
type SQLiteStore struct {
	db     *sql.DB
	now    Clock
	logger *log.Logger
}

// Ensure SQLiteStore satisfies Store.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at path and migrates it.
func NewSQLiteStore(path string, logger *log.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer; also keeps ":memory:" on a single database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db, now: time.Now, logger: logger}
	if err := s.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Migrate creates the schema if it does not exist.
func (s *SQLiteStore) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS highscores (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			level TEXT NOT NULL,
			best_time INTEGER NOT NULL,
			total_time INTEGER NOT NULL,
			date TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_highscores_best ON highscores(best_time DESC)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Record implements Store.
func (s *SQLiteStore) Record(ctx context.Context, e Entry) ([]Entry, error) {
	e.Date = s.now().Format(DateLayout)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO highscores (id, name, level, best_time, total_time, date) VALUES (?, ?, ?, ?, ?, ?)`,
		id, e.Name, e.Level, e.BestTime, e.TotalTime, e.Date,
	); err != nil {
		return nil, fmt.Errorf("insert score: %w", err)
	}

	// Insertion order (rowid) breaks ties, like a stable sort over the file.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM highscores WHERE rowid NOT IN (
			SELECT rowid FROM highscores ORDER BY best_time DESC, rowid ASC LIMIT ?
		)`, Capacity,
	); err != nil {
		return nil, fmt.Errorf("trim scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.logger.Info("score recorded", "id", id, "name", e.Name, "level", e.Level, "best", e.BestTime, "total", e.TotalTime)
	return s.Top(ctx, Capacity)
}

// Top implements Store.
func (s *SQLiteStore) Top(ctx context.Context, n int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, level, best_time, total_time, date FROM highscores
		 ORDER BY best_time DESC, rowid ASC LIMIT ?`, max(n, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Level, &e.BestTime, &e.TotalTime, &e.Date); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
