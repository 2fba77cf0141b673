// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists submitted search terms and picked suggestions in
// a local SQLite database. Recent terms feed the recent-query surface next
// to live catalog suggestions.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/typeahead/internal/suggest"
	"github.com/pdiddy/typeahead/pkg/types"
)

const defaultDBFile = "typeahead.db"

// Store manages the history SQLite database.
type Store struct {
	db         *sql.DB
	maxEntries int
}

// NewStore opens or creates the history database and its schema.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = defaultDBFile
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db, maxEntries: cfg.MaxEntries}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS queries (
			term TEXT PRIMARY KEY,
			hits INTEGER NOT NULL DEFAULT 1,
			last_used TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_queries_last_used ON queries(last_used)`,
		`CREATE TABLE IF NOT EXISTS selections (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			suggestion_id INTEGER NOT NULL,
			text TEXT NOT NULL,
			term TEXT,
			at TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordQuery upserts a submitted term, bumping its hit count and last-used
// timestamp. Blank terms are ignored.
func (s *Store) RecordQuery(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO queries (term, hits, last_used) VALUES (?, 1, ?)
		 ON CONFLICT(term) DO UPDATE SET hits = hits + 1, last_used = excluded.last_used`,
		term, now)
	if err != nil {
		return fmt.Errorf("recording query: %w", err)
	}
	return s.prune(ctx)
}

// prune drops the oldest terms beyond the configured cap.
func (s *Store) prune(ctx context.Context) error {
	if s.maxEntries <= 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM queries WHERE term NOT IN
			(SELECT term FROM queries ORDER BY last_used DESC, term LIMIT ?)`,
		s.maxEntries)
	if err != nil {
		return fmt.Errorf("pruning history: %w", err)
	}
	return nil
}

// RecordSelection appends a picked suggestion to the selections log.
func (s *Store) RecordSelection(ctx context.Context, sel types.Selection) error {
	at := sel.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO selections (suggestion_id, text, term, at) VALUES (?, ?, ?, ?)`,
		sel.SuggestionID, sel.Text, sel.Term, at.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording selection: %w", err)
	}
	return nil
}

// Recent returns submitted terms most recent first, optionally restricted
// to those starting with prefix (case- and diacritic-insensitive). A limit
// of zero or less returns nothing.
func (s *Store) Recent(ctx context.Context, prefix string, limit int) ([]types.RecentQuery, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT term, hits, last_used FROM queries ORDER BY last_used DESC, term`)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	folded := suggest.Fold(prefix)
	var recent []types.RecentQuery
	for rows.Next() {
		var (
			q    types.RecentQuery
			used string
		)
		if err := rows.Scan(&q.Term, &q.Hits, &used); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if folded != "" && !strings.HasPrefix(suggest.Fold(q.Term), folded) {
			continue
		}
		if t, parseErr := time.Parse(time.RFC3339, used); parseErr == nil {
			q.LastUsed = t
		}
		recent = append(recent, q)
		if len(recent) == limit {
			break
		}
	}
	return recent, rows.Err()
}

// Selections returns the most recent picked suggestions, newest first.
func (s *Store) Selections(ctx context.Context, limit int) ([]types.Selection, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT suggestion_id, text, term, at FROM selections ORDER BY rowid DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("querying selections: %w", err)
	}
	defer rows.Close()

	var selections []types.Selection
	for rows.Next() {
		var (
			sel types.Selection
			at  string
		)
		if err := rows.Scan(&sel.SuggestionID, &sel.Text, &sel.Term, &at); err != nil {
			return nil, fmt.Errorf("scanning selection row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, at); parseErr == nil {
			sel.At = t
		}
		selections = append(selections, sel)
	}
	return selections, rows.Err()
}

// Clear wipes all recorded queries and selections.
func (s *Store) Clear(ctx context.Context) error {
	for _, stmt := range []string{`DELETE FROM queries`, `DELETE FROM selections`} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
	}
	return nil
}
