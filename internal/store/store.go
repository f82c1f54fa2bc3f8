// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists paper records and their score breakdowns in a
// SQLite database. It is the persistence collaborator of the scoring
// engine: scores are computed in memory and handed here afterwards.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxiv-radar/pkg/types"
)

// Store manages the radar SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// New opens or creates the database at cfg.DBPath and ensures the schema.
func New(cfg types.StoreConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "radar.db"
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			title TEXT,
			summary TEXT,
			authors TEXT,
			categories TEXT,
			published TEXT,
			source TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS scores (
			paper_id TEXT PRIMARY KEY REFERENCES papers(id),
			keyword REAL,
			category REAL,
			semantic REAL,
			citation REAL,
			final REAL,
			scored_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_final ON scores(final)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SavePaper upserts a paper and its score breakdown in one transaction.
// Re-scoring a stored paper overwrites the previous breakdown.
func (s *Store) SavePaper(ctx context.Context, p types.Paper, b types.ScoreBreakdown) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	authorsJSON, _ := json.Marshal(p.Authors)
	categoriesJSON, _ := json.Marshal(p.Categories)
	published := ""
	if !p.Published.IsZero() {
		published = p.Published.Format(time.RFC3339)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO papers (id, title, summary, authors, categories, published, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, summary=excluded.summary, authors=excluded.authors,
			categories=excluded.categories, published=excluded.published, source=excluded.source`,
		p.ID, p.Title, p.Summary, string(authorsJSON), string(categoriesJSON), published, p.Source,
	)
	if err != nil {
		return fmt.Errorf("upserting paper %s: %w", p.ID, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO scores (paper_id, keyword, category, semantic, citation, final, scored_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(paper_id) DO UPDATE SET
			keyword=excluded.keyword, category=excluded.category, semantic=excluded.semantic,
			citation=excluded.citation, final=excluded.final, scored_at=excluded.scored_at`,
		p.ID, b.Keyword, b.Category, b.Semantic, b.Citation, b.Final,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting score for %s: %w", p.ID, err)
	}

	return tx.Commit()
}

// ScoredPaper is a stored paper joined with its score breakdown.
type ScoredPaper struct {
	Paper     types.Paper          `json:"paper" yaml:"paper"`
	Breakdown types.ScoreBreakdown `json:"breakdown" yaml:"breakdown"`
	ScoredAt  time.Time            `json:"scored_at" yaml:"scored_at"`
}

// Top returns stored papers with final score >= minScore, highest first,
// at most limit rows (the store default when limit <= 0).
func (s *Store) Top(ctx context.Context, minScore float64, limit int) ([]ScoredPaper, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.title, p.summary, p.authors, p.categories, p.published, p.source,
			sc.keyword, sc.category, sc.semantic, sc.citation, sc.final, sc.scored_at
		 FROM scores sc
		 JOIN papers p ON p.id = sc.paper_id
		 WHERE sc.final >= ?
		 ORDER BY sc.final DESC, p.id
		 LIMIT ?`,
		minScore, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying top papers: %w", err)
	}
	defer rows.Close()

	var results []ScoredPaper
	for rows.Next() {
		sp, err := scanScoredPaper(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, sp)
	}
	return results, rows.Err()
}

// Get returns one stored paper by id, or sql.ErrNoRows wrapped when absent.
func (s *Store) Get(ctx context.Context, paperID string) (ScoredPaper, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT p.id, p.title, p.summary, p.authors, p.categories, p.published, p.source,
			sc.keyword, sc.category, sc.semantic, sc.citation, sc.final, sc.scored_at
		 FROM scores sc
		 JOIN papers p ON p.id = sc.paper_id
		 WHERE p.id = ?`,
		paperID,
	)
	sp, err := scanScoredPaper(row)
	if err != nil {
		return ScoredPaper{}, fmt.Errorf("paper %s: %w", paperID, err)
	}
	return sp, nil
}

// Count returns the number of stored scored papers.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM scores`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting papers: %w", err)
	}
	return n, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanScoredPaper(row scanner) (ScoredPaper, error) {
	var (
		sp             ScoredPaper
		authorsJSON    sql.NullString
		categoriesJSON sql.NullString
		published      sql.NullString
		scoredAt       sql.NullString
	)

	err := row.Scan(
		&sp.Paper.ID, &sp.Paper.Title, &sp.Paper.Summary,
		&authorsJSON, &categoriesJSON, &published, &sp.Paper.Source,
		&sp.Breakdown.Keyword, &sp.Breakdown.Category, &sp.Breakdown.Semantic,
		&sp.Breakdown.Citation, &sp.Breakdown.Final, &scoredAt,
	)
	if err != nil {
		return ScoredPaper{}, err
	}

	if authorsJSON.Valid {
		json.Unmarshal([]byte(authorsJSON.String), &sp.Paper.Authors)
	}
	if categoriesJSON.Valid {
		json.Unmarshal([]byte(categoriesJSON.String), &sp.Paper.Categories)
	}
	if published.Valid && published.String != "" {
		if t, err := time.Parse(time.RFC3339, published.String); err == nil {
			sp.Paper.Published = t
		}
	}
	if scoredAt.Valid && scoredAt.String != "" {
		if t, err := time.Parse(time.RFC3339, scoredAt.String); err == nil {
			sp.ScoredAt = t
		}
	}
	return sp, nil
}
