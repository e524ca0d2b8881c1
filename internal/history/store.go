// Package history persists past analyses in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"textstat/internal/report"
)

// Record is one stored analysis result.
type Record struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	Words         int       `json:"words"`
	Unique        int       `json:"unique"`
	AvgLen        float64   `json:"avg_len"`
	TokenEstimate int       `json:"token_estimate"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromReport builds a Record (with a fresh ID and timestamp) from a report.
func FromReport(rep report.Report) Record {
	return Record{
		ID:            uuid.NewString(),
		Source:        rep.Source,
		Words:         rep.Stats.Words,
		Unique:        rep.Stats.Unique,
		AvgLen:        rep.Stats.AvgLen,
		TokenEstimate: rep.TokenEstimate,
		CreatedAt:     time.Now().UTC(),
	}
}

// Store manages the analysis history database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates or opens the history store under dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history dir: %w", err)
	}

	dbPath := filepath.Join(dir, "textstat.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		words INTEGER NOT NULL,
		unique_words INTEGER NOT NULL,
		avg_len REAL NOT NULL,
		token_estimate INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source);
	CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save inserts one record.
func (s *Store) Save(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, source, words, unique_words, avg_len, token_estimate, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Source, rec.Words, rec.Unique, rec.AvgLen, rec.TokenEstimate,
		rec.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, words, unique_words, avg_len, token_estimate, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// BySource returns up to limit records for one source, newest first.
func (s *Store) BySource(ctx context.Context, source string, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, words, unique_words, avg_len, token_estimate, created_at
		 FROM analyses WHERE source = ? ORDER BY created_at DESC LIMIT ?`, source, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for %s: %w", source, err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Prune deletes everything but the newest keep records.
func (s *Store) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM analyses WHERE id NOT IN
		 (SELECT id FROM analyses ORDER BY created_at DESC LIMIT ?)`, keep)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var rec Record
		var createdAt int64
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Words, &rec.Unique,
			&rec.AvgLen, &rec.TokenEstimate, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.CreatedAt = time.Unix(0, createdAt).UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}
