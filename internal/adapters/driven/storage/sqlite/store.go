package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Benjaminr180/experto-cli/internal/core/domain"
	"github.com/Benjaminr180/experto-cli/internal/core/ports/driven"
	"github.com/Benjaminr180/experto-cli/internal/logger"
	"github.com/Benjaminr180/experto-cli/internal/text"
)

// Ensure Store implements the interface.
var _ driven.KnowledgeStore = (*Store)(nil)

// createdAtLayout matches SQLite's datetime('now') text format.
const createdAtLayout = "2006-01-02 15:04:05"

// Store is a SQLite-backed knowledge store holding the single kb table.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens, creating if needed, the knowledge database at path.
// An empty path defaults to ~/.experto/kb.db. The location is explicit
// state of the store, never a package-level variable.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: resolving home directory: %v", domain.ErrStorageUnavailable, err)
		}
		path = filepath.Join(home, ".experto", "kb.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", domain.ErrStorageUnavailable, err)
	}

	// WAL mode so a reader never blocks the single writer
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", domain.ErrStorageUnavailable, err)
	}

	logger.Debug("Knowledge store: %s", path)
	return &Store{db: db, path: path}, nil
}

// Close closes the database connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Bootstrap creates the kb table if absent and, only when the table holds
// no rows at all, inserts the seed records. Safe to call repeatedly.
func (s *Store) Bootstrap(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS kb (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			created_at TEXT DEFAULT (datetime('now'))
		)`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: creating kb table: %v", domain.ErrStorageUnavailable, err)
	}

	count, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range domain.Seeds() {
		if _, err := s.db.ExecContext(ctx,
			"INSERT INTO kb(question, answer) VALUES(?, ?)",
			seed.Question, seed.Answer,
		); err != nil {
			return fmt.Errorf("%w: seeding kb table: %v", domain.ErrStorageUnavailable, err)
		}
	}

	logger.Info("Seeded knowledge base with %d records", len(domain.Seeds()))
	return nil
}

// LoadAll returns every stored record in insertion order.
func (s *Store) LoadAll(ctx context.Context) ([]domain.KnowledgeRecord, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, question, answer, created_at FROM kb")
	if err != nil {
		return nil, fmt.Errorf("%w: reading kb table: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var records []domain.KnowledgeRecord
	for rows.Next() {
		var rec domain.KnowledgeRecord
		var createdAt sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Question, &rec.Answer, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scanning kb row: %v", domain.ErrStorageUnavailable, err)
		}
		if createdAt.Valid {
			if ts, err := time.Parse(createdAtLayout, createdAt.String); err == nil {
				rec.CreatedAt = ts.UTC()
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading kb table: %v", domain.ErrStorageUnavailable, err)
	}
	return records, nil
}

// Append normalises questionRaw and inserts a new record. SQLite assigns
// the identifier and the creation timestamp.
func (s *Store) Append(ctx context.Context, questionRaw, answer string) error {
	question := text.Normalise(questionRaw)
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO kb(question, answer) VALUES(?, ?)",
		question, answer,
	); err != nil {
		return fmt.Errorf("%w: inserting kb row: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM kb").Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting kb rows: %v", domain.ErrStorageUnavailable, err)
	}
	return count, nil
}
