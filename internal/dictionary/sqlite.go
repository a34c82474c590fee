package dictionary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ppiankov/akkad/internal/model"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS verbs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	verb          TEXT NOT NULL UNIQUE,
	initial       TEXT NOT NULL,
	transcription TEXT,
	entry         TEXT NOT NULL,
	imported_at   DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_verbs_initial ON verbs(initial);
`

// DBExecutor allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// InitDB creates the verbs schema on the given connection
func InitDB(db *sql.DB) error {
	for _, s := range strings.Split(schemaSQL, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// SQLiteStore is a Finder over the verbs table
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and runs the schema
func OpenSQLite(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := InitDB(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return &SQLiteStore{db: conn}, nil
}

// NewSQLiteStore wraps an initialized connection
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// DB exposes the underlying connection
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Close closes the underlying connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Upsert inserts or replaces the entry stored under verb
func Upsert(ctx context.Context, db DBExecutor, verb string, e model.Entry) error {
	key := NormalizeVerb(verb)
	initial, err := Initial(key)
	if err != nil {
		return err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode entry %q: %w", key, err)
	}

	_, err = db.ExecContext(ctx, `INSERT INTO verbs (verb, initial, transcription, entry)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(verb) DO UPDATE SET
		  initial = excluded.initial,
		  transcription = excluded.transcription,
		  entry = excluded.entry,
		  imported_at = CURRENT_TIMESTAMP`,
		key, initial, e.Transcription, string(data))
	if err != nil {
		return fmt.Errorf("upsert verb %q: %w", key, err)
	}
	return nil
}

// Upsert stores one entry
func (s *SQLiteStore) Upsert(ctx context.Context, verb string, e model.Entry) error {
	return Upsert(ctx, s.db, verb, e)
}

// Find returns the stored entry for verb
func (s *SQLiteStore) Find(ctx context.Context, verb string) (*model.Entry, error) {
	key := NormalizeVerb(verb)
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT entry FROM verbs WHERE verb = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query verb %q: %w", key, err)
	}

	var e model.Entry
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		return nil, fmt.Errorf("decode entry %q: %w", key, err)
	}
	return &e, nil
}

// Count returns the number of stored verbs
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM verbs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
