package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ============================================================
// Generation History Store
// ============================================================

// ErrNotFound reports a missing history entry.
var ErrNotFound = errors.New("history entry not found")

// Entry records one generation request: the prompt and parameter JSON
// that produced it plus the artifact filenames.
type Entry struct {
	ID         string `json:"id"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
	Prompt     string `json:"prompt"`
	ParamsJSON string `json:"params"`
	DXFFile    string `json:"dxf_filename"`
	SVGFile    string `json:"svg_filename"`
	STLFile    string `json:"stl_filename,omitempty"`
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init applies the schema migration.
func (s *Store) Init(ctx context.Context, migrationsPath string) error {
	data, err := os.ReadFile(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, string(data)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

const entryColumns = `id, created_at, updated_at, prompt, params, dxf_filename, svg_filename, stl_filename`

// Create persists a new entry, stamping created_at/updated_at.
func (s *Store) Create(ctx context.Context, e *Entry) error {
	now := time.Now().UTC().Format(time.RFC3339)
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO history (`+entryColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, e.ID, e.CreatedAt, e.UpdatedAt, e.Prompt, e.ParamsJSON, e.DXFFile, e.SVGFile, e.STLFile)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// List returns all entries, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+entryColumns+`
        FROM history
        ORDER BY created_at DESC, id DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.Prompt, &e.ParamsJSON, &e.DXFFile, &e.SVGFile, &e.STLFile); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns one entry by id.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT `+entryColumns+`
        FROM history
        WHERE id = ?
    `, id)

	var e Entry
	if err := row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.Prompt, &e.ParamsJSON, &e.DXFFile, &e.SVGFile, &e.STLFile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// SetSTL records the STL artifact produced by a later 3D export.
func (s *Store) SetSTL(ctx context.Context, id, filename string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx, `
        UPDATE history SET stl_filename = ?, updated_at = ? WHERE id = ?
    `, filename, now, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear removes every entry and reports how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// OpenSQLite opens the history database, creating its directory when
// missing.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
