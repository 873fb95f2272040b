package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"diecast/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteRegistry is a registry adapter backed by a local SQLite database.
// It mirrors the shared registry for offline use and doubles as the
// backing store when no remote registry is configured.
type SQLiteRegistry struct {
	db     *sql.DB
	dbPath string
}

// NewSQLite opens (creating if necessary) a SQLite-backed registry.
func NewSQLite(dbPath string) (*SQLiteRegistry, error) {
	if dbPath == "" {
		return nil, errors.New("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteRegistry{db: db, dbPath: dbPath}, nil
}

// Migrate creates the registry schema if it does not exist yet.
func (s *SQLiteRegistry) Migrate(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS registry_records (
		barcode            TEXT PRIMARY KEY,
		name               TEXT NOT NULL DEFAULT '',
		brand              TEXT NOT NULL DEFAULT '',
		series             TEXT NOT NULL DEFAULT '',
		color              TEXT NOT NULL DEFAULT '',
		category           TEXT NOT NULL,
		subcategory        TEXT NOT NULL DEFAULT '',
		year               INTEGER NOT NULL DEFAULT 0,
		verification_count INTEGER NOT NULL DEFAULT 1,
		created_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_registry_category ON registry_records(category);
	`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate registry schema: %w", err)
	}
	return nil
}

// Lookup returns the record for a barcode, or (nil, nil) when absent.
func (s *SQLiteRegistry) Lookup(ctx context.Context, barcode string) (*model.RegistryRecord, error) {
	if barcode == "" {
		return nil, nil
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT barcode, name, brand, series, color, category, subcategory, year, verification_count
		FROM registry_records WHERE barcode = ?`, barcode)

	var record model.RegistryRecord
	var category string
	err := row.Scan(
		&record.Barcode,
		&record.Name,
		&record.Brand,
		&record.Series,
		&record.Color,
		&category,
		&record.Subcategory,
		&record.Year,
		&record.VerificationCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up barcode %s: %w", barcode, err)
	}

	record.Category = model.ParseCategory(category)
	return &record, nil
}

// Contribute inserts a new record, or bumps the verification count when the
// barcode is already known. Deduplication beyond the barcode key is the
// registry's own concern, not ours.
func (s *SQLiteRegistry) Contribute(ctx context.Context, c model.Contribution) error {
	if err := validateContribution(c); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO registry_records (barcode, name, brand, series, color, category, subcategory, year)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(barcode) DO UPDATE SET
			verification_count = verification_count + 1,
			updated_at = CURRENT_TIMESTAMP`,
		c.Barcode, c.Name, c.Brand, c.Series, c.Color, string(c.Category), c.Subcategory, c.Year)
	if err != nil {
		return fmt.Errorf("failed to save contribution for %s: %w", c.Barcode, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteRegistry) Close() error {
	return s.db.Close()
}
