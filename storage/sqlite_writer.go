package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"wholesale-scraper/models"
)

// SQLiteWriter persists listing records to an embedded SQLite database.
// The connection is opened once at startup and closed once at shutdown;
// every insert auto-commits individually.
type SQLiteWriter struct {
	db *sql.DB
}

// NewSQLiteWriter opens (or creates) the database file at path, ensures the
// suppliers table exists, and returns a ready-to-use SQLiteWriter.
// Intermediate directories are created automatically.
func NewSQLiteWriter(path string) (*SQLiteWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("sqlite: create output dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	w := &SQLiteWriter{db: db}
	if err := w.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: schema: %w", err)
	}

	return w, nil
}

func (w *SQLiteWriter) ensureSchema() error {
	_, err := w.db.Exec(`
		CREATE TABLE IF NOT EXISTS suppliers (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			category      TEXT,
			store_name    TEXT,
			price         TEXT,
			contact       TEXT,
			address       TEXT,
			resale_status TEXT,
			trust_score   INTEGER,
			date_scraped  DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// Write appends one record to the suppliers table. There is no uniqueness
// constraint: re-scraping the same page appends duplicate rows.
func (w *SQLiteWriter) Write(record *models.ListingRecord) error {
	_, err := w.db.Exec(`
		INSERT INTO suppliers (
			category, store_name, price, contact, address,
			resale_status, trust_score
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		record.Category,
		record.StoreName,
		record.Price,
		record.Contact,
		record.Address,
		string(record.ResaleStatus),
		record.TrustScore,
	)
	if err != nil {
		return fmt.Errorf("sqlite: insert: %w", err)
	}
	return nil
}

// FetchAll retrieves all stored records in insertion order — used by the
// run report.
func (w *SQLiteWriter) FetchAll() ([]*models.ListingRecord, error) {
	rows, err := w.db.Query(`
		SELECT id, category, store_name, price, contact, address,
		       resale_status, trust_score, date_scraped
		FROM suppliers
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: fetch all: %w", err)
	}
	defer rows.Close()

	var records []*models.ListingRecord
	for rows.Next() {
		r := &models.ListingRecord{}
		var status, scraped string
		if err := rows.Scan(
			&r.ID, &r.Category, &r.StoreName, &r.Price, &r.Contact,
			&r.Address, &status, &r.TrustScore, &scraped,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scan row: %w", err)
		}
		r.ResaleStatus = models.ResaleStatus(status)
		t, err := parseStoredTime(scraped)
		if err != nil {
			return nil, fmt.Errorf("sqlite: date_scraped %q: %w", scraped, err)
		}
		r.DateScraped = t
		records = append(records, r)
	}
	return records, rows.Err()
}

// parseStoredTime decodes the date_scraped column. The driver hands the
// CURRENT_TIMESTAMP default back as RFC 3339 text; the space-separated form
// covers rows written by other SQLite clients.
func parseStoredTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02 15:04:05", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Close closes the underlying database handle.
func (w *SQLiteWriter) Close() error {
	return w.db.Close()
}
