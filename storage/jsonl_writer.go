package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"wholesale-scraper/models"
)

// JSONLWriter emits listing records as JSON Lines — one object per record —
// for downstream consumption. It is safe for concurrent use.
type JSONLWriter struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// NewJSONLWriter opens the output file at the given path for appending,
// creating it if needed. Intermediate directories are created automatically.
func NewJSONLWriter(path string) (*JSONLWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("jsonl: create output dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("jsonl: open file %q: %w", path, err)
	}

	return &JSONLWriter{file: f, enc: json.NewEncoder(f)}, nil
}

// Write appends one record as a single JSON line.
func (w *JSONLWriter) Write(record *models.ListingRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.enc.Encode(record); err != nil {
		return fmt.Errorf("jsonl: encode record: %w", err)
	}
	return nil
}

// Close syncs and closes the underlying file.
func (w *JSONLWriter) Close() error {
	if err := w.file.Sync(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("jsonl: sync: %w", err)
	}
	return w.file.Close()
}
