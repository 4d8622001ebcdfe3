package wholesale

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"wholesale-scraper/config"
	"wholesale-scraper/storage"
	"wholesale-scraper/utils"
)

type stubFetcher struct {
	html string
	err  error
}

func (s *stubFetcher) Fetch(_ context.Context, _ string) (string, error) {
	return s.html, s.err
}

func newTestStore(t *testing.T) *storage.SQLiteWriter {
	t.Helper()
	store, err := storage.NewSQLiteWriter(filepath.Join(t.TempDir(), "wholesale.db"))
	if err != nil {
		t.Fatalf("NewSQLiteWriter: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPipelineRunPersistsRecords(t *testing.T) {
	store := newTestStore(t)
	p := New(&config.Config{}, utils.NewLogger(false), &stubFetcher{html: samplePage}, store)

	total := p.Run(context.Background())

	// 3 seeds × 3 extractable blocks per page
	want := len(p.SeedURLs()) * 3
	if total != want {
		t.Fatalf("Run returned %d records, want %d", total, want)
	}

	stored, err := store.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(stored) != want {
		t.Fatalf("stored rows: got %d, want %d", len(stored), want)
	}
	for _, rec := range stored {
		if rec.TrustScore < 0 || rec.TrustScore > 10 {
			t.Errorf("stored trust score %d out of [0,10]", rec.TrustScore)
		}
	}
}

func TestPipelineRerunAppendsDuplicateRows(t *testing.T) {
	store := newTestStore(t)
	p := New(&config.Config{}, utils.NewLogger(false), &stubFetcher{html: samplePage}, store)

	first := p.Run(context.Background())
	second := p.Run(context.Background())

	stored, err := store.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(stored) != first+second {
		t.Fatalf("stored rows after rerun: got %d, want %d", len(stored), first+second)
	}
}

func TestPipelineFetchFailureSkipsSeed(t *testing.T) {
	store := newTestStore(t)
	p := New(&config.Config{}, utils.NewLogger(false),
		&stubFetcher{err: errors.New("renderer unavailable")}, store)

	total := p.Run(context.Background())
	if total != 0 {
		t.Fatalf("Run returned %d records, want 0", total)
	}

	stored, err := store.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(stored) != 0 {
		t.Errorf("stored rows: got %d, want 0", len(stored))
	}
}
