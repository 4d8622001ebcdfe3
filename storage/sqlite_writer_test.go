package storage

import (
	"path/filepath"
	"testing"
	"time"

	"wholesale-scraper/models"
)

func testRecord() *models.ListingRecord {
	return &models.ListingRecord{
		Category:     "electronics.htm",
		StoreName:    "Acme Trading Co",
		Price:        "$12.50/unit",
		Contact:      "https://acme.example.com/contact",
		Address:      "12 Harbor Rd, Shenzhen",
		ResaleStatus: models.ResaleApproved,
		TrustScore:   10,
		StoreURL:     "https://www.wholesalecentral.com/electronics.htm",
	}
}

func newTestWriter(t *testing.T) *SQLiteWriter {
	t.Helper()
	w, err := NewSQLiteWriter(filepath.Join(t.TempDir(), "wholesale.db"))
	if err != nil {
		t.Fatalf("NewSQLiteWriter: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestSQLiteWriteAndFetch(t *testing.T) {
	w := newTestWriter(t)

	if err := w.Write(testRecord()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	records, err := w.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records: got %d, want 1", len(records))
	}

	got := records[0]
	if got.StoreName != "Acme Trading Co" {
		t.Errorf("StoreName: got %q, want %q", got.StoreName, "Acme Trading Co")
	}
	if got.ResaleStatus != models.ResaleApproved {
		t.Errorf("ResaleStatus: got %q, want %q", got.ResaleStatus, models.ResaleApproved)
	}
	if got.TrustScore != 10 {
		t.Errorf("TrustScore: got %d, want 10", got.TrustScore)
	}
	if got.DateScraped.IsZero() {
		t.Error("DateScraped should be set by the table default")
	}
	if age := time.Since(got.DateScraped); age < -time.Hour || age > time.Hour {
		t.Errorf("DateScraped %v is not close to now", got.DateScraped)
	}
}

func TestParseStoredTime(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2026-08-31T04:15:46Z", "2026-08-31 04:15:46"},
		{"2026-08-31 04:15:46", "2026-08-31 04:15:46"},
	}

	for _, tt := range tests {
		got, err := parseStoredTime(tt.raw)
		if err != nil {
			t.Errorf("parseStoredTime(%q): %v", tt.raw, err)
			continue
		}
		if formatted := got.UTC().Format("2006-01-02 15:04:05"); formatted != tt.want {
			t.Errorf("parseStoredTime(%q) = %s; want %s", tt.raw, formatted, tt.want)
		}
	}

	if _, err := parseStoredTime("not a timestamp"); err == nil {
		t.Error("parseStoredTime should reject unparseable input")
	}
}

func TestSQLiteDuplicateWritesAppend(t *testing.T) {
	w := newTestWriter(t)

	// No uniqueness constraint: scraping the same page twice stores two rows.
	if err := w.Write(testRecord()); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := w.Write(testRecord()); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	records, err := w.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records: got %d, want 2", len(records))
	}
	if records[0].ID == records[1].ID {
		t.Errorf("duplicate rows should have distinct ids, both are %d", records[0].ID)
	}
}

func TestSQLiteFetchAllEmpty(t *testing.T) {
	w := newTestWriter(t)

	records, err := w.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records: got %d, want 0", len(records))
	}
}
