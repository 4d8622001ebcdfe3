package models

import "time"

// ResaleStatus classifies whether a listing's stated policy permits reselling.
type ResaleStatus string

const (
	ResaleApproved   ResaleStatus = "Resale Approved"
	ResaleRestricted ResaleStatus = "Restricted"
	ResaleUnknown    ResaleStatus = "Unknown"
)

// ListingRecord is one scraped product block, ready for storage and export.
// Records are constructed once by the extractor and never updated.
type ListingRecord struct {
	ID           int64        `json:"-"`
	Category     string       `json:"category"`
	StoreName    string       `json:"store_name"`
	Price        string       `json:"price"`
	Contact      string       `json:"contact"`
	Address      string       `json:"address"`
	ResaleStatus ResaleStatus `json:"resale_status"`
	TrustScore   int          `json:"trust_score"`
	StoreURL     string       `json:"store_url"`
	DateScraped  time.Time    `json:"date_scraped"`
}

// TrustSignals holds the raw signal texts pulled from a product block.
// Each is "N/A" when the corresponding sub-element is absent.
type TrustSignals struct {
	Reviews     string
	Rating      string
	YearsActive string
}

// RunReport holds the aggregates computed over the stored dataset after a run.
type RunReport struct {
	TotalRecords      int
	RecordsByStatus   map[ResaleStatus]int
	RecordsByCategory map[string]int
	AverageTrustScore float64
	TopTrusted        []*ListingRecord
}
