package storage

import "wholesale-scraper/models"

// RecordWriter is the interface any record sink must satisfy. The pipeline
// writes one record at a time, in extraction order.
type RecordWriter interface {
	Write(record *models.ListingRecord) error
	Close() error
}

// RecordFetcher reads back stored records — used by the run report.
type RecordFetcher interface {
	FetchAll() ([]*models.ListingRecord, error)
}
