package services

import (
	"strings"

	"wholesale-scraper/models"
)

// ClassifyResale maps a listing's stated resale-policy text to a status.
// Matching is case-sensitive substring containment, checked in order of
// precedence; anything unmatched — including empty text — is Unknown.
func ClassifyResale(terms string) models.ResaleStatus {
	if terms == "" {
		return models.ResaleUnknown
	}
	if strings.Contains(terms, "Authorized Reseller") ||
		strings.Contains(terms, "Bulk Orders Allowed") {
		return models.ResaleApproved
	}
	if strings.Contains(terms, "No Resale") {
		return models.ResaleRestricted
	}
	return models.ResaleUnknown
}
