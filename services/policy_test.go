package services

import (
	"testing"

	"wholesale-scraper/models"
)

func TestClassifyResale(t *testing.T) {
	tests := []struct {
		terms string
		want  models.ResaleStatus
	}{
		{"Authorized Reseller for bulk", models.ResaleApproved},
		{"Bulk Orders Allowed on request", models.ResaleApproved},
		{"No Resale permitted", models.ResaleRestricted},
		{"", models.ResaleUnknown},
		{"Contact us for terms", models.ResaleUnknown},
		{"authorized reseller", models.ResaleUnknown}, // matching is case-sensitive
	}

	for _, tt := range tests {
		got := ClassifyResale(tt.terms)
		if got != tt.want {
			t.Errorf("ClassifyResale(%q) = %q; want %q", tt.terms, got, tt.want)
		}
	}
}

func TestClassifyResaleIsTotal(t *testing.T) {
	inputs := []string{
		"", " ", "N/A", "Wholesale only", "resale", "No",
		"Authorized Reseller", "No Resale", "Bulk Orders Allowed",
		"random text with no policy keywords at all",
	}

	for _, in := range inputs {
		got := ClassifyResale(in)
		switch got {
		case models.ResaleApproved, models.ResaleRestricted, models.ResaleUnknown:
		default:
			t.Errorf("ClassifyResale(%q) = %q; not a valid status", in, got)
		}
	}
}

func TestClassifyResaleApprovedWinsOverRestricted(t *testing.T) {
	// Precedence: the approved phrases are checked first.
	got := ClassifyResale("Authorized Reseller, otherwise No Resale")
	if got != models.ResaleApproved {
		t.Errorf("got %q; want %q", got, models.ResaleApproved)
	}
}
