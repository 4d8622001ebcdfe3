package services

import (
	"fmt"
	"sort"
	"strings"

	"wholesale-scraper/models"
	"wholesale-scraper/utils"
)

// ReportService aggregates the stored dataset into a run summary.
type ReportService struct {
	logger *utils.Logger
}

func NewReportService(logger *utils.Logger) *ReportService {
	return &ReportService{logger: logger}
}

// Generate computes aggregates over the records fetched back from storage.
func (s *ReportService) Generate(records []*models.ListingRecord) *models.RunReport {
	report := &models.RunReport{
		RecordsByStatus:   make(map[models.ResaleStatus]int),
		RecordsByCategory: make(map[string]int),
	}

	if len(records) == 0 {
		return report
	}

	report.TotalRecords = len(records)

	var scoreTotal int
	for _, r := range records {
		report.RecordsByStatus[r.ResaleStatus]++
		if r.Category != "" {
			report.RecordsByCategory[r.Category]++
		}
		scoreTotal += r.TrustScore
	}
	report.AverageTrustScore = round2(float64(scoreTotal) / float64(len(records)))

	// Top 5 by trust score
	sorted := make([]*models.ListingRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TrustScore > sorted[j].TrustScore
	})
	if len(sorted) > 5 {
		report.TopTrusted = sorted[:5]
	} else {
		report.TopTrusted = sorted
	}

	return report
}

// Print renders the report to stdout.
func (s *ReportService) Print(r *models.RunReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  WHOLESALE SCRAPE SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total suppliers stored : \033[1m%d\033[0m\n", r.TotalRecords)
	fmt.Printf("  Average trust score    : \033[1m%.2f\033[0m\n", r.AverageTrustScore)
	fmt.Println()

	fmt.Printf("\033[1;33m  Resale Status\033[0m\n")
	fmt.Printf("  %s\n", thin)
	for _, status := range []models.ResaleStatus{
		models.ResaleApproved, models.ResaleRestricted, models.ResaleUnknown,
	} {
		fmt.Printf("  %-16s : %d\n", status, r.RecordsByStatus[status])
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Suppliers by Category\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.RecordsByCategory) == 0 {
		fmt.Printf("  No category data\n")
	} else {
		type catCount struct {
			cat   string
			count int
		}
		var cats []catCount
		for cat, cnt := range r.RecordsByCategory {
			cats = append(cats, catCount{cat, cnt})
		}
		sort.Slice(cats, func(i, j int) bool {
			if cats[i].count != cats[j].count {
				return cats[i].count > cats[j].count
			}
			return cats[i].cat < cats[j].cat
		})
		for _, cc := range cats {
			bar := strings.Repeat("█", cc.count)
			fmt.Printf("  %-30s %s (%d)\n", truncate(cc.cat, 28), bar, cc.count)
		}
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Top Trusted Suppliers\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.TopTrusted) == 0 {
		fmt.Printf("  No suppliers found\n")
	} else {
		for i, rec := range r.TopTrusted {
			fmt.Printf("  \033[1m%d.\033[0m %-40s \033[1;32m%d/10\033[0m\n",
				i+1, truncate(rec.StoreName, 38), rec.TrustScore)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
