package services

import (
	"strconv"

	"wholesale-scraper/models"
)

const maxTrustScore = 10

// TrustScore combines review count, rating and vendor tenure into a bounded
// heuristic. Each signal contributes independently; a signal that fails to
// parse contributes nothing. The total saturates at 10.
func TrustScore(sig models.TrustSignals) int {
	score := scoreReviews(sig.Reviews) + scoreRating(sig.Rating) + scoreYearsActive(sig.YearsActive)
	if score > maxTrustScore {
		return maxTrustScore
	}
	return score
}

// scoreReviews awards 3 points for more than 100 reviews.
func scoreReviews(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 100 {
		return 0
	}
	return 3
}

// scoreRating awards 5 points for a rating above 4.0.
func scoreRating(raw string) int {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 4.0 {
		return 0
	}
	return 5
}

// scoreYearsActive awards 2 points for more than 5 years in business.
func scoreYearsActive(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 5 {
		return 0
	}
	return 2
}
