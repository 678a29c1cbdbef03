package ranking

import (
	"sort"

	"github.com/smartair/travelsearch/internal/models"
	"github.com/smartair/travelsearch/internal/scoring"
)

// Options controls one ranking pass. TripDays converts a destination's daily
// budget into a total trip estimate; the strict budget filter assumes a
// 3-day trip, the AI-assisted path a 4-day one.
type Options struct {
	Weights  scoring.Weights
	TripDays int
	TopN     int
}

// Rank filters candidates by estimated total cost against the budget, scores
// the survivors, and returns them sorted by descending match score, truncated
// to TopN. Equal scores keep their input order. An empty result is a valid
// outcome, not an error.
func Rank(candidates []models.DestinationCandidate, budget float64, profile models.PreferenceProfile, opts Options) []models.DestinationCandidate {
	tripDays := opts.TripDays
	if tripDays <= 0 {
		tripDays = 3
	}

	survivors := make([]models.DestinationCandidate, 0, len(candidates))
	for _, dest := range candidates {
		totalCost := dest.EstimatedFlightCost + dest.DailyBudget*float64(tripDays)
		if totalCost > budget {
			continue
		}
		dest.TotalEstimatedCost = totalCost
		dest.MatchScore = opts.Weights.Score(dest, profile)
		survivors = append(survivors, dest)
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].MatchScore > survivors[j].MatchScore
	})

	if opts.TopN > 0 && len(survivors) > opts.TopN {
		survivors = survivors[:opts.TopN]
	}
	return survivors
}
