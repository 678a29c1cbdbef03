package recommend

import (
	"context"
	"log"

	"github.com/smartair/travelsearch/internal/ai"
	"github.com/smartair/travelsearch/internal/models"
	"github.com/smartair/travelsearch/internal/ranking"
	"github.com/smartair/travelsearch/internal/scoring"
)

// Trip length assumed when estimating total cost. The curated table is
// scored as a short 3-day trip; AI-suggested candidates as a 4-day one.
const (
	curatedTripDays = 3
	aiTripDays      = 4
)

// Source produces ranked destination recommendations, preferring the
// generative provider and transparently falling back to the curated table.
// Availability problems never surface as errors.
type Source struct {
	generator ai.Generator
}

// New accepts a nil generator, in which case every call serves the curated
// table.
func New(generator ai.Generator) *Source {
	return &Source{generator: generator}
}

// Recommendation carries the ranked list plus which path actually served it,
// so callers can be honest about provenance.
type Recommendation struct {
	Source       string
	Destinations []models.DestinationCandidate
}

// Recommend obtains raw candidates from the provider (or the curated table)
// and runs them through the ranker. Provider candidates are a source, not a
// scorer: any match scores they carry are recomputed.
func (s *Source) Recommend(ctx context.Context, budget float64, profile models.PreferenceProfile, topN int) (*Recommendation, error) {
	if budget <= 0 {
		return nil, models.ErrInvalidBudget
	}

	if s.generator != nil {
		candidates, err := s.fromProvider(ctx, budget, profile)
		if err != nil {
			log.Printf("recommend: provider path failed, serving curated table: %v", err)
		} else {
			return &Recommendation{
				Source: models.SourceAI,
				Destinations: ranking.Rank(candidates, budget, profile, ranking.Options{
					Weights:  scoring.AIAssistedWeights(),
					TripDays: aiTripDays,
					TopN:     topN,
				}),
			}, nil
		}
	}

	return &Recommendation{
		Source: models.SourceCurated,
		Destinations: ranking.Rank(curatedDestinations(), budget, profile, ranking.Options{
			Weights:  scoring.BudgetFilterWeights(),
			TripDays: curatedTripDays,
			TopN:     topN,
		}),
	}, nil
}

func (s *Source) fromProvider(ctx context.Context, budget float64, profile models.PreferenceProfile) ([]models.DestinationCandidate, error) {
	response, err := s.generator.Generate(ctx, buildPrompt(budget, profile))
	if err != nil {
		return nil, err
	}
	return extractCandidates(response)
}
