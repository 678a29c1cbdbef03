package recommend

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/smartair/travelsearch/internal/models"
)

// extractCandidates digs a destinations JSON object out of free-text provider
// output. The provider embeds JSON in prose or markdown fences, so the parse
// takes the substring between the first '{' and the last '}'. Individual
// malformed records are skipped; only a fully unusable response errors.
func extractCandidates(response string) ([]models.DestinationCandidate, error) {
	if !strings.Contains(response, "destinations") {
		return nil, fmt.Errorf("response contains no destinations marker")
	}

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("response contains no JSON object")
	}

	var envelope struct {
		Destinations []json.RawMessage `json:"destinations"`
	}
	if err := json.Unmarshal([]byte(response[start:end+1]), &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse destinations JSON: %w", err)
	}

	candidates := make([]models.DestinationCandidate, 0, len(envelope.Destinations))
	for _, raw := range envelope.Destinations {
		var dest models.DestinationCandidate
		if err := json.Unmarshal(raw, &dest); err != nil {
			continue
		}
		if !usable(dest) {
			continue
		}
		// The provider invents its own match scores; the ranker is the only
		// scorer, so they are discarded here.
		dest.MatchScore = 0
		dest.TotalEstimatedCost = 0
		candidates = append(candidates, dest)
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("response contained no usable destination records")
	}
	return candidates, nil
}

func usable(dest models.DestinationCandidate) bool {
	if dest.City == "" || dest.Country == "" {
		return false
	}
	if dest.EstimatedFlightCost <= 0 || dest.DailyBudget <= 0 {
		return false
	}
	if dest.SafetyScore < 0 || dest.SafetyScore > 100 {
		return false
	}
	return true
}
