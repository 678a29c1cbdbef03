package scoring

import "github.com/smartair/travelsearch/internal/models"

// Weights is one scoring configuration. Two presets exist because the two
// callers of the scorer historically used different weight sets; both are
// kept rather than silently unifying them.
type Weights struct {
	Base           int
	ClimateBonus   int
	VisaBonus      int
	SafetyScale    float64
	CostMatchBonus int
	InterestWeight int
}

// BudgetFilterWeights is the strict budget-filter engine preset.
func BudgetFilterWeights() Weights {
	return Weights{
		Base:           0,
		ClimateBonus:   30,
		VisaBonus:      20,
		SafetyScale:    10,
		CostMatchBonus: 25,
		InterestWeight: 15,
	}
}

// AIAssistedWeights is the preset applied to generative-provider candidates.
// The higher base reflects that those candidates were already pre-selected
// for the traveler, so scoring spreads them across the upper half.
func AIAssistedWeights() Weights {
	return Weights{
		Base:           50,
		ClimateBonus:   25,
		VisaBonus:      20,
		SafetyScale:    2.5,
		CostMatchBonus: 25,
		InterestWeight: 10,
	}
}

// Score computes how well a destination matches a preference profile.
// Pure and deterministic; the result is always clamped to [0, 100].
func (w Weights) Score(dest models.DestinationCandidate, profile models.PreferenceProfile) int {
	score := float64(w.Base)

	if profile.Climate != "" && dest.Climate == profile.Climate {
		score += float64(w.ClimateBonus)
	}

	if profile.VisaFree && dest.VisaFree {
		score += float64(w.VisaBonus)
	}

	score += (float64(dest.SafetyScore) / 100) * float64(profile.SafetyImportance) * w.SafetyScale

	if profile.CostPreference != "" && dest.CostOfLiving == profile.CostPreference {
		score += float64(w.CostMatchBonus)
	}

	score += float64(w.InterestWeight) * float64(overlap(profile.Interests, dest.Highlights))

	return clamp(int(score), 0, 100)
}

func overlap(interests, highlights []string) int {
	if len(interests) == 0 || len(highlights) == 0 {
		return 0
	}
	set := make(map[string]bool, len(interests))
	for _, s := range interests {
		set[s] = true
	}
	n := 0
	for _, h := range highlights {
		if set[h] {
			n++
			delete(set, h)
		}
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
