package models

import "strings"

type SearchRequest struct {
	Origin      string `json:"origin" query:"origin"`
	Destination string `json:"destination" query:"destination"`
	Months      int    `json:"months,omitempty" query:"months"`
}

func (r *SearchRequest) Validate() error {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))

	if len(r.Origin) != 3 {
		return ErrInvalidOrigin
	}
	if len(r.Destination) != 3 {
		return ErrInvalidDestination
	}
	if r.Months == 0 {
		r.Months = 3
	}
	if r.Months < 1 || r.Months > 6 {
		return ErrInvalidMonths
	}
	return nil
}

type RecommendRequest struct {
	Budget  float64           `json:"budget"`
	Profile PreferenceProfile `json:"profile"`
	TopN    int               `json:"top_n,omitempty"`
}

func (r *RecommendRequest) Validate() error {
	if r.Budget <= 0 {
		return ErrInvalidBudget
	}
	if r.TopN == 0 {
		r.TopN = 6
	}
	if r.TopN < 0 {
		return ErrInvalidTopN
	}
	if r.Profile.SafetyImportance == 0 {
		r.Profile.SafetyImportance = 5
	}
	if r.Profile.SafetyImportance < 1 || r.Profile.SafetyImportance > 10 {
		return ErrInvalidSafety
	}
	switch r.Profile.CostPreference {
	case "", CostLow, CostMedium, CostHigh:
	default:
		return ErrInvalidCostPreference
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrInvalidOrigin         ValidationError = "origin must be a 3-letter airport code"
	ErrInvalidDestination    ValidationError = "destination must be a 3-letter airport code"
	ErrInvalidMonths         ValidationError = "months must be between 1 and 6"
	ErrInvalidBudget         ValidationError = "budget must be a positive amount"
	ErrInvalidTopN           ValidationError = "top_n must be positive"
	ErrInvalidSafety         ValidationError = "safety_importance must be between 1 and 10"
	ErrInvalidCostPreference ValidationError = "cost_preference must be Low, Medium or High"
)
