package models

import "strings"

// RiskLevel is the upset risk of a matchup
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// RiskAssessment is the heuristic prediction for a matchup.
// Differences are always team1 minus team2.
type RiskAssessment struct {
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`

	// Inputs
	NetDiff  float64 `json:"net_rating_diff"`
	LuckDiff float64 `json:"luck_diff"`
	SOSDiff  float64 `json:"sos_diff"`

	// Scoring
	Score       int       `json:"score"`
	Level       RiskLevel `json:"risk_level"`
	AdjustedNet float64   `json:"adjusted_net"`

	// Prediction
	PredictedWinner string  `json:"predicted_winner"`
	Confidence      float64 `json:"confidence"`

	// Rationale, in fixed order: net rating, luck, schedule
	Messages []string `json:"messages"`
	Summary  string   `json:"summary"`

	Warnings []string `json:"warnings,omitempty"`
}

// Report joins the explanatory messages and the summary block
func (r *RiskAssessment) Report() string {
	parts := make([]string, 0, len(r.Messages)+1)
	parts = append(parts, r.Messages...)
	parts = append(parts, r.Summary)
	return strings.Join(parts, "\n\n")
}
