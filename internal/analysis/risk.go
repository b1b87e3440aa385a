package analysis

import (
	"fmt"
	"math"

	"ncaam_v5/strategy/internal/models"
)

// Risk thresholds and prediction weights
const (
	closeNetGap      = 5.0
	luckOutlierGap   = 0.05
	scheduleGap      = 1.5
	netWeight        = 0.85
	scheduleWeight   = 0.1
	luckWeight       = 0.05
	confidenceSlope  = 4.5
	confidenceFloor  = 50.0
	confidenceCeil   = 99.0
	highRiskMinScore = 2
)

// PredictRisk scores a matchup from team1-minus-team2 differences in net rating,
// luck and strength of schedule. Each volatility signal adds one point; the
// adjusted net margin picks the winner (ties go to team2) and drives confidence.
func PredictRisk(netDiff, luckDiff, sosDiff float64, team1, team2 string) models.RiskAssessment {
	score := 0
	messages := make([]string, 0, 3)

	if math.Abs(netDiff) < closeNetGap {
		messages = append(messages, fmt.Sprintf("Net Rating gap: %.1f → This game could be close and upset-prone.", netDiff))
		score++
	} else {
		messages = append(messages, fmt.Sprintf("Net Rating gap: %.1f → There is a clear difference in team strength.", netDiff))
	}

	if math.Abs(luckDiff) > luckOutlierGap {
		messages = append(messages, fmt.Sprintf("Luck differential: %.3f → One team may be overperforming.", luckDiff))
		score++
	} else {
		messages = append(messages, fmt.Sprintf("Luck differential: %.3f → Fairly stable performance from both teams.", luckDiff))
	}

	if math.Abs(sosDiff) > scheduleGap {
		messages = append(messages, fmt.Sprintf("Strength of Schedule difference: %.1f → One team may have faced tougher competition.", sosDiff))
		score++
	} else {
		messages = append(messages, fmt.Sprintf("Strength of Schedule difference: %.1f → Comparable schedule difficulty.", sosDiff))
	}

	adjusted := AdjustedNet(netDiff, luckDiff, sosDiff)
	winner := team2
	if adjusted > 0 {
		winner = team1
	}

	assessment := models.RiskAssessment{
		Team1:           team1,
		Team2:           team2,
		NetDiff:         netDiff,
		LuckDiff:        luckDiff,
		SOSDiff:         sosDiff,
		Score:           score,
		Level:           riskLevel(score),
		AdjustedNet:     adjusted,
		PredictedWinner: DisplayName(winner),
		Confidence:      Confidence(adjusted),
		Messages:        messages,
	}
	assessment.Summary = fmt.Sprintf(
		"Final Prediction:\n- Predicted Winner: %s\n- Confidence Score: %.1f%%\n- Upset Risk Level: %s",
		assessment.PredictedWinner, assessment.Confidence, assessment.Level,
	)

	return assessment
}

// AdjustedNet weights the rating differences into a single margin
func AdjustedNet(netDiff, luckDiff, sosDiff float64) float64 {
	return netDiff*netWeight + sosDiff*scheduleWeight - luckDiff*luckWeight
}

// Confidence converts an adjusted margin into a percentage in [50, 99],
// rounded to one decimal
func Confidence(adjustedNet float64) float64 {
	c := math.Abs(adjustedNet)*confidenceSlope + confidenceFloor
	c = math.Max(confidenceFloor, math.Min(confidenceCeil, c))
	return roundTo(c, 1)
}

func riskLevel(score int) models.RiskLevel {
	switch {
	case score >= highRiskMinScore:
		return models.RiskHigh
	case score == 1:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}
