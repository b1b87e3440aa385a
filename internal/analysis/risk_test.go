package analysis

import (
	"testing"

	"ncaam_v5/strategy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTempo(t *testing.T) {
	tests := []struct {
		tempo float64
		want  models.TempoBucket
	}{
		{55.0, models.TempoVerySlow},
		{60.99, models.TempoVerySlow},
		{60.999, models.TempoVerySlow},
		{61.0, models.TempoSlow},
		{63.99, models.TempoSlow},
		{63.999, models.TempoSlow},
		{64.0, models.TempoBalanced},
		{66.99, models.TempoBalanced},
		{66.999, models.TempoBalanced},
		{67.0, models.TempoFast},
		{69.99, models.TempoFast},
		{69.999, models.TempoFast},
		{70.0, models.TempoVeryFast},
		{75.0, models.TempoVeryFast},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyTempo(tt.tempo), "tempo %.3f", tt.tempo)
	}
}

func TestPredictRisk_ClearFavorite(t *testing.T) {
	result := PredictRisk(10, 0, 0, "duke", "houston")

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, models.RiskLow, result.Level)
	assert.Equal(t, "Duke", result.PredictedWinner)
	assert.InDelta(t, 8.5, result.AdjustedNet, 1e-9)
	assert.InDelta(t, 88.3, result.Confidence, 1e-9)

	require.Len(t, result.Messages, 3)
	assert.Equal(t, "Net Rating gap: 10.0 → There is a clear difference in team strength.", result.Messages[0])
	assert.Equal(t, "Luck differential: 0.000 → Fairly stable performance from both teams.", result.Messages[1])
	assert.Equal(t, "Strength of Schedule difference: 0.0 → Comparable schedule difficulty.", result.Messages[2])
	assert.Equal(t,
		"Final Prediction:\n- Predicted Winner: Duke\n- Confidence Score: 88.3%\n- Upset Risk Level: Low",
		result.Summary)
}

func TestPredictRisk_Levels(t *testing.T) {
	tests := []struct {
		name     string
		netDiff  float64
		luckDiff float64
		sosDiff  float64
		score    int
		level    models.RiskLevel
	}{
		{"no signals", 10, 0, 0, 0, models.RiskLow},
		{"close game", 1, 0, 0, 1, models.RiskModerate},
		{"close and lucky", 1, 0.1, 0, 2, models.RiskHigh},
		{"all signals", -2, -0.08, 3, 3, models.RiskHigh},
		{"boundaries do not count", 5, 0.05, 1.5, 0, models.RiskLow},
		{"small gap only", 3, 0.02, 0.5, 1, models.RiskModerate},
		{"small gap with lucky schedule", 3, 0.1, 2.0, 3, models.RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PredictRisk(tt.netDiff, tt.luckDiff, tt.sosDiff, "a", "b")
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.level, result.Level)
		})
	}
}

func TestPredictRisk_Winner(t *testing.T) {
	assert.Equal(t, "Houston", PredictRisk(-10, 0, 0, "duke", "houston").PredictedWinner)

	tie := PredictRisk(0, 0, 0, "duke", "houston")
	assert.Equal(t, "Houston", tie.PredictedWinner, "An even margin goes to the second team")
	assert.InDelta(t, 50.0, tie.Confidence, 1e-9)
}

func TestConfidence_Clamped(t *testing.T) {
	assert.InDelta(t, 99.0, Confidence(AdjustedNet(1000, 0, 0)), 1e-9)
	assert.InDelta(t, 99.0, Confidence(AdjustedNet(-1000, 0, 0)), 1e-9)
	assert.InDelta(t, 50.0, Confidence(0), 1e-9)
}

func TestAdjustedNet(t *testing.T) {
	assert.InDelta(t, 0.85*4+0.1*2-0.05*0.2, AdjustedNet(4, 0.2, 2), 1e-9)
}
