package analysis

import "ncaam_v5/strategy/internal/models"

// Tempo thresholds in possessions per game. Each boundary belongs to the faster bucket.
const (
	tempoSlowFloor     = 61.0
	tempoBalancedFloor = 64.0
	tempoFastFloor     = 67.0
	tempoVeryFastFloor = 70.0
)

// ClassifyTempo maps adjusted tempo to a pace bucket
func ClassifyTempo(tempo float64) models.TempoBucket {
	switch {
	case tempo < tempoSlowFloor:
		return models.TempoVerySlow
	case tempo < tempoBalancedFloor:
		return models.TempoSlow
	case tempo < tempoFastFloor:
		return models.TempoBalanced
	case tempo < tempoVeryFastFloor:
		return models.TempoFast
	default:
		return models.TempoVeryFast
	}
}
