package analysis

import (
	"errors"
	"testing"

	"ncaam_v5/strategy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Compare(t *testing.T) {
	svc := NewService(newTestTable(t), nil)

	result, err := svc.Compare("duke", "houston")
	require.NoError(t, err)

	assert.Equal(t, "Duke", result.Team1)
	assert.Equal(t, "Houston", result.Team2)
	require.Len(t, result.Rows, 6)
	assert.Equal(t, models.NetRating, result.Rows[3].Metric)
	assert.InDelta(t, 1.9, result.Rows[3].Difference.Float64, 1e-9)
	assert.Empty(t, result.Warnings)
}

func TestService_CompareUnavailable(t *testing.T) {
	svc := NewService(newTestTable(t), nil)

	result, err := svc.Compare("duke", "broken")
	require.NoError(t, err, "Unavailable metrics still produce a table")

	for _, row := range result.Rows {
		assert.Equal(t, models.NotAvailable, models.FormatValue(row.Team2))
		assert.Equal(t, models.NotAvailable, models.FormatValue(row.Difference))
	}
}

func TestService_CompareErrors(t *testing.T) {
	svc := NewService(newTestTable(t), nil)

	_, err := svc.Compare("duke", "   ")
	assert.ErrorIs(t, err, ErrMissingTeams)

	_, err = svc.Compare("", "duke")
	assert.ErrorIs(t, err, ErrMissingTeams)

	_, err = svc.Compare("zzzz", "dukee")
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "zzzz", notFound.Query, "The first team should be resolved first")
}

func TestService_CompareAmbiguousWarns(t *testing.T) {
	svc := NewService(newTestTable(t), nil)

	result, err := svc.Compare("texas", "duke")
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "texas longhorns, texas tech red raiders")
	assert.InDelta(t, 71.5, result.Rows[0].Team1.Float64, 1e-9, "The first match should be used")
}

func TestService_GamePlan(t *testing.T) {
	svc := NewService(newTestTable(t), nil)

	plan, err := svc.GamePlan("Houston")
	require.NoError(t, err)

	assert.Equal(t, "Houston", plan.Team)
	assert.InDelta(t, 61.8, plan.Tempo, 1e-9)
	assert.Equal(t, models.TempoSlow, plan.Bucket)
	assert.Contains(t, plan.Notes, "Tempo Profile: ~61.8 possessions/game (Slow classification).")
	assert.Contains(t, plan.Notes, "Offensive Ideas:")
}

func TestService_GamePlanErrors(t *testing.T) {
	svc := NewService(newTestTable(t), nil)

	_, err := svc.GamePlan(" ")
	assert.ErrorIs(t, err, ErrMissingTeam)

	_, err = svc.GamePlan("broken")
	var unavailable *UnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, "Broken", unavailable.Team)
}

func TestService_Risk(t *testing.T) {
	svc := NewService(newTestTable(t), nil)

	result, err := svc.Risk("duke", "houston")
	require.NoError(t, err)

	// Net gap 1.9 is close; luck and schedule gaps are small
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, models.RiskModerate, result.Level)
	assert.Equal(t, "Duke", result.PredictedWinner)
	assert.InDelta(t, 57.0, result.Confidence, 1e-9)
	assert.Contains(t, result.Report(), "Upset Risk Level: Moderate")
}

func TestService_RiskUnavailable(t *testing.T) {
	svc := NewService(newTestTable(t), nil)

	_, err := svc.Risk("broken", "duke")
	var unavailable *UnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, "Broken", unavailable.Team)

	_, err = svc.Risk("duke", "broken")
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, "Broken", unavailable.Team)
}

func TestService_Teams(t *testing.T) {
	svc := NewService(newTestTable(t), nil)

	assert.Len(t, svc.Teams(""), 6)
	assert.Equal(t, []string{"texas longhorns", "texas tech red raiders"}, svc.Teams(" TEXAS "))
	assert.Empty(t, svc.Teams("zzzz"))
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, "invalid_input", errorStatus(ErrMissingTeam))
	assert.Equal(t, "not_found", errorStatus(&NotFoundError{Query: "x"}))
	assert.Equal(t, "schema_error", errorStatus(&SchemaError{}))
	assert.Equal(t, "unavailable", errorStatus(&UnavailableError{Team: "x"}))
	assert.Equal(t, "error", errorStatus(errors.New("boom")))
}
