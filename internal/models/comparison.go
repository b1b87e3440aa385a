package models

import (
	"database/sql"
	"encoding/json"
	"strconv"
)

// NotAvailable is how an unavailable value is rendered
const NotAvailable = "N/A"

// ComparisonRow is one metric compared across two teams
type ComparisonRow struct {
	Metric     Metric
	Team1      sql.NullFloat64
	Team2      sql.NullFloat64
	Difference sql.NullFloat64
}

// MarshalJSON renders unavailable values as "N/A" rather than null or zero
func (r ComparisonRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Metric     Metric `json:"metric"`
		Team1      any    `json:"team1"`
		Team2      any    `json:"team2"`
		Difference any    `json:"difference"`
	}{
		Metric:     r.Metric,
		Team1:      jsonValue(r.Team1),
		Team2:      jsonValue(r.Team2),
		Difference: jsonValue(r.Difference),
	})
}

// ComparisonTable is the metric-by-metric comparison of two teams
type ComparisonTable struct {
	Team1    string          `json:"team1"`
	Team2    string          `json:"team2"`
	Rows     []ComparisonRow `json:"rows"`
	Warnings []string        `json:"warnings,omitempty"`
}

// FormatValue renders a nullable metric value for display
func FormatValue(v sql.NullFloat64) string {
	if !v.Valid {
		return NotAvailable
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

func jsonValue(v sql.NullFloat64) any {
	if !v.Valid {
		return NotAvailable
	}
	return v.Float64
}

// TempoBucket classifies pace of play
type TempoBucket string

const (
	TempoVerySlow TempoBucket = "Very Slow"
	TempoSlow     TempoBucket = "Slow"
	TempoBalanced TempoBucket = "Balanced"
	TempoFast     TempoBucket = "Fast"
	TempoVeryFast TempoBucket = "Very Fast"
)

// TempoBuckets lists every bucket from slowest to fastest
var TempoBuckets = []TempoBucket{
	TempoVerySlow,
	TempoSlow,
	TempoBalanced,
	TempoFast,
	TempoVeryFast,
}

// GamePlan is the tempo-driven scouting report for an opponent
type GamePlan struct {
	Team     string      `json:"team"`
	Tempo    float64     `json:"tempo"`
	Bucket   TempoBucket `json:"bucket"`
	Notes    string      `json:"notes"`
	Warnings []string    `json:"warnings,omitempty"`
}
