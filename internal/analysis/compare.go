package analysis

import (
	"database/sql"
	"math"

	"ncaam_v5/strategy/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CompareRecords builds one row per metric in display order. Values and
// differences (first minus second) are rounded to 3 decimals; a difference is
// unavailable when either side is.
func CompareRecords(first, second models.MetricRecord) []models.ComparisonRow {
	rows := make([]models.ComparisonRow, 0, len(models.Metrics))
	for _, m := range models.Metrics {
		v1 := first.Get(m)
		v2 := second.Get(m)

		row := models.ComparisonRow{
			Metric: m,
			Team1:  roundNull(v1, 3),
			Team2:  roundNull(v2, 3),
		}
		if v1.Valid && v2.Valid {
			row.Difference = sql.NullFloat64{Float64: roundTo(v1.Float64-v2.Float64, 3), Valid: true}
		}
		rows = append(rows, row)
	}
	return rows
}

// DisplayName title-cases each word of a user-supplied team name
func DisplayName(name string) string {
	// A Caser keeps state, so each call gets its own
	return cases.Title(language.English).String(name)
}

func roundNull(v sql.NullFloat64, places int) sql.NullFloat64 {
	if !v.Valid {
		return v
	}
	return sql.NullFloat64{Float64: roundTo(v.Float64, places), Valid: true}
}

// roundTo rounds half away from zero
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
