package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"ncaam_v5/strategy/internal/models"
	"ncaam_v5/strategy/internal/table"

	"github.com/rs/zerolog/log"
)

// metricColumns maps each metric to its normalized source header
var metricColumns = map[models.Metric]string{
	models.AdjTempo:               "adjt",
	models.AdjOffensiveEfficiency: "ortg",
	models.AdjDefensiveEfficiency: "drtg",
	models.NetRating:              "netrtg",
	models.Luck:                   "luck",
	models.StrengthOfSchedule:     "strengthofschedule",
}

// Extract reads the six metrics from a row. The record is all-or-nothing: if any
// single metric is missing or unparseable, every metric comes back unavailable.
func Extract(row table.Row) models.MetricRecord {
	record, err := parseRecord(row)
	if err != nil {
		log.Debug().
			Err(err).
			Str("team", row.Name()).
			Msg("Metrics unavailable for team")
		return models.UnavailableRecord()
	}
	return record
}

func parseRecord(row table.Row) (models.MetricRecord, error) {
	var record models.MetricRecord
	for _, m := range models.Metrics {
		v, err := parseMetric(row, metricColumns[m])
		if err != nil {
			return models.MetricRecord{}, fmt.Errorf("%s: %w", m, err)
		}
		if err := record.Set(m, v); err != nil {
			return models.MetricRecord{}, err
		}
	}
	return record, nil
}

func parseMetric(row table.Row, column string) (float64, error) {
	raw, ok := row.Value(column)
	if !ok {
		return 0, fmt.Errorf("column %q not present", column)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("column %q is empty", column)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", column, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("column %q is not finite", column)
	}

	return v, nil
}
