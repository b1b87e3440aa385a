package models

import (
	"database/sql"
	"fmt"
)

// Metric names a KenPom-style season metric
type Metric string

const (
	AdjTempo               Metric = "Adj Tempo"
	AdjOffensiveEfficiency Metric = "Adj Offensive Efficiency"
	AdjDefensiveEfficiency Metric = "Adj Defensive Efficiency"
	NetRating              Metric = "Net Rating"
	Luck                   Metric = "Luck"
	StrengthOfSchedule     Metric = "Strength of Schedule"
)

// Metrics lists every metric in display order
var Metrics = []Metric{
	AdjTempo,
	AdjOffensiveEfficiency,
	AdjDefensiveEfficiency,
	NetRating,
	Luck,
	StrengthOfSchedule,
}

// MetricRecord holds the six season metrics for one team.
// An invalid field means the value could not be computed from the source row.
type MetricRecord struct {
	AdjTempo               sql.NullFloat64
	AdjOffensiveEfficiency sql.NullFloat64
	AdjDefensiveEfficiency sql.NullFloat64
	NetRating              sql.NullFloat64
	Luck                   sql.NullFloat64
	StrengthOfSchedule     sql.NullFloat64
}

// UnavailableRecord returns a record with every metric unavailable
func UnavailableRecord() MetricRecord {
	return MetricRecord{}
}

// Get returns the value of a metric
func (r MetricRecord) Get(m Metric) sql.NullFloat64 {
	switch m {
	case AdjTempo:
		return r.AdjTempo
	case AdjOffensiveEfficiency:
		return r.AdjOffensiveEfficiency
	case AdjDefensiveEfficiency:
		return r.AdjDefensiveEfficiency
	case NetRating:
		return r.NetRating
	case Luck:
		return r.Luck
	case StrengthOfSchedule:
		return r.StrengthOfSchedule
	}
	return sql.NullFloat64{}
}

// Set stores a value for a metric
func (r *MetricRecord) Set(m Metric, v float64) error {
	val := sql.NullFloat64{Float64: v, Valid: true}
	switch m {
	case AdjTempo:
		r.AdjTempo = val
	case AdjOffensiveEfficiency:
		r.AdjOffensiveEfficiency = val
	case AdjDefensiveEfficiency:
		r.AdjDefensiveEfficiency = val
	case NetRating:
		r.NetRating = val
	case Luck:
		r.Luck = val
	case StrengthOfSchedule:
		r.StrengthOfSchedule = val
	default:
		return fmt.Errorf("unknown metric: %q", m)
	}
	return nil
}

// Available reports whether every metric holds a value
func (r MetricRecord) Available() bool {
	for _, m := range Metrics {
		if !r.Get(m).Valid {
			return false
		}
	}
	return true
}
