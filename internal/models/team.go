package models

import (
	"database/sql"
	"strconv"
	"time"
)

// KenPomHeaders are the normalized table headers produced by KenPomRating.Cells,
// in the same order.
var KenPomHeaders = []string{
	"rk", "team", "conf", "adjt", "ortg", "drtg", "netrtg", "luck", "strengthofschedule",
}

// KenPomRating represents one team's season ratings as stored in Postgres
type KenPomRating struct {
	ID         int            `db:"id"`
	Season     int            `db:"season"`
	Position   int            `db:"position"`
	Rank       sql.NullInt32  `db:"rank"`
	TeamName   string         `db:"team_name"`
	Conference sql.NullString `db:"conference"`

	// Efficiency
	AdjTempo  sql.NullFloat64 `db:"adj_tempo"`
	AdjOE     sql.NullFloat64 `db:"adj_oe"`
	AdjDE     sql.NullFloat64 `db:"adj_de"`
	NetRating sql.NullFloat64 `db:"net_rating"`

	// Context
	Luck             sql.NullFloat64 `db:"luck"`
	StrengthSchedule sql.NullFloat64 `db:"strength_of_schedule"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Cells renders the rating as raw table cells aligned with KenPomHeaders.
// NULL columns become empty cells.
func (r *KenPomRating) Cells() []string {
	rank := ""
	if r.Rank.Valid {
		rank = strconv.Itoa(int(r.Rank.Int32))
	}
	conf := ""
	if r.Conference.Valid {
		conf = r.Conference.String
	}

	return []string{
		rank,
		r.TeamName,
		conf,
		formatNullFloat(r.AdjTempo),
		formatNullFloat(r.AdjOE),
		formatNullFloat(r.AdjDE),
		formatNullFloat(r.NetRating),
		formatNullFloat(r.Luck),
		formatNullFloat(r.StrengthSchedule),
	}
}

func formatNullFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}
