package repository

import (
	"database/sql"
	"strings"
	"testing"

	"ncaam_v5/strategy/internal/analysis"
	"ncaam_v5/strategy/internal/models"
	"ncaam_v5/strategy/internal/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5432",
		User:     "ncaam",
		Password: "p@ss word",
		Database: "ncaam_v5",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://ncaam:p%40ss%20word@db:5432/ncaam_v5?sslmode=disable", cfg.DSN())
}

func TestTableFromRatings(t *testing.T) {
	ratings := []*models.KenPomRating{
		{
			Rank:             sql.NullInt32{Int32: 1, Valid: true},
			TeamName:         "Duke Blue Devils",
			Conference:       sql.NullString{String: "ACC", Valid: true},
			AdjTempo:         sql.NullFloat64{Float64: 66.2, Valid: true},
			AdjOE:            sql.NullFloat64{Float64: 126.5, Valid: true},
			AdjDE:            sql.NullFloat64{Float64: 89.6, Valid: true},
			NetRating:        sql.NullFloat64{Float64: 36.9, Valid: true},
			Luck:             sql.NullFloat64{Float64: -0.02, Valid: true},
			StrengthSchedule: sql.NullFloat64{Float64: 10.5, Valid: true},
		},
		{TeamName: "Nulls State"},
	}

	tbl := TableFromRatings(ratings)

	assert.Equal(t, models.KenPomHeaders, tbl.Headers())
	assert.Equal(t, []string{"duke blue devils", "nulls state"}, tbl.Names())

	v, ok := tbl.Row(0).Value("strengthofschedule")
	require.True(t, ok)
	assert.Equal(t, "10.5", v)

	v, ok = tbl.Row(1).Value("luck")
	require.True(t, ok)
	assert.Empty(t, v, "NULL metrics should become empty cells")
}

func TestRatingsFromTable(t *testing.T) {
	csv := "Rk,Team,Conf,AdjT,ORtg,DRtg,NetRtg,Luck,Strength of Schedule\n" +
		"1,Duke Blue Devils,ACC,66.2,126.5,89.6,36.9,-0.02,10.5\n" +
		"x,Broken State,,fast,,,,,\n" +
		"5, ,SEC,66.0,110.0,100.0,10.0,0.01,2.0\n"

	tbl, err := table.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)

	ratings := RatingsFromTable(tbl, 2025)
	require.Len(t, ratings, 2, "Rows without a team name should be skipped")

	duke := ratings[0]
	assert.Equal(t, 2025, duke.Season)
	assert.Equal(t, "duke blue devils", duke.TeamName)
	assert.Equal(t, sql.NullInt32{Int32: 1, Valid: true}, duke.Rank)
	assert.Equal(t, 0, duke.Position)
	assert.Equal(t, sql.NullString{String: "ACC", Valid: true}, duke.Conference)
	assert.InDelta(t, 36.9, duke.NetRating.Float64, 1e-9)

	broken := ratings[1]
	assert.Equal(t, 1, broken.Position)
	assert.False(t, broken.Rank.Valid)
	assert.False(t, broken.Conference.Valid)
	assert.False(t, broken.AdjTempo.Valid)
	assert.False(t, broken.Luck.Valid)
}

func TestRatingsRoundTrip(t *testing.T) {
	original := table.New(models.KenPomHeaders, [][]string{
		{"1", "duke blue devils", "ACC", "66.2", "126.5", "89.6", "36.9", "-0.02", "10.5"},
	})

	restored := TableFromRatings(RatingsFromTable(original, 2025))
	assert.Equal(t, original.Snapshot(), restored.Snapshot())
}

func TestRatingsRoundTrip_DuplicateNamesWithoutRank(t *testing.T) {
	csv := "Team,AdjT,NetRtg\n" +
		"Texas Longhorns,71.5,19.1\n" +
		"Duke Blue Devils,66.2,36.9\n" +
		"Texas Tech Red Raiders,65.0,26.4\n" +
		"Duke Blue Devils,70.0,1.0\n"

	original, err := table.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)

	ratings := RatingsFromTable(original, 2025)
	require.Len(t, ratings, 4, "Duplicate team names should each be kept")
	for i, rating := range ratings {
		assert.Equal(t, i, rating.Position)
		assert.False(t, rating.Rank.Valid)
	}

	restored := TableFromRatings(ratings)
	assert.Equal(t, original.Names(), restored.Names(), "Rows should keep file order")

	before, err := analysis.NewResolver(original).Resolve("texas")
	require.NoError(t, err)
	after, err := analysis.NewResolver(restored).Resolve("texas")
	require.NoError(t, err)
	assert.Equal(t, "texas longhorns", after.Row.Name())
	assert.Equal(t, before.Candidates, after.Candidates)

	duke, err := analysis.NewResolver(restored).Resolve("duke")
	require.NoError(t, err)
	assert.True(t, duke.Ambiguous())
	tempo, ok := duke.Row.Value("adjt")
	require.True(t, ok)
	assert.Equal(t, "66.2", tempo, "The first duplicate in file order should win")
}
