package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"ncaam_v5/strategy/internal/models"
	"ncaam_v5/strategy/internal/table"

	"github.com/rs/zerolog/log"
)

// KenPomRepository handles season ratings database operations
type KenPomRepository struct {
	db *Database
}

const kenpomColumns = `
	id, season, position, rank, team_name, conference,
	adj_tempo, adj_oe, adj_de, net_rating, luck, strength_of_schedule,
	created_at, updated_at
`

const insertRating = `
		INSERT INTO kenpom_ratings (
			season, position, rank, team_name, conference,
			adj_tempo, adj_oe, adj_de, net_rating, luck, strength_of_schedule
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

// EnsureSchema creates the ratings table if it does not exist. Rows are keyed by
// their position in the imported file, so duplicate team names are kept apart.
func (r *KenPomRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kenpom_ratings (
			id SERIAL PRIMARY KEY,
			season INTEGER NOT NULL,
			position INTEGER NOT NULL,
			rank INTEGER,
			team_name TEXT NOT NULL,
			conference TEXT,
			adj_tempo DOUBLE PRECISION,
			adj_oe DOUBLE PRECISION,
			adj_de DOUBLE PRECISION,
			net_rating DOUBLE PRECISION,
			luck DOUBLE PRECISION,
			strength_of_schedule DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (season, position)
		)
	`

	if _, err := r.db.Pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create kenpom_ratings table: %w", err)
	}
	return nil
}

// ReplaceSeason swaps a season's stored ratings for the given rows in one
// transaction. Rows that fail to insert are logged and skipped; the count of
// stored rows is returned.
func (r *KenPomRepository) ReplaceSeason(ctx context.Context, season int, ratings []*models.KenPomRating) (int, error) {
	start := time.Now()

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM kenpom_ratings WHERE season = $1`, season)
	if err != nil {
		return 0, fmt.Errorf("failed to clear season %d: %w", season, err)
	}

	stored := 0
	for _, rating := range ratings {
		// A savepoint keeps one bad row from aborting the whole transaction
		sp, err := tx.Begin(ctx)
		if err != nil {
			return stored, fmt.Errorf("failed to open savepoint: %w", err)
		}

		_, err = sp.Exec(
			ctx, insertRating,
			season, rating.Position, rating.Rank, rating.TeamName, rating.Conference,
			rating.AdjTempo, rating.AdjOE, rating.AdjDE, rating.NetRating,
			rating.Luck, rating.StrengthSchedule,
		)
		if err != nil {
			sp.Rollback(ctx)
			log.Warn().Err(err).Int("position", rating.Position).Str("team", rating.TeamName).Msg("Failed to store rating")
			continue
		}
		if err := sp.Commit(ctx); err != nil {
			return stored, fmt.Errorf("failed to release savepoint: %w", err)
		}
		stored++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit ratings: %w", err)
	}

	log.Info().
		Int("season", season).
		Int64("replaced", tag.RowsAffected()).
		Int("stored", stored).
		Int("total", len(ratings)).
		Dur("duration", time.Since(start)).
		Msg("Stored ratings")

	return stored, nil
}

// ListBySeason retrieves a season's ratings in their imported order
func (r *KenPomRepository) ListBySeason(ctx context.Context, season int) ([]*models.KenPomRating, error) {
	query := `SELECT ` + kenpomColumns + `
		FROM kenpom_ratings
		WHERE season = $1
		ORDER BY position ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*models.KenPomRating
	for rows.Next() {
		var rating models.KenPomRating
		err := rows.Scan(
			&rating.ID, &rating.Season, &rating.Position, &rating.Rank, &rating.TeamName, &rating.Conference,
			&rating.AdjTempo, &rating.AdjOE, &rating.AdjDE, &rating.NetRating,
			&rating.Luck, &rating.StrengthSchedule,
			&rating.CreatedAt, &rating.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ratings: %w", err)
	}

	return ratings, nil
}

// LoadTable builds the in-memory ratings table for a season
func (r *KenPomRepository) LoadTable(ctx context.Context, season int) (*table.Table, error) {
	ratings, err := r.ListBySeason(ctx, season)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return nil, fmt.Errorf("no ratings stored for season %d", season)
	}
	return TableFromRatings(ratings), nil
}

// TableFromRatings lays ratings out as table rows in the given order
func TableFromRatings(ratings []*models.KenPomRating) *table.Table {
	rows := make([][]string, len(ratings))
	for i, rating := range ratings {
		rows[i] = rating.Cells()
	}
	return table.New(models.KenPomHeaders, rows)
}

// RatingsFromTable converts table rows into season ratings for storage, keeping
// each row's position in the table. Rows without a team name are skipped;
// unparseable numeric cells are stored as NULL.
func RatingsFromTable(t *table.Table, season int) []*models.KenPomRating {
	ratings := make([]*models.KenPomRating, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		if row.Name() == "" {
			continue
		}

		rating := &models.KenPomRating{
			Season:           season,
			Position:         row.Index(),
			TeamName:         row.Name(),
			AdjTempo:         nullFloat(row, "adjt"),
			AdjOE:            nullFloat(row, "ortg"),
			AdjDE:            nullFloat(row, "drtg"),
			NetRating:        nullFloat(row, "netrtg"),
			Luck:             nullFloat(row, "luck"),
			StrengthSchedule: nullFloat(row, "strengthofschedule"),
		}
		if v, ok := row.Value("rk"); ok {
			if rank, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				rating.Rank = sql.NullInt32{Int32: int32(rank), Valid: true}
			}
		}
		if v, ok := row.Value("conf"); ok && strings.TrimSpace(v) != "" {
			rating.Conference = sql.NullString{String: strings.TrimSpace(v), Valid: true}
		}
		ratings = append(ratings, rating)
	}
	return ratings
}

func nullFloat(row table.Row, header string) sql.NullFloat64 {
	raw, ok := row.Value(header)
	if !ok {
		return sql.NullFloat64{}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}
