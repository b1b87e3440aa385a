// Package loader builds the ratings table and coaching notes from configuration.
package loader

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ncaam_v5/strategy/internal/analysis"
	"ncaam_v5/strategy/internal/cache"
	"ncaam_v5/strategy/internal/config"
	"ncaam_v5/strategy/internal/metrics"
	"ncaam_v5/strategy/internal/repository"
	"ncaam_v5/strategy/internal/table"

	"github.com/rs/zerolog/log"
)

// tableCache stores ratings table snapshots between runs
type tableCache interface {
	GetTable(ctx context.Context, source string, season int) (*table.Table, bool, error)
	SetTable(ctx context.Context, source string, season int, t *table.Table, ttl time.Duration) error
}

// Table loads the ratings table from the configured source. With caching enabled a
// Postgres season is served from its stored snapshot when present, and a fresh load
// is written back. CSV files are always read directly since the snapshot key has no
// notion of the file. Cache failures are logged and never fatal.
func Table(ctx context.Context, cfg *config.Config) (*table.Table, error) {
	var snapshots tableCache
	if cfg.EnableCache && cfg.TableSource == config.SourcePostgres {
		c, err := OpenCache(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to connect to Redis - continuing without cache")
		} else {
			defer c.Close()
			snapshots = c
		}
	}
	return loadTable(ctx, cfg, snapshots)
}

func loadTable(ctx context.Context, cfg *config.Config, snapshots tableCache) (*table.Table, error) {
	if cfg.TableSource != config.SourcePostgres {
		snapshots = nil
	}

	start := time.Now()
	if snapshots != nil {
		t, found, err := snapshots.GetTable(ctx, cfg.TableSource, cfg.KenPomSeason)
		if err != nil {
			metrics.RecordError("cache", "get_table")
			log.Warn().Err(err).Msg("Failed to read cached table")
		} else if found {
			metrics.RecordTableLoad(sourceCache, t.Len(), time.Since(start).Seconds())
			log.Info().
				Str("source", cfg.TableSource).
				Int("season", cfg.KenPomSeason).
				Int("rows", t.Len()).
				Msg("Ratings table loaded from cache")
			return t, nil
		}
	}

	start = time.Now()
	t, err := fromSource(ctx, cfg)
	if err != nil {
		metrics.RecordError("loader", cfg.TableSource)
		return nil, err
	}
	metrics.RecordTableLoad(cfg.TableSource, t.Len(), time.Since(start).Seconds())

	if _, ok := t.TeamColumn(); !ok {
		log.Warn().Strs("headers", t.Headers()).Msg("Ratings table has no team column")
	}

	if snapshots != nil {
		if err := snapshots.SetTable(ctx, cfg.TableSource, cfg.KenPomSeason, t, cfg.CacheTTLTable); err != nil {
			metrics.RecordError("cache", "set_table")
			log.Warn().Err(err).Msg("Failed to cache table")
		}
	}

	return t, nil
}

// sourceCache labels table loads served from a snapshot
const sourceCache = "cache"

func fromSource(ctx context.Context, cfg *config.Config) (*table.Table, error) {
	switch cfg.TableSource {
	case config.SourceCSV:
		return table.LoadCSV(cfg.KenPomCSVPath)
	case config.SourcePostgres:
		db, err := OpenDatabase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		t, err := db.KenPom.LoadTable(ctx, cfg.KenPomSeason)
		if err != nil {
			return nil, err
		}
		log.Info().
			Int("season", cfg.KenPomSeason).
			Int("rows", t.Len()).
			Msg("Ratings table loaded from database")
		return t, nil
	default:
		return nil, fmt.Errorf("unknown table source: %q", cfg.TableSource)
	}
}

// OpenDatabase connects to Postgres
func OpenDatabase(ctx context.Context, cfg *config.Config) (*repository.Database, error) {
	return repository.NewDatabase(ctx, repository.Config{
		Host:     cfg.DatabaseHost,
		Port:     strconv.Itoa(cfg.DatabasePort),
		User:     cfg.DatabaseUser,
		Password: cfg.DatabasePassword,
		Database: cfg.DatabaseName,
		SSLMode:  cfg.DatabaseSSLMode,
	})
}

// OpenCache connects to Redis
func OpenCache(cfg *config.Config) (*cache.RedisCache, error) {
	c, err := cache.NewRedisCache(cache.Config{
		Host:     cfg.RedisHost,
		Port:     strconv.Itoa(cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("addr", cfg.RedisAddr()).Msg("Redis cache connected")
	return c, nil
}

// Notes returns the coaching notes override from NOTES_PATH, or the embedded notes
func Notes(cfg *config.Config) (*analysis.NotesBook, error) {
	if cfg.NotesPath == "" {
		return analysis.DefaultNotes(), nil
	}
	book, err := analysis.LoadNotes(cfg.NotesPath)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", cfg.NotesPath).Msg("Coaching notes loaded")
	return book, nil
}

// Service loads the table and notes and builds the analysis service
func Service(ctx context.Context, cfg *config.Config) (*analysis.Service, error) {
	t, err := Table(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings table: %w", err)
	}
	notes, err := Notes(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load coaching notes: %w", err)
	}
	return analysis.NewService(t, notes), nil
}
