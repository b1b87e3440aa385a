// Command scout answers matchup questions from the season ratings table.
//
//	scout [-format table|json] compare <team1> <team2>
//	scout [-format table|json] gameplan <team>
//	scout [-format table|json] risk <team1> <team2>
//	scout [-format table|json] teams [filter]
//	scout import [-season N] <ratings.csv>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ncaam_v5/strategy/internal/analysis"
	"ncaam_v5/strategy/internal/config"
	"ncaam_v5/strategy/internal/loader"
	"ncaam_v5/strategy/internal/repository"
	"ncaam_v5/strategy/internal/table"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage:
  scout [-format table|json] compare <team1> <team2>
  scout [-format table|json] gameplan <team>
  scout [-format table|json] risk <team1> <team2>
  scout [-format table|json] teams [filter]
  scout import [-season N] <ratings.csv>`

var errUsage = errors.New(usage)

func main() {
	format := flag.String("format", formatTable, "output format: table or json")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	setupLogger()
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *format, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogger sends logs to stderr so command output stays clean
func setupLogger() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})

	level := zerolog.WarnLevel
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsedLevel, err := zerolog.ParseLevel(lvl)
		if err == nil {
			level = parsedLevel
		}
	}
	zerolog.SetGlobalLevel(level)
}

func run(ctx context.Context, cfg *config.Config, format string, args []string, out io.Writer) error {
	if format != formatTable && format != formatJSON {
		return fmt.Errorf("unknown format %q", format)
	}
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]
	if command == "import" {
		return runImport(ctx, cfg, args, out)
	}

	svc, err := loader.Service(ctx, cfg)
	if err != nil {
		return err
	}
	return runQuery(svc, command, args, format, out)
}

// runQuery executes one analysis command against a loaded service
func runQuery(svc *analysis.Service, command string, args []string, format string, out io.Writer) error {
	switch command {
	case "compare":
		if len(args) > 2 {
			return errUsage
		}
		result, err := svc.Compare(arg(args, 0), arg(args, 1))
		if err != nil {
			return err
		}
		return renderComparison(out, result, format)

	case "gameplan":
		if len(args) > 1 {
			return errUsage
		}
		plan, err := svc.GamePlan(arg(args, 0))
		if err != nil {
			return err
		}
		return renderGamePlan(out, plan, format)

	case "risk":
		if len(args) > 2 {
			return errUsage
		}
		result, err := svc.Risk(arg(args, 0), arg(args, 1))
		if err != nil {
			return err
		}
		return renderRisk(out, result, format)

	case "teams":
		return renderTeams(out, svc.Teams(strings.Join(args, " ")), format)

	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

// runImport stores a ratings CSV in Postgres for a season
func runImport(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	season := fs.Int("season", cfg.KenPomSeason, "season the ratings belong to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}

	t, err := table.LoadCSV(fs.Arg(0))
	if err != nil {
		return err
	}
	if _, ok := t.TeamColumn(); !ok {
		return &analysis.SchemaError{Headers: t.Headers()}
	}

	db, err := loader.OpenDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Health(ctx); err != nil {
		return err
	}
	if err := db.KenPom.EnsureSchema(ctx); err != nil {
		return err
	}

	ratings := repository.RatingsFromTable(t, *season)
	stored, err := db.KenPom.ReplaceSeason(ctx, *season, ratings)
	if err != nil {
		return err
	}

	// Drop any stale snapshot so the next load reads the new rows
	if cfg.EnableCache {
		if c, err := loader.OpenCache(cfg); err != nil {
			log.Warn().Err(err).Msg("Failed to connect to Redis - cached table not invalidated")
		} else {
			if err := c.Invalidate(ctx, config.SourcePostgres, *season); err != nil {
				log.Warn().Err(err).Msg("Failed to invalidate cached table")
			}
			c.Close()
		}
	}

	fmt.Fprintf(out, "Imported %d of %d teams for season %d\n", stored, len(ratings), *season)
	return nil
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
