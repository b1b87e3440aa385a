package analysis

import (
	"errors"
	"strings"
	"time"

	"ncaam_v5/strategy/internal/metrics"
	"ncaam_v5/strategy/internal/models"
	"ncaam_v5/strategy/internal/table"

	"github.com/rs/zerolog/log"
)

// Operation names used in logs and metrics
const (
	OpCompare  = "compare"
	OpGamePlan = "gameplan"
	OpRisk     = "risk"
)

// Service answers compare, game plan and risk requests against one loaded table.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	table    *table.Table
	resolver *Resolver
	notes    *NotesBook
}

// resolvedTeam is a team lookup together with its extracted metrics
type resolvedTeam struct {
	label   string
	match   Match
	metrics models.MetricRecord
}

// NewService creates a service over a loaded table
func NewService(t *table.Table, notes *NotesBook) *Service {
	if notes == nil {
		notes = DefaultNotes()
	}
	return &Service{
		table:    t,
		resolver: NewResolver(t),
		notes:    notes,
	}
}

// Compare builds the metric-by-metric comparison of two teams
func (s *Service) Compare(team1, team2 string) (result *models.ComparisonTable, err error) {
	defer s.observe(OpCompare, time.Now(), &err)

	first, second, err := s.resolvePair(team1, team2)
	if err != nil {
		return nil, err
	}

	return &models.ComparisonTable{
		Team1:    first.label,
		Team2:    second.label,
		Rows:     CompareRecords(first.metrics, second.metrics),
		Warnings: warnings(first, second),
	}, nil
}

// GamePlan classifies the opponent's tempo and renders coaching notes for it
func (s *Service) GamePlan(team string) (plan *models.GamePlan, err error) {
	defer s.observe(OpGamePlan, time.Now(), &err)

	team = strings.TrimSpace(team)
	if team == "" {
		return nil, ErrMissingTeam
	}

	opponent, err := s.resolve(team)
	if err != nil {
		return nil, err
	}
	if !opponent.metrics.AdjTempo.Valid {
		return nil, &UnavailableError{Team: opponent.label}
	}

	tempo := opponent.metrics.AdjTempo.Float64
	bucket := ClassifyTempo(tempo)
	notes, err := s.notes.Render(bucket, tempo)
	if err != nil {
		return nil, err
	}

	return &models.GamePlan{
		Team:     opponent.label,
		Tempo:    tempo,
		Bucket:   bucket,
		Notes:    notes,
		Warnings: warnings(opponent),
	}, nil
}

// Risk predicts the matchup winner, confidence and upset risk
func (s *Service) Risk(team1, team2 string) (assessment *models.RiskAssessment, err error) {
	defer s.observe(OpRisk, time.Now(), &err)

	first, second, err := s.resolvePair(team1, team2)
	if err != nil {
		return nil, err
	}
	for _, team := range []resolvedTeam{first, second} {
		if !team.metrics.Available() {
			return nil, &UnavailableError{Team: team.label}
		}
	}

	netDiff := first.metrics.NetRating.Float64 - second.metrics.NetRating.Float64
	luckDiff := first.metrics.Luck.Float64 - second.metrics.Luck.Float64
	sosDiff := first.metrics.StrengthOfSchedule.Float64 - second.metrics.StrengthOfSchedule.Float64

	result := PredictRisk(netDiff, luckDiff, sosDiff, first.label, second.label)
	result.Warnings = warnings(first, second)
	metrics.RecordPrediction(string(result.Level))

	log.Debug().
		Str("team1", first.label).
		Str("team2", second.label).
		Str("winner", result.PredictedWinner).
		Float64("confidence", result.Confidence).
		Str("risk", string(result.Level)).
		Msg("Risk assessed")

	return &result, nil
}

// Teams lists table team names in load order, optionally filtered by substring
func (s *Service) Teams(filter string) []string {
	filter = table.NormalizeName(filter)
	var out []string
	for _, name := range s.table.Names() {
		if strings.Contains(name, filter) {
			out = append(out, name)
		}
	}
	return out
}

// resolvePair resolves team1 before team2 and stops at the first error
func (s *Service) resolvePair(team1, team2 string) (resolvedTeam, resolvedTeam, error) {
	team1 = strings.TrimSpace(team1)
	team2 = strings.TrimSpace(team2)
	if team1 == "" || team2 == "" {
		return resolvedTeam{}, resolvedTeam{}, ErrMissingTeams
	}

	first, err := s.resolve(team1)
	if err != nil {
		return resolvedTeam{}, resolvedTeam{}, err
	}
	second, err := s.resolve(team2)
	if err != nil {
		return resolvedTeam{}, resolvedTeam{}, err
	}
	return first, second, nil
}

func (s *Service) resolve(name string) (resolvedTeam, error) {
	match, err := s.resolver.Resolve(name)
	if err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			metrics.RecordLookup(metrics.LookupSchemaError)
		} else {
			metrics.RecordLookup(metrics.LookupNotFound)
		}
		return resolvedTeam{}, err
	}

	if match.Ambiguous() {
		metrics.RecordLookup(metrics.LookupAmbiguous)
	} else {
		metrics.RecordLookup(metrics.LookupResolved)
	}

	record := Extract(match.Row)
	if !record.Available() {
		metrics.RecordUnavailableRecord()
	}

	return resolvedTeam{
		label:   DisplayName(name),
		match:   match,
		metrics: record,
	}, nil
}

func (s *Service) observe(operation string, start time.Time, errp *error) {
	status := "success"
	if *errp != nil {
		status = errorStatus(*errp)
	}
	metrics.RecordRequest(operation, status, time.Since(start).Seconds())
}

func errorStatus(err error) string {
	var (
		notFound    *NotFoundError
		schema      *SchemaError
		unavailable *UnavailableError
	)
	switch {
	case errors.Is(err, ErrMissingTeam), errors.Is(err, ErrMissingTeams):
		return "invalid_input"
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &schema):
		return "schema_error"
	case errors.As(err, &unavailable):
		return "unavailable"
	default:
		return "error"
	}
}

func warnings(teams ...resolvedTeam) []string {
	var out []string
	for _, t := range teams {
		if w := t.match.Warning(); w != "" {
			out = append(out, w)
		}
	}
	return out
}
