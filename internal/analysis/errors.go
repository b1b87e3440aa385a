package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingTeam is returned when a required team name is blank
var ErrMissingTeam = errors.New("please enter a team name")

// ErrMissingTeams is returned when either of two required team names is blank
var ErrMissingTeams = errors.New("please enter both team names")

// SchemaError means the ratings table has no recognizable team-name column
type SchemaError struct {
	Headers []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("ratings table has no team column (headers: %s)", strings.Join(e.Headers, ", "))
}

// NotFoundError means no team matched the query. Suggestion, when set, is the
// closest team name in the table.
type NotFoundError struct {
	Query      string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("Team '%s' not found. Did you mean: %s?", e.Query, e.Suggestion)
	}
	return fmt.Sprintf("Team '%s' not found. Please check spelling.", e.Query)
}

// UnavailableError means a resolved team's metrics could not be read from the table
type UnavailableError struct {
	Team string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("metrics for '%s' are unavailable in the ratings table", e.Team)
}
