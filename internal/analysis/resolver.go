package analysis

import (
	"strings"

	"ncaam_v5/strategy/internal/table"

	"github.com/rs/zerolog/log"
)

// Match is a resolved team lookup
type Match struct {
	Query string
	Row   table.Row
	// Candidates lists every matched name in load order when more than one row matched
	Candidates []string
}

// Ambiguous reports whether the query matched more than one team
func (m Match) Ambiguous() bool {
	return len(m.Candidates) > 1
}

// Warning describes an ambiguous match, or returns "" when the match was unique
func (m Match) Warning() string {
	if !m.Ambiguous() {
		return ""
	}
	return "Multiple KenPom matches found for '" + m.Query + "': [" +
		strings.Join(m.Candidates, ", ") + "]. Using the first match found."
}

// Resolver maps free-text team names onto table rows
type Resolver struct {
	table *table.Table
}

// NewResolver creates a resolver over a loaded table
func NewResolver(t *table.Table) *Resolver {
	return &Resolver{table: t}
}

// Resolve finds the row whose team name contains the normalized query.
//
// When several rows match, the first one in load order wins and the match carries
// the full candidate list. When none match, the error is a *NotFoundError with the
// closest name as a suggestion if one scores at least 0.6.
func (r *Resolver) Resolve(name string) (Match, error) {
	if _, ok := r.table.TeamColumn(); !ok {
		return Match{}, &SchemaError{Headers: r.table.Headers()}
	}

	query := table.NormalizeName(name)

	var matched []table.Row
	for i := 0; i < r.table.Len(); i++ {
		row := r.table.Row(i)
		if strings.Contains(row.Name(), query) {
			matched = append(matched, row)
		}
	}

	if len(matched) == 0 {
		notFound := &NotFoundError{Query: name}
		if suggestion, ok := closestMatch(query, r.table.Names(), suggestionCutoff); ok {
			notFound.Suggestion = suggestion
		}
		log.Debug().
			Str("query", query).
			Str("suggestion", notFound.Suggestion).
			Msg("Team not found")
		return Match{}, notFound
	}

	match := Match{Query: name, Row: matched[0]}
	if len(matched) > 1 {
		match.Candidates = make([]string, len(matched))
		for i, row := range matched {
			match.Candidates[i] = row.Name()
		}
		// TODO: let callers pick among candidates instead of relying on load order
		log.Warn().
			Str("query", query).
			Strs("matches", match.Candidates).
			Str("using", match.Row.Name()).
			Msg("Multiple teams matched, using first match")
	}

	return match, nil
}
