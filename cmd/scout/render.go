package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"ncaam_v5/strategy/internal/models"
)

// Output formats
const (
	formatTable = "table"
	formatJSON  = "json"
)

func renderComparison(w io.Writer, result *models.ComparisonTable, format string) error {
	if format == formatJSON {
		return writeJSON(w, result)
	}

	writeWarnings(w, result.Warnings)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Metric\t%s\t%s\tDifference\n", result.Team1, result.Team2)
	for _, row := range result.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			row.Metric,
			models.FormatValue(row.Team1),
			models.FormatValue(row.Team2),
			models.FormatValue(row.Difference),
		)
	}
	return tw.Flush()
}

func renderGamePlan(w io.Writer, plan *models.GamePlan, format string) error {
	if format == formatJSON {
		return writeJSON(w, plan)
	}

	writeWarnings(w, plan.Warnings)
	fmt.Fprintf(w, "Opponent: %s\n", plan.Team)
	fmt.Fprintf(w, "KenPom Adj Tempo: %.1f possessions/game\n\n", plan.Tempo)
	_, err := io.WriteString(w, plan.Notes)
	return err
}

func renderRisk(w io.Writer, result *models.RiskAssessment, format string) error {
	if format == formatJSON {
		return writeJSON(w, result)
	}

	writeWarnings(w, result.Warnings)
	fmt.Fprintf(w, "%s vs %s\n\n", result.Team1, result.Team2)
	_, err := fmt.Fprintln(w, result.Report())
	return err
}

func renderTeams(w io.Writer, teams []string, format string) error {
	if format == formatJSON {
		if teams == nil {
			teams = []string{}
		}
		return writeJSON(w, teams)
	}

	if len(teams) == 0 {
		_, err := fmt.Fprintln(w, "No teams found.")
		return err
	}
	_, err := fmt.Fprintln(w, strings.Join(teams, "\n"))
	return err
}

func writeWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	if len(warnings) > 0 {
		fmt.Fprintln(w)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
