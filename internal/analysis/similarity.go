package analysis

import (
	"github.com/pmezard/go-difflib/difflib"
)

// suggestionCutoff is the minimum similarity for a close-match suggestion
const suggestionCutoff = 0.6

// similarity scores how close a query is to a team name, in [0, 1].
//
// It takes the better of the whole-string SequenceMatcher ratio and a partial
// ratio that aligns the shorter string against same-length windows of the longer
// one, so a misspelled school ("dukee") still scores well against a full
// "school + mascot" name ("duke blue devils").
func similarity(query, name string) float64 {
	full := ratio(name, query)
	partial := partialRatio(query, name)
	if partial > full {
		return partial
	}
	return full
}

// closestMatch returns the best-scoring name at or above cutoff. Ties keep the
// earliest name in load order.
func closestMatch(query string, names []string, cutoff float64) (string, bool) {
	best := ""
	bestScore := 0.0
	found := false
	for _, name := range names {
		score := similarity(query, name)
		if score >= cutoff && (!found || score > bestScore) {
			best = name
			bestScore = score
			found = true
		}
	}
	return best, found
}

func ratio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

func partialRatio(a, b string) float64 {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}

	shortStr := string(short)
	matcher := difflib.NewMatcher(runeStrings(short), runeStrings(long))

	best := 0.0
	for _, block := range matcher.GetMatchingBlocks() {
		start := block.B - block.A
		if start < 0 {
			start = 0
		}
		end := start + len(short)
		if end > len(long) {
			end = len(long)
		}
		r := ratio(shortStr, string(long[start:end]))
		if r > best {
			best = r
		}
	}
	return best
}

func chars(s string) []string {
	return runeStrings([]rune(s))
}

func runeStrings(rs []rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}
