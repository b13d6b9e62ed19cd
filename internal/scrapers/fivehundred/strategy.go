package fivehundred

import (
	"fmt"
	"matchdata-backend/internal/components/telemetry"
	"matchdata-backend/lib/htmlutil"
	"matchdata-backend/lib/textutil"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// strategy is one named way of extracting T out of a selection, ok is false on no match.
type strategy[T any] struct {
	name  string
	apply func(sel *goquery.Selection) (T, bool)
}

// firstMatch runs the strategies in order and returns the first success with its name.
func firstMatch[T any](sel *goquery.Selection, strategies []strategy[T]) (T, string, bool) {
	for _, s := range strategies {
		value, ok := s.apply(sel)
		if ok {
			return value, s.name, true
		}
	}
	var zero T
	return zero, "", false
}

var matchupStrategies = []strategy[Matchup]{
	{name: "team_spans", apply: matchupFromTeamSpans},
	{name: "inline_spans", apply: matchupFromInlineSpans},
	{name: "versus_text", apply: textStrategy(matchupFromVersus)},
	{name: "score_text", apply: textStrategy(matchupFromScore)},
	{name: "hyphen_text", apply: textStrategy(matchupFromHyphen)},
	{name: "whitespace_text", apply: textStrategy(matchupFromWhitespace)},
}

// ParseMatchup reads a "matchup" cell, an unrecognizable cell yields an empty Matchup.
func ParseMatchup(cell *goquery.Selection) Matchup {
	matchup, _, _ := firstMatch(cell, matchupStrategies)
	return matchup
}

func matchupFromTeamSpans(cell *goquery.Selection) (Matchup, bool) {
	left := cell.Find("span.dz-l").First()
	right := cell.Find("span.dz-r").First()
	if left.Length() == 0 || right.Length() == 0 {
		return Matchup{}, false
	}
	return Matchup{
		HomeTeam: textutil.RemoveRank(htmlutil.Text(left)),
		Score:    htmlutil.Text(cell.Find("em").First()),
		AwayTeam: textutil.RemoveRank(htmlutil.Text(right)),
	}, true
}

func matchupFromInlineSpans(cell *goquery.Selection) (Matchup, bool) {
	spans := cell.Find("span")
	if spans.Length() < 3 {
		return Matchup{}, false
	}
	return Matchup{
		HomeTeam: textutil.RemoveRank(htmlutil.Text(spans.Eq(0))),
		Score:    htmlutil.Text(spans.Eq(1)),
		AwayTeam: textutil.RemoveRank(htmlutil.Text(spans.Eq(2))),
	}, true
}

func textStrategy(parse func(text string) (Matchup, bool)) func(*goquery.Selection) (Matchup, bool) {
	return func(cell *goquery.Selection) (Matchup, bool) {
		text := htmlutil.Text(cell)
		if text == "" {
			return Matchup{}, false
		}
		return parse(text)
	}
}

func splitPair(text, sep string) (Matchup, bool) {
	parts := strings.Split(text, sep)
	if len(parts) != 2 {
		return Matchup{}, false
	}
	home := textutil.RemoveRank(parts[0])
	away := textutil.RemoveRank(parts[1])
	if home == "" && away == "" {
		return Matchup{}, false
	}
	return Matchup{HomeTeam: home, Score: sep, AwayTeam: away}, true
}

func matchupFromVersus(text string) (Matchup, bool) {
	for _, token := range []string{"VS", "vs"} {
		if strings.Contains(text, token) {
			return splitPair(text, token)
		}
	}
	return Matchup{}, false
}

var scoreInTextRegex = regexp.MustCompile(`^(.+?)\s+(\d+\s*[-:]\s*\d+)\s+(.+)$`)

func matchupFromScore(text string) (Matchup, bool) {
	groups := scoreInTextRegex.FindStringSubmatch(text)
	if len(groups) < 4 {
		return Matchup{}, false
	}
	return Matchup{
		HomeTeam: textutil.RemoveRank(groups[1]),
		Score:    strings.ReplaceAll(groups[2], " ", ""),
		AwayTeam: textutil.RemoveRank(groups[3]),
	}, true
}

func matchupFromHyphen(text string) (Matchup, bool) {
	if !strings.Contains(text, "-") {
		return Matchup{}, false
	}
	return splitPair(text, "-")
}

func matchupFromWhitespace(text string) (Matchup, bool) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return Matchup{}, false
	}
	return Matchup{
		HomeTeam: textutil.RemoveRank(parts[0]),
		AwayTeam: textutil.RemoveRank(parts[len(parts)-1]),
	}, true
}

// rowResult is either a parsed row or the reason it was skipped.
type rowResult[T any] struct {
	value T
	skip  string
}

// guardRow parses one row, a panic while parsing turns into a skip.
func guardRow[T any](parse func() (T, string)) (result rowResult[T]) {
	defer func() {
		if r := recover(); r != nil {
			result = rowResult[T]{skip: fmt.Sprintf("row parser panicked: %v", r)}
		}
	}()
	value, skip := parse()
	return rowResult[T]{value: value, skip: skip}
}

// collectRows keeps the parsed rows and reports every skipped one under `id`.
func collectRows[T any](tel telemetry.API, id string, results []rowResult[T]) []T {
	out := make([]T, 0, len(results))
	for i, r := range results {
		if r.skip != "" {
			tel.ReportWarning(id, fmt.Sprintf("row %d skipped: %s", i+1, r.skip))
			continue
		}
		out = append(out, r.value)
	}
	return out
}
