package fivehundred

import (
	"matchdata-backend/internal/components/telemetry"
	"matchdata-backend/lib/htmlutil"
	"matchdata-backend/lib/textutil"
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

const defaultStandingsTitle = "联赛积分榜"

// minimum similarity for FindTeam to accept a fuzzy match
const teamSimilarityThreshold = 0.85

func emptyStandings() Standings {
	return Standings{Title: defaultStandingsTitle, Teams: []StandingsEntry{}}
}

// ParseStandings reads the league table. Header and separator rows (colspan or a non numeric
// first cell) are skipped, a missing table yields an empty Standings.
func ParseStandings(doc *goquery.Document, tel telemetry.API) Standings {
	standings := emptyStandings()

	table := doc.Find("table.lstable1").First()
	if table.Length() == 0 {
		tel.ReportWarning(report_scraper_standings, "standings table not found")
		return standings
	}
	if title := htmlutil.Text(doc.Find("h2.league_title").First()); title != "" {
		standings.Title = title
	}

	for _, row := range htmlutil.Rows(table) {
		cells := htmlutil.Cells(row)
		if len(cells) < 7 {
			continue
		}
		if _, spans := cells[0].Attr("colspan"); spans {
			continue
		}
		rank := htmlutil.Text(cells[0])
		if _, err := strconv.ParseUint(rank, 10, 32); err != nil {
			continue
		}
		standings.Teams = append(standings.Teams, StandingsEntry{
			Rank:    rank,
			Name:    htmlutil.Text(cells[1]),
			Matches: htmlutil.Text(cells[2]),
			Wins:    htmlutil.Text(cells[3]),
			Draws:   htmlutil.Text(cells[4]),
			Losses:  htmlutil.Text(cells[5]),
			Points:  htmlutil.Text(cells[6]),
		})
	}
	tel.ReportCount(report_scraper_standings, int64(len(standings.Teams)))
	return standings
}

// FindTeam looks a team up by name, tolerating rank markers and small spelling differences.
func (s Standings) FindTeam(name string) (StandingsEntry, bool) {
	names := make([]string, len(s.Teams))
	for i, team := range s.Teams {
		names[i] = team.Name
	}
	idx, similarity := textutil.ClosestName(name, names)
	if idx < 0 || similarity < teamSimilarityThreshold {
		return StandingsEntry{}, false
	}
	return s.Teams[idx], true
}

var (
	homeGoalsRegex = regexp.MustCompile(`主队场均进球\s*(\d+\.\d{1,2})`)
	awayGoalsRegex = regexp.MustCompile(`客队场均进球\s*(\d+\.\d{1,2})`)
)

func defaultLeagueAverage() LeagueAverage {
	return LeagueAverage{HomeGoals: "0", AwayGoals: "0"}
}

// ParseLeagueAverage reads the per match goal averages from the second row of the league
// chart table, each value defaults to "0".
func ParseLeagueAverage(doc *goquery.Document, tel telemetry.API) LeagueAverage {
	average := defaultLeagueAverage()

	table := doc.Find("table.lchart").First()
	if table.Length() == 0 {
		tel.ReportWarning(report_scraper_league_average, "league chart table not found")
		return average
	}
	rows := htmlutil.Rows(table)
	if len(rows) < 2 {
		return average
	}
	text := htmlutil.CellText(htmlutil.Cells(rows[1]), 1)
	if home := htmlutil.SubmatchOf(homeGoalsRegex, text); home != "" {
		average.HomeGoals = home
	}
	if away := htmlutil.SubmatchOf(awayGoalsRegex, text); away != "" {
		average.AwayGoals = away
	}
	return average
}
