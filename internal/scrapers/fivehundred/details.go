package fivehundred

import (
	"matchdata-backend/internal/components/telemetry"
	"matchdata-backend/lib/htmlutil"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	titleStartingLineup = "预计首发阵容"
	titleSubstitutes    = "后备"
)

var (
	playerRegex   = regexp.MustCompile(`^(\d+)\s+(.*?)[(（](.*?)[)）]`)
	barWidthRegex = regexp.MustCompile(`width:\s*(\d+(?:\.\d+)?)px`)
)

// lineup blocks appear in this order on the detail page
const (
	blockHomeStarting = iota
	blockHomeSubstitutes
	blockAwayStarting
	blockAwaySubstitutes
)

// ParseMatchDetails reads lineups, timeline events and technical statistics of a detail page.
// Missing sections leave their lists empty.
func ParseMatchDetails(doc *goquery.Document, tel telemetry.API) MatchDetails {
	details := emptyDetails()
	parseLineups(doc, &details, tel)
	details.MatchEvents = parseMatchEvents(doc, tel)
	details.TechStats = parseTechStats(doc, tel)
	return details
}

func parseLineups(doc *goquery.Document, details *MatchDetails, tel telemetry.API) {
	block := blockHomeStarting
	doc.Find(".box_side").EachWithBreak(func(i int, box *goquery.Selection) bool {
		title := box.Find(".title").First()
		if title.Length() == 0 {
			tel.ReportWarning(report_scraper_match_details, "lineup block without title", i)
			return true
		}
		table := box.Find(".content").First().Find("table").First()
		if table.Length() == 0 {
			tel.ReportWarning(report_scraper_match_details, "lineup block without player table", i)
			return true
		}

		titleText := htmlutil.Text(title)
		starting := strings.Contains(titleText, titleStartingLineup)
		substitutes := strings.Contains(titleText, titleSubstitutes)

		for _, row := range htmlutil.Rows(table) {
			player, ok := parsePlayer(htmlutil.CellText(htmlutil.Cells(row), 1))
			if !ok {
				continue
			}
			switch {
			case starting && block == blockHomeStarting:
				details.HomeTeam.StartingLineup = append(details.HomeTeam.StartingLineup, player)
			case starting:
				details.AwayTeam.StartingLineup = append(details.AwayTeam.StartingLineup, player)
			case substitutes && block == blockHomeSubstitutes:
				details.HomeTeam.Substitutes = append(details.HomeTeam.Substitutes, player)
			case substitutes:
				details.AwayTeam.Substitutes = append(details.AwayTeam.Substitutes, player)
			}
		}

		block++
		return block <= blockAwaySubstitutes
	})
}

// parsePlayer reads "<number> <name>(<position>)".
func parsePlayer(text string) (Player, bool) {
	groups := playerRegex.FindStringSubmatch(text)
	if len(groups) != 4 {
		return Player{}, false
	}
	return Player{
		Number:   groups[1],
		Name:     strings.TrimSpace(groups[2]),
		Position: strings.TrimSpace(groups[3]),
	}, true
}

func parseMatchEvents(doc *goquery.Document, tel telemetry.API) []MatchEvent {
	events := []MatchEvent{}
	table := doc.Find(".mtable").First()
	if table.Length() == 0 {
		tel.ReportWarning(report_scraper_match_details, "timeline table not found")
		return events
	}

	rows := htmlutil.Rows(table)
	results := []rowResult[MatchEvent]{}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		results = append(results, guardRow(func() (MatchEvent, string) {
			cells := htmlutil.Cells(row)
			if len(cells) < 5 {
				return MatchEvent{}, "fewer than 5 cells"
			}
			event := MatchEvent{
				HomeIcon:  cells[0].Find("img").First().AttrOr("src", ""),
				HomeEvent: htmlutil.Text(cells[1]),
				Time:      htmlutil.Text(cells[2]),
				AwayEvent: htmlutil.Text(cells[3]),
				AwayIcon:  cells[4].Find("img").First().AttrOr("src", ""),
			}
			if event.Time == "" && event.HomeEvent == "" && event.AwayEvent == "" {
				return MatchEvent{}, "empty event"
			}
			return event, ""
		}))
	}
	return append(events, collectRows(tel, report_scraper_match_details, results)...)
}

func parseTechStats(doc *goquery.Document, tel telemetry.API) []TechStat {
	stats := []TechStat{}
	container := doc.Find(".t2").First().Find(`div[style*="padding:0 50px 30px 50px;"]`).First()
	table := container.Find("table").First()
	if table.Length() == 0 {
		tel.ReportWarning(report_scraper_match_details, "technical statistics table not found")
		return stats
	}

	for _, row := range htmlutil.Rows(table) {
		cells := htmlutil.Cells(row)
		if len(cells) < 5 {
			continue
		}
		stat := TechStat{
			HomeBarWidth: barWidth(cells[0]),
			HomeValue:    htmlutil.Text(cells[1]),
			Label:        htmlutil.Text(cells[2]),
			AwayValue:    htmlutil.Text(cells[3]),
			AwayBarWidth: barWidth(cells[4]),
		}
		if stat.Label == "" {
			continue
		}
		stats = append(stats, stat)
	}
	return stats
}

func barWidth(cell *goquery.Selection) string {
	bar := cell.Find(".bar_bg span").First()
	width := htmlutil.SubmatchOf(barWidthRegex, bar.AttrOr("style", ""))
	if width == "" {
		return "0"
	}
	return width
}
