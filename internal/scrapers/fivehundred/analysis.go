package fivehundred

import (
	"matchdata-backend/internal/components/telemetry"
	"matchdata-backend/lib/htmlutil"
	"matchdata-backend/lib/textutil"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseMatchName returns the Han characters of the first span of the page subtitle.
func ParseMatchName(doc *goquery.Document) string {
	span := doc.Find("div.M_sub_title").First().Find("span").First()
	return textutil.HanOnly(htmlutil.Text(span))
}

// findSection returns the first `div.M_box` whose heading contains one of the phrases.
func findSection(doc *goquery.Document, phrases ...string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("div.M_box").EachWithBreak(func(_ int, box *goquery.Selection) bool {
		heading := htmlutil.Text(box.Find("h4").First())
		if heading == "" {
			return true
		}
		for _, phrase := range phrases {
			if strings.Contains(heading, phrase) {
				found = box
				return false
			}
		}
		return true
	})
	return found
}

var (
	pieSumRegex          = regexp.MustCompile(`sum\s*=\s*["']?(\d+)["']?`)
	pieTotalRegex        = regexp.MustCompile(`total\s*=\s*["']?(\d+)["']?`)
	pieWinRegex          = regexp.MustCompile(`num1\s*=\s*["']?(\d+)["']?`)
	pieDrawRegex         = regexp.MustCompile(`num2\s*=\s*["']?(\d+)["']?`)
	pieLoseRegex         = regexp.MustCompile(`num3\s*=\s*["']?(\d+)["']?`)
	pieGoalsForRegex     = regexp.MustCompile(`title1\s*=\s*["']?入：(\d+)["']?`)
	pieGoalsAgainstRegex = regexp.MustCompile(`title2\s*=\s*["']?失：(\d+)["']?`)
)

// ParseAverageData reads the average goals section of the match data page,
// ok is false when the section or one of its tables is missing.
func ParseAverageData(doc *goquery.Document, tel telemetry.API) (AverageData, bool) {
	section := findSection(doc, "平均数据")
	if section == nil {
		tel.ReportWarning(report_scraper_average_data, "average data section not found")
		return AverageData{}, false
	}

	names := section.Find(".M_sub_title .team_name")
	if names.Length() < 2 {
		tel.ReportWarning(report_scraper_average_data, "expected 2 team names", names.Length())
		return AverageData{}, false
	}
	tables := section.Find("table.pub_table")
	if tables.Length() < 2 {
		tel.ReportWarning(report_scraper_average_data, "expected 2 average tables", tables.Length())
		return AverageData{}, false
	}

	home, ok := parseTeamAverage(tables.Eq(0))
	if !ok {
		tel.ReportWarning(report_scraper_average_data, "home average table malformed")
		return AverageData{}, false
	}
	away, ok := parseTeamAverage(tables.Eq(1))
	if !ok {
		tel.ReportWarning(report_scraper_average_data, "away average table malformed")
		return AverageData{}, false
	}

	pies := []*PieData{}
	section.Find("script").Each(func(_ int, script *goquery.Selection) {
		content := htmlutil.GetText(script.Get(0))
		if !strings.Contains(content, "FlashObject") || !strings.Contains(content, "piefoot2.swf") {
			return
		}
		if pie, ok := parsePieData(content); ok {
			pies = append(pies, &pie)
		}
	})

	data := AverageData{
		HomeTeam: TeamAverageData{Name: htmlutil.Text(names.Eq(0)), Average: home},
		AwayTeam: TeamAverageData{Name: htmlutil.Text(names.Eq(1)), Average: away},
	}
	if len(pies) > 0 {
		data.HomeTeam.PieData = pies[0]
	}
	if len(pies) > 1 {
		data.AwayTeam.PieData = pies[1]
	}
	return data, true
}

// parseTeamAverage reads the goals row and the conceded row that follow the header row.
func parseTeamAverage(table *goquery.Selection) (TeamAverage, bool) {
	rows := htmlutil.Rows(table)
	if len(rows) < 3 {
		return TeamAverage{}, false
	}
	goals := htmlutil.Cells(rows[1])
	conceded := htmlutil.Cells(rows[2])
	if len(goals) < 4 || len(conceded) < 4 {
		return TeamAverage{}, false
	}
	split := func(cells []*goquery.Selection) GoalSplit {
		return GoalSplit{
			Total: htmlutil.Text(cells[1]),
			Home:  htmlutil.Text(cells[2]),
			Away:  htmlutil.Text(cells[3]),
		}
	}
	return TeamAverage{Goals: split(goals), Conceded: split(conceded)}, true
}

func parsePieData(script string) (PieData, bool) {
	pie := PieData{
		Sum:   htmlutil.SubmatchOf(pieSumRegex, script),
		Total: htmlutil.SubmatchOf(pieTotalRegex, script),
		Win:   htmlutil.SubmatchOf(pieWinRegex, script),
		Draw:  htmlutil.SubmatchOf(pieDrawRegex, script),
		Lose:  htmlutil.SubmatchOf(pieLoseRegex, script),
	}
	if pie.Sum == "" || pie.Total == "" || pie.Win == "" || pie.Draw == "" || pie.Lose == "" {
		return PieData{}, false
	}
	pie.GoalsFor = orZero(htmlutil.SubmatchOf(pieGoalsForRegex, script))
	pie.GoalsAgainst = orZero(htmlutil.SubmatchOf(pieGoalsAgainstRegex, script))
	return pie, true
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
