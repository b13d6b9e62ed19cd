package fivehundred

import (
	"matchdata-backend/internal/components/telemetry"
	"matchdata-backend/lib/htmlutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	historyCells = 10
	formCells    = 8
)

// padCells extends a short row with empty cells so every index below n is readable.
func padCells(cells []*goquery.Selection, n int) []*goquery.Selection {
	for len(cells) < n {
		cells = append(cells, &goquery.Selection{})
	}
	return cells
}

func isHidden(row *goquery.Selection) bool {
	style := strings.ReplaceAll(row.AttrOr("style", ""), " ", "")
	return strings.Contains(style, "display:none")
}

// recordRows returns the data rows of a record table, the header row is dropped.
func recordRows(table *goquery.Selection) []*goquery.Selection {
	rows := htmlutil.Rows(table)
	if len(rows) == 0 {
		return rows
	}
	return rows[1:]
}

// eventName prefers the anchor text of the event cell.
func eventName(cell *goquery.Selection) string {
	if anchor := cell.Find("a").First(); anchor.Length() > 0 {
		return htmlutil.Text(anchor)
	}
	return htmlutil.Text(cell)
}

// oddsSummary joins the spans of the odds paragraph of a cell, or returns the cell text.
func oddsSummary(cell *goquery.Selection) string {
	p := cell.Find("p.pub_table_pl").First()
	if p.Length() == 0 {
		return htmlutil.Text(cell)
	}
	values := []string{}
	p.Find("span").Each(func(_ int, span *goquery.Selection) {
		values = append(values, htmlutil.Text(span))
	})
	return strings.Join(values, " ")
}

// ParseHeadToHead reads the meeting history section of the match data page, ok is false
// when the section or its table is missing.
func ParseHeadToHead(doc *goquery.Document, tel telemetry.API) (HeadToHead, bool) {
	result := HeadToHead{Matches: []HistoryRecord{}}

	section := findSection(doc, "交战历史", "历史")
	if section == nil {
		tel.ReportWarning(report_scraper_head_to_head, "head to head section not found")
		return result, false
	}
	result.Title = htmlutil.Text(section.Find("h4").First())
	result.Stats = htmlutil.Text(section.Find("span.his_info").First())

	table := section.Find("table.pub_table").First()
	if table.Length() == 0 {
		table = section.Find("table").First()
	}
	if table.Length() == 0 {
		tel.ReportWarning(report_scraper_head_to_head, "head to head table not found")
		return result, false
	}

	results := []rowResult[HistoryRecord]{}
	for _, row := range recordRows(table) {
		if isHidden(row) {
			continue
		}
		results = append(results, guardRow(func() (HistoryRecord, string) {
			return parseHistoryRow(row)
		}))
	}
	result.Matches = append(result.Matches, collectRows(tel, report_scraper_head_to_head, results)...)
	return result, true
}

func parseHistoryRow(row *goquery.Selection) (HistoryRecord, string) {
	cells := padCells(htmlutil.Cells(row), historyCells)
	record := HistoryRecord{
		Event:          eventName(cells[0]),
		Date:           htmlutil.Text(cells[1]),
		MatchInfo:      ParseMatchup(cells[2]),
		HalfScore:      htmlutil.Text(cells[3]),
		Result:         htmlutil.Text(cells[4]),
		Oupei:          oddsSummary(cells[5]),
		Yapan:          oddsSummary(cells[6]),
		HandicapResult: htmlutil.Text(cells[7]),
		SizeResult:     htmlutil.Text(cells[8]),
		Note:           htmlutil.Text(cells[9]),
	}
	if record.Event == "" && record.Date == "" && record.MatchInfo.HomeTeam == "" {
		return record, "no event, date or home team"
	}
	return record, ""
}

func parseFormRow(row *goquery.Selection) (FormRecord, string) {
	cells := padCells(htmlutil.Cells(row), formCells)
	record := FormRecord{
		Event:          eventName(cells[0]),
		Date:           htmlutil.Text(cells[1]),
		MatchInfo:      ParseMatchup(cells[2]),
		Handicap:       htmlutil.Text(cells[3]),
		HalfScore:      htmlutil.Text(cells[4]),
		Result:         htmlutil.Text(cells[5]),
		HandicapResult: htmlutil.Text(cells[6]),
		SizeResult:     htmlutil.Text(cells[7]),
	}
	if record.Event == "" && record.Date == "" && record.MatchInfo.HomeTeam == "" {
		return record, "no event, date or home team"
	}
	return record, ""
}

var formStatsKeywords = []string{"近10场", "胜率", "赢盘率"}

// formStatsRow returns the summary text of a colspan row, ok is false for regular rows.
func formStatsRow(row *goquery.Selection) (string, bool) {
	first := row.ChildrenFiltered("td").First()
	if _, spans := first.Attr("colspan"); !spans {
		return "", false
	}
	if msg := row.Find("p.record_msg").First(); msg.Length() > 0 {
		return htmlutil.Text(msg), true
	}
	text := htmlutil.Text(first)
	for _, keyword := range formStatsKeywords {
		if strings.Contains(text, keyword) {
			return text, true
		}
	}
	return "", false
}

// bottomStats reads the "近 N 场 ..." summary below a form table.
func bottomStats(container *goquery.Selection) string {
	text := htmlutil.Text(container.Find("div.bottom_info").First().Find("p").First())
	if !strings.Contains(text, "近") {
		return ""
	}
	if strings.Contains(text, "胜") || strings.Contains(text, "平") || strings.Contains(text, "负") {
		return text
	}
	return ""
}

func teamName(container *goquery.Selection) string {
	if strong := container.Find("strong.team_name").First(); strong.Length() > 0 {
		return htmlutil.Text(strong)
	}
	return htmlutil.Text(container.Find("div.team_name").First())
}

// parseFormTable reads the records of a form table and the summary found in its colspan rows.
func parseFormTable(table *goquery.Selection, tel telemetry.API, id string) ([]FormRecord, string) {
	stats := ""
	results := []rowResult[FormRecord]{}
	for _, row := range recordRows(table) {
		if isHidden(row) {
			continue
		}
		if text, ok := formStatsRow(row); ok {
			stats = text
			continue
		}
		results = append(results, guardRow(func() (FormRecord, string) {
			return parseFormRow(row)
		}))
	}
	records := []FormRecord{}
	return append(records, collectRows(tel, id, results)...), stats
}

// ParseRecentForm reads the recent form of both teams, ok is false when the section is missing.
func ParseRecentForm(doc *goquery.Document, tel telemetry.API) ([]TeamForm, bool) {
	section := findSection(doc, "近期战绩")
	if section == nil {
		tel.ReportWarning(report_scraper_recent_form, "recent form section not found")
		return []TeamForm{}, false
	}

	containers := []*goquery.Selection{}
	for _, class := range []string{"div.team_a", "div.team_b"} {
		if div := section.Find(class).First(); div.Length() > 0 {
			containers = append(containers, div)
		}
	}
	if len(containers) == 0 {
		section.Find("div").Each(func(_ int, div *goquery.Selection) {
			if div.Find("table.pub_table").Length() > 0 {
				containers = append(containers, div)
			}
		})
	}

	forms := []TeamForm{}
	for _, container := range containers {
		form := TeamForm{Name: teamName(container), Matches: []FormRecord{}}
		if table := container.Find("table.pub_table").First(); table.Length() > 0 {
			form.Matches, form.Stats = parseFormTable(table, tel, report_scraper_recent_form)
		}
		if form.Stats == "" {
			if msg := container.Find("p.record_msg").First(); msg.Length() > 0 {
				form.Stats = htmlutil.Text(msg)
			} else {
				form.Stats = bottomStats(container)
			}
		}
		forms = append(forms, form)
	}
	return forms, true
}

// ParseHomeAwayForm reads the venue split form tables of both teams, a missing table
// leaves its team out.
func ParseHomeAwayForm(doc *goquery.Document, tel telemetry.API) []HomeAwayForm {
	blocks := []struct {
		side      Side
		container string
		venue     string
	}{
		{side: SideHome, container: "div#team_zhanji2_1", venue: "em#home_zj2_1"},
		{side: SideAway, container: "div#team_zhanji2_0", venue: "em#home_zj2_0"},
	}

	forms := []HomeAwayForm{}
	for _, block := range blocks {
		container := doc.Find(block.container).First()
		if container.Length() == 0 {
			tel.ReportWarning(report_scraper_home_away_form, "form block not found", block.side.String())
			continue
		}

		form := HomeAwayForm{
			Type:        block.side,
			Name:        htmlutil.Text(container.Find("strong.team_name").First()),
			CurrentType: VenueHome,
			Matches:     []FormRecord{},
		}
		if block.side == SideAway {
			form.CurrentType = VenueAway
		}
		if em := container.Find(block.venue).First(); em.Length() > 0 {
			form.CurrentType = VenueAway
			if strings.Contains(htmlutil.Text(em), "主场") {
				form.CurrentType = VenueHome
			}
		}

		if table := container.Find("table.pub_table").First(); table.Length() > 0 {
			var stats string
			form.Matches, stats = parseFormTable(table, tel, report_scraper_home_away_form)
			form.Stats = bottomStats(container)
			if form.Stats == "" {
				form.Stats = stats
			}
		}
		forms = append(forms, form)
	}
	return forms
}
