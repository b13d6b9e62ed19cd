package fivehundred

import (
	"fmt"
	"matchdata-backend/internal/components/telemetry"
	"matchdata-backend/lib/htmlutil"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const dateLayout = "2006-01-02"

// ResolveVariant picks the listing layout for a requested date. An empty date is the live
// listing, a date strictly after today is the future layout and every other date, today
// included, is the history layout. An unparsable date falls back to history and is returned
// with the error.
func ResolveVariant(date string, today time.Time) (Variant, error) {
	if date == "" {
		return VariantLive, nil
	}
	requested, err := time.ParseInLocation(dateLayout, date, today.Location())
	if err != nil {
		return VariantHistory, fmt.Errorf("parse date %q: %w", date, err)
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if requested.After(day) {
		return VariantFuture, nil
	}
	return VariantHistory, nil
}

// ListOptions is everything ParseMatchList needs besides the document.
type ListOptions struct {
	Variant Variant
	// MarketTags maps a fixture id to its betting market tag.
	MarketTags map[string]string
	// StatusText maps status labels to codes, nil uses the default table.
	StatusText map[string]string
	// TeamLogo is the logo url template with a {team_id} placeholder, empty disables logos.
	TeamLogo string
}

var (
	teamIdRegex     = regexp.MustCompile(`team/(\d+)`)
	scoreRegex      = regexp.MustCompile(`(\d+)\s*[-:]\s*(\d+)`)
	leadingIntRegex = regexp.MustCompile(`^(\d+)`)
	trailIntRegex   = regexp.MustCompile(`(\d+)$`)
)

// columns are the cell indices of one listing layout, -1 marks a missing column.
type columns struct {
	round     int
	time      int
	status    int
	homeTeam  int
	awayTeam  int
	score     int
	halfScore int
}

var layouts = map[Variant]columns{
	VariantLive:    {round: 2, time: 3, status: 4, homeTeam: 5, awayTeam: 7, score: -1, halfScore: 8},
	VariantFuture:  {round: 1, time: 2, status: -1, homeTeam: 3, awayTeam: 5, score: -1, halfScore: -1},
	VariantHistory: {round: 1, time: 2, status: 3, homeTeam: 4, awayTeam: 6, score: 5, halfScore: 7},
}

// ParseMatchList reads every `tr[gy]` row of a listing page. Rows without a fixture id,
// duplicated fixture ids and rows that fail to parse are skipped and reported.
func ParseMatchList(doc *goquery.Document, opts ListOptions, tel telemetry.API) []MatchSummary {
	if opts.StatusText == nil {
		opts.StatusText = DefaultStatusText()
	}

	seen := map[string]struct{}{}
	results := []rowResult[MatchSummary]{}
	doc.Find("tr[gy]").Each(func(_ int, row *goquery.Selection) {
		results = append(results, guardRow(func() (MatchSummary, string) {
			summary, skip := parseListingRow(row, opts)
			if skip != "" {
				return summary, skip
			}
			if _, dup := seen[summary.Fid]; dup {
				return summary, fmt.Sprintf("duplicate fid %s", summary.Fid)
			}
			seen[summary.Fid] = struct{}{}
			return summary, ""
		}))
	})

	matches := collectRows(tel, report_scraper_match_list, results)
	tel.ReportCount(report_scraper_match_list, int64(len(matches)))
	return matches
}

func parseListingRow(row *goquery.Selection, opts ListOptions) (MatchSummary, string) {
	fid := strings.TrimSpace(row.AttrOr("fid", ""))
	if fid == "" {
		return MatchSummary{}, "missing fid"
	}

	layout := layouts[opts.Variant]
	cells := htmlutil.Cells(row)

	summary := MatchSummary{
		Fid:       fid,
		Sid:       strings.TrimSpace(row.AttrOr("sid", "")),
		JcMark:    opts.MarketTags[fid],
		Round:     htmlutil.CellText(cells, layout.round),
		MatchTime: htmlutil.CellText(cells, layout.time),
	}

	league := row.Find(".ssbox_01").First()
	summary.League = htmlutil.Text(league.Find("a").First())
	summary.LeagueBgcolor = league.AttrOr("bgcolor", "")

	summary.HomeTeam, summary.HomeTeamId = teamCell(cells, layout.homeTeam, opts.Variant)
	summary.AwayTeam, summary.AwayTeamId = teamCell(cells, layout.awayTeam, opts.Variant)
	summary.HomeTeamLogo = teamLogo(opts.TeamLogo, summary.HomeTeamId)
	summary.AwayTeamLogo = teamLogo(opts.TeamLogo, summary.AwayTeamId)

	switch opts.Variant {
	case VariantFuture:
		summary.StatusText = "未开始"
		summary.Status = StatusNotStarted
	case VariantLive:
		summary.StatusText = htmlutil.CellText(cells, layout.status)
		summary.Status = resolveStatus(opts.StatusText, row.AttrOr("status", ""), summary.StatusText)
		pk := row.Find(".pk").First()
		summary.HomeScore = htmlutil.Text(pk.Find(".clt1").First())
		summary.AwayScore = htmlutil.Text(pk.Find(".clt3").First())
		summary.HalfScore = htmlutil.CellText(cells, layout.halfScore)
	case VariantHistory:
		summary.StatusText = htmlutil.CellText(cells, layout.status)
		summary.Status = resolveStatus(opts.StatusText, row.AttrOr("status", ""), summary.StatusText)
		summary.HomeScore, summary.AwayScore = parseScore(htmlutil.CellText(cells, layout.score))
		summary.HalfScore = parseHalfScore(htmlutil.CellText(cells, layout.halfScore))
	}

	return summary, ""
}

// teamCell reads a team name and id from the anchor of a cell. Without an anchor the plain
// text of the cell is used, except on the live layout where only anchored names count.
func teamCell(cells []*goquery.Selection, i int, variant Variant) (string, string) {
	if i < 0 || i >= len(cells) {
		return "", ""
	}
	anchor := cells[i].Find("a").First()
	if anchor.Length() == 0 {
		if variant == VariantLive {
			return "", ""
		}
		return htmlutil.Text(cells[i]), ""
	}
	return htmlutil.Text(anchor), htmlutil.SubmatchOf(teamIdRegex, anchor.AttrOr("href", ""))
}

func teamLogo(template, teamId string) string {
	if template == "" || teamId == "" {
		return ""
	}
	return expand(template, "team_id", teamId)
}

// parseScore reads "h-a", "h:a" or a leading and a trailing integer.
func parseScore(text string) (string, string) {
	if groups := scoreRegex.FindStringSubmatch(text); len(groups) == 3 {
		return groups[1], groups[2]
	}
	home := htmlutil.SubmatchOf(leadingIntRegex, text)
	away := htmlutil.SubmatchOf(trailIntRegex, text)
	if home == "" || away == "" {
		return "", ""
	}
	return home, away
}

func parseHalfScore(text string) string {
	groups := scoreRegex.FindStringSubmatch(text)
	if len(groups) != 3 {
		return ""
	}
	return groups[1] + "-" + groups[2]
}

// ParseMarketTags reads the betting market tag of every fixture on the live index page,
// only rows whose first cell holds a checkbox carry one.
func ParseMarketTags(doc *goquery.Document) map[string]string {
	tags := map[string]string{}
	doc.Find("tr[gy]").Each(func(_ int, row *goquery.Selection) {
		fid := strings.TrimSpace(row.AttrOr("fid", ""))
		if fid == "" {
			return
		}
		cells := htmlutil.Cells(row)
		if len(cells) == 0 {
			return
		}
		markup, err := goquery.OuterHtml(cells[0])
		if err != nil || !strings.Contains(markup, "checkbox") {
			return
		}
		tag := htmlutil.Text(cells[0])
		if tag != "" {
			tags[fid] = tag
		}
	})
	return tags
}
