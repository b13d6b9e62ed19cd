package fivehundred

import (
	"fmt"
	"matchdata-backend/internal/components/telemetry"
	"matchdata-backend/lib/htmlutil"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

type Market int

const (
	MarketEuropean Market = iota
	MarketAsianHandicap
	MarketOverUnder
)

func (m Market) String() string {
	switch m {
	case MarketEuropean:
		return "european"
	case MarketAsianHandicap:
		return "asian"
	case MarketOverUnder:
		return "overunder"
	}
	return fmt.Sprintf("market(%d)", int(m))
}

// ParseMarket is the inverse of Market.String.
func ParseMarket(name string) (Market, error) {
	for _, m := range []Market{MarketEuropean, MarketAsianHandicap, MarketOverUnder} {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown market %q", name)
}

// marker is a phrase every genuine odds page of the market contains.
func (m Market) marker() string {
	switch m {
	case MarketEuropean:
		return "百家欧赔"
	case MarketAsianHandicap:
		return "亚盘对比"
	case MarketOverUnder:
		return "大小指数"
	}
	return ""
}

func (m Market) template(urls URLs) string {
	switch m {
	case MarketAsianHandicap:
		return urls.AsianHandicap
	case MarketOverUnder:
		return urls.OverUnder
	}
	return urls.European
}

var bookmakerRowId = regexp.MustCompile(`^\d+$`)

// ParseOdds reads the odds table of a market page, malformed bookmaker rows are skipped.
func ParseOdds(doc *goquery.Document, market Market, tel telemetry.API) OddsTable {
	parseRow := parseLineRow
	if market == MarketEuropean {
		parseRow = parseEuropeanRow
	}

	table := OddsTable{}
	results := []rowResult[bookmakerOdds]{}
	doc.Find("table#datatb").First().Find("tr[id]").Each(func(_ int, row *goquery.Selection) {
		if !bookmakerRowId.MatchString(row.AttrOr("id", "")) {
			return
		}
		results = append(results, guardRow(func() (bookmakerOdds, string) {
			return parseRow(row)
		}))
	})
	for _, odds := range collectRows(tel, report_scraper_odds, results) {
		table[odds.bookmaker] = odds.line
	}
	return table
}

func ParseEuropean(doc *goquery.Document, tel telemetry.API) OddsTable {
	return ParseOdds(doc, MarketEuropean, tel)
}

func ParseAsianHandicap(doc *goquery.Document, tel telemetry.API) OddsTable {
	return ParseOdds(doc, MarketAsianHandicap, tel)
}

func ParseOverUnder(doc *goquery.Document, tel telemetry.API) OddsTable {
	return ParseOdds(doc, MarketOverUnder, tel)
}

type bookmakerOdds struct {
	bookmaker string
	line      OddsLine
}

// parseEuropeanRow reads the bookmaker from the title of its label cell and
// the initial and instant triples from the two rows of the nested odds table.
func parseEuropeanRow(row *goquery.Selection) (bookmakerOdds, string) {
	label := row.Find("td.tb_plgs[title]").First()
	if label.Length() == 0 {
		return bookmakerOdds{}, "missing bookmaker label"
	}
	rows := htmlutil.Rows(row.Find("table.pl_table_data").First())
	if len(rows) != 2 {
		return bookmakerOdds{}, fmt.Sprintf("expected 2 odds rows, got %d", len(rows))
	}
	initial := cellTexts(rows[0])
	instant := cellTexts(rows[1])
	if len(initial) != 3 || len(instant) != 3 {
		return bookmakerOdds{}, fmt.Sprintf("expected 3 odds values, got %d and %d", len(initial), len(instant))
	}
	return bookmakerOdds{
		bookmaker: label.AttrOr("title", ""),
		line:      OddsLine{Initial: initial, Instant: instant},
	}, ""
}

// parseLineRow reads a six cell handicap or over/under row, the instant triple sits
// in the third cell and the initial one in the fifth.
func parseLineRow(row *goquery.Selection) (bookmakerOdds, string) {
	cells := htmlutil.Cells(row)
	if len(cells) < 6 {
		return bookmakerOdds{}, fmt.Sprintf("expected 6 cells, got %d", len(cells))
	}
	link := cells[1].Find("a[title]").First()
	if link.Length() == 0 {
		return bookmakerOdds{}, "missing bookmaker link"
	}
	instant := triple(cells[2].Find("table").First())
	initial := triple(cells[4].Find("table").First())
	if len(instant) != 3 || len(initial) != 3 {
		return bookmakerOdds{}, "incomplete odds triple"
	}
	return bookmakerOdds{
		bookmaker: link.AttrOr("title", ""),
		line:      OddsLine{Initial: initial, Instant: instant},
	}, ""
}

// cellTexts returns the texts of every cell under sel.
func cellTexts(sel *goquery.Selection) []string {
	values := []string{}
	sel.Find("td").Each(func(_ int, td *goquery.Selection) {
		values = append(values, htmlutil.Text(td))
	})
	return values
}

// triple returns the texts of the first three cells under sel.
func triple(sel *goquery.Selection) []string {
	values := []string{}
	sel.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		values = append(values, htmlutil.Text(td))
		return len(values) < 3
	})
	return values
}
