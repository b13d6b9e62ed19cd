package fivehundred

import (
	"context"
	"fmt"
	"matchdata-backend/internal/components/assert"
	"matchdata-backend/internal/components/chrono"
	"matchdata-backend/internal/components/telemetry"
	"matchdata-backend/internal/fetch"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("internal/scrapers/fivehundred")

const (
	report_scraper_match_list     = "scraper.match_list"
	report_scraper_market_tags    = "scraper.market_tags"
	report_scraper_match_details  = "scraper.match_details"
	report_scraper_odds           = "scraper.odds"
	report_scraper_match_name     = "scraper.match_name"
	report_scraper_average_data   = "scraper.average_data"
	report_scraper_head_to_head   = "scraper.head_to_head"
	report_scraper_recent_form    = "scraper.recent_form"
	report_scraper_home_away_form = "scraper.home_away_form"
	report_scraper_standings      = "scraper.standings"
	report_scraper_league_average = "scraper.league_average"
	report_scraper_parse          = "scraper.parse"
)

// Fetcher is the part of fetch.Fetcher the scraper depends on.
type Fetcher interface {
	Get(ctx context.Context, link string, headers map[string]string) (fetch.Result, error)
}

// Scraper fetches pages of the site and turns them into records. Every method returns a
// usable default record alongside a non nil error only when the page could not be fetched.
type Scraper struct {
	fetcher Fetcher
	cfg     Config
	clock   chrono.API
	tel     telemetry.API
}

func NewScraper(fetcher Fetcher, cfg Config, clock chrono.API, tel telemetry.API) *Scraper {
	assert.NotNil(fetcher)
	assert.NotNil(clock)
	assert.NotNil(tel)

	return &Scraper{
		fetcher: fetcher,
		cfg:     cfg.withDefaults(),
		clock:   clock,
		tel:     telemetry.NewScopedAPI("fivehundred_scraper", tel),
	}
}

// page fetches a url and parses it into a document.
func (s *Scraper) page(ctx context.Context, link string, headers map[string]string) (*goquery.Document, string, error) {
	ctx, span := tracer.Start(ctx, "scraper:page")
	defer span.End()
	span.SetAttributes(attribute.String("url", link))

	res, err := s.fetcher.Get(ctx, link, headers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch page")
		return nil, "", err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, "", fmt.Errorf("parse %s: %w", link, err)
	}
	return doc, res.Body, nil
}

// parseSafely runs a parser and returns fallback if it panics.
func parseSafely[T any](s *Scraper, id string, fallback T, parse func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			s.tel.ReportBroken(report_scraper_parse, id, fmt.Errorf("parser panicked: %v", r))
			out = fallback
		}
	}()
	return parse()
}

// MarketTags maps fixture ids to their betting market tag, taken from the live index page.
func (s *Scraper) MarketTags(ctx context.Context) (map[string]string, error) {
	doc, _, err := s.page(ctx, s.cfg.URLs.MarketIndex, nil)
	if err != nil {
		return map[string]string{}, err
	}
	return parseSafely(s, report_scraper_market_tags, map[string]string{}, func() map[string]string {
		return ParseMarketTags(doc)
	}), nil
}

// MatchList returns the live listing when date is empty, otherwise the listing of the
// given day ("2006-01-02").
func (s *Scraper) MatchList(ctx context.Context, date string) ([]MatchSummary, error) {
	ctx, span := tracer.Start(ctx, "scraper:MatchList")
	defer span.End()

	variant, err := ResolveVariant(date, chrono.Today(s.clock))
	if err != nil {
		s.tel.ReportWarning(report_scraper_match_list, err)
	}
	span.SetAttributes(attribute.String("variant", variant.String()))

	tags, err := s.MarketTags(ctx)
	if err != nil {
		s.tel.ReportWarning(report_scraper_market_tags, err)
	}

	link := s.cfg.URLs.Live
	if date != "" {
		link = expand(s.cfg.URLs.Dated, "date", date)
	}
	doc, _, err := s.page(ctx, link, nil)
	if err != nil {
		return []MatchSummary{}, err
	}

	opts := ListOptions{
		Variant:    variant,
		MarketTags: tags,
		StatusText: s.cfg.StatusText,
		TeamLogo:   s.cfg.URLs.TeamLogo,
	}
	return parseSafely(s, report_scraper_match_list, []MatchSummary{}, func() []MatchSummary {
		return ParseMatchList(doc, opts, s.tel)
	}), nil
}

func (s *Scraper) MatchDetails(ctx context.Context, fid string) (MatchDetails, error) {
	doc, _, err := s.page(ctx, expand(s.cfg.URLs.Detail, "id", fid), nil)
	if err != nil {
		return emptyDetails(), err
	}
	return parseSafely(s, report_scraper_match_details, emptyDetails(), func() MatchDetails {
		return ParseMatchDetails(doc, s.tel)
	}), nil
}

func (s *Scraper) MatchEvents(ctx context.Context, fid string) ([]MatchEvent, error) {
	details, err := s.MatchDetails(ctx, fid)
	return details.MatchEvents, err
}

func (s *Scraper) Players(ctx context.Context, fid string) (Players, error) {
	details, err := s.MatchDetails(ctx, fid)
	return details.Players(), err
}

func (s *Scraper) TechStats(ctx context.Context, fid string) ([]TechStat, error) {
	details, err := s.MatchDetails(ctx, fid)
	return details.TechStats, err
}

// Odds fetches the odds page of a market. A page without the market marker phrase
// is a soft miss and yields an empty table.
func (s *Scraper) Odds(ctx context.Context, market Market, id string) (OddsTable, error) {
	ctx, span := tracer.Start(ctx, "scraper:Odds")
	defer span.End()
	span.SetAttributes(attribute.String("market", market.String()))

	headers := map[string]string{
		"Referer": expand(s.cfg.URLs.MatchData, "id", id),
	}
	doc, body, err := s.page(ctx, expand(market.template(s.cfg.URLs), "id", id), headers)
	if err != nil {
		return OddsTable{}, err
	}
	if !strings.Contains(body, market.marker()) {
		s.tel.ReportWarning(report_scraper_odds, "marker phrase missing", market.String(), id)
		return OddsTable{}, nil
	}
	return parseSafely(s, report_scraper_odds, OddsTable{}, func() OddsTable {
		return ParseOdds(doc, market, s.tel)
	}), nil
}

func (s *Scraper) European(ctx context.Context, id string) (OddsTable, error) {
	return s.Odds(ctx, MarketEuropean, id)
}

func (s *Scraper) AsianHandicap(ctx context.Context, id string) (OddsTable, error) {
	return s.Odds(ctx, MarketAsianHandicap, id)
}

func (s *Scraper) OverUnder(ctx context.Context, id string) (OddsTable, error) {
	return s.Odds(ctx, MarketOverUnder, id)
}

// AllOdds fetches the match name and the three markets concurrently. Parts that could
// not be fetched stay empty and the first fetch error is returned.
func (s *Scraper) AllOdds(ctx context.Context, id string) (OddsBundle, error) {
	bundle := OddsBundle{
		Id:     id,
		Oupei:  OddsTable{},
		Yapan:  OddsTable{},
		Daxiao: OddsTable{},
	}

	var group errgroup.Group
	group.Go(func() error {
		name, err := s.MatchName(ctx, id)
		bundle.Name = name
		return err
	})
	markets := []struct {
		market Market
		out    *OddsTable
	}{
		{market: MarketEuropean, out: &bundle.Oupei},
		{market: MarketAsianHandicap, out: &bundle.Yapan},
		{market: MarketOverUnder, out: &bundle.Daxiao},
	}
	for _, m := range markets {
		group.Go(func() error {
			table, err := s.Odds(ctx, m.market, id)
			*m.out = table
			if err != nil {
				return fmt.Errorf("%s odds: %w", m.market, err)
			}
			return nil
		})
	}
	err := group.Wait()
	return bundle, err
}

func (s *Scraper) matchData(ctx context.Context, id string) (*goquery.Document, error) {
	doc, _, err := s.page(ctx, expand(s.cfg.URLs.MatchData, "id", id), nil)
	return doc, err
}

func (s *Scraper) MatchName(ctx context.Context, id string) (string, error) {
	doc, err := s.matchData(ctx, id)
	if err != nil {
		return "", err
	}
	name := parseSafely(s, report_scraper_match_name, "", func() string {
		return ParseMatchName(doc)
	})
	if name == "" {
		s.tel.ReportWarning(report_scraper_match_name, "match name not found", id)
	}
	return name, nil
}

// AverageData returns nil when the page has no usable average data section.
func (s *Scraper) AverageData(ctx context.Context, id string) (*AverageData, error) {
	doc, err := s.matchData(ctx, id)
	if err != nil {
		return nil, err
	}
	return parseSafely(s, report_scraper_average_data, (*AverageData)(nil), func() *AverageData {
		data, ok := ParseAverageData(doc, s.tel)
		if !ok {
			return nil
		}
		return &data
	}), nil
}

func (s *Scraper) HeadToHead(ctx context.Context, id string) (HeadToHead, error) {
	empty := HeadToHead{Matches: []HistoryRecord{}}
	doc, err := s.matchData(ctx, id)
	if err != nil {
		return empty, err
	}
	return parseSafely(s, report_scraper_head_to_head, empty, func() HeadToHead {
		h2h, _ := ParseHeadToHead(doc, s.tel)
		return h2h
	}), nil
}

func (s *Scraper) RecentForm(ctx context.Context, id string) ([]TeamForm, error) {
	doc, err := s.matchData(ctx, id)
	if err != nil {
		return []TeamForm{}, err
	}
	return parseSafely(s, report_scraper_recent_form, []TeamForm{}, func() []TeamForm {
		forms, _ := ParseRecentForm(doc, s.tel)
		return forms
	}), nil
}

func (s *Scraper) HomeAwayForm(ctx context.Context, id string) ([]HomeAwayForm, error) {
	doc, err := s.matchData(ctx, id)
	if err != nil {
		return []HomeAwayForm{}, err
	}
	return parseSafely(s, report_scraper_home_away_form, []HomeAwayForm{}, func() []HomeAwayForm {
		return ParseHomeAwayForm(doc, s.tel)
	}), nil
}

func (s *Scraper) Standings(ctx context.Context, sid string) (Standings, error) {
	doc, _, err := s.page(ctx, expand(s.cfg.URLs.League, "sid", sid), nil)
	if err != nil {
		return emptyStandings(), err
	}
	return parseSafely(s, report_scraper_standings, emptyStandings(), func() Standings {
		return ParseStandings(doc, s.tel)
	}), nil
}

func (s *Scraper) LeagueAverage(ctx context.Context, sid string) (LeagueAverage, error) {
	doc, _, err := s.page(ctx, expand(s.cfg.URLs.League, "sid", sid), nil)
	if err != nil {
		return defaultLeagueAverage(), err
	}
	return parseSafely(s, report_scraper_league_average, defaultLeagueAverage(), func() LeagueAverage {
		return ParseLeagueAverage(doc, s.tel)
	}), nil
}
