package fivehundred

import (
	"matchdata-backend/internal/components/telemetry"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseStandings(t *testing.T) {
	tel := telemetry.NewMemoryAPI()
	standings := ParseStandings(document(t, leaguePage), tel)

	expected := Standings{
		Title: "2024/25英超积分榜",
		Teams: []StandingsEntry{
			{Rank: "1", Name: "利物浦", Matches: "8", Wins: "7", Draws: "0", Losses: "1", Points: "21"},
			{Rank: "2", Name: "曼城", Matches: "8", Wins: "5", Draws: "3", Losses: "0", Points: "18"},
		},
	}
	if diff := cmp.Diff(expected, standings); diff != "" {
		t.Fatalf("standings mismatch (-want +got):\n%s", diff)
	}
	require.Empty(t, tel.Reports(telemetry.LevelWarning))
}

func TestParseStandingsMissingTable(t *testing.T) {
	tel := telemetry.NewMemoryAPI()
	standings := ParseStandings(document(t, `<h2 class="league_title">英超积分榜</h2>`), tel)
	require.Equal(t, emptyStandings(), standings)
	require.Equal(t, "联赛积分榜", standings.Title)
	require.True(t, tel.Has(telemetry.LevelWarning, report_scraper_standings))
}

func TestStandingsFindTeam(t *testing.T) {
	standings := Standings{Teams: []StandingsEntry{
		{Rank: "1", Name: "Liverpool"},
		{Rank: "2", Name: "Manchester City"},
		{Rank: "3", Name: "利物浦"},
	}}

	testCases := []struct {
		name     string
		expected string
		found    bool
	}{
		{name: "Liverpool", expected: "1", found: true},
		{name: "liverpool[1]", expected: "1", found: true},
		{name: "Manchester Citty", expected: "2", found: true},
		{name: "利物浦[4]", expected: "3", found: true},
		{name: "Everton", found: false},
	}
	for _, test := range testCases {
		entry, ok := standings.FindTeam(test.name)
		require.Equal(t, test.found, ok, "name %q", test.name)
		require.Equal(t, test.expected, entry.Rank, "name %q", test.name)
	}

	_, ok := Standings{}.FindTeam("Liverpool")
	require.False(t, ok)
}

func TestParseLeagueAverage(t *testing.T) {
	average := ParseLeagueAverage(document(t, leaguePage), telemetry.NewMemoryAPI())
	require.Equal(t, LeagueAverage{HomeGoals: "1.62", AwayGoals: "1.3"}, average)

	tel := telemetry.NewMemoryAPI()
	require.Equal(t, defaultLeagueAverage(), ParseLeagueAverage(document(t, "<p></p>"), tel))
	require.True(t, tel.Has(telemetry.LevelWarning, report_scraper_league_average))

	partial := `<table class="lchart"><tr><td></td></tr><tr><td></td><td>主队场均进球 2.1</td></tr></table>`
	require.Equal(t,
		LeagueAverage{HomeGoals: "2.1", AwayGoals: "0"},
		ParseLeagueAverage(document(t, partial), telemetry.NewMemoryAPI()),
	)
}
