package fivehundred

import (
	"matchdata-backend/internal/components/telemetry"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseHeadToHead(t *testing.T) {
	tel := telemetry.NewMemoryAPI()
	h2h, ok := ParseHeadToHead(document(t, matchDataPage), tel)
	require.True(t, ok)

	expected := HeadToHead{
		Title: "交战历史",
		Stats: "曼城 3胜1平1负",
		Matches: []HistoryRecord{
			{
				Event:          "英超",
				Date:           "2024-03-10",
				MatchInfo:      Matchup{HomeTeam: "曼城", Score: "1:1", AwayTeam: "利物浦"},
				HalfScore:      "0:1",
				Result:         "平",
				Oupei:          "2.10 3.40 3.30",
				Yapan:          "0.90 半球 0.96",
				HandicapResult: "输",
				SizeResult:     "小",
				Note:           "note",
			},
			{
				Event:     "足总杯",
				Date:      "2023-11-25",
				MatchInfo: Matchup{HomeTeam: "利物浦", Score: "VS", AwayTeam: "曼城"},
			},
		},
	}
	if diff := cmp.Diff(expected, h2h); diff != "" {
		t.Fatalf("head to head mismatch (-want +got):\n%s", diff)
	}

	// only the blank row is reported, the hidden one is dropped silently
	require.Len(t, tel.Reports(telemetry.LevelWarning), 1)
}

func TestParseHeadToHeadMissing(t *testing.T) {
	tel := telemetry.NewMemoryAPI()
	h2h, ok := ParseHeadToHead(document(t, "<html><body></body></html>"), tel)
	require.False(t, ok)
	require.NotNil(t, h2h.Matches)
	require.Empty(t, h2h.Matches)
	require.True(t, tel.Has(telemetry.LevelWarning, report_scraper_head_to_head))

	// a section without any table
	_, ok = ParseHeadToHead(document(t, `<div class="M_box"><h4>历史交锋</h4></div>`), tel)
	require.False(t, ok)
}

func TestParseRecentForm(t *testing.T) {
	forms, ok := ParseRecentForm(document(t, matchDataPage), telemetry.NewMemoryAPI())
	require.True(t, ok)

	expected := []TeamForm{
		{
			Name:  "曼城",
			Stats: "近10场 7胜2平1负 胜率70%",
			Matches: []FormRecord{
				{
					Event:          "英超",
					Date:           "2024-10-05",
					MatchInfo:      Matchup{HomeTeam: "富勒姆", Score: "2:3", AwayTeam: "曼城"},
					Handicap:       "受一球",
					HalfScore:      "1:1",
					Result:         "胜",
					HandicapResult: "赢",
					SizeResult:     "大",
				},
			},
		},
		{
			Name:  "利物浦",
			Stats: "近10场 8胜1平1负",
			Matches: []FormRecord{
				{
					Event:     "欧冠",
					Date:      "2024-10-02",
					MatchInfo: Matchup{HomeTeam: "博洛尼亚", Score: "-", AwayTeam: "利物浦"},
				},
			},
		},
	}
	if diff := cmp.Diff(expected, forms); diff != "" {
		t.Fatalf("recent form mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecentFormMissing(t *testing.T) {
	tel := telemetry.NewMemoryAPI()
	forms, ok := ParseRecentForm(document(t, "<html><body></body></html>"), tel)
	require.False(t, ok)
	require.NotNil(t, forms)
	require.Empty(t, forms)
	require.True(t, tel.Has(telemetry.LevelWarning, report_scraper_recent_form))
}

func TestParseHomeAwayForm(t *testing.T) {
	forms := ParseHomeAwayForm(document(t, matchDataPage), telemetry.NewMemoryAPI())

	expected := []HomeAwayForm{
		{
			Type:        SideHome,
			Name:        "曼城",
			CurrentType: VenueHome,
			Stats:       "近5场 3胜1平1负",
			Matches: []FormRecord{
				{
					Event:          "英超",
					Date:           "2024-09-28",
					MatchInfo:      Matchup{HomeTeam: "曼城", Score: "1:1", AwayTeam: "纽卡斯尔"},
					Handicap:       "一球",
					HalfScore:      "1:0",
					Result:         "平",
					HandicapResult: "输",
					SizeResult:     "小",
				},
			},
		},
		{
			Type:        SideAway,
			Name:        "利物浦",
			CurrentType: VenueHome,
			Stats:       "",
			Matches:     []FormRecord{},
		},
	}
	if diff := cmp.Diff(expected, forms); diff != "" {
		t.Fatalf("home/away form mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHomeAwayFormDefaults(t *testing.T) {
	page := `<html><body>
	<div id="team_zhanji2_0">
		<strong class="team_name">利物浦</strong>
		<table class="pub_table">
			<tr><th>赛事</th></tr>
			<tr><td colspan="8"><p class="record_msg">近10场 6胜2平2负</p></td></tr>
		</table>
	</div>
	</body></html>`

	tel := telemetry.NewMemoryAPI()
	forms := ParseHomeAwayForm(document(t, page), tel)
	require.Len(t, forms, 1)
	require.Equal(t, SideAway, forms[0].Type)
	require.Equal(t, VenueAway, forms[0].CurrentType)
	require.Equal(t, "近10场 6胜2平2负", forms[0].Stats)
	require.Empty(t, forms[0].Matches)
	require.True(t, tel.Has(telemetry.LevelWarning, report_scraper_home_away_form))
}

func TestBottomStats(t *testing.T) {
	testCases := []struct {
		inner    string
		expected string
	}{
		{inner: `<div class="bottom_info"><p>近6场 4胜1平1负</p></div>`, expected: "近6场 4胜1平1负"},
		{inner: `<div class="bottom_info"><p>近期无数据</p></div>`, expected: ""},
		{inner: `<div class="bottom_info"><p>3胜1平</p></div>`, expected: ""},
		{inner: ``, expected: ""},
	}
	for _, test := range testCases {
		container := document(t, "<div id=\"c\">"+test.inner+"</div>").Find("#c")
		require.Equal(t, test.expected, bottomStats(container), "inner %q", test.inner)
	}
}
