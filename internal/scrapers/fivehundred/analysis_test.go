package fivehundred

import (
	"matchdata-backend/internal/components/telemetry"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseMatchName(t *testing.T) {
	require.Equal(t, "英超第轮曼城利物浦", ParseMatchName(document(t, matchDataPage)))
	require.Equal(t, "", ParseMatchName(document(t, "<html><body></body></html>")))
}

func TestParseAverageData(t *testing.T) {
	tel := telemetry.NewMemoryAPI()
	data, ok := ParseAverageData(document(t, matchDataPage), tel)
	require.True(t, ok)

	expected := AverageData{
		HomeTeam: TeamAverageData{
			Name: "曼城",
			Average: TeamAverage{
				Goals:    GoalSplit{Total: "2.4", Home: "2.8", Away: "2.0"},
				Conceded: GoalSplit{Total: "0.9", Home: "0.6", Away: "1.2"},
			},
			PieData: &PieData{Sum: "10", Total: "10", Win: "7", Draw: "2", Lose: "1", GoalsFor: "24", GoalsAgainst: "9"},
		},
		AwayTeam: TeamAverageData{
			Name: "利物浦",
			Average: TeamAverage{
				Goals:    GoalSplit{Total: "2.1", Home: "2.5", Away: "1.7"},
				Conceded: GoalSplit{Total: "1.0", Home: "0.8", Away: "1.2"},
			},
			PieData: &PieData{Sum: "10", Total: "10", Win: "8", Draw: "1", Lose: "1", GoalsFor: "0", GoalsAgainst: "0"},
		},
	}
	if diff := cmp.Diff(expected, data); diff != "" {
		t.Fatalf("average data mismatch (-want +got):\n%s", diff)
	}
	require.Empty(t, tel.Reports(telemetry.LevelWarning))
}

func TestParseAverageDataMissing(t *testing.T) {
	testCases := []struct {
		name string
		page string
	}{
		{name: "no section", page: `<html><body><div class="M_box"><h4>近期战绩</h4></div></body></html>`},
		{
			name: "one team name",
			page: `<div class="M_box"><h4>平均数据</h4><div class="M_sub_title"><span class="team_name">A</span></div></div>`,
		},
		{
			name: "malformed table",
			page: `<div class="M_box"><h4>平均数据</h4>
				<div class="M_sub_title"><span class="team_name">A</span><span class="team_name">B</span></div>
				<table class="pub_table"><tr><td>x</td></tr></table>
				<table class="pub_table"><tr><td>x</td></tr></table></div>`,
		},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			tel := telemetry.NewMemoryAPI()
			_, ok := ParseAverageData(document(t, test.page), tel)
			require.False(t, ok)
			require.True(t, tel.Has(telemetry.LevelWarning, report_scraper_average_data))
		})
	}
}

func TestParsePieData(t *testing.T) {
	_, ok := parsePieData(`sum=3; total=3; num1=1;`)
	require.False(t, ok)

	pie, ok := parsePieData(`sum = '5' total = "6" num1=2 num2=2 num3=1 title1='入：11'`)
	require.True(t, ok)
	require.Equal(t, PieData{Sum: "5", Total: "6", Win: "2", Draw: "2", Lose: "1", GoalsFor: "11", GoalsAgainst: "0"}, pie)
}
