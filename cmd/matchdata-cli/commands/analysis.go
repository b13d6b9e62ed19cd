package commands

import (
	"fmt"
	"io"
	"matchdata-backend/internal/scrapers/fivehundred"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(homeAwayCmd)
	rootCmd.AddCommand(averageCmd)
}

func matchupText(m fivehundred.Matchup) string {
	return fmt.Sprintf("%s %s %s", m.HomeTeam, m.Score, m.AwayTeam)
}

func renderForm(out io.Writer, title string, records []fivehundred.FormRecord, stats string) {
	t := newTable(out, title)
	t.AppendHeader(table.Row{"event", "date", "match", "handicap", "half", "result", "handicap result", "size"})
	for _, r := range records {
		t.AppendRow(table.Row{
			r.Event, r.Date, matchupText(r.MatchInfo), r.Handicap,
			r.HalfScore, r.Result, r.HandicapResult, r.SizeResult,
		})
	}
	if stats != "" {
		t.SetCaption(stats)
	}
	t.Render()
}

var historyCmd = &cobra.Command{
	Use:   "history <fid>",
	Short: "Shows previous meetings of the two teams of a fixture.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h2h, err := current.scraper.HeadToHead(cmd.Context(), args[0])
		return finish(err, h2h, func(out io.Writer) {
			t := newTable(out, h2h.Title)
			t.AppendHeader(table.Row{"event", "date", "match", "half", "result", "1x2", "handicap", "handicap result", "size", "note"})
			for _, r := range h2h.Matches {
				t.AppendRow(table.Row{
					r.Event, r.Date, matchupText(r.MatchInfo), r.HalfScore, r.Result,
					r.Oupei, r.Yapan, r.HandicapResult, r.SizeResult, r.Note,
				})
			}
			if h2h.Stats != "" {
				t.SetCaption(h2h.Stats)
			}
			t.Render()
		})
	},
}

var formCmd = &cobra.Command{
	Use:   "form <fid>",
	Short: "Shows the recent form of both teams of a fixture.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		forms, err := current.scraper.RecentForm(cmd.Context(), args[0])
		return finish(err, forms, func(out io.Writer) {
			for _, form := range forms {
				renderForm(out, form.Name, form.Matches, form.Stats)
			}
		})
	},
}

var homeAwayCmd = &cobra.Command{
	Use:   "home-away <fid>",
	Short: "Shows the home and away split form of both teams of a fixture.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		forms, err := current.scraper.HomeAwayForm(cmd.Context(), args[0])
		return finish(err, forms, func(out io.Writer) {
			for _, form := range forms {
				title := fmt.Sprintf("%s (%s, %s matches)", form.Name, form.Type, form.CurrentType)
				renderForm(out, title, form.Matches, form.Stats)
			}
		})
	},
}

var averageCmd = &cobra.Command{
	Use:   "average <fid>",
	Short: "Shows the average goals of both teams of a fixture.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := current.scraper.AverageData(cmd.Context(), args[0])
		return finish(err, data, func(out io.Writer) {
			if data == nil {
				fmt.Fprintln(out, "no average data")
				return
			}
			t := newTable(out, "average goals")
			t.AppendHeader(table.Row{"team", "", "total", "home", "away", "w/d/l"})
			for _, team := range []fivehundred.TeamAverageData{data.HomeTeam, data.AwayTeam} {
				record := ""
				if team.PieData != nil {
					record = fmt.Sprintf("%s/%s/%s", team.PieData.Win, team.PieData.Draw, team.PieData.Lose)
				}
				goals := team.Average.Goals
				conceded := team.Average.Conceded
				t.AppendRow(table.Row{team.Name, "scored", goals.Total, goals.Home, goals.Away, record})
				t.AppendRow(table.Row{"", "conceded", conceded.Total, conceded.Home, conceded.Away, ""})
				t.AppendSeparator()
			}
			t.Render()
		})
	},
}
