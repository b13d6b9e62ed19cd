package commands

import (
	"io"
	"matchdata-backend/internal/scrapers/fivehundred"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var matchesDate *string

func init() {
	matchesDate = matchesCmd.Flags().String("date", "", "Day to list (2006-01-02), the live listing when empty.")
	rootCmd.AddCommand(matchesCmd)
}

func renderMatches(out io.Writer, title string, matches []fivehundred.MatchSummary) {
	t := newTable(out, title)
	t.AppendHeader(table.Row{"fid", "league", "round", "time", "status", "home", "score", "away", "half", "market"})
	for _, m := range matches {
		score := ""
		if m.HomeScore != "" || m.AwayScore != "" {
			score = m.HomeScore + "-" + m.AwayScore
		}
		t.AppendRow(table.Row{
			m.Fid, m.League, m.Round, m.MatchTime, m.StatusText,
			m.HomeTeam, score, m.AwayTeam, m.HalfScore, m.JcMark,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", "", "", "total", len(matches)})
	t.Render()
}

var matchesCmd = &cobra.Command{
	Use:   "matches [--date <yyyy-mm-dd>]",
	Short: "Lists the fixtures of a day, or the live listing.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := current.scraper.MatchList(cmd.Context(), *matchesDate)
		return finish(err, matches, func(out io.Writer) {
			title := "live"
			if *matchesDate != "" {
				title = *matchesDate
			}
			renderMatches(out, title, matches)
		})
	},
}
