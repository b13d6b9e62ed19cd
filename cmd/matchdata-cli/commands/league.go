package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var standingsTeam *string

func init() {
	standingsTeam = standingsCmd.Flags().String("team", "", "Only show the entry closest to this team name.")
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(leagueAverageCmd)
}

var standingsCmd = &cobra.Command{
	Use:   "standings <sid> [--team <name>]",
	Short: "Shows the league table of a season.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		standings, err := current.scraper.Standings(cmd.Context(), args[0])
		if err == nil && *standingsTeam != "" {
			entry, ok := standings.FindTeam(*standingsTeam)
			if !ok {
				return fmt.Errorf("no team like %q in %s", *standingsTeam, standings.Title)
			}
			standings.Teams = append(standings.Teams[:0], entry)
		}
		return finish(err, standings, func(out io.Writer) {
			t := newTable(out, standings.Title)
			t.AppendHeader(table.Row{"#", "team", "played", "w", "d", "l", "points"})
			for _, e := range standings.Teams {
				t.AppendRow(table.Row{e.Rank, e.Name, e.Matches, e.Wins, e.Draws, e.Losses, e.Points})
			}
			t.Render()
		})
	},
}

var leagueAverageCmd = &cobra.Command{
	Use:   "league-average <sid>",
	Short: "Shows the average goals per match of home and away teams in a season.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		average, err := current.scraper.LeagueAverage(cmd.Context(), args[0])
		return finish(err, average, func(out io.Writer) {
			t := newTable(out, "league average")
			t.AppendHeader(table.Row{"home goals", "away goals"})
			t.AppendRow(table.Row{average.HomeGoals, average.AwayGoals})
			t.Render()
		})
	},
}
