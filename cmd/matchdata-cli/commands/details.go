package commands

import (
	"io"
	"matchdata-backend/internal/scrapers/fivehundred"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detailsCmd)
}

func renderLineup(out io.Writer, title string, players []fivehundred.Player) {
	t := newTable(out, title)
	t.AppendHeader(table.Row{"#", "name", "position"})
	for _, p := range players {
		t.AppendRow(table.Row{p.Number, p.Name, p.Position})
	}
	t.Render()
}

var detailsCmd = &cobra.Command{
	Use:   "details <fid>",
	Short: "Shows lineups, timeline events and technical statistics of a fixture.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		details, err := current.scraper.MatchDetails(cmd.Context(), args[0])
		return finish(err, details, func(out io.Writer) {
			renderLineup(out, "home starting lineup", details.HomeTeam.StartingLineup)
			renderLineup(out, "home substitutes", details.HomeTeam.Substitutes)
			renderLineup(out, "away starting lineup", details.AwayTeam.StartingLineup)
			renderLineup(out, "away substitutes", details.AwayTeam.Substitutes)

			events := newTable(out, "events")
			events.AppendHeader(table.Row{"home", "time", "away"})
			for _, e := range details.MatchEvents {
				events.AppendRow(table.Row{e.HomeEvent, e.Time, e.AwayEvent})
			}
			events.Render()

			stats := newTable(out, "technical statistics")
			stats.AppendHeader(table.Row{"home", "stat", "away"})
			for _, s := range details.TechStats {
				stats.AppendRow(table.Row{s.HomeValue, s.Label, s.AwayValue})
			}
			stats.Render()
		})
	},
}
