package commands

import (
	"io"
	"matchdata-backend/internal/scrapers/fivehundred"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var oddsMarket *string

func init() {
	oddsMarket = oddsCmd.Flags().String("market", "all", "One of european, asian, overunder or all.")
	rootCmd.AddCommand(oddsCmd)
}

func renderOdds(out io.Writer, title string, odds fivehundred.OddsTable) {
	t := newTable(out, title)
	t.AppendHeader(table.Row{"bookmaker", "initial", "instant"})
	for _, bookmaker := range sortedKeys(odds) {
		line := odds[bookmaker]
		t.AppendRow(table.Row{bookmaker, joinValues(line.Initial), joinValues(line.Instant)})
	}
	t.Render()
}

var oddsCmd = &cobra.Command{
	Use:   "odds <fid> [--market <market>]",
	Short: "Shows the odds of a fixture.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if *oddsMarket == "all" {
			bundle, err := current.scraper.AllOdds(cmd.Context(), id)
			return finish(err, bundle, func(out io.Writer) {
				renderOdds(out, bundle.Name+" european", bundle.Oupei)
				renderOdds(out, bundle.Name+" asian handicap", bundle.Yapan)
				renderOdds(out, bundle.Name+" over/under", bundle.Daxiao)
			})
		}

		market, err := fivehundred.ParseMarket(*oddsMarket)
		if err != nil {
			return err
		}
		odds, err := current.scraper.Odds(cmd.Context(), market, id)
		return finish(err, odds, func(out io.Writer) {
			renderOdds(out, market.String(), odds)
		})
	},
}
