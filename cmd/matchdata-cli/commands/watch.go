package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"matchdata-backend/internal/components/chrono"
	"matchdata-backend/internal/scrapers/fivehundred"
	libtelemetry "matchdata-backend/lib/telemetry"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	watchEvery *time.Duration
	watchDate  *string
)

func init() {
	watchEvery = watchCmd.Flags().Duration("every", time.Minute, "Interval between two scrapes.")
	watchDate = watchCmd.Flags().String("date", "", "Day to watch (2006-01-02), the live listing when empty.")
	rootCmd.AddCommand(watchCmd)
}

// watchSnapshot is what one tick of watch prints.
type watchSnapshot struct {
	At       time.Time      `json:"at"`
	Matches  int            `json:"matches"`
	ByStatus map[string]int `json:"by_status"`
	Error    string         `json:"error,omitempty"`
}

func snapshot(at time.Time, matches []fivehundred.MatchSummary, err error) watchSnapshot {
	out := watchSnapshot{At: at, Matches: len(matches), ByStatus: map[string]int{}}
	for _, m := range matches {
		out.ByStatus[m.Status.String()]++
	}
	if err != nil {
		out.Error = err.Error()
	}
	return out
}

func renderSnapshot(out io.Writer, snap watchSnapshot) {
	t := newTable(out, snap.At.Format(time.DateTime))
	t.AppendHeader(table.Row{"status", "matches"})
	statuses := sortedKeys(snap.ByStatus)
	sort.SliceStable(statuses, func(i, j int) bool {
		return snap.ByStatus[statuses[i]] > snap.ByStatus[statuses[j]]
	})
	for _, status := range statuses {
		t.AppendRow(table.Row{status, snap.ByStatus[status]})
	}
	t.AppendFooter(table.Row{"total", snap.Matches})
	if snap.Error != "" {
		t.SetCaption(snap.Error)
	}
	t.Render()
}

var watchCmd = &cobra.Command{
	Use:   "watch [--every <interval>] [--date <yyyy-mm-dd>]",
	Short: "Scrapes a listing on an interval and prints a summary of every scrape.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if *watchEvery < time.Second {
			return fmt.Errorf("--every must be at least 1s, got %s", *watchEvery)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		libtelemetry.InstrumentPerfStats(ctx, 30*time.Second, current.tel)

		// ticks that fire while a scrape is still running are dropped
		var running sync.Mutex
		tick := func() {
			if !running.TryLock() {
				slog.Debug("previous scrape still running, skipping tick")
				return
			}
			defer running.Unlock()

			scrapeCtx, cancel := context.WithTimeout(ctx, *watchEvery)
			defer cancel()
			matches, err := current.scraper.MatchList(scrapeCtx, *watchDate)
			snap := snapshot(current.clock.Now(), matches, err)
			emitErr := emit(snap, func(out io.Writer) {
				renderSnapshot(out, snap)
			})
			if emitErr != nil {
				slog.Error("failed to print snapshot", "err", emitErr)
			}
		}

		cron := chrono.NewStandardCron(current.clock, current.tel)
		defer cron.Stop()
		err := cron.Cron(fmt.Sprintf("@every %s", watchEvery.String()), tick)
		if err != nil {
			return fmt.Errorf("schedule scrape: %w", err)
		}

		tick()
		<-ctx.Done()
		return nil
	},
}
