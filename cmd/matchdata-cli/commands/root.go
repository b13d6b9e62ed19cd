package commands

import (
	"context"
	"fmt"
	"matchdata-backend/internal/components/chrono"
	"matchdata-backend/internal/components/telemetry"
	"matchdata-backend/internal/fetch"
	"matchdata-backend/internal/scrapers/fivehundred"
	"matchdata-backend/lib/configutil"
	libtelemetry "matchdata-backend/lib/telemetry"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const serviceName = "matchdata-cli"

var (
	jsonOutput *bool
	verbose    *bool
	configPath *string
	dumpDir    *string
)

// app is everything a subcommand needs, it is built before any subcommand runs.
type app struct {
	cfg     fivehundred.Config
	clock   chrono.API
	tel     telemetry.API
	fetcher *fetch.Fetcher
	scraper *fivehundred.Scraper
	otel    libtelemetry.Telemetry
}

var current *app

var rootCmd = &cobra.Command{
	Use:           "matchdata-cli",
	Short:         "matchdata-cli scrapes fixtures, odds and statistics from 500.com.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(*verbose)

		cfg, err := configutil.Load(*configPath, fivehundred.DefaultConfig())
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if *dumpDir != "" {
			cfg.Fetch.DumpDir = *dumpDir
		}

		otel, err := libtelemetry.SetupFromEnv(cmd.Context(), serviceName)
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}

		clock, err := chrono.NewStandardImpl()
		if err != nil {
			return fmt.Errorf("load timezone: %w", err)
		}

		tel := telemetry.SlogAPI{}
		fetcher := fetch.New(cfg.Fetch, tel)
		current = &app{
			cfg:     cfg,
			clock:   clock,
			tel:     tel,
			fetcher: fetcher,
			scraper: fivehundred.NewScraper(fetcher, cfg, clock, tel),
			otel:    otel,
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current == nil {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return current.otel.Shutdown(ctx)
	},
}

func init() {
	jsonOutput = rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON instead of tables.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
	configPath = rootCmd.PersistentFlags().String("config", "matchdata.json5", "Config file, searched for upwards from the working directory when given without a directory.")
	dumpDir = rootCmd.PersistentFlags().String("dump", "", "Write every http exchange to a file in this directory.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
