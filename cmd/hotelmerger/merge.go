package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tienhung-ho/my-hotel-merger/internal/adapters/observability"
	"github.com/tienhung-ho/my-hotel-merger/internal/adapters/output"
	redisad "github.com/tienhung-ho/my-hotel-merger/internal/adapters/redis"
	"github.com/tienhung-ho/my-hotel-merger/internal/adapters/supplier"
	"github.com/tienhung-ho/my-hotel-merger/internal/app"
	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
	"github.com/tienhung-ho/my-hotel-merger/internal/shared"
)

var (
	outputPath   string
	outputFormat string
	fixtureDir   string
)

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the result to a file instead of stdout")
	rootCmd.Flags().StringVar(&outputFormat, "format", "json", "output format: json or csv")
	rootCmd.Flags().StringVar(&fixtureDir, "fixtures", "", "read supplier payloads from <dir>/<supplier>.json instead of HTTP")
}

func runMerge(cmd *cobra.Command, args []string) error {
	// Usage help is for argument mistakes, not runtime failures.
	cmd.SilenceUsage = true

	cfg := shared.Load(viper.GetViper())
	if fixtureDir != "" {
		cfg.FixtureDir = fixtureDir
	}

	// Merged output goes to stdout, so logs go to stderr.
	setLogLevel()
	log.Logger = observability.NewLogger(cfg.AppEnv, os.Stderr)

	var sink func(io.Writer) domain.Sink
	switch outputFormat {
	case "json":
		sink = func(w io.Writer) domain.Sink { return output.NewJSONSink(w) }
	case "csv":
		sink = func(w io.Writer) domain.Sink { return output.NewCSVSink(w) }
	default:
		return fmt.Errorf("unknown format %q, want json or csv", outputFormat)
	}

	svc := app.NewMergeService(buildSources(cfg), app.NewNormalizer(), cfg.FetchWorkers)

	merged, stats, err := svc.Run(cmd.Context(), app.ParseIDFilter(args[0]), app.ParseIDFilter(args[1]))
	if err != nil {
		return err
	}

	w := io.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := sink(w).Write(merged); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info().
		Int("suppliers", stats.Suppliers).
		Int("failed", stats.Failed).
		Int("raw", stats.RawRecords).
		Int("skipped", stats.Skipped).
		Int("hotels", len(merged)).
		Msg("merge completed")
	return nil
}

// buildSources assembles the supplier pipeline inputs: fixture files when a
// fixture dir is set, otherwise HTTP sources with an optional Redis cache.
func buildSources(cfg shared.Config) []domain.SupplierSource {
	names := cfg.Suppliers
	if len(names) == 0 {
		names = supplier.DefaultSuppliers
	}

	if cfg.FixtureDir != "" {
		return supplier.FixtureSources(cfg.FixtureDir, names)
	}

	client := supplier.New(cfg.SupplierBase, cfg.SupplierKey, cfg.SupplierRPS)
	sources := supplier.HTTPSources(client, names)
	if cfg.RedisAddr != "" {
		cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		sources = supplier.WithCache(sources, cache, cfg.CacheTTL)
	}
	return sources
}

func setLogLevel() {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
