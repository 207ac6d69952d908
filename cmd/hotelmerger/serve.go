package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	server "github.com/tienhung-ho/my-hotel-merger/internal/adapters/http_server"
	"github.com/tienhung-ho/my-hotel-merger/internal/adapters/observability"
	"github.com/tienhung-ho/my-hotel-merger/internal/app"
	"github.com/tienhung-ho/my-hotel-merger/internal/shared"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the merged hotels HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg := shared.Load(viper.GetViper())

		// set global logger (console in dev, JSON otherwise)
		setLogLevel()
		log.Logger = observability.NewLogger(cfg.AppEnv, os.Stdout)

		// deps
		svc := app.NewMergeService(buildSources(cfg), app.NewNormalizer(), cfg.FetchWorkers)

		// http
		srv := server.New()
		reg := observability.InitRegistry()
		srv.Mount("/metrics", observability.MetricsHandler(reg))
		srv.MountHandlers(&server.Handlers{Svc: svc})

		observability.Serve(cfg.MetricsAddr)

		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
