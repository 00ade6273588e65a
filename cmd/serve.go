package cmd

import (
	"context"

	"github.com/kasuboski/cineprime/pkg/logger"
	"github.com/kasuboski/cineprime/pkg/metrics"
	"github.com/kasuboski/cineprime/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the catalog server",
	Long:  `start the catalog server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg := loadConfig()

		store, err := openStorage(ctx, cfg.Storage)
		if err != nil {
			log.Fatal("failed to open storage", zap.Error(err))
		}
		defer store.Close(ctx)

		lookup, err := newLookup(cfg)
		if err != nil {
			log.Fatal("failed to create metadata lookup", zap.Error(err))
		}
		if !lookup.Configured() {
			log.Warn("no tmdb api key configured, metadata lookups are disabled")
		}
		if cfg.Server.AdminKey == "" {
			log.Warn("no admin key configured, every write request will be rejected")
		}

		m := metrics.NewDefault()
		srv := server.New(log, newCatalog(store, cfg, m), lookup, cfg.Server, server.WithMetrics(m))
		log.Error(srv.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
