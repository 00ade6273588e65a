package cmd

import (
	"context"
	"fmt"

	"github.com/kasuboski/cineprime/config"
	"github.com/kasuboski/cineprime/pkg/catalog"
	mhttp "github.com/kasuboski/cineprime/pkg/http"
	"github.com/kasuboski/cineprime/pkg/logger"
	"github.com/kasuboski/cineprime/pkg/metadata"
	"github.com/kasuboski/cineprime/pkg/metrics"
	"github.com/kasuboski/cineprime/pkg/storage"
	"github.com/kasuboski/cineprime/pkg/storage/mongo"
	"github.com/kasuboski/cineprime/pkg/storage/sqlite"
	"github.com/kasuboski/cineprime/pkg/tmdb"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func loadConfig() config.Config {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		logger.Get().Fatal("failed to read configurations", zap.Error(err))
	}
	return cfg
}

// openStorage connects to the configured driver and applies its schema
func openStorage(ctx context.Context, cfg config.Storage) (storage.Storage, error) {
	var (
		store storage.Storage
		err   error
	)

	switch cfg.Driver {
	case config.DriverSQLite, "":
		store, err = sqlite.New(ctx, cfg.FilePath)
	case config.DriverMongo:
		store, err = mongo.New(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create storage connection: %w", err)
	}

	if err := store.Init(ctx); err != nil {
		store.Close(ctx)
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	return store, nil
}

func newCatalog(store storage.Storage, cfg config.Config, m *metrics.Metrics) *catalog.Catalog {
	return catalog.New(store,
		catalog.WithResolveByNumber(cfg.Download.ResolveByNumber),
		catalog.WithMetrics(m),
	)
}

// newLookup builds the metadata lookup. Without an API key every lookup reports that it is not configured.
func newLookup(cfg config.Config) (*metadata.Lookup, error) {
	lists := metadata.NewMemoryCache(cfg.Metadata.ListTTL)
	if cfg.Metadata.RedisAddr != "" {
		lists = metadata.NewRedisCache(redis.NewClient(&redis.Options{Addr: cfg.Metadata.RedisAddr}), cfg.Metadata.ListTTL)
	}

	if cfg.TMDB.APIKey == "" {
		return metadata.New(nil, lists), nil
	}

	httpClient := mhttp.NewRateLimitedHTTPClient(
		mhttp.WithMaxAttempts(cfg.TMDB.MaxRetries),
		mhttp.WithBaseBackoff(cfg.TMDB.BaseBackoff),
	)

	client, err := tmdb.NewClient(cfg.TMDB.Server,
		tmdb.WithHTTPClient(httpClient),
		tmdb.WithRequestEditorFn(tmdb.SetRequestAPIKey(cfg.TMDB.APIKey)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tmdb client: %w", err)
	}

	return metadata.New(client, lists), nil
}
