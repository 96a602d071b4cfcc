package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/surfapp/recommender/internal/domain/recommend"
	"github.com/surfapp/recommender/internal/infra/config"
	"github.com/surfapp/recommender/internal/infra/predcache"
	"github.com/surfapp/recommender/internal/infra/predictor"
	"github.com/surfapp/recommender/internal/infra/sessionrepo"
	"github.com/surfapp/recommender/internal/infra/spotcatalog"
)

func providePredictor(cfg *config.Config, logger *slog.Logger) recommend.Predictor {
	return predictor.NewClient(predictor.Config{
		Command: cfg.Predictor.Command,
		Args:    cfg.Predictor.Args,
		WorkDir: cfg.Predictor.WorkDir,
		Timeout: cfg.Predictor.Timeout,
	}, logger)
}

func providePredictionCache(cfg *config.Config, logger *slog.Logger) recommend.PredictionCache {
	if cfg.Cache.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg.Cache.Valkey.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return predcache.NewMemoryCache(cfg.Cache.TTL)
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return predcache.NewMemoryCache(cfg.Cache.TTL)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("valkey prediction cache enabled", "addr", cfg.Cache.Valkey.Addr)
			return predcache.NewValkeyCache(client, cfg.Cache.Valkey.Prefix, cfg.Cache.TTL)
		}
	}
	return predcache.NewMemoryCache(cfg.Cache.TTL)
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideSpotCatalog(cfg *config.Config, logger *slog.Logger) recommend.SpotCatalog {
	if cfg.Spots.ObjectStore.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		catalog, err := spotcatalog.LoadObjectStore(ctx, spotcatalog.ObjectStoreConfig{
			Endpoint:  cfg.Spots.ObjectStore.Endpoint,
			AccessKey: cfg.Spots.ObjectStore.AccessKey,
			SecretKey: cfg.Spots.ObjectStore.SecretKey,
			Bucket:    cfg.Spots.ObjectStore.Bucket,
			Object:    cfg.Spots.ObjectStore.Object,
			Region:    cfg.Spots.ObjectStore.Region,
		})
		if err != nil {
			logger.Error("failed to load spot catalog from object store, using builtin", "error", err)
		} else {
			logger.Info("spot catalog loaded from object store", "bucket", cfg.Spots.ObjectStore.Bucket)
			return catalog
		}
	}
	if path := strings.TrimSpace(cfg.Spots.Path); path != "" {
		catalog, err := spotcatalog.LoadFile(path)
		if err != nil {
			logger.Error("failed to load spot catalog file, using builtin", "path", path, "error", err)
		} else {
			logger.Info("spot catalog loaded", "path", path)
			return catalog
		}
	}
	return spotcatalog.Builtin()
}

func provideSessionHistory(cfg *config.Config, logger *slog.Logger) recommend.SessionHistory {
	fallback := sessionrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.History.Postgres.DSN)
	if dsn == "" {
		logger.Info("history postgres dsn not set, personalization uses memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.History.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.History.Postgres.MaxConns
	}
	if cfg.History.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.History.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("session history postgres repository enabled")
	return sessionrepo.NewPostgresRepository(pool)
}
