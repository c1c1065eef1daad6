package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/authflow/internal/cache"
	"github.com/umalmyha/authflow/internal/config"
	"github.com/umalmyha/authflow/internal/repository"
	"github.com/umalmyha/authflow/internal/service"
)

const connectTimeout = 5 * time.Second

// Closers release resources in reverse order of acquisition
type Closers []func() error

func (c Closers) Close() error {
	var errs []error
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PreferenceService builds preference service on top of configured store driver and optional redis cache
func PreferenceService(ctx context.Context, cfg config.Config) (service.PreferenceService, Closers, error) {
	var closers Closers

	prefRps, err := preferenceRepository(ctx, cfg, &closers)
	if err != nil {
		_ = closers.Close()
		return nil, nil, err
	}

	prefCache, err := preferenceCache(ctx, cfg.RedisCfg, &closers)
	if err != nil {
		_ = closers.Close()
		return nil, nil, err
	}

	logrus.WithFields(logrus.Fields{
		"driver":  cfg.StoreCfg.Driver,
		"profile": cfg.StoreCfg.Profile,
		"cache":   cfg.RedisCfg.CacheEnabled,
	}).Info("preference store is ready")

	return service.NewPreferenceService(cfg.StoreCfg.Profile, prefRps, prefCache), closers, nil
}

func preferenceRepository(ctx context.Context, cfg config.Config, closers *Closers) (repository.PreferenceRepository, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch cfg.StoreCfg.Driver {
	case config.DriverMemory:
		return repository.NewMemoryPreferenceRepository(), nil
	case config.DriverSqlite:
		prefRps, closeDB, err := repository.NewSqlitePreferenceRepository(ctx, cfg.StoreCfg.SqlitePath)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, closeDB)
		return prefRps, nil
	case config.DriverPostgres:
		pgPool, err := Postgresql(ctx, cfg.PostgresCfg)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, func() error {
			pgPool.Close()
			return nil
		})
		return repository.NewPostgresPreferenceRepository(pgPool), nil
	case config.DriverMongo:
		mongoClient, err := Mongodb(ctx, cfg.MongoCfg)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, func() error {
			return mongoClient.Disconnect(context.Background())
		})
		return repository.NewMongoPreferenceRepository(mongoClient), nil
	default:
		return nil, fmt.Errorf("unknown store driver %s", cfg.StoreCfg.Driver)
	}
}

func preferenceCache(ctx context.Context, cfg config.RedisCfg, closers *Closers) (cache.PreferenceCache, error) {
	if !cfg.CacheEnabled {
		return cache.NewNopPreferenceCache(), nil
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := Redis(ctx, cfg)
	if err != nil {
		return nil, err
	}
	*closers = append(*closers, client.Close)

	return cache.NewRedisPreferenceCache(client, cfg.CacheTTL), nil
}
