package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/llmstxt-backend/internal/adapter/postgres"
	pgcache "github.com/heartmarshall/llmstxt-backend/internal/adapter/postgres/llmcache"
	"github.com/heartmarshall/llmstxt-backend/internal/adapter/postgres/settings"
	"github.com/heartmarshall/llmstxt-backend/internal/adapter/postgres/shopsession"
	"github.com/heartmarshall/llmstxt-backend/internal/adapter/postgres/subscription"
	"github.com/heartmarshall/llmstxt-backend/internal/adapter/provider/shopify"
	"github.com/heartmarshall/llmstxt-backend/internal/adapter/redis"
	rediscache "github.com/heartmarshall/llmstxt-backend/internal/adapter/redis/llmcache"
	"github.com/heartmarshall/llmstxt-backend/internal/config"
	"github.com/heartmarshall/llmstxt-backend/internal/domain"
	"github.com/heartmarshall/llmstxt-backend/internal/fetcher"
	"github.com/heartmarshall/llmstxt-backend/internal/quota"
	"github.com/heartmarshall/llmstxt-backend/internal/ratelimit"
	"github.com/heartmarshall/llmstxt-backend/internal/service/billing"
	"github.com/heartmarshall/llmstxt-backend/internal/service/llmstxt"
	"github.com/heartmarshall/llmstxt-backend/internal/service/proxy"
)

type cacheStore interface {
	Upsert(ctx context.Context, shop, content string) error
	GetMany(ctx context.Context, shops []string) (map[string]*domain.CacheEntry, error)
}

// Deps holds the wired services shared by the server and the one-shot commands.
type Deps struct {
	Pool      *pgxpool.Pool
	Redis     *goredis.Client // nil unless cache.driver is redis
	Generator *llmstxt.Service
	Proxy     *proxy.Service
	Billing   *billing.Service

	originLimiter *ratelimit.KeyedLimiter
	closeOnce     sync.Once
}

// Build connects to storage and wires every service.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Deps, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	d := &Deps{Pool: pool}

	var cache cacheStore
	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		d.Redis = rdb
		cache = rediscache.New(rdb, cfg.Redis.Prefix)
	default:
		cache = pgcache.New(pool)
	}

	d.originLimiter = ratelimit.New(cfg.Origin.RateRPS, cfg.Origin.RateBurst, cfg.RateLimit.CleanupInterval)
	client := shopify.NewClient(shopify.Options{
		EndpointTemplate: cfg.Origin.EndpointTemplate,
		APIVersion:       cfg.Origin.APIVersion,
		Timeout:          cfg.Origin.Timeout,
		MaxRetries:       cfg.Origin.MaxRetries,
		RetryDelay:       cfg.Origin.RetryDelay,
	}, d.originLimiter, logger)

	fetchers, err := fetcher.NewSet(client)
	if err != nil {
		d.Close()
		return nil, err
	}

	d.Generator = llmstxt.NewService(
		logger,
		llmstxt.Config{
			BatchSize:    cfg.Origin.BatchSize,
			SectionOrder: cfg.Assembly.SectionOrder,
			Parallel:     cfg.Assembly.Parallel,
			RunTimeout:   cfg.Assembly.Timeout,
		},
		shopsession.New(pool),
		settings.New(pool),
		subscription.New(pool),
		cache,
		fetchers,
		quota.NewPolicy(quota.Table(cfg.Quota.Table)),
	)

	d.Proxy = proxy.NewService(logger, proxy.Config{
		MaxAge:      cfg.Cache.MaxAge,
		LoaderWait:  cfg.Cache.LoaderWait,
		LoaderBatch: cfg.Cache.LoaderBatch,
		ReadTimeout: cfg.Cache.ReadTimeout,
	}, cache)

	d.Billing = billing.NewService(logger, cfg.Auth.APISecret, subscription.New(pool), postgres.NewTxManager(pool))

	return d, nil
}

// Close releases connections and background workers.
func (d *Deps) Close() {
	d.closeOnce.Do(func() {
		if d.originLimiter != nil {
			d.originLimiter.Stop()
		}
		if d.Redis != nil {
			_ = d.Redis.Close()
		}
		if d.Pool != nil {
			d.Pool.Close()
		}
	})
}
