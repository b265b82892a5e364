// Package llmstxt assembles a tenant's llms.txt artifact from the origin and
// stores it in the cache.
package llmstxt

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
	"github.com/heartmarshall/llmstxt-backend/internal/fetcher"
	"github.com/heartmarshall/llmstxt-backend/internal/paginate"
)

type sessionRepo interface {
	OfflineTenant(ctx context.Context, shop string) (domain.Tenant, error)
	ListAutoSyncShops(ctx context.Context) ([]string, error)
}

type settingsRepo interface {
	Get(ctx context.Context, shop string) (domain.Settings, error)
}

type subscriptionRepo interface {
	GetByShop(ctx context.Context, shop string) (*domain.Subscription, error)
}

type cacheStore interface {
	Upsert(ctx context.Context, shop, content string) error
}

type catalog interface {
	For(rt domain.ResourceType) (fetcher.Fetcher, bool)
	ShopProfile(ctx context.Context, tenant domain.Tenant) (domain.ShopProfile, error)
}

type quotaPolicy interface {
	Limits(tier domain.Tier) domain.QuotaLimits
	Resolve(raw string) (domain.QuotaLimits, error)
}

// Config controls assembly.
type Config struct {
	BatchSize    int
	SectionOrder []domain.ResourceType
	Parallel     bool
	RunTimeout   time.Duration // deadline of one shared regeneration run
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = paginate.DefaultBatchSize
	}
	if len(c.SectionOrder) == 0 {
		c.SectionOrder = domain.DefaultSectionOrder
	}
	if c.RunTimeout <= 0 {
		c.RunTimeout = 10 * time.Minute
	}
	return c
}

// Service generates and caches artifacts.
type Service struct {
	log           *slog.Logger
	cfg           Config
	sessions      sessionRepo
	settings      settingsRepo
	subscriptions subscriptionRepo
	cache         cacheStore
	catalog       catalog
	quota         quotaPolicy

	inflight singleflight.Group
	mu       sync.Mutex
	runs     map[string]*run
}

// NewService creates a new llms.txt service.
func NewService(
	log *slog.Logger,
	cfg Config,
	sessions sessionRepo,
	settings settingsRepo,
	subscriptions subscriptionRepo,
	cache cacheStore,
	catalog catalog,
	quota quotaPolicy,
) *Service {
	return &Service{
		log:           log.With("service", "llmstxt"),
		cfg:           cfg.withDefaults(),
		sessions:      sessions,
		settings:      settings,
		subscriptions: subscriptions,
		cache:         cache,
		catalog:       catalog,
		quota:         quota,
		runs:          make(map[string]*run),
	}
}
