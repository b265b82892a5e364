package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

// maxBatchSize is the largest page the Admin API accepts.
const maxBatchSize = 250

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.APISecret) == "" {
		return fmt.Errorf("auth.api_secret is required")
	}

	switch c.Cache.Driver {
	case CacheDriverPostgres:
	case CacheDriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required when cache.driver is redis")
		}
	default:
		return fmt.Errorf("cache.driver must be %q or %q (got %q)", CacheDriverPostgres, CacheDriverRedis, c.Cache.Driver)
	}
	if c.Cache.MaxAge < 0 {
		return fmt.Errorf("cache.max_age must be >= 0 (got %s)", c.Cache.MaxAge)
	}
	if c.Cache.LoaderBatch <= 0 {
		return fmt.Errorf("cache.loader_batch must be > 0 (got %d)", c.Cache.LoaderBatch)
	}
	if c.Cache.ReadTimeout <= 0 {
		return fmt.Errorf("cache.read_timeout must be > 0 (got %s)", c.Cache.ReadTimeout)
	}

	if err := c.Origin.validate(); err != nil {
		return fmt.Errorf("origin: %w", err)
	}

	if c.Assembly.Timeout <= 0 {
		return fmt.Errorf("assembly.timeout must be > 0 (got %s)", c.Assembly.Timeout)
	}
	order, err := ParseSectionOrder(c.Assembly.SectionOrderRaw)
	if err != nil {
		return fmt.Errorf("assembly.section_order: %w", err)
	}
	c.Assembly.SectionOrder = order

	if err := c.Quota.parse(); err != nil {
		return fmt.Errorf("quota: %w", err)
	}

	if c.RateLimit.ProxyRPS <= 0 || c.RateLimit.ProxyBurst <= 0 {
		return fmt.Errorf("ratelimit: proxy_rps and proxy_burst must be > 0")
	}

	return nil
}

func (o *OriginConfig) validate() error {
	if !strings.Contains(o.EndpointTemplate, "{shop}") {
		return fmt.Errorf("endpoint_template must contain {shop}")
	}
	if o.BatchSize <= 0 || o.BatchSize > maxBatchSize {
		return fmt.Errorf("batch_size must be in 1..%d (got %d)", maxBatchSize, o.BatchSize)
	}
	if o.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", o.MaxRetries)
	}
	if o.RateRPS <= 0 || o.RateBurst <= 0 {
		return fmt.Errorf("rate_rps and rate_burst must be > 0")
	}
	return nil
}

func (q *QuotaConfig) parse() error {
	q.Table = make(map[domain.Tier]domain.QuotaLimits, 3)
	for tier, raw := range map[domain.Tier]string{
		domain.TierFree:  q.FreeRaw,
		domain.TierBasic: q.BasicRaw,
		domain.TierPro:   q.ProRaw,
	} {
		limits, err := ParseLimits(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", tier, err)
		}
		q.Table[tier] = limits
	}
	return nil
}

// ParseSectionOrder parses a comma-separated list of resource types
// ("products,collections") into an order. Each type may appear once.
func ParseSectionOrder(raw string) ([]domain.ResourceType, error) {
	var (
		order []domain.ResourceType
		seen  = make(map[domain.ResourceType]bool)
	)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rt, ok := domain.ParseResourceType(part)
		if !ok {
			return nil, fmt.Errorf("unknown resource type %q", part)
		}
		if seen[rt] {
			return nil, fmt.Errorf("duplicate resource type %q", part)
		}
		seen[rt] = true
		order = append(order, rt)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("at least one resource type is required")
	}
	return order, nil
}

// ParseLimits parses "products=100,collections=-1" into quota limits.
func ParseLimits(raw string) (domain.QuotaLimits, error) {
	limits := make(domain.QuotaLimits)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid entry %q: want name=limit", part)
		}
		rt, ok := domain.ParseResourceType(name)
		if !ok {
			return nil, fmt.Errorf("unknown resource type %q", name)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid limit for %s: %w", name, err)
		}
		if n < 0 {
			n = int(domain.Unlimited)
		}
		limits[rt] = domain.QuotaLimit(n)
	}
	return limits, nil
}
