// Package llmcache implements the generated-content cache store on Redis.
// Entries are JSON values under "<prefix>:<shop>" with no expiry.
package llmcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

// DefaultPrefix namespaces cache keys.
const DefaultPrefix = "llmstxt:cache"

type record struct {
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is a Redis-backed cache store.
type Store struct {
	rdb    goredis.Cmdable
	prefix string
	now    func() time.Time
}

// New creates a Store. An empty prefix selects DefaultPrefix.
func New(rdb goredis.Cmdable, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{rdb: rdb, prefix: prefix, now: time.Now}
}

func (s *Store) key(shop string) string {
	return s.prefix + ":" + shop
}

// Upsert stores content for shop, replacing any previous entry.
func (s *Store) Upsert(ctx context.Context, shop, content string) error {
	raw, err := json.Marshal(record{Content: content, UpdatedAt: s.now().UTC()})
	if err != nil {
		return fmt.Errorf("%w: encode: %w", domain.ErrCacheWriteFailed, err)
	}
	if err := s.rdb.Set(ctx, s.key(shop), raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %w", domain.ErrCacheWriteFailed, shop, err)
	}
	return nil
}

// GetMany returns the entries that exist for shops, keyed by shop. Entries
// that fail to decode are reported per shop in a domain.CacheKeyErrors
// alongside the ones that decoded.
func (s *Store) GetMany(ctx context.Context, shops []string) (map[string]*domain.CacheEntry, error) {
	out := make(map[string]*domain.CacheEntry, len(shops))
	if len(shops) == 0 {
		return out, nil
	}

	keys := make([]string, len(shops))
	for i, shop := range shops {
		keys[i] = s.key(shop)
	}

	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	var bad domain.CacheKeyErrors
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		e, err := decode(shops[i], []byte(str))
		if err != nil {
			if bad == nil {
				bad = make(domain.CacheKeyErrors)
			}
			bad[shops[i]] = err
			continue
		}
		out[shops[i]] = e
	}
	if len(bad) > 0 {
		return out, bad
	}
	return out, nil
}

func decode(shop string, raw []byte) (*domain.CacheEntry, error) {
	var r record
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode cache %s: %w", shop, err)
	}
	return &domain.CacheEntry{Shop: shop, Content: r.Content, UpdatedAt: r.UpdatedAt}, nil
}
