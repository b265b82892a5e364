// Package llmcache implements the generated-content cache store using PostgreSQL.
package llmcache

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/llmstxt-backend/internal/adapter/postgres"
	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

const table = "llm_content_cache"

// Repo provides cache persistence backed by PostgreSQL. One row per shop,
// overwritten in place; rows are never deleted.
type Repo struct {
	db postgres.Querier
}

// New creates a new cache repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Upsert stores content for shop, replacing any previous entry.
// Concurrent writers for the same shop resolve as last writer wins.
func (r *Repo) Upsert(ctx context.Context, shop, content string) error {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("shop", "content", "created_at", "updated_at").
		Values(shop, content, squirrel.Expr("now()"), squirrel.Expr("now()")).
		Suffix("ON CONFLICT (shop) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCacheWriteFailed, postgres.MapError(err, table, shop))
	}
	return nil
}

// GetMany returns the entries that exist for shops, keyed by shop.
// Missing shops are absent from the map.
func (r *Repo) GetMany(ctx context.Context, shops []string) (map[string]*domain.CacheEntry, error) {
	out := make(map[string]*domain.CacheEntry, len(shops))
	if len(shops) == 0 {
		return out, nil
	}

	query, args, err := postgres.Builder.
		Select("shop", "content", "updated_at").
		From(table).
		Where(squirrel.Eq{"shop": shops}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, fmt.Sprintf("(%d shops)", len(shops)))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			shop, content string
			updatedAt     time.Time
		)
		if err := rows.Scan(&shop, &content, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out[shop] = &domain.CacheEntry{Shop: shop, Content: content, UpdatedAt: updatedAt}
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, table, "rows")
	}
	return out, nil
}
