// Package settings implements per-shop generation settings persistence using PostgreSQL.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/llmstxt-backend/internal/adapter/postgres"
	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

const table = "settings"

var columns = []string{
	"shop", "include_products", "include_collections", "include_pages",
	"include_articles", "auto_sync_enabled", "updated_at",
}

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the shop's settings. A shop that never saved settings gets
// domain.DefaultSettings.
func (r *Repo) Get(ctx context.Context, shop string) (domain.Settings, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"shop": shop}).
		ToSql()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("build select: %w", err)
	}

	var s domain.Settings
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(
		&s.Shop, &s.IncludeProducts, &s.IncludeCollections, &s.IncludePages,
		&s.IncludeArticles, &s.AutoSyncEnabled, &s.UpdatedAt,
	)
	if err != nil {
		err = postgres.MapError(err, table, shop)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultSettings(shop), nil
		}
		return domain.Settings{}, err
	}
	return s, nil
}
