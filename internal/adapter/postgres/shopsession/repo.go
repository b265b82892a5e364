// Package shopsession reads the offline access tokens stored at install time.
package shopsession

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/llmstxt-backend/internal/adapter/postgres"
	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

const table = "sessions"

// Repo provides read access to installed shop sessions.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// OfflineTenant returns the shop's offline credential or domain.ErrNotFound
// when the shop is not installed.
func (r *Repo) OfflineTenant(ctx context.Context, shop string) (domain.Tenant, error) {
	query, args, err := postgres.Builder.
		Select("shop", "access_token").
		From(table).
		Where(squirrel.Eq{"shop": shop, "is_online": false}).
		Limit(1).
		ToSql()
	if err != nil {
		return domain.Tenant{}, fmt.Errorf("build select: %w", err)
	}

	var t domain.Tenant
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&t.Domain, &t.AccessToken); err != nil {
		return domain.Tenant{}, postgres.MapError(err, table, shop)
	}
	return t, nil
}

// ListAutoSyncShops returns installed shops whose settings allow automatic
// regeneration. Shops without a settings row default to enabled.
func (r *Repo) ListAutoSyncShops(ctx context.Context) ([]string, error) {
	query, args, err := postgres.Builder.
		Select("DISTINCT s.shop").
		From(table + " s").
		LeftJoin("settings st ON st.shop = s.shop").
		Where(squirrel.Eq{"s.is_online": false}).
		Where("COALESCE(st.auto_sync_enabled, true)").
		OrderBy("s.shop").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, "auto-sync")
	}
	defer rows.Close()

	var shops []string
	for rows.Next() {
		var shop string
		if err := rows.Scan(&shop); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		shops = append(shops, shop)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, table, "rows")
	}
	return shops, nil
}
