// Package subscription implements the mirrored app-subscription store using PostgreSQL.
package subscription

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/llmstxt-backend/internal/adapter/postgres"
	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

const table = "subscriptions"

var columns = []string{
	"shop", "subscription_id", "name", "status",
	"current_period_start", "cancelled_at", "updated_at",
}

// Repo provides subscription persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new subscription repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByShop returns the shop's subscription or domain.ErrNotFound.
func (r *Repo) GetByShop(ctx context.Context, shop string) (*domain.Subscription, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"shop": shop}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var (
		s      domain.Subscription
		status string
	)
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(
		&s.Shop, &s.SubscriptionID, &s.Name, &status,
		&s.CurrentPeriodStart, &s.CancelledAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, table, shop)
	}
	s.Status = domain.SubscriptionStatus(status)
	return &s, nil
}

// Upsert writes the subscription, replacing the shop's previous record.
func (r *Repo) Upsert(ctx context.Context, s domain.Subscription) error {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(s.Shop, s.SubscriptionID, s.Name, string(s.Status),
			s.CurrentPeriodStart, s.CancelledAt, squirrel.Expr("now()")).
		Suffix(`ON CONFLICT (shop) DO UPDATE SET
			subscription_id = EXCLUDED.subscription_id,
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			current_period_start = COALESCE(EXCLUDED.current_period_start, subscriptions.current_period_start),
			cancelled_at = EXCLUDED.cancelled_at,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, table, s.Shop)
	}
	return nil
}
