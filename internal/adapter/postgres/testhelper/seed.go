package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueShop returns a shop domain no other test uses.
func UniqueShop() string {
	return "shop-" + uniqueSuffix() + ".myshopify.com"
}

// SeedShop installs a shop by inserting an offline session.
// Returns the tenant with its access token.
func SeedShop(t *testing.T, pool *pgxpool.Pool) domain.Tenant {
	t.Helper()

	tenant := domain.Tenant{
		Domain:      UniqueShop(),
		AccessToken: "shpat_" + uniqueSuffix(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO sessions (id, shop, access_token, is_online, scope)
		 VALUES ($1, $2, $3, false, 'read_products,read_content')`,
		"offline_"+tenant.Domain, tenant.Domain, tenant.AccessToken,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedShop: %v", err)
	}

	return tenant
}

// SeedSettings stores settings for an existing shop.
func SeedSettings(t *testing.T, pool *pgxpool.Pool, s domain.Settings) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO settings (shop, include_products, include_collections, include_pages, include_articles, auto_sync_enabled)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.Shop, s.IncludeProducts, s.IncludeCollections, s.IncludePages, s.IncludeArticles, s.AutoSyncEnabled,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSettings: %v", err)
	}
}
