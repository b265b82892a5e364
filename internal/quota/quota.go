// Package quota maps subscription tiers to per-resource fetch ceilings.
package quota

import (
	"fmt"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

// Table holds the limits of every tier.
type Table map[domain.Tier]domain.QuotaLimits

// DefaultTable is used when no override is configured.
func DefaultTable() Table {
	return Table{
		domain.TierFree: {
			domain.ResourceCatalogItem: 100,
			domain.ResourceGrouping:    5,
			domain.ResourceArticle:     5,
			domain.ResourceDocument:    10,
		},
		domain.TierBasic: {
			domain.ResourceCatalogItem: 500,
			domain.ResourceGrouping:    50,
			domain.ResourceArticle:     100,
			domain.ResourceDocument:    100,
		},
		domain.TierPro: {
			domain.ResourceCatalogItem: domain.Unlimited,
			domain.ResourceGrouping:    domain.Unlimited,
			domain.ResourceArticle:     domain.Unlimited,
			domain.ResourceDocument:    domain.Unlimited,
		},
	}
}

// Policy resolves quota limits. It holds no mutable state.
type Policy struct {
	table Table
}

// NewPolicy creates a Policy over table. A nil table selects DefaultTable.
func NewPolicy(table Table) *Policy {
	if table == nil {
		table = DefaultTable()
	}
	return &Policy{table: table}
}

// Limits returns a copy of the limits for tier. Unknown tiers get the free table.
func (p *Policy) Limits(tier domain.Tier) domain.QuotaLimits {
	src, ok := p.table[tier]
	if !ok {
		src = p.table[domain.TierFree]
	}
	out := make(domain.QuotaLimits, len(src))
	for rt, q := range src {
		out[rt] = q
	}
	return out
}

// Resolve maps a raw plan name to limits. Unrecognized names fall back to the
// free table and report ErrQuotaResolution so the caller can log and continue.
func (p *Policy) Resolve(raw string) (domain.QuotaLimits, error) {
	tier, ok := domain.ParseTier(raw)
	if !ok {
		return p.Limits(domain.TierFree), fmt.Errorf("%w: unknown plan %q", domain.ErrQuotaResolution, raw)
	}
	return p.Limits(tier), nil
}
