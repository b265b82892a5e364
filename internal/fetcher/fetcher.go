// Package fetcher retrieves the four storefront resource types from the
// origin GraphQL API and renders them into artifact lines.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
	"github.com/heartmarshall/llmstxt-backend/internal/paginate"
)

// Origin executes one GraphQL operation for a tenant and returns its data object.
type Origin interface {
	Do(ctx context.Context, tenant domain.Tenant, query, operationName string, variables map[string]any) (json.RawMessage, error)
}

// Fetcher retrieves and renders one resource type.
type Fetcher interface {
	Resource() domain.ResourceType
	FetchBatch(ctx context.Context, tenant domain.Tenant, w paginate.Window) (paginate.Page[domain.ResourceItem], error)
	Render(shopDomain string, item domain.ResourceItem) []string
}

// Set is the closed set of fetchers, one per resource type.
type Set struct {
	origin   Origin
	fetchers map[domain.ResourceType]Fetcher
}

// NewSet builds every fetcher over origin. Query documents are validated here
// so a malformed query fails at startup rather than on the first request.
func NewSet(origin Origin) (*Set, error) {
	s := &Set{origin: origin, fetchers: make(map[domain.ResourceType]Fetcher, 4)}

	builders := []func(Origin) (Fetcher, error){
		func(o Origin) (Fetcher, error) { return newResourceFetcher(o, productsDescriptor) },
		func(o Origin) (Fetcher, error) { return newResourceFetcher(o, collectionsDescriptor) },
		func(o Origin) (Fetcher, error) { return newResourceFetcher(o, pagesDescriptor) },
		func(o Origin) (Fetcher, error) { return newResourceFetcher(o, articlesDescriptor) },
	}
	for _, build := range builders {
		f, err := build(origin)
		if err != nil {
			return nil, err
		}
		s.fetchers[f.Resource()] = f
	}

	if _, err := parseOperation(shopQuery); err != nil {
		return nil, fmt.Errorf("fetcher: shop query: %w", err)
	}

	return s, nil
}

// For returns the fetcher for rt.
func (s *Set) For(rt domain.ResourceType) (Fetcher, bool) {
	f, ok := s.fetchers[rt]
	return f, ok
}
