package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

const shopQuery = `
query GetShop {
  shop {
    name
    description
    primaryDomain {
      url
    }
  }
}`

type shopData struct {
	Shop *struct {
		Name          string `json:"name"`
		Description   string `json:"description"`
		PrimaryDomain *struct {
			URL string `json:"url"`
		} `json:"primaryDomain"`
	} `json:"shop"`
}

// ShopProfile resolves the artifact header. A transport or GraphQL failure is
// returned; a response without shop data falls back to values derived from
// the domain.
func (s *Set) ShopProfile(ctx context.Context, tenant domain.Tenant) (domain.ShopProfile, error) {
	profile := domain.ShopProfile{
		Name: domain.ShopNameFallback(tenant.Domain),
		URL:  "https://" + tenant.Domain,
	}

	data, err := s.origin.Do(ctx, tenant, shopQuery, "GetShop", nil)
	if err != nil {
		if errors.Is(err, domain.ErrOriginDataMissing) {
			return profile, nil
		}
		return domain.ShopProfile{}, fmt.Errorf("shop profile: %w: %w", domain.ErrOriginQueryFailed, err)
	}

	var sd shopData
	if err := json.Unmarshal(data, &sd); err != nil || sd.Shop == nil {
		return profile, nil
	}

	if name := strings.TrimSpace(sd.Shop.Name); name != "" {
		profile.Name = name
	}
	profile.Description = strings.TrimSpace(sd.Shop.Description)
	if sd.Shop.PrimaryDomain != nil {
		if u := strings.TrimRight(strings.TrimSpace(sd.Shop.PrimaryDomain.URL), "/"); u != "" {
			profile.URL = u
		}
	}
	return profile, nil
}
