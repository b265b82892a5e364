package domain

import (
	"regexp"
	"strings"
)

// Tenant identifies the shop whose data is aggregated.
type Tenant struct {
	Domain      string
	AccessToken string
}

// ShopProfile is the identity rendered in the artifact header.
type ShopProfile struct {
	Name        string
	Description string
	URL         string
}

var shopDomainRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)+$`)

// NormalizeShopDomain prepares a tenant key for storage and lookup:
// trims whitespace, strips a scheme and trailing slash, lowercases, and
// validates a domain-like shape.
func NormalizeShopDomain(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimSuffix(s, "/")

	if s == "" {
		return "", NewValidationError("shop", "required")
	}
	if len(s) > 255 || !shopDomainRe.MatchString(s) {
		return "", NewValidationError("shop", "invalid domain")
	}
	return s, nil
}

// ShopNameFallback derives a display name from the first label of the domain.
func ShopNameFallback(shopDomain string) string {
	name, _, _ := strings.Cut(shopDomain, ".")
	return name
}
