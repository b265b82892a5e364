package domain

import "strings"

// ResourceType identifies one category of content fetched from the origin.
type ResourceType string

const (
	ResourceCatalogItem ResourceType = "CATALOG_ITEM"
	ResourceGrouping    ResourceType = "GROUPING"
	ResourceDocument    ResourceType = "DOCUMENT"
	ResourceArticle     ResourceType = "ARTICLE"
)

func (r ResourceType) String() string { return string(r) }

func (r ResourceType) IsValid() bool {
	switch r {
	case ResourceCatalogItem, ResourceGrouping, ResourceDocument, ResourceArticle:
		return true
	}
	return false
}

// Label is the plural lower-case name used in logs and error messages.
func (r ResourceType) Label() string {
	switch r {
	case ResourceCatalogItem:
		return "products"
	case ResourceGrouping:
		return "collections"
	case ResourceDocument:
		return "pages"
	case ResourceArticle:
		return "articles"
	}
	return strings.ToLower(string(r))
}

// DefaultSectionOrder is the order of resource sections in every artifact.
var DefaultSectionOrder = []ResourceType{
	ResourceCatalogItem,
	ResourceGrouping,
	ResourceArticle,
	ResourceDocument,
}

// ParseResourceType accepts either the enum value or its label ("products").
func ParseResourceType(s string) (ResourceType, bool) {
	s = strings.TrimSpace(s)
	if rt := ResourceType(strings.ToUpper(s)); rt.IsValid() {
		return rt, true
	}
	for _, rt := range DefaultSectionOrder {
		if strings.EqualFold(rt.Label(), s) {
			return rt, true
		}
	}
	return "", false
}

// Tier is a subscription level determining per-resource ceilings.
type Tier string

const (
	TierFree  Tier = "free"
	TierBasic Tier = "basic"
	TierPro   Tier = "pro"
)

func (t Tier) String() string { return string(t) }

func (t Tier) IsValid() bool {
	switch t {
	case TierFree, TierBasic, TierPro:
		return true
	}
	return false
}

// ParseTier maps a tier or plan name ("Basic Plan", "pro") to a Tier.
// An empty string is the free tier. Unknown values return TierFree and false.
func ParseTier(s string) (Tier, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, " plan")
	switch s {
	case "", "none", "free":
		return TierFree, true
	case "basic":
		return TierBasic, true
	case "pro":
		return TierPro, true
	}
	return TierFree, false
}

// SubscriptionStatus mirrors the billing provider's subscription status.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionPending   SubscriptionStatus = "PENDING"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionDeclined  SubscriptionStatus = "DECLINED"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
	SubscriptionFrozen    SubscriptionStatus = "FROZEN"
)

func (s SubscriptionStatus) String() string { return string(s) }

func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionActive, SubscriptionPending, SubscriptionCancelled,
		SubscriptionDeclined, SubscriptionExpired, SubscriptionFrozen:
		return true
	}
	return false
}
