package domain

import "time"

// Settings holds per-shop generation preferences.
type Settings struct {
	Shop               string
	IncludeProducts    bool
	IncludeCollections bool
	IncludePages       bool
	IncludeArticles    bool
	AutoSyncEnabled    bool
	UpdatedAt          time.Time
}

// DefaultSettings is used when a shop has never saved settings.
func DefaultSettings(shop string) Settings {
	return Settings{
		Shop:               shop,
		IncludeProducts:    true,
		IncludeCollections: true,
		IncludePages:       true,
		IncludeArticles:    true,
		AutoSyncEnabled:    true,
	}
}

// Includes reports whether the resource type is enabled for generation.
func (s Settings) Includes(rt ResourceType) bool {
	switch rt {
	case ResourceCatalogItem:
		return s.IncludeProducts
	case ResourceGrouping:
		return s.IncludeCollections
	case ResourceDocument:
		return s.IncludePages
	case ResourceArticle:
		return s.IncludeArticles
	}
	return false
}
