package domain

import (
	"fmt"
	"time"
)

// CacheEntry is the stored artifact for one shop. Overwritten in place on
// every successful generation and never deleted.
type CacheEntry struct {
	Shop      string
	Content   string
	UpdatedAt time.Time
}

// CacheKeyErrors lists shops whose stored entry exists but could not be read.
// Stores return it together with the entries that were read successfully.
type CacheKeyErrors map[string]error

func (e CacheKeyErrors) Error() string {
	return fmt.Sprintf("%d cache entries unreadable", len(e))
}
