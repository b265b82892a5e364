package proxy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

// newEntriesBatchFn loads cache entries for a batch of shops. A shop without
// an entry resolves to nil.
//
// The batch context is detached from the request that opened the batch and
// bounded by timeout, since the keys belong to unrelated requests.
func newEntriesBatchFn(store cacheReader, timeout time.Duration) dataloader.BatchFunc[string, *domain.CacheEntry] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.CacheEntry] {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		results := make([]*dataloader.Result[*domain.CacheEntry], len(keys))

		entries, err := store.GetMany(ctx, keys)
		var keyErrs domain.CacheKeyErrors
		if err != nil && !errors.As(err, &keyErrs) {
			err = fmt.Errorf("%w: %w", domain.ErrCacheReadFailed, err)
			for i := range results {
				results[i] = &dataloader.Result[*domain.CacheEntry]{Error: err}
			}
			return results
		}

		for i, key := range keys {
			if kerr, ok := keyErrs[key]; ok {
				results[i] = &dataloader.Result[*domain.CacheEntry]{
					Error: fmt.Errorf("%w: %w", domain.ErrCacheReadFailed, kerr),
				}
				continue
			}
			results[i] = &dataloader.Result[*domain.CacheEntry]{Data: entries[key]}
		}
		return results
	}
}
