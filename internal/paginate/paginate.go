// Package paginate drains cursor-paginated sources under an optional item cap.
package paginate

import (
	"context"
	"fmt"
)

// NoCap disables the item ceiling.
const NoCap = -1

// DefaultBatchSize is the page size used when Options.BatchSize is not positive.
const DefaultBatchSize = 50

// Window is the request for one page.
type Window struct {
	Limit  int
	Cursor string // empty on the first call
}

// Page is one batch returned by a source.
type Page[T any] struct {
	Items      []T
	NextCursor string
	HasMore    bool
}

// FetchFunc retrieves one page for the given window.
type FetchFunc[T any] func(ctx context.Context, w Window) (Page[T], error)

// Options controls a Drain call.
type Options struct {
	BatchSize int
	Cap       int
	Label     string // used in errors only
}

// Error reports which batch of which source failed.
type Error struct {
	Label string
	Batch int
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("paginate %s: batch %d: %v", e.Label, e.Batch, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Drain calls fetch repeatedly, accumulating items in origin order until the
// source is exhausted or the cap is reached. The batch that reaches the cap is
// truncated and no further page is requested.
//
// On failure the items collected so far are returned together with a *Error;
// callers treat them as unusable.
func Drain[T any](ctx context.Context, fetch FetchFunc[T], opts Options) ([]T, error) {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	capped := opts.Cap >= 0
	if capped && opts.Cap == 0 {
		return nil, nil
	}

	var (
		items  []T
		cursor string
	)
	for batch := 1; ; batch++ {
		limit := batchSize
		if capped {
			limit = min(batchSize, opts.Cap-len(items))
		}

		if err := ctx.Err(); err != nil {
			return items, &Error{Label: opts.Label, Batch: batch, Err: err}
		}

		page, err := fetch(ctx, Window{Limit: limit, Cursor: cursor})
		if err != nil {
			return items, &Error{Label: opts.Label, Batch: batch, Err: err}
		}
		if len(page.Items) == 0 {
			return items, nil
		}

		got := page.Items
		if len(got) > limit {
			got = got[:limit]
		}
		items = append(items, got...)

		if capped && len(items) >= opts.Cap {
			return items, nil
		}
		if !page.HasMore || page.NextCursor == "" {
			return items, nil
		}
		cursor = page.NextCursor
	}
}
