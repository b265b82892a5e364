package llmstxt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

// ErrNotInstalled is returned when no offline session exists for the shop.
var ErrNotInstalled = fmt.Errorf("shop is not installed: %w", domain.ErrNotFound)

// Result describes a completed regeneration.
type Result struct {
	Shop      string
	CharCount int
	Duration  time.Duration
}

// run is one shared regeneration for a shop. Its context is detached from
// every caller and cancelled once the last waiting caller gives up.
type run struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// Regenerate assembles the artifact for shop and replaces its cache entry.
// The previous entry is kept when assembly fails or every caller waiting on
// the run has cancelled. Concurrent calls for the same shop share one run,
// and each caller stops waiting when its own ctx is done.
func (s *Service) Regenerate(ctx context.Context, rawShop string) (Result, error) {
	shop, err := domain.NormalizeShopDomain(rawShop)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	r, ok := s.runs[shop]
	if !ok {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.RunTimeout)
		r = &run{ctx: runCtx, cancel: cancel}
		s.runs[shop] = r
	}
	r.waiters++
	ch := s.inflight.DoChan(shop, func() (any, error) {
		defer s.finish(shop, r)
		return s.regenerate(r.ctx, shop)
	})
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		s.leave(shop, r)
		return Result{}, ctx.Err()
	case res := <-ch:
		if res.Shared {
			s.log.DebugContext(ctx, "regeneration shared", slog.String("shop", shop))
		}
		if res.Err != nil {
			return Result{}, res.Err
		}
		return res.Val.(Result), nil
	}
}

// finish retires r once its run has returned.
func (s *Service) finish(shop string, r *run) {
	s.mu.Lock()
	if s.runs[shop] == r {
		delete(s.runs, shop)
	}
	s.mu.Unlock()
	r.cancel()
}

// leave drops one waiter; the last one out cancels the run so it never
// writes, and later callers start a fresh run.
func (s *Service) leave(shop string, r *run) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.waiters--
	if r.waiters > 0 {
		return
	}
	r.cancel()
	if s.runs[shop] == r {
		delete(s.runs, shop)
		s.inflight.Forget(shop)
	}
}

func (s *Service) regenerate(ctx context.Context, shop string) (Result, error) {
	start := time.Now()

	tenant, err := s.sessions.OfflineTenant(ctx, shop)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Result{}, ErrNotInstalled
		}
		return Result{}, fmt.Errorf("load session: %w", err)
	}

	art, err := s.Assemble(ctx, tenant)
	if err != nil {
		s.log.ErrorContext(ctx, "assembly failed",
			slog.String("shop", shop),
			slog.String("error", err.Error()),
		)
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	content := art.String()
	if err := s.cache.Upsert(ctx, shop, content); err != nil {
		s.log.ErrorContext(ctx, "cache write failed",
			slog.String("shop", shop),
			slog.String("error", err.Error()),
		)
		return Result{}, err
	}

	res := Result{Shop: shop, CharCount: art.CharCount(), Duration: time.Since(start)}
	s.log.InfoContext(ctx, "artifact regenerated",
		slog.String("shop", shop),
		slog.Int("chars", res.CharCount),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// SyncReport summarizes a SyncAll run.
type SyncReport struct {
	Succeeded []string
	Failed    map[string]error
}

// SyncAll regenerates every shop with auto sync enabled, one at a time.
// A failing shop does not stop the run; an error is returned only when the
// shop list cannot be loaded or ctx is cancelled.
func (s *Service) SyncAll(ctx context.Context) (SyncReport, error) {
	shops, err := s.sessions.ListAutoSyncShops(ctx)
	if err != nil {
		return SyncReport{}, fmt.Errorf("list shops: %w", err)
	}

	report := SyncReport{Failed: make(map[string]error)}
	for _, shop := range shops {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if _, err := s.Regenerate(ctx, shop); err != nil {
			report.Failed[shop] = err
			continue
		}
		report.Succeeded = append(report.Succeeded, shop)
	}

	s.log.InfoContext(ctx, "sync finished",
		slog.Int("succeeded", len(report.Succeeded)),
		slog.Int("failed", len(report.Failed)),
	)
	return report, nil
}
