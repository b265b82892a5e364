package llmstxt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/llmstxt-backend/internal/artifact"
	"github.com/heartmarshall/llmstxt-backend/internal/domain"
	"github.com/heartmarshall/llmstxt-backend/internal/paginate"
)

// Assemble builds the artifact for tenant. It is all-or-nothing: if any
// resource type fails, no artifact is returned and the error is a
// *domain.OriginError naming that resource type.
func (s *Service) Assemble(ctx context.Context, tenant domain.Tenant) (*artifact.Artifact, error) {
	profile, err := s.catalog.ShopProfile(ctx, tenant)
	if err != nil {
		return nil, err
	}

	limits := s.resolveLimits(ctx, tenant.Domain)

	settings, err := s.settings.Get(ctx, tenant.Domain)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	plan := make([]domain.ResourceType, 0, len(s.cfg.SectionOrder))
	for _, rt := range s.cfg.SectionOrder {
		if limits.For(rt).Skips() || !settings.Includes(rt) {
			s.log.DebugContext(ctx, "resource skipped",
				slog.String("shop", tenant.Domain),
				slog.String("resource", rt.Label()),
			)
			continue
		}
		plan = append(plan, rt)
	}

	sections := make([][]string, len(plan))
	if s.cfg.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i, rt := range plan {
			g.Go(func() error {
				lines, err := s.collect(gctx, tenant, rt, limits.For(rt))
				if err != nil {
					return err
				}
				sections[i] = lines
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, rt := range plan {
			lines, err := s.collect(ctx, tenant, rt, limits.For(rt))
			if err != nil {
				return nil, err
			}
			sections[i] = lines
		}
	}

	art := artifact.New(profile)
	for i, rt := range plan {
		art.AddSection(rt, sections[i])
	}
	return art, nil
}

// resolveLimits never fails: anything that prevents tier resolution degrades
// to the free limits.
func (s *Service) resolveLimits(ctx context.Context, shop string) domain.QuotaLimits {
	sub, err := s.subscriptions.GetByShop(ctx, shop)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "subscription lookup failed, using free limits",
				slog.String("shop", shop),
				slog.String("error", fmt.Errorf("%w: %w", domain.ErrQuotaResolution, err).Error()),
			)
		}
		return s.quota.Limits(domain.TierFree)
	}

	if tier, ok := sub.Tier(); ok {
		return s.quota.Limits(tier)
	}

	limits, err := s.quota.Resolve(sub.Name)
	if err != nil {
		s.log.WarnContext(ctx, "unknown plan, using free limits",
			slog.String("shop", shop),
			slog.String("plan", sub.Name),
			slog.String("error", err.Error()),
		)
	}
	return limits
}

// collect drains one resource type and renders it into section lines.
func (s *Service) collect(ctx context.Context, tenant domain.Tenant, rt domain.ResourceType, limit domain.QuotaLimit) ([]string, error) {
	f, ok := s.catalog.For(rt)
	if !ok {
		return nil, domain.NewOriginQueryError(rt, fmt.Errorf("no fetcher registered"))
	}

	capacity := int(limit)
	if limit.IsUnlimited() {
		capacity = paginate.NoCap
	}

	items, err := paginate.Drain(ctx,
		func(ctx context.Context, w paginate.Window) (paginate.Page[domain.ResourceItem], error) {
			return f.FetchBatch(ctx, tenant, w)
		},
		paginate.Options{BatchSize: s.cfg.BatchSize, Cap: capacity, Label: rt.Label()},
	)
	if err != nil {
		return nil, resourceError(rt, err)
	}

	var lines []string
	for _, item := range items {
		lines = append(lines, f.Render(tenant.Domain, item)...)
	}

	s.log.DebugContext(ctx, "resource collected",
		slog.String("shop", tenant.Domain),
		slog.String("resource", rt.Label()),
		slog.Int("items", len(items)),
	)
	return lines, nil
}

func resourceError(rt domain.ResourceType, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("fetch %s: %w", rt.Label(), err)
	}
	var oe *domain.OriginError
	if errors.As(err, &oe) {
		return oe
	}
	return domain.NewOriginQueryError(rt, err)
}
