// Package billing mirrors app subscription changes reported by webhooks.
package billing

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

type subscriptionRepo interface {
	GetByShop(ctx context.Context, shop string) (*domain.Subscription, error)
	Upsert(ctx context.Context, s domain.Subscription) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// AppSubscription is the app_subscription object of the webhook payload.
type AppSubscription struct {
	ID     string `json:"admin_graphql_api_id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Service applies subscription updates.
type Service struct {
	log    *slog.Logger
	secret []byte
	subs   subscriptionRepo
	tx     txManager
	now    func() time.Time
}

// NewService creates a new billing service. secret is the app API secret
// used to sign webhook bodies.
func NewService(log *slog.Logger, secret string, subs subscriptionRepo, tx txManager) *Service {
	return &Service{
		log:    log.With("service", "billing"),
		secret: []byte(secret),
		subs:   subs,
		tx:     tx,
		now:    time.Now,
	}
}

// Verify checks the base64 HMAC-SHA256 signature of a webhook body.
func (s *Service) Verify(body []byte, signature string) error {
	got, err := base64.StdEncoding.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(got) == 0 {
		return fmt.Errorf("%w: malformed webhook signature", domain.ErrUnauthorized)
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return fmt.Errorf("%w: webhook signature mismatch", domain.ErrUnauthorized)
	}
	return nil
}

// ApplyUpdate records the new subscription state for shop. The shop's row is
// replaced whether or not the subscription id matches the stored one, and
// created when absent.
func (s *Service) ApplyUpdate(ctx context.Context, rawShop string, in AppSubscription) error {
	shop, err := domain.NormalizeShopDomain(rawShop)
	if err != nil {
		return err
	}
	if err := validate(in); err != nil {
		return err
	}
	status := domain.SubscriptionStatus(strings.ToUpper(in.Status))

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.subs.GetByShop(ctx, shop)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("load subscription: %w", err)
		}

		next := domain.Subscription{Shop: shop}
		if current != nil {
			next = *current
			if current.SubscriptionID != in.ID {
				s.log.WarnContext(ctx, "subscription id changed",
					slog.String("shop", shop),
					slog.String("old_id", current.SubscriptionID),
					slog.String("new_id", in.ID),
				)
			}
		}

		now := s.now().UTC()
		next.SubscriptionID = in.ID
		next.Status = status
		if in.Name != "" {
			next.Name = in.Name
		}
		next.CancelledAt = nil
		switch status {
		case domain.SubscriptionActive:
			next.CurrentPeriodStart = &now
		case domain.SubscriptionCancelled:
			next.CancelledAt = &now
		}

		if err := s.subs.Upsert(ctx, next); err != nil {
			return fmt.Errorf("save subscription: %w", err)
		}

		s.log.InfoContext(ctx, "subscription updated",
			slog.String("shop", shop),
			slog.String("status", status.String()),
			slog.Bool("created", current == nil),
		)
		return nil
	})
}

func validate(in AppSubscription) error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "admin_graphql_api_id", Message: "required"})
	}
	if !domain.SubscriptionStatus(strings.ToUpper(in.Status)).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
