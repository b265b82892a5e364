package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
	"github.com/heartmarshall/llmstxt-backend/internal/service/billing"
)

// maxWebhookBody bounds the body read before the signature is checked.
const maxWebhookBody = 1 << 20

type subscriptionUpdater interface {
	Verify(body []byte, signature string) error
	ApplyUpdate(ctx context.Context, shop string, in billing.AppSubscription) error
}

// WebhookHandler receives platform webhooks.
type WebhookHandler struct {
	svc subscriptionUpdater
	log *slog.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(svc subscriptionUpdater, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{svc: svc, log: logger.With("handler", "webhook")}
}

type subscriptionUpdatePayload struct {
	AppSubscription *billing.AppSubscription `json:"app_subscription"`
}

// SubscriptionsUpdate handles the app_subscriptions/update topic.
func (h *WebhookHandler) SubscriptionsUpdate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "cannot read body")
		return
	}

	if err := h.svc.Verify(body, r.Header.Get("X-Shopify-Hmac-Sha256")); err != nil {
		h.log.WarnContext(r.Context(), "webhook rejected", slog.String("error", err.Error()))
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var payload subscriptionUpdatePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.AppSubscription == nil {
		writeError(w, http.StatusBadRequest, "No subscription data")
		return
	}

	shop := r.Header.Get("X-Shopify-Shop-Domain")
	if err := h.svc.ApplyUpdate(r.Context(), shop, *payload.AppSubscription); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "subscription update failed",
			slog.String("shop", shop),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusOK)
}
