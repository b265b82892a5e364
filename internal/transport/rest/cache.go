package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
	"github.com/heartmarshall/llmstxt-backend/internal/service/llmstxt"
	"github.com/heartmarshall/llmstxt-backend/pkg/ctxutil"
)

type regenerator interface {
	Regenerate(ctx context.Context, shop string) (llmstxt.Result, error)
}

// CacheHandler triggers artifact regeneration for the authenticated shop.
type CacheHandler struct {
	svc regenerator
	log *slog.Logger
}

// NewCacheHandler creates a CacheHandler.
func NewCacheHandler(svc regenerator, logger *slog.Logger) *CacheHandler {
	return &CacheHandler{svc: svc, log: logger.With("handler", "cache")}
}

type regenerateResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	CharCount int    `json:"charCount,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Regenerate rebuilds the shop's llms.txt and replaces the cached copy.
func (h *CacheHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	shop, ok := ctxutil.ShopFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	res, err := h.svc.Regenerate(r.Context(), shop)
	if err != nil {
		h.log.ErrorContext(r.Context(), "regeneration failed",
			slog.String("shop", shop),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, regenerateResponse{
			Success: false,
			Error:   failureMessage(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, regenerateResponse{
		Success:   true,
		Message:   "LLMs.txt cache updated.",
		CharCount: res.CharCount,
	})
}

// failureMessage tells fetch failures apart from save failures.
func failureMessage(err error) string {
	switch {
	case domain.IsOriginFailure(err):
		return "Could not fetch store data: " + err.Error()
	case errors.Is(err, domain.ErrCacheWriteFailed):
		return "Could not save generated content: " + err.Error()
	default:
		return err.Error()
	}
}
