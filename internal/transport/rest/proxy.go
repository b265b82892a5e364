package rest

import (
	"context"
	"io"
	"net/http"

	"github.com/heartmarshall/llmstxt-backend/internal/service/proxy"
)

type proxyReader interface {
	Read(ctx context.Context, rawShop string) proxy.Document
}

// ProxyHandler serves llms.txt to storefront visitors through the app proxy.
type ProxyHandler struct {
	svc proxyReader
}

// NewProxyHandler creates a ProxyHandler.
func NewProxyHandler(svc proxyReader) *ProxyHandler {
	return &ProxyHandler{svc: svc}
}

// LLMsTxt writes the cached document for the shop query parameter.
func (h *ProxyHandler) LLMsTxt(w http.ResponseWriter, r *http.Request) {
	doc := h.svc.Read(r.Context(), r.URL.Query().Get("shop"))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if doc.CacheControl != "" {
		w.Header().Set("Cache-Control", doc.CacheControl)
	}
	w.WriteHeader(doc.Status)
	io.WriteString(w, doc.Body) //nolint:errcheck
}
