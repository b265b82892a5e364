package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/llmstxt-backend/internal/config"
	"github.com/heartmarshall/llmstxt-backend/internal/transport/middleware"
	"github.com/heartmarshall/llmstxt-backend/internal/transport/rest"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health  *rest.HealthHandler
	Proxy   *rest.ProxyHandler
	Cache   *rest.CacheHandler
	Webhook *rest.WebhookHandler
}

// RouterDeps are the middleware dependencies of NewRouter.
type RouterDeps struct {
	Logger       *slog.Logger
	CORS         config.CORSConfig
	ProxyLimiter middleware.KeyedLimiter
	Verifier     middleware.SessionVerifier
}

// NewRouter mounts every route with its middleware stack.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	base := middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.Logger(deps.Logger),
	)
	public := middleware.Chain(
		base,
		middleware.CORS(deps.CORS),
		middleware.RateLimit(deps.ProxyLimiter),
	)
	authed := middleware.Chain(
		base,
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Verifier),
	)

	mux := http.NewServeMux()

	mux.Handle("GET /live", base(http.HandlerFunc(h.Health.Live)))
	mux.Handle("GET /ready", base(http.HandlerFunc(h.Health.Ready)))
	mux.Handle("GET /health", base(http.HandlerFunc(h.Health.Health)))

	mux.Handle("GET /proxy/llms.txt", public(http.HandlerFunc(h.Proxy.LLMsTxt)))
	mux.Handle("GET /apps/llmstxt/llms.txt", public(http.HandlerFunc(h.Proxy.LLMsTxt)))

	mux.Handle("/api/llms-cache/regenerate", authed(methodOnly(http.MethodPost, h.Cache.Regenerate)))

	mux.Handle("POST /webhooks/app/subscriptions-update", base(http.HandlerFunc(h.Webhook.SubscriptionsUpdate)))

	return mux
}

// methodOnly lets CORS preflight reach the middleware while restricting the
// handler itself to one method.
func methodOnly(method string, fn http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		fn(w, r)
	})
}
