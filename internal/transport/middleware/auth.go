package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/llmstxt-backend/pkg/ctxutil"
)

// SessionVerifier resolves a session token to a shop domain.
type SessionVerifier interface {
	VerifySessionToken(token string) (string, error)
}

// Auth requires a Bearer session token and stores the shop it names in the
// request context. Requests without a valid token get 401.
func Auth(verifier SessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			shop, err := verifier.VerifySessionToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithShop(r.Context(), shop)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(auth, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
