package ctxutil

import "context"

type ctxKey string

const (
	shopKey      ctxKey = "shop"
	requestIDKey ctxKey = "request_id"
)

// WithShop stores the authenticated shop domain in the context.
func WithShop(ctx context.Context, shop string) context.Context {
	return context.WithValue(ctx, shopKey, shop)
}

// ShopFromCtx extracts the authenticated shop domain from the context.
// Returns "" and false if the value is missing or empty.
func ShopFromCtx(ctx context.Context) (string, bool) {
	shop, ok := ctx.Value(shopKey).(string)
	if !ok || shop == "" {
		return "", false
	}
	return shop, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
