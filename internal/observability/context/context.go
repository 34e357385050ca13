package obscontext

import "context"

type requestIDKey struct{}
type shopIDKey struct{}

// WithRequestID stores the request ID on the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request ID, or empty.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if value, ok := ctx.Value(requestIDKey{}).(string); ok {
		return value
	}
	return ""
}

// WithShopID stores the shop ID string used for log enrichment.
func WithShopID(ctx context.Context, shopID string) context.Context {
	if shopID == "" {
		return ctx
	}
	return context.WithValue(ctx, shopIDKey{}, shopID)
}

// ShopIDFromContext returns the shop ID string, or empty.
func ShopIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if value, ok := ctx.Value(shopIDKey{}).(string); ok {
		return value
	}
	return ""
}
