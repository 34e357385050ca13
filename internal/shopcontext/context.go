package shopcontext

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// ShopContextKey is the request context key for the active shop ID.
type ShopContextKey struct{}

// WithShopID stores the shop ID in the context.
func WithShopID(ctx context.Context, shopID int64) context.Context {
	return context.WithValue(ctx, ShopContextKey{}, shopID)
}

// ShopIDFromContext returns the shop ID from context, if set.
func ShopIDFromContext(ctx context.Context) (snowflake.ID, bool) {
	if ctx == nil {
		return 0, false
	}

	value := ctx.Value(ShopContextKey{})
	if value == nil {
		return 0, false
	}
	switch typed := value.(type) {
	case int64:
		return snowflake.ID(typed), true
	case snowflake.ID:
		return typed, true
	case string:
		parsed, err := snowflake.ParseString(strings.TrimSpace(typed))
		if err == nil {
			return parsed, true
		}
	}
	return 0, false
}
