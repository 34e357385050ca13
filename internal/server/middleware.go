package server

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	obscontext "github.com/tailorsoft/atelier/internal/observability/context"
	"github.com/tailorsoft/atelier/internal/shopcontext"
)

// ShopContextMiddleware resolves the active shop for the request: the
// X-Shop-Id header when present, otherwise the default resolved at
// startup (configured override or the seeded main shop). Every
// downstream service reads the shop from context, so a request without
// a resolvable shop fails fast in the service layer.
func (s *Server) ShopContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		shopID := s.defaultShopID
		if header := strings.TrimSpace(c.GetHeader("X-Shop-Id")); header != "" {
			if parsed, err := snowflake.ParseString(header); err == nil && parsed != 0 {
				shopID = int64(parsed)
			} else {
				AbortWithError(c, newValidationError("shop_id", "invalid_shop", "invalid shop id"))
				return
			}
		}

		ctx := shopcontext.WithShopID(c.Request.Context(), shopID)
		ctx = obscontext.WithShopID(ctx, strconv.FormatInt(shopID, 10))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
