package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/castororo/Rajabakkiam-traders/internal/http/cartcookie"
)

const cartCountKey = "cart_count"

// CartCount puts the header badge count on the context for every
// request. A corrupt cookie counts as an empty cart; the codec has
// already cleared it, we just log the diagnostic.
func CartCount(ck *cartcookie.Codec, l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := 0
		items, err := ck.Get(c)
		if err != nil {
			l.LogAttrs(c.Request.Context(), slog.LevelWarn, "cart_cookie_invalid",
				slog.String("request_id", GetRequestID(c)),
				slog.Any("err", err),
			)
		}
		for _, it := range items {
			if it.Quantity > 0 {
				n += it.Quantity
			}
		}

		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
