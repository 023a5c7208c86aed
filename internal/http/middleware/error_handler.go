package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castororo/Rajabakkiam-traders/internal/shared/apperr"
)

func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler renders whatever handlers pushed via Fail. Pages get a
// plain error document; nothing in this site has a JSON error surface
// except the badge endpoint, which never fails.
func ErrorHandler(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperr.HTTPStatus(err)
		rid := GetRequestID(c)

		l.LogAttrs(c.Request.Context(), slog.LevelError, "request_failed",
			slog.String("request_id", rid),
			slog.Int("status", status),
			slog.Any("err", err),
		)

		c.Abort()
		c.HTML(status, "error", gin.H{
			"Status":    status,
			"Text":      http.StatusText(status),
			"Message":   apperr.PublicMessage(err),
			"RequestID": rid,
		})
	}
}
