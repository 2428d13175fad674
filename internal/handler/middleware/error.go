package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"trainer-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs server-side failures with the cause's stack and writes a body
// for handlers that recorded an error without responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		last := c.Errors.Last()
		resp, ok := last.Meta.(httperr.Response)
		if !ok || resp.Status >= http.StatusInternalServerError {
			slog.ErrorContext(c.Request.Context(), "request failed",
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.FullPath(),
				"actor_id", c.GetHeader(HeaderUserID),
				"error", last.Err.Error(),
				"stack", fmt.Sprintf("%+v", last.Err),
			)
		}

		if c.Writer.Written() {
			return
		}
		if ok && last.IsType(gin.ErrorTypePublic) {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Internal())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
			}
		}()
		c.Next()
	}
}
