package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-chat-backend/internal/shared/server/respond"
)

// Recovery recovers from panics and returns the uniform error envelope.
// The stack trace is included in the body only in dev mode.
func Recovery(log *zap.Logger, env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := string(debug.Stack())
				log.Error("panic",
					zap.String("request_id", RequestIDFromContext(c)),
					zap.Any("error", rec),
					zap.String("stack", stack),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)
				if env == "dev" {
					respond.ErrorWithStack(c, http.StatusInternalServerError, fmt.Sprint(rec), stack)
					return
				}
				respond.Error(c, http.StatusInternalServerError, "Internal Server Error")
			}
		}()
		c.Next()
	}
}
