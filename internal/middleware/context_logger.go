package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-payops/internal/shared/contextutil"
)

// ContextLogger attaches a request-scoped logger carrying the request id,
// so service and repo layers can log through contextutil without knowing
// about gin.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := contextutil.GetRequestID(c.Request.Context())
		if rid == "" {
			rid = c.GetString("request_id")
		}

		reqLogger := logger.With(zap.String("request_id", rid))

		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
