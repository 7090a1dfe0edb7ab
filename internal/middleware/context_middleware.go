package middleware

import (
	"go-payroll-my/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TenantContext membaca identitas multi-tenant dari header gateway.
// Autentikasi/otorisasi dilakukan upstream; layanan ini hanya mempercayai
// header yang sudah divalidasi gateway.
func TenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("company_id", c.GetHeader("X-Company-ID"))
		c.Set("actor_id", c.GetHeader("X-Actor-ID"))
		c.Next()
	}
}

func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")
		if rid == "" {
			rid = uuid.New().String()
			c.Header("X-Request-ID", rid)
		}

		actorID := c.GetString("actor_id")

		// Scoped logger yang sudah ditempeli metadata request
		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("actor_id", actorID),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithActorID(ctx, actorID)
		ctx = contextutil.WithLogger(ctx, reqLogger)

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
