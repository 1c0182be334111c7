package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"go.uber.org/zap"
)

// Recovery turns a panic into the generic 500 envelope. Panic details are
// logged, never sent to the client.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestID(c)),
			zap.Stack("stack"),
		)
		apierrors.InternalError(c, "")
	})
}
