package middleware

import (
	"fmt"
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery converts panics into the 500 error envelope instead of
// crashing the process. The panic message is surfaced when available.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	l := logger.Named("recovery")

	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		message := "An unexpected error occurred"
		if recovered != nil {
			message = fmt.Sprintf("%v", recovered)
		}

		l.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)

		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, message)
		c.Abort()
	})
}
