package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "skyvoyager/internal/errors"
	"skyvoyager/internal/logger"
)

// ErrorHandler renders the last error attached to the context with c.Error
// when the handler did not write a response itself. Internal details are
// logged, never returned.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"request_id", c.GetString(requestIDKey),
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}
