package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetnatin/internal/errors"
	"budgetnatin/internal/logger"
	"budgetnatin/internal/response"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into the response envelope. AppErrors keep their status and message;
// unexpected errors are logged and answered with a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
			}
			response.Fail(c, appErr.StatusCode, appErr.Message)
			return
		}

		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		response.Fail(c, http.StatusInternalServerError, apperrors.ErrInternalServer.Message)
	}
}

// Recovery turns panics into a 500 envelope. The panic value is only echoed
// back to the client when exposeDetail is set.
func Recovery(exposeDetail bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Get().Errorw("panic recovered",
			"panic", recovered,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		if exposeDetail {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Envelope{
				Success: false,
				Message: apperrors.ErrInternalServer.Message,
				Data:    gin.H{"error": fmt.Sprint(recovered)},
			})
			return
		}
		response.Abort(c, http.StatusInternalServerError, apperrors.ErrInternalServer.Message)
	})
}

// NotFound answers unknown routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Fail(c, apperrors.ErrRouteNotFound.StatusCode, apperrors.ErrRouteNotFound.Message)
	}
}
