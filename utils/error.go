package utils

import (
	"net/http"

	"travelhub/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware that turns panics into the standard envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.APIResponse{
					Success: false,
					Message: InternalErrorMessage,
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a failure envelope with the given status.
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, models.APIResponse{Success: false, Message: message})
}
