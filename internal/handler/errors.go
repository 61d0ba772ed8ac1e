package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"region-directory/internal/directory"
	"region-directory/internal/validation"
	"region-directory/pkg/model"
)

// Fixed client-facing messages
const (
	msgUnsupportedMediaType = "Server supports only application/json"
	msgUnformedJSON         = "Unformed JSON in request body"
	msgRouteNotFound        = "Exception handler not found"
	msgInternal             = "Internal server error"
)

// abortWithMessage writes an error body carrying a single message
func abortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, model.ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Message:   message,
	})
}

// respondError maps err onto the error body, logging anything unexpected
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var (
		validationErrs validation.Errors
		notFound       *directory.RecordNotFoundError
		duplicate      *directory.DuplicateUniqueValuesError
	)

	switch {
	case errors.As(err, &validationErrs):
		c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
			Timestamp: time.Now(),
			Status:    http.StatusBadRequest,
			Errors:    validationErrs,
		})
	case errors.As(err, &notFound):
		abortWithMessage(c, http.StatusNotFound, notFound.Error())
	case errors.As(err, &duplicate):
		c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
			Timestamp:      time.Now(),
			Status:         http.StatusBadRequest,
			Message:        duplicate.Error(),
			ViolatedFields: duplicate.ViolatedFields,
		})
	default:
		_ = c.Error(err)
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		abortWithMessage(c, http.StatusInternalServerError, msgInternal)
	}
}
