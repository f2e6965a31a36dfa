package handlers

import (
	"errors"
	"net/http"

	"homehero/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service-layer errors to HTTP statuses. Unexpected errors
// echo the raw message with 500.
func respondError(c *gin.Context, err error) {
	var notFound services.NotFoundError
	var forbidden services.ForbiddenError
	var unavailable services.StoreUnavailableError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not connected"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
