package handlers

import (
	"context"
	"net/http"
	"time"

	"homehero/database"

	"github.com/gin-gonic/gin"
)

// Health handles GET /api/health, reporting store connectivity.
func Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "connected"
	if database.MongoClient == nil || database.MongoClient.Ping(ctx, nil) != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
