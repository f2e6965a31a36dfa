package handlers

import (
	"net/http"

	"homehero/middleware"
	"homehero/services/stats"
	"homehero/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler exposes the provider statistics endpoint.
type StatsHandler struct {
	Stats stats.StatsService
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc stats.StatsService) *StatsHandler {
	return &StatsHandler{Stats: svc}
}

// ProviderStats handles GET /api/provider/stats/:email. Providers may only
// view their own statistics; the report is serialized directly as the body.
func (h *StatsHandler) ProviderStats(c *gin.Context) {
	email := c.Param("email")
	if middleware.UserEmail(c) != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: You can only access your own statistics"})
		return
	}

	report, err := h.Stats.Compute(email)
	if err != nil {
		utils.GetLogger().Error("Provider stats error", zap.String("email", email), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
