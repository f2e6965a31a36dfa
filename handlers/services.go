package handlers

import (
	"net/http"
	"strconv"

	"homehero/database/repository/service"
	"homehero/middleware"
	"homehero/models"
	"homehero/services/catalog"
	"homehero/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler exposes the catalog endpoints.
type ServiceHandler struct {
	Catalog catalog.CatalogService
}

// NewServiceHandler creates a ServiceHandler.
func NewServiceHandler(svc catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{Catalog: svc}
}

// ListServices handles GET /api/services with optional minPrice, maxPrice and
// search query parameters.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	logger := utils.GetLogger()

	var filter serviceRepo.SearchFilter
	if v := c.Query("minPrice"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &min
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &max
		}
	}
	filter.Search = c.Query("search")

	results, err := h.Catalog.Search(filter)
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		// Keep the browsing path alive: unknown errors also degrade to empty.
		c.JSON(http.StatusOK, []models.Service{})
		return
	}
	c.JSON(http.StatusOK, results)
}

// TopRatedServices handles GET /api/services/top-rated.
func (h *ServiceHandler) TopRatedServices(c *gin.Context) {
	results, err := h.Catalog.TopRated()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetService handles GET /api/services/:id.
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.Catalog.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetProviderServices handles GET /api/services/provider/:email. Providers may
// only list their own services.
func (h *ServiceHandler) GetProviderServices(c *gin.Context) {
	email := c.Param("email")
	if middleware.UserEmail(c) != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: You can only access your own services"})
		return
	}

	results, err := h.Catalog.GetByProvider(email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// CreateService handles POST /api/services. The provider email is always the
// resolved identity, regardless of the body.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	logger := utils.GetLogger()

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		logger.Error("Invalid create service request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Catalog.Create(middleware.UserEmail(c), &svc)
	if err != nil {
		logger.Error("Failed to create service", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateService handles PATCH /api/services/:id.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Catalog.Update(c.Param("id"), middleware.UserEmail(c), updates); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully"})
}

// DeleteService handles DELETE /api/services/:id.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.Catalog.Delete(c.Param("id"), middleware.UserEmail(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// AddReview handles POST /api/services/:id/reviews. The review author is the
// resolved identity.
func (h *ServiceHandler) AddReview(c *gin.Context) {
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Catalog.AddReview(c.Param("id"), middleware.UserEmail(c), req.Rating, req.Comment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review added successfully"})
}
