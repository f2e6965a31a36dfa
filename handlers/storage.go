package handlers

import (
	"net/http"

	"homehero/services/storage"
	"homehero/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler exposes the listing-image upload endpoint.
type StorageHandler struct {
	Storage storage.StorageService
}

// NewStorageHandler creates a StorageHandler.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Storage: svc}
}

// UploadImage handles POST /api/uploads. It expects a multipart "image" part
// and responds with the uploaded file's public URL.
func (h *StorageHandler) UploadImage(c *gin.Context) {
	logger := utils.GetLogger()

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadImage(c.Request.Context(), file, "services")
	if err != nil {
		logger.Error("Image upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
