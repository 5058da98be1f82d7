package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/service"
)

// BatchHandler handles batch related requests
type BatchHandler struct {
	service service.BatchService
}

// NewBatchHandler creates a new BatchHandler
func NewBatchHandler(s service.BatchService) *BatchHandler {
	return &BatchHandler{service: s}
}

func (h *BatchHandler) ListBatches(c *gin.Context) {
	batches, err := h.service.ListBatches(c.Request.Context())
	if err != nil {
		log.Printf("Error listing batches: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve batches"})
		return
	}
	if batches == nil {
		batches = []model.Batch{}
	}
	c.JSON(http.StatusOK, batches)
}

func (h *BatchHandler) CreateBatch(c *gin.Context) {
	var req model.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	batch, err := h.service.CreateBatch(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrBatchNameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Batch name already exists"})
			return
		}
		log.Printf("Error creating batch: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create batch"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": batch.ID})
}

// RegisterBatchRoutes registers batch routes
func (h *BatchHandler) RegisterBatchRoutes(rg *gin.RouterGroup) {
	batchGroup := rg.Group("/batches")
	{
		batchGroup.GET("", h.ListBatches)
		batchGroup.POST("", h.CreateBatch)
	}
}
