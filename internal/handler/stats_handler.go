package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prajwalnawale3040/trio-developers/internal/service"
)

// StatsHandler serves the dashboard aggregate counts
type StatsHandler struct {
	service service.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		log.Printf("Error collecting stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RegisterStatsRoutes registers stats routes
func (h *StatsHandler) RegisterStatsRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.GetStats)
}
