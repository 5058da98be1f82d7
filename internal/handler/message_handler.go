package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/service"
)

const defaultHistoryLimit = 100

// MessageHandler handles campaign send and history requests
type MessageHandler struct {
	service service.CampaignService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(s service.CampaignService) *MessageHandler {
	return &MessageHandler{service: s}
}

func (h *MessageHandler) History(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= defaultHistoryLimit {
			limit = v
		}
	}

	history, err := h.service.History(c.Request.Context(), limit)
	if err != nil {
		log.Printf("Error fetching message history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve message history"})
		return
	}
	if history == nil {
		history = []model.HistoryEntry{}
	}
	c.JSON(http.StatusOK, history)
}

func (h *MessageHandler) SendCampaign(c *gin.Context) {
	var req model.SendCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	count, err := h.service.SendCampaign(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAmbiguousTarget),
			errors.Is(err, service.ErrNoTarget),
			errors.Is(err, service.ErrEmptyBatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error enqueuing campaign: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue messages"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Messages queued successfully",
		"count":   count,
	})
}

// RegisterMessageRoutes registers message routes
func (h *MessageHandler) RegisterMessageRoutes(rg *gin.RouterGroup) {
	messageGroup := rg.Group("/messages")
	{
		messageGroup.GET("/history", h.History)
		messageGroup.POST("/send", h.SendCampaign)
	}
}
