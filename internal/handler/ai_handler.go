package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prajwalnawale3040/trio-developers/internal/service"
)

// AIHandler proxies the content-generation endpoints to the provider.
// Provider failures surface as a generic 500; the detail stays in the log.
type AIHandler struct {
	service service.AIService
}

// NewAIHandler creates a new AIHandler
func NewAIHandler(s service.AIService) *AIHandler {
	return &AIHandler{service: s}
}

func (h *AIHandler) EnhanceMessage(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
		Tone string `json:"tone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	enhanced, err := h.service.EnhanceMessage(c.Request.Context(), req.Text, req.Tone)
	if err != nil {
		log.Printf("Error enhancing message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI Enhancement failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enhancedText": enhanced})
}

func (h *AIHandler) GenerateImage(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	imageURL, err := h.service.GenerateImage(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Printf("Error generating image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI Image Generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}

// RegisterAIRoutes registers AI routes
func (h *AIHandler) RegisterAIRoutes(rg *gin.RouterGroup) {
	aiGroup := rg.Group("/ai")
	{
		aiGroup.POST("/enhance", h.EnhanceMessage)
		aiGroup.POST("/generate-image", h.GenerateImage)
	}
}
