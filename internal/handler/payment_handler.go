package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/service"
)

// PaymentHandler handles payment claim requests
type PaymentHandler struct {
	service service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req model.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	payment, err := h.service.RecordClaim(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error recording payment claim: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": payment.ID})
}

// RegisterPaymentRoutes registers payment routes
func (h *PaymentHandler) RegisterPaymentRoutes(rg *gin.RouterGroup) {
	paymentGroup := rg.Group("/payments")
	{
		paymentGroup.POST("/verify", h.VerifyPayment)
	}
}
