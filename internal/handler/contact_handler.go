package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/service"
)

// ContactHandler handles contact related requests
type ContactHandler struct {
	service service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{service: s}
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.service.ListContacts(c.Request.Context())
	if err != nil {
		log.Printf("Error listing contacts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contacts"})
		return
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req model.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	contact, err := h.service.CreateContact(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error creating contact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": contact.ID})
}

func (h *ContactHandler) BulkCreateContacts(c *gin.Context) {
	var req model.BulkCreateContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	count, err := h.service.BulkCreateContacts(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error bulk creating contacts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import contacts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// RegisterContactRoutes registers contact routes
func (h *ContactHandler) RegisterContactRoutes(rg *gin.RouterGroup) {
	contactGroup := rg.Group("/contacts")
	{
		contactGroup.GET("", h.ListContacts)
		contactGroup.POST("", h.CreateContact)
		contactGroup.POST("/bulk", h.BulkCreateContacts)
	}
}
