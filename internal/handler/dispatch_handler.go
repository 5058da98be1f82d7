package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prajwalnawale3040/trio-developers/internal/dispatch"
)

// DispatchHandler exposes control over the background dispatcher
type DispatchHandler struct {
	sched *dispatch.Scheduler
}

// NewDispatchHandler creates a new DispatchHandler
func NewDispatchHandler(sched *dispatch.Scheduler) *DispatchHandler {
	return &DispatchHandler{sched: sched}
}

func (h *DispatchHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"running": h.sched.IsRunning()})
}

func (h *DispatchHandler) Start(c *gin.Context) {
	h.sched.Start()
	c.JSON(http.StatusOK, gin.H{"running": h.sched.IsRunning()})
}

func (h *DispatchHandler) Stop(c *gin.Context) {
	h.sched.Stop()
	c.JSON(http.StatusOK, gin.H{"running": h.sched.IsRunning()})
}

// RegisterDispatchRoutes registers dispatcher control routes
func (h *DispatchHandler) RegisterDispatchRoutes(rg *gin.RouterGroup, mws ...gin.HandlerFunc) {
	dispatchGroup := rg.Group("/dispatch")
	dispatchGroup.Use(mws...)
	{
		dispatchGroup.GET("/status", h.Status)
		dispatchGroup.POST("/start", h.Start)
		dispatchGroup.POST("/stop", h.Stop)
	}
}
