package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/popsorte/draw-backend/internal/services"
)

// EntryHandler handles game-entry HTTP requests
type EntryHandler struct {
	entryService services.EntryService
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryService services.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// SubmitEntry handles POST /entries
func (h *EntryHandler) SubmitEntry(c *gin.Context) {
	var req services.SubmitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.entryService.SubmitEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEntry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create ticket: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}
