package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/popsorte/draw-backend/internal/services"
)

// WinnerHandler handles winner-determination HTTP requests
type WinnerHandler struct {
	winnerService services.WinnerService
}

// NewWinnerHandler creates a new WinnerHandler
func NewWinnerHandler(winnerService services.WinnerService) *WinnerHandler {
	return &WinnerHandler{winnerService: winnerService}
}

// GetWinners handles GET /admin/winners
func (h *WinnerHandler) GetWinners(c *gin.Context) {
	winners := h.winnerService.GetWinners()
	c.JSON(http.StatusOK, gin.H{"winners": winners, "count": len(winners)})
}

// GetEntryStanding handles GET /admin/standing/:gameId
func (h *WinnerHandler) GetEntryStanding(c *gin.Context) {
	gameID := c.Param("gameId")
	if gameID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game ID is required"})
		return
	}
	entry, outcome, ok := h.winnerService.EntryStanding(gameID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No entry found for game ID " + gameID})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry, "outcome": outcome})
}
