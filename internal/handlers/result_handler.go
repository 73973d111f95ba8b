package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/popsorte/draw-backend/internal/services"
)

// ResultHandler handles published-result HTTP requests
type ResultHandler struct {
	resultService services.ResultService
}

// NewResultHandler creates a new ResultHandler
func NewResultHandler(resultService services.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// GetRecentResults handles GET /results
func (h *ResultHandler) GetRecentResults(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	results := h.resultService.RecentResults(limit)
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// RefreshSheets handles POST /admin/refresh
func (h *ResultHandler) RefreshSheets(c *gin.Context) {
	stats, err := h.resultService.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to refresh sheets: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
