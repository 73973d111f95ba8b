package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/popsorte/draw-backend/internal/drawcal"
	"github.com/popsorte/draw-backend/internal/services"
)

// ScheduleHandler handles draw-schedule HTTP requests
type ScheduleHandler struct {
	drawService services.DrawService
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(drawService services.DrawService) *ScheduleHandler {
	return &ScheduleHandler{drawService: drawService}
}

// GetCurrentSchedule handles GET /schedule/current
func (h *ScheduleHandler) GetCurrentSchedule(c *gin.Context) {
	info, err := h.drawService.CurrentSchedule()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve current draw: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"schedule":   info.Schedule,
		"concurso":   info.Concurso,
		"serverTime": h.drawService.Now(),
	})
}

// GetScheduleByDate handles GET /schedule/:date
func (h *ScheduleHandler) GetScheduleByDate(c *gin.Context) {
	// The date names a civil day in the draw calendar's fixed zone;
	// parsing it in UTC would shift it onto the previous civil day.
	date, err := time.ParseInLocation("2006-01-02", c.Param("date"), drawcal.BRT)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (YYYY-MM-DD)"})
		return
	}
	info, err := h.drawService.ScheduleForDate(date)
	if err != nil {
		if errors.Is(err, services.ErrNotADrawDay) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve schedule: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, info)
}
