package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/popsorte/draw-backend/internal/config"
	"github.com/popsorte/draw-backend/internal/handlers"
	"github.com/popsorte/draw-backend/internal/middleware"
)

// HandlerDependencies collects the handlers the router wires up
type HandlerDependencies struct {
	ScheduleHandler *handlers.ScheduleHandler
	EntryHandler    *handlers.EntryHandler
	ResultHandler   *handlers.ResultHandler
	WinnerHandler   *handlers.WinnerHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		schedule := public.Group("/schedule")
		{
			schedule.GET("/current", deps.ScheduleHandler.GetCurrentSchedule)
			schedule.GET("/:date", deps.ScheduleHandler.GetScheduleByDate)
		}

		public.GET("/results", deps.ResultHandler.GetRecentResults)
		public.POST("/entries", deps.EntryHandler.SubmitEntry)
	}

	// Operator routes
	admin := router.Group("/api/v1/admin")
	{
		admin.GET("/winners", deps.WinnerHandler.GetWinners)
		admin.GET("/standing/:gameId", deps.WinnerHandler.GetEntryStanding)
		admin.POST("/refresh", deps.ResultHandler.RefreshSheets)
	}

	return router
}
