package routes

import (
	"github.com/gin-gonic/gin"

	"tourneycontrol/internal/handlers"
	"tourneycontrol/internal/middleware"
)

// SetupTournamentRoutes sets up all routes related to tournament data
func SetupTournamentRoutes(r *gin.Engine) {
	tournaments := r.Group("/tournaments")
	{
		tournaments.GET("", handlers.ListTournaments)
		tournaments.GET("/counts", handlers.GetTournamentCounts)
		tournaments.GET("/options", handlers.GetFilterOptions)
		tournaments.DELETE("", handlers.DeleteTournaments)
		tournaments.POST("/consolidate", handlers.ConsolidateTournaments)
	}

	// Imports move whole CSV exports per request, so a tight per-IP limit
	// keeps one client from monopolizing the insert path.
	importGroup := r.Group("/tournaments")
	importGroup.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: 0.5, // 1 request every 2 seconds
		Burst:             1,
	}))
	importGroup.POST("/import", handlers.ImportTournaments)

	r.GET("/ws/import-progress", handlers.ImportProgressWS)
}
