package routes

import (
	"github.com/gin-gonic/gin"

	"tourneycontrol/internal/handlers"
)

// SetupGradeSlotRoutes sets up all routes related to planner slot management
func SetupGradeSlotRoutes(r *gin.Engine) {
	slots := r.Group("/grade-slots")
	{
		slots.GET("", handlers.ListGradeSlots)
		slots.GET("/export", handlers.ExportGradeSlots)
		slots.POST("/import", handlers.ImportGradeSlots)
		slots.GET("/:id", handlers.GetGradeSlot)
		slots.GET("/:id/rows", handlers.GetGradeSlotRows)
		slots.POST("", handlers.CreateGradeSlot)
		slots.PUT("/:id", handlers.UpdateGradeSlot)
		slots.DELETE("/:id", handlers.DeleteGradeSlot)
	}
}
