package routes

import (
	"github.com/gin-gonic/gin"

	"tourneycontrol/internal/handlers"
)

// SetupDatasetRoutes sets up all routes related to dataset management
func SetupDatasetRoutes(r *gin.Engine) {
	datasets := r.Group("/datasets")
	{
		datasets.GET("", handlers.ListDatasets)
		datasets.POST("", handlers.CreateDataset)
		datasets.PUT("/:id", handlers.UpdateDataset)
		datasets.DELETE("/:id", handlers.DeleteDataset)
	}
}
