package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Scope identifies whose data a request operates on. Every tournament
// endpoint is scoped this way; there is no cross-user access.
type Scope struct {
	UserID    string
	DatasetID uint
}

// scopeFromQuery reads user_id and dataset_id query params. ok=false means
// the handler already wrote a 400 response.
func scopeFromQuery(c *gin.Context) (Scope, bool) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(400, gin.H{"error": "user_id is required"})
		return Scope{}, false
	}
	datasetID := uint(0)
	if raw := c.Query("dataset_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			c.JSON(400, gin.H{"error": "Invalid dataset_id format"})
			return Scope{}, false
		}
		datasetID = uint(id)
	}
	return Scope{UserID: userID, DatasetID: datasetID}, true
}
