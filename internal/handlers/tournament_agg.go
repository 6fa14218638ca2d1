package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourneycontrol/internal/handlers/business"
	"tourneycontrol/internal/models"
	dbconfig "tourneycontrol/pkg/config"
)

// ListTournaments returns the aggregate records of a scope, ordered by name.
// An optional search query narrows by tournament name substring.
func ListTournaments(c *gin.Context) {
	scope, ok := scopeFromQuery(c)
	if !ok {
		return
	}

	query := dbconfig.DB.
		Where("user_id = ? AND dataset_id = ?", scope.UserID, scope.DatasetID).
		Order("name")
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var aggs []models.TournamentAgg
	if err := query.Find(&aggs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, aggs)
}

// GetTournamentCounts reports raw and aggregate row counts for a scope.
func GetTournamentCounts(c *gin.Context) {
	scope, ok := scopeFromQuery(c)
	if !ok {
		return
	}

	var rawCount, aggCount int64
	err := dbconfig.DB.Model(&models.TournamentRaw{}).
		Where("user_id = ? AND dataset_id = ?", scope.UserID, scope.DatasetID).
		Count(&rawCount).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	err = dbconfig.DB.Model(&models.TournamentAgg{}).
		Where("user_id = ? AND dataset_id = ?", scope.UserID, scope.DatasetID).
		Count(&aggCount).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"raw_count":       rawCount,
		"aggregate_count": aggCount,
	})
}

// DeleteTournaments clears all raw entries and aggregates of a scope.
func DeleteTournaments(c *gin.Context) {
	scope, ok := scopeFromQuery(c)
	if !ok {
		return
	}

	if err := business.ClearScope(scope.UserID, &scope.DatasetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tournament data deleted successfully"})
}

// GetFilterOptions returns the distinct networks and speed tags present in
// a scope, for populating the explorer's filter dropdowns.
func GetFilterOptions(c *gin.Context) {
	scope, ok := scopeFromQuery(c)
	if !ok {
		return
	}

	var networks, speeds []string
	err := dbconfig.DB.Model(&models.TournamentAgg{}).
		Where("user_id = ? AND dataset_id = ?", scope.UserID, scope.DatasetID).
		Distinct("network").
		Order("network").
		Pluck("network", &networks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	err = dbconfig.DB.Model(&models.TournamentAgg{}).
		Where("user_id = ? AND dataset_id = ?", scope.UserID, scope.DatasetID).
		Distinct("speed").
		Order("speed").
		Pluck("speed", &speeds).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"networks": networks,
		"speeds":   speeds,
	})
}
