package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourneycontrol/internal/handlers/business"
	"tourneycontrol/internal/models"
	dbconfig "tourneycontrol/pkg/config"
)

// DatasetRequest represents the request body for creating/updating a dataset
type DatasetRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

// ListDatasets returns all datasets of a user
func ListDatasets(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	var datasets []models.Dataset
	if err := dbconfig.DB.Where("user_id = ?", userID).Order("id").Find(&datasets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, datasets)
}

// CreateDataset creates a new dataset
func CreateDataset(c *gin.Context) {
	var request DatasetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dataset := models.Dataset{
		UserID: request.UserID,
		Name:   request.Name,
	}
	if err := dbconfig.DB.Create(&dataset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dataset)
}

// UpdateDataset renames an existing dataset
func UpdateDataset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request DatasetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dataset models.Dataset
	if err := dbconfig.DB.Where("id = ? AND user_id = ?", id, request.UserID).First(&dataset).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	dataset.Name = request.Name
	if err := dbconfig.DB.Save(&dataset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dataset)
}

// DeleteDataset deletes a dataset along with every raw entry and aggregate
// imported under it.
func DeleteDataset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	var dataset models.Dataset
	if err := dbconfig.DB.Where("id = ? AND user_id = ?", id, userID).First(&dataset).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	datasetID := dataset.ID
	if err := business.ClearScope(userID, &datasetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := dbconfig.DB.Delete(&dataset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dataset and associated tournament data deleted successfully"})
}
