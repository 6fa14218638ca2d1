package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tourneycontrol/internal/handlers/business"
	"tourneycontrol/internal/models"
	dbconfig "tourneycontrol/pkg/config"
	"tourneycontrol/pkg/tournament"
)

// ExportSchemaVersion is the current planner export document version.
// Version 1 documents (bare tournament names, "name||network" identities)
// are still accepted on import.
const ExportSchemaVersion = 2

// manualFallbackNetwork is assigned to bare legacy identities whose network
// was never recorded.
const manualFallbackNetwork = "Manual"

// GradeSlotRequest represents the request body for creating/updating a grade slot
type GradeSlotRequest struct {
	UserID            string                               `json:"user_id" binding:"required"`
	Name              string                               `json:"name" binding:"required"`
	Days              []int                                `json:"days"`
	Config            *models.GradeConfig                  `json:"config"`
	ManualTimes       map[string]string                    `json:"manualTimes"`
	ManuallyAddedKeys []string                             `json:"manuallyAddedKeys"`
	ExcludedKeys      []string                             `json:"excludedKeys"`
	StatsCache        map[string]models.TournamentSnapshot `json:"statsCache"`
}

// ListGradeSlots returns all planner slots of a user
func ListGradeSlots(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	var slots []models.GradeSlot
	if err := dbconfig.DB.Where("user_id = ?", userID).Order("id").Find(&slots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetGradeSlot returns a specific planner slot by ID
func GetGradeSlot(c *gin.Context) {
	slot, ok := loadSlot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, slot)
}

// CreateGradeSlot creates a new planner slot
func CreateGradeSlot(c *gin.Context) {
	var request GradeSlotRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot := slotFromRequest(request)
	if err := dbconfig.DB.Create(&slot).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// UpdateGradeSlot updates an existing planner slot
func UpdateGradeSlot(c *gin.Context) {
	slot, ok := loadSlot(c)
	if !ok {
		return
	}

	var request GradeSlotRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fresh := slotFromRequest(request)
	fresh.ID = slot.ID
	fresh.CreatedAt = slot.CreatedAt
	if err := dbconfig.DB.Save(&fresh).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fresh)
}

// DeleteGradeSlot deletes a planner slot
func DeleteGradeSlot(c *gin.Context) {
	slot, ok := loadSlot(c)
	if !ok {
		return
	}
	if err := dbconfig.DB.Delete(&slot).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Grade slot deleted successfully"})
}

// GetGradeSlotRows evaluates a slot against the current aggregates and
// returns the resulting schedule rows. The slot's snapshot cache is
// refreshed and persisted as a side effect so exports stay current.
func GetGradeSlotRows(c *gin.Context) {
	slot, ok := loadSlot(c)
	if !ok {
		return
	}
	scope, ok := scopeFromQuery(c)
	if !ok {
		return
	}

	var aggs []models.TournamentAgg
	err := dbconfig.DB.
		Where("user_id = ? AND dataset_id = ?", scope.UserID, scope.DatasetID).
		Find(&aggs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	business.RefreshStatsCache(&slot, aggs)
	rows := business.BuildGradeRows(slot, aggs)

	if err := dbconfig.DB.Save(&slot).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rows":  rows,
		"count": len(rows),
	})
}

// gradeExportDoc is the planner export wire document.
type gradeExportDoc struct {
	SchemaVersion int                `json:"schemaVersion"`
	ExportedAt    string             `json:"exportedAt"`
	Slots         []models.GradeSlot `json:"slots"`
}

// ExportGradeSlots serializes every slot of a user into a portable
// document the planner frontend can download and later re-import.
func ExportGradeSlots(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	var slots []models.GradeSlot
	if err := dbconfig.DB.Where("user_id = ?", userID).Order("id").Find(&slots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gradeExportDoc{
		SchemaVersion: ExportSchemaVersion,
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
		Slots:         slots,
	})
}

// gradeSlotImport tolerates both current and version 1 export shapes.
// Legacy documents carried bare names or "name||network" identities and
// older config key spellings; everything is normalized on the way in.
type gradeSlotImport struct {
	Name               string                               `json:"name"`
	Days               []int                                `json:"days"`
	Config             json.RawMessage                      `json:"config"`
	ManualTimes        map[string]string                    `json:"manualTimes"`
	ManuallyAddedKeys  []string                             `json:"manuallyAddedKeys"`
	ManuallyAddedNames []string                             `json:"manuallyAddedNames"`
	ExcludedKeys       []string                             `json:"excludedKeys"`
	ExcludedNames      []string                             `json:"excludedNames"`
	StatsCache         map[string]models.TournamentSnapshot `json:"statsCache"`
}

// GradeImportRequest represents the request body for importing a planner export
type GradeImportRequest struct {
	UserID string            `json:"user_id" binding:"required"`
	Mode   string            `json:"mode"`
	Slots  []gradeSlotImport `json:"slots"`
}

// ImportGradeSlots restores planner slots from an export document. Mode
// "replace" drops the user's existing slots first; "append" (the default)
// adds alongside them.
func ImportGradeSlots(c *gin.Context) {
	var request GradeImportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode := request.Mode
	if mode == "" {
		mode = "append"
	}
	if mode != "replace" && mode != "append" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be replace or append"})
		return
	}

	if mode == "replace" {
		if err := dbconfig.DB.Where("user_id = ?", request.UserID).
			Delete(&models.GradeSlot{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	imported := 0
	for _, in := range request.Slots {
		slot, err := normalizeImportedSlot(in, request.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := dbconfig.DB.Create(&slot).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		imported++
	}

	c.JSON(http.StatusOK, gin.H{
		"imported": imported,
		"mode":     mode,
	})
}

func loadSlot(c *gin.Context) (models.GradeSlot, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return models.GradeSlot{}, false
	}
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return models.GradeSlot{}, false
	}

	var slot models.GradeSlot
	if err := dbconfig.DB.Where("id = ? AND user_id = ?", id, userID).First(&slot).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return models.GradeSlot{}, false
	}
	return slot, true
}

func slotFromRequest(request GradeSlotRequest) models.GradeSlot {
	config := models.DefaultGradeConfig()
	if request.Config != nil {
		config = *request.Config
	}
	slot := models.GradeSlot{
		UserID:            request.UserID,
		Name:              request.Name,
		Days:              request.Days,
		Config:            config,
		ManualTimes:       request.ManualTimes,
		ManuallyAddedKeys: request.ManuallyAddedKeys,
		ExcludedKeys:      request.ExcludedKeys,
		StatsCache:        request.StatsCache,
	}
	if slot.Days == nil {
		slot.Days = []int{}
	}
	if slot.ManualTimes == nil {
		slot.ManualTimes = map[string]string{}
	}
	if slot.ManuallyAddedKeys == nil {
		slot.ManuallyAddedKeys = []string{}
	}
	if slot.ExcludedKeys == nil {
		slot.ExcludedKeys = []string{}
	}
	if slot.StatsCache == nil {
		slot.StatsCache = map[string]models.TournamentSnapshot{}
	}
	return slot
}

func normalizeImportedSlot(in gradeSlotImport, userID string) (models.GradeSlot, error) {
	config, err := parseImportedConfig(in.Config)
	if err != nil {
		return models.GradeSlot{}, err
	}

	added := normalizeKeyList(append(in.ManuallyAddedKeys, in.ManuallyAddedNames...))
	excluded := normalizeKeyList(append(in.ExcludedKeys, in.ExcludedNames...))

	manualTimes := make(map[string]string, len(in.ManualTimes))
	for key, t := range in.ManualTimes {
		manualTimes[tournament.NormalizeLegacyKey(key, manualFallbackNetwork)] = t
	}

	cache := make(map[string]models.TournamentSnapshot, len(in.StatsCache))
	for key, snap := range in.StatsCache {
		normalized := tournament.NormalizeLegacyKey(key, manualFallbackNetwork)
		snap.Key = normalized
		if snap.Network == "" {
			network, _ := tournament.ParseKey(normalized)
			snap.Network = network
		}
		cache[normalized] = snap
	}

	days := in.Days
	if days == nil {
		days = []int{}
	}

	return models.GradeSlot{
		UserID:            userID,
		Name:              in.Name,
		Days:              days,
		Config:            config,
		ManualTimes:       manualTimes,
		ManuallyAddedKeys: added,
		ExcludedKeys:      excluded,
		StatsCache:        cache,
	}, nil
}

// parseImportedConfig reads a config object, folding in the version 1 key
// spellings for network and speed selections.
func parseImportedConfig(raw json.RawMessage) (models.GradeConfig, error) {
	config := models.DefaultGradeConfig()
	if len(raw) == 0 {
		return config, nil
	}
	if err := json.Unmarshal(raw, &config); err != nil {
		return config, err
	}

	var legacy struct {
		Networks []string `json:"selNetwork"`
		Speeds   []string `json:"selVelocidade"`
	}
	if err := json.Unmarshal(raw, &legacy); err == nil {
		if len(config.Networks) == 0 && len(legacy.Networks) > 0 {
			config.Networks = legacy.Networks
		}
		if len(config.Speeds) == 0 && len(legacy.Speeds) > 0 {
			config.Speeds = legacy.Speeds
		}
	}
	if config.Networks == nil {
		config.Networks = []string{}
	}
	if config.Speeds == nil {
		config.Speeds = []string{}
	}
	return config, nil
}

func normalizeKeyList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		key := tournament.NormalizeLegacyKey(v, manualFallbackNetwork)
		if key == tournament.MakeKey(manualFallbackNetwork, "") || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}
