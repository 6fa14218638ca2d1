package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourneycontrol/internal/models"
	dbconfig "tourneycontrol/pkg/config"
	"tourneycontrol/pkg/tournament"
)

// ConsolidateRequest represents the request body for consolidating a
// filtered tournament selection into one summary card.
type ConsolidateRequest struct {
	UserID       string                 `json:"user_id" binding:"required"`
	DatasetID    uint                   `json:"dataset_id"`
	Filters      tournament.FilterState `json:"filters"`
	Keywords     []string               `json:"keywords"`
	SelectedKeys []string               `json:"selected_keys"`
}

// ConsolidateTournaments blends the aggregates matching the request's
// selection into one games-weighted summary. Selection precedence: an
// explicit key list restricts first, then include keywords, then the
// explorer filter state. A selection matching nothing yields a null
// summary, not a zeroed one.
func ConsolidateTournaments(c *gin.Context) {
	var request ConsolidateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var aggs []models.TournamentAgg
	err := dbconfig.DB.
		Where("user_id = ? AND dataset_id = ?", request.UserID, request.DatasetID).
		Find(&aggs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	selected := make(map[string]bool, len(request.SelectedKeys))
	for _, k := range request.SelectedKeys {
		selected[k] = true
	}

	rows := make([]models.TournamentAgg, 0)
	sampleGames := 0
	for _, rec := range aggs {
		if len(selected) > 0 && !selected[rec.TournamentKey] {
			continue
		}
		if !tournament.MatchesKeywords(rec, request.Keywords) {
			continue
		}
		if !request.Filters.Matches(rec) {
			continue
		}
		rows = append(rows, rec)
		sampleGames += rec.GamesCount
	}

	summary := tournament.Consolidate(rows, tournament.LabelContext{
		Keywords:     request.Keywords,
		SelectedKeys: request.SelectedKeys,
	})

	c.JSON(http.StatusOK, gin.H{
		"summary":       summary,
		"rows":          rows,
		"sample_games":  sampleGames,
		"sample_unique": len(rows),
	})
}
