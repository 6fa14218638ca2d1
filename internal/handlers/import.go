package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"tourneycontrol/internal/handlers/business"
	"tourneycontrol/internal/models"
	dbconfig "tourneycontrol/pkg/config"
	"tourneycontrol/pkg/tournament"
)

// AggregatePublisher, when set by the API entrypoint, routes aggregation
// work through the queue so a single worker serializes aggregate writes.
// Nil means no broker is configured and aggregation runs inline.
var AggregatePublisher *dbconfig.Publisher

// ImportFile is one CSV file body in an import request.
type ImportFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ImportRequest represents the request body for importing tournament CSVs
type ImportRequest struct {
	UserID    string       `json:"user_id" binding:"required"`
	DatasetID uint         `json:"dataset_id"`
	Mode      string       `json:"mode"`
	Files     []ImportFile `json:"files" binding:"required"`
}

// ImportTournaments ingests one or more CSV exports into the caller's
// scope. Mode "replace" (the default) clears the scope first; "append"
// merges into existing aggregates. Files that fail to parse contribute
// nothing but never abort the sibling files.
func ImportTournaments(c *gin.Context) {
	var request ImportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode := request.Mode
	if mode == "" {
		mode = "replace"
	}
	if mode != "replace" && mode != "append" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be replace or append"})
		return
	}

	if mode == "replace" {
		if err := business.ClearScope(request.UserID, &request.DatasetID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	var entries []models.TournamentRaw
	skipped := 0
	filesParsed := 0
	for _, file := range request.Files {
		batch, s := tournament.BuildBatch(file.Content, request.UserID, request.DatasetID)
		skipped += s
		if len(batch) == 0 && s == 0 {
			log.WithField("file", file.Name).Warn("Import file yielded no rows")
			continue
		}
		entries = append(entries, batch...)
		filesParsed++
	}

	sent, err := business.InsertRawChunks(entries, func(done, total int) {
		Progress.Broadcast(ImportProgress{
			UserID: request.UserID,
			Sent:   done,
			Total:  total,
			Done:   done == total,
		})
	})
	if err != nil {
		// Earlier chunks are already committed, so the scope is partial.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "Import partially applied: " + err.Error(),
			"imported": sent,
			"advice":   "retry the import in replace mode",
		})
		return
	}

	job := business.AggregateJob{UserID: request.UserID, DatasetID: request.DatasetID}
	if mode == "append" {
		job.Keys = uniqueKeys(entries)
	}

	if AggregatePublisher != nil {
		if err := AggregatePublisher.Publish(dbconfig.AggregateQueue, job); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{
			"imported":     sent,
			"skipped_rows": skipped,
			"files_parsed": filesParsed,
			"aggregation":  "queued",
		})
		return
	}

	if mode == "append" {
		err = business.ApplyEntries(entries)
	} else {
		err = business.RecomputeScope(request.UserID, request.DatasetID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imported":     sent,
		"skipped_rows": skipped,
		"files_parsed": filesParsed,
		"aggregation":  "done",
	})
}

func uniqueKeys(entries []models.TournamentRaw) []string {
	seen := make(map[string]bool, len(entries))
	var keys []string
	for _, e := range entries {
		if !seen[e.TournamentKey] {
			seen[e.TournamentKey] = true
			keys = append(keys, e.TournamentKey)
		}
	}
	return keys
}
