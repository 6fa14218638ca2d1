package business

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	log "github.com/sirupsen/logrus"

	"tourneycontrol/internal/models"
	dbconfig "tourneycontrol/pkg/config"
	"tourneycontrol/pkg/tournament"
)

// ImportChunkSize bounds each raw-entry insert to respect request-size
// limits at the store. Chunks are atomic individually, never across chunks.
const ImportChunkSize = 500

// AggregateJob asks the worker to rebuild the aggregates for a set of
// tournament identities from the raw store. An empty Keys slice means the
// whole owner/dataset scope.
type AggregateJob struct {
	UserID    string   `json:"user_id"`
	DatasetID uint     `json:"dataset_id"`
	Keys      []string `json:"keys,omitempty"`
}

// InsertRawChunks writes a raw-entry batch in fixed-size chunks. A chunk
// failure aborts the remainder: entries already sent stay committed (the
// store is atomic per chunk, not across chunks), so the caller must treat
// a returned error as "partial state, retry with a full replace".
// The progress callback, when non-nil, fires after every chunk.
func InsertRawChunks(entries []models.TournamentRaw, progress func(sent, total int)) (int, error) {
	total := len(entries)
	sent := 0
	for start := 0; start < total; start += ImportChunkSize {
		end := start + ImportChunkSize
		if end > total {
			end = total
		}
		chunk := entries[start:end]
		if err := dbconfig.DB.Create(&chunk).Error; err != nil {
			return sent, fmt.Errorf("insert chunk %d-%d: %w", start, end, err)
		}
		sent += len(chunk)
		if progress != nil {
			progress(sent, total)
		}
	}
	return sent, nil
}

// ClearScope purges raw entries and aggregates for an owner, optionally
// narrowed to one dataset. Used by replace imports and explicit deletes.
func ClearScope(userID string, datasetID *uint) error {
	raw := dbconfig.DB.Where("user_id = ?", userID)
	agg := dbconfig.DB.Where("user_id = ?", userID)
	if datasetID != nil {
		raw = raw.Where("dataset_id = ?", *datasetID)
		agg = agg.Where("dataset_id = ?", *datasetID)
	}
	if err := raw.Delete(&models.TournamentRaw{}).Error; err != nil {
		return fmt.Errorf("clear raw entries: %w", err)
	}
	if err := agg.Delete(&models.TournamentAgg{}).Error; err != nil {
		return fmt.Errorf("clear aggregates: %w", err)
	}
	return nil
}

// ApplyEntries merges freshly imported raw entries into the existing
// aggregates of their scope by running-sum update. This is the inline
// (no queue) append path; math lives in the tournament package.
func ApplyEntries(entries []models.TournamentRaw) error {
	for key, group := range tournament.PartitionByKey(entries) {
		first := group[0]
		existing, err := findAggregate(first.UserID, first.DatasetID, key)
		if err != nil {
			return err
		}
		merged := tournament.Aggregate(existing, group)
		if err := saveAggregate(existing, merged); err != nil {
			return err
		}
	}
	return nil
}

// RecomputeKeys rebuilds the aggregates for the given identities from the
// raw store, replacing whatever was there. Folding the full raw set from a
// nil base makes this idempotent, so the worker can safely re-run a job.
func RecomputeKeys(userID string, datasetID uint, keys []string) error {
	if len(keys) == 0 {
		return RecomputeScope(userID, datasetID)
	}
	for _, key := range keys {
		var raws []models.TournamentRaw
		err := dbconfig.DB.
			Where("user_id = ? AND dataset_id = ? AND tournament_key = ?", userID, datasetID, key).
			Order("id").
			Find(&raws).Error
		if err != nil {
			return fmt.Errorf("load raw entries for %s: %w", key, err)
		}

		existing, err := findAggregate(userID, datasetID, key)
		if err != nil {
			return err
		}

		if len(raws) == 0 {
			if existing != nil {
				if err := dbconfig.DB.Delete(existing).Error; err != nil {
					return fmt.Errorf("delete stale aggregate %s: %w", key, err)
				}
			}
			continue
		}

		rebuilt := tournament.Aggregate(nil, raws)
		if err := saveAggregate(existing, rebuilt); err != nil {
			return err
		}
	}
	return nil
}

// RecomputeScope rebuilds every aggregate of an owner/dataset scope from
// scratch and removes aggregates whose raw entries are gone.
func RecomputeScope(userID string, datasetID uint) error {
	var raws []models.TournamentRaw
	err := dbconfig.DB.
		Where("user_id = ? AND dataset_id = ?", userID, datasetID).
		Order("id").
		Find(&raws).Error
	if err != nil {
		return fmt.Errorf("load raw entries: %w", err)
	}

	rebuilt := tournament.AggregateAll(nil, raws)

	var current []models.TournamentAgg
	err = dbconfig.DB.
		Where("user_id = ? AND dataset_id = ?", userID, datasetID).
		Find(&current).Error
	if err != nil {
		return fmt.Errorf("load aggregates: %w", err)
	}

	for i := range current {
		rec := current[i]
		fresh, ok := rebuilt[rec.TournamentKey]
		if !ok {
			if err := dbconfig.DB.Delete(&rec).Error; err != nil {
				return fmt.Errorf("delete stale aggregate %s: %w", rec.TournamentKey, err)
			}
			continue
		}
		if err := saveAggregate(&rec, fresh); err != nil {
			return err
		}
		delete(rebuilt, rec.TournamentKey)
	}

	for key, fresh := range rebuilt {
		if err := saveAggregate(nil, fresh); err != nil {
			return fmt.Errorf("create aggregate %s: %w", key, err)
		}
	}

	log.WithFields(log.Fields{
		"user_id":    userID,
		"dataset_id": datasetID,
		"raw":        len(raws),
	}).Info("Recomputed aggregate scope")
	return nil
}

// HandleAggregateJob is the worker entrypoint for queued jobs.
func HandleAggregateJob(job AggregateJob) error {
	return RecomputeKeys(job.UserID, job.DatasetID, job.Keys)
}

func findAggregate(userID string, datasetID uint, key string) (*models.TournamentAgg, error) {
	var agg models.TournamentAgg
	err := dbconfig.DB.
		Where("user_id = ? AND dataset_id = ? AND tournament_key = ?", userID, datasetID, key).
		First(&agg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load aggregate %s: %w", key, err)
	}
	return &agg, nil
}

func saveAggregate(existing *models.TournamentAgg, fresh *models.TournamentAgg) error {
	if existing != nil {
		fresh.ID = existing.ID
		fresh.CreatedAt = existing.CreatedAt
	}
	if err := dbconfig.DB.Save(fresh).Error; err != nil {
		return fmt.Errorf("save aggregate %s: %w", fresh.TournamentKey, err)
	}
	return nil
}
