package main

import (
	"os"

	"github.com/robfig/cron/v3"
	logger "github.com/sirupsen/logrus"

	"tourneycontrol/internal/handlers/business"
	"tourneycontrol/internal/models"
	dbconfig "tourneycontrol/pkg/config"
)

// ReaggregateAll rebuilds every aggregate scope from the raw store. A safety
// net against drift: inline merges and queued jobs should keep aggregates
// exact, but a crashed import or a manually edited raw table would not.
func ReaggregateAll() error {
	logger.Info("> Starting full re-aggregation")

	type scope struct {
		UserID    string
		DatasetID uint
	}
	var scopes []scope
	err := dbconfig.DB.Model(&models.TournamentRaw{}).
		Distinct("user_id", "dataset_id").
		Find(&scopes).Error
	if err != nil {
		logger.Errorf("> Failed to list scopes: %v", err)
		return err
	}

	logger.Infof("> Found %d scopes", len(scopes))

	for _, s := range scopes {
		if err := business.RecomputeScope(s.UserID, s.DatasetID); err != nil {
			logger.Errorf("> Failed to recompute scope %s/%d: %v", s.UserID, s.DatasetID, err)
			continue
		}
	}

	logger.Info("> Full re-aggregation finished")
	return nil
}

func main() {
	os.MkdirAll("logs", 0755)
	file, err := os.OpenFile("logs/reaggregate.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		logger.SetOutput(file)
	} else {
		logger.Warn("Cannot open log file, logging to stdout")
	}

	logger.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logger.InfoLevel)
	logger.Info("> Initializing...")

	dbconfig.InitDB()
	logger.Info("> Database connection initialized")

	c := cron.New(cron.WithSeconds())

	// Run nightly at 04:30
	_, err = c.AddFunc("0 30 4 * * *", func() {
		if err := ReaggregateAll(); err != nil {
			logger.Errorf("> Re-aggregation run failed: %v", err)
		}
	})
	if err != nil {
		logger.Fatalf("> Failed to add cron job: %v", err)
	}

	logger.Info("> Cron started, running nightly at 04:30")

	c.Start()

	select {}
}
