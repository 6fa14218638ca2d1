package main

import (
	"encoding/json"

	logrus "github.com/sirupsen/logrus"

	"tourneycontrol/internal/handlers/business"
	"tourneycontrol/pkg/config"
)

func main() {
	// Initialize logger
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	config.InitDB()

	// Initialize RabbitMQ
	config.InitRabbitMQ()
	defer config.RabbitMQ.Close()

	// Create consumer for the aggregation queue. A single consumer keeps
	// aggregate writes serialized, so concurrent imports cannot interleave
	// their merge steps.
	msgConsumer, err := config.NewConsumer(config.AggregateQueue)
	if err != nil {
		logrus.Fatal("Failed to create consumer: ", err)
	}
	defer msgConsumer.Close()

	logrus.Info("Aggregate worker started, waiting for messages...")

	err = msgConsumer.Consume(func(msg []byte) error {
		var job business.AggregateJob
		if err := json.Unmarshal(msg, &job); err != nil {
			logrus.Errorf("Failed to unmarshal message: %v", err)
			return err
		}

		logrus.WithFields(logrus.Fields{
			"user_id":    job.UserID,
			"dataset_id": job.DatasetID,
			"keys":       len(job.Keys),
		}).Info("Received aggregation job")

		if err := business.HandleAggregateJob(job); err != nil {
			logrus.Errorf("Aggregation job failed: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		logrus.Fatal("Consumer failed: ", err)
	}
}
