package main

import (
	"log"
	"os"

	"tourneycontrol/internal/handlers"
	"tourneycontrol/internal/routes"
	"tourneycontrol/pkg/config"
)

func main() {
	// Initialize database
	config.InitDB()

	// Initialize RabbitMQ (optional, aggregation runs inline without it)
	if os.Getenv("RABBITMQ_HOST") != "" {
		config.InitRabbitMQ()
		defer func() {
			if config.RabbitMQ != nil {
				config.RabbitMQ.Close()
			}
		}()

		publisher, err := config.NewPublisher()
		if err != nil {
			log.Fatal("Create publisher failed:", err)
		}
		defer publisher.Close()
		handlers.AggregatePublisher = publisher

		log.Println("RabbitMQ initialized, aggregation jobs will be queued")
	} else {
		log.Println("RabbitMQ not configured, aggregation will run inline")
	}

	// Set up router
	r := routes.SetupRouter()

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
