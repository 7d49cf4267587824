package main

import (
	"context"
	"log"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/bootstrap"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/config"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/server"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/tracer"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Background embed job consumer
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
