package main

import (
	"log"
	"net/http"

	"naira-rates/internal/bootstrap"
	"naira-rates/internal/config"
	"naira-rates/internal/handlers"
	"naira-rates/internal/kafka"
	"naira-rates/internal/services"
)

func main() {
	cfg := config.Load()

	// ------------------------
	// Kafka
	// ------------------------
	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.RateTopic)

	// ------------------------
	// Rate Service + Handler
	// ------------------------
	rateService := services.NewRateService(producer, cfg.RatesAPIURL)
	rateHandler := handlers.NewRateHandler(rateService)

	// ------------------------
	// Router
	// ------------------------
	r := bootstrap.InitRoutes(rateHandler)

	// ------------------------
	// Server
	// ------------------------
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	bootstrap.GracefulShutdown(srv, producer)

	log.Printf("🚀 Server started on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
