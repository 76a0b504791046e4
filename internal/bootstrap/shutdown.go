package bootstrap

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"naira-rates/internal/kafka"
)

type closer interface {
	Close()
}

// GracefulShutdown owns the producer teardown: nothing else should Close it.
func GracefulShutdown(srv *http.Server, producer *kafka.Producer) {
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		log.Println("🛑 Shutting down gracefully...")

		var p closer
		if producer != nil {
			p = producer
		}
		shutdown(srv, p)
	}()
}

func shutdown(srv *http.Server, producer closer) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	// In-flight requests may still publish; the producer closes only after
	// the drain completes.
	if producer != nil {
		producer.Close()
	}
}
