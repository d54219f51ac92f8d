package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/signup/internal/api"
	"example.com/signup/internal/config"
	"example.com/signup/internal/domain"
	"example.com/signup/internal/events"
	"example.com/signup/internal/registry"
	httptransport "example.com/signup/internal/transport/http"
)

func main() {
	cfg := config.Load()

	store := registry.NewInMemory(registry.Seed())

	var notifier domain.Notifier = events.Nop{}
	if len(cfg.EventBrokers) > 0 {
		publisher := events.NewPublisher(events.NewKafkaWriter(cfg.EventBrokers, cfg.EventTopic))
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Printf("closing event publisher: %v", err)
			}
		}()
		notifier = publisher
	}

	service := domain.NewService(store, notifier)

	handler := api.NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	// Tag each request with an id and log it
	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			w.Header().Set("X-Request-ID", requestID)
			log.Printf("%s %s request_id=%s", r.Method, r.URL.Path, requestID)
			next.ServeHTTP(w, r)
		})
	}

	server := httptransport.NewServer(cfg, logger(mux))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("signup-service listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
