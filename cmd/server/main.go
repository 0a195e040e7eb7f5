// cmd/server is the application entry point. It wires the store,
// services, and HTTP delivery together and runs the server with
// graceful shutdown.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ekhayalegae/config"
	httpdelivery "ekhayalegae/internal/delivery/http"
	"ekhayalegae/internal/delivery/http/controllers"
	"ekhayalegae/internal/delivery/http/middleware"
	"ekhayalegae/internal/domain"
	"ekhayalegae/internal/repository/mongodb"
	"ekhayalegae/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger()

	// One connection attempt; a missing or unreachable store leaves the
	// process serving degraded listings and 503s on writes.
	store := mongodb.Connect(context.Background(), logger, cfg.DatabaseURL, cfg.DatabaseName)

	events := mongodb.NewRepository[domain.Event](store, domain.CollectionEvent)
	resources := mongodb.NewRepository[domain.Resource](store, domain.CollectionResource)
	partners := mongodb.NewRepository[domain.Partner](store, domain.CollectionPartner)
	stories := mongodb.NewRepository[domain.Story](store, domain.CollectionStory)
	stats := mongodb.NewRepository[domain.SiteStat](store, domain.CollectionSiteStat)
	bookings := mongodb.NewRepository[domain.Booking](store, domain.CollectionBooking)
	applications := mongodb.NewRepository[domain.TrainingApplication](store, domain.CollectionTrainingApplication)
	messages := mongodb.NewRepository[domain.ContactMessage](store, domain.CollectionContactMessage)

	contentService := services.NewContentService(events, resources, partners, stories, stats)
	submissionService := services.NewSubmissionService(bookings, applications, messages)

	meta := controllers.NewMetaController(logger, store, cfg.DatabaseURL != "", cfg.DatabaseName != "")
	content := controllers.NewContentController(logger, contentService)
	submissions := controllers.NewSubmissionController(logger, submissionService)

	mux := httpdelivery.NewRouter(meta, content, submissions)
	handler := middleware.CORS(middleware.Logging(logger, mux))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	if err := store.Disconnect(shutdownCtx); err != nil {
		logger.Error("store disconnect failed", "err", err)
	}
	logger.Info("server stopped")
}
