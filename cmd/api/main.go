package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/report-hub/internal/api/middleware"
	"github.com/linskybing/report-hub/internal/api/routes"
	"github.com/linskybing/report-hub/internal/api/validate"
	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/config"
	"github.com/linskybing/report-hub/internal/config/db"
	"github.com/linskybing/report-hub/internal/cron"
	"github.com/linskybing/report-hub/internal/metrics"
	"github.com/linskybing/report-hub/internal/migrations"
	"github.com/linskybing/report-hub/internal/notify"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and apply migrations
	db.Init()
	if err := migrations.Run(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := validate.Register(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := notify.NewHub(originAllowed)
	sinks := []notify.Sink{hub}
	var email *notify.EmailSink
	if config.SmtpHost != "" {
		email = notify.NewEmailSink(notify.EmailConfig{
			Host:       config.SmtpHost,
			Port:       config.SmtpPort,
			User:       config.SmtpUser,
			Password:   config.SmtpPassword,
			From:       config.SmtpFrom,
			Recipients: config.NotifyRecipients,
			Workers:    config.EmailWorkers,
		})
		sinks = append(sinks, email)
	}
	dispatcher := notify.NewDispatcher(sinks...)
	dispatcher.OnFailure(func(sink string) {
		metrics.NotificationFailures.WithLabelValues(sink).Inc()
	})

	var store storage.ObjectStore
	if config.MinioEndpoint != "" {
		ms, err := storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			Bucket:    config.MinioBucket,
			UseSSL:    config.MinioUseSSL,
		})
		if err != nil {
			log.Printf("Warning: image uploads disabled, MinIO unavailable: %v", err)
		} else {
			store = ms
		}
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, dispatcher, store)

	scheduler, err := cron.StartCleanupTask(services.Audit)
	if err != nil {
		log.Fatalf("Failed to schedule audit cleanup: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(metrics.Middleware())

	routes.RegisterRoutes(router, repos, services, hub)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("Starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	<-scheduler.Stop().Done()
	if email != nil {
		email.Stop()
	}
}

func originAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, o := range config.CorsOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}
