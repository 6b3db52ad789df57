package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventdirectory/config"
	_ "eventdirectory/docs"
	authadapter "eventdirectory/internal/adapters/auth"
	emailadapter "eventdirectory/internal/adapters/email"
	delivery "eventdirectory/internal/delivery/http"
	"eventdirectory/internal/delivery/http/controllers"
	"eventdirectory/internal/domain"
	"eventdirectory/internal/services"
	"eventdirectory/internal/store"
)

// @title Event Attendee Directory API
// @version 1.0
// @description Event catalog with per-viewer attendee visibility.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := config.NewLogger()
	logger.Info("Starting event directory server", "environment", cfg.Environment, "store", cfg.StoreBackend)

	snapshots, cleanup, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to open snapshot store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	tokens := authadapter.NewJWTTokens(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	mailer := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		},
	}, logger)

	users := services.NewUserDirectory(snapshots)
	catalog := services.NewEventCatalog(snapshots)
	directory := services.NewAttendeeDirectory(snapshots)
	emails := services.NewEmailService(mailer)
	ledger := services.NewAttendanceLedger(snapshots, emails, logger)

	auth, err := services.NewAuthService(users, tokens, cfg.SeedPassword)
	if err != nil {
		logger.Error("Failed to initialize auth service", "error", err)
		os.Exit(1)
	}

	router := delivery.NewRouter(delivery.RouterDeps{
		Logger:         logger,
		Verifier:       tokens,
		Users:          users,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Auth:           controllers.NewAuthController(logger, auth),
		Events:         controllers.NewEventController(logger, catalog, directory),
		Attendees:      controllers.NewAttendeeController(logger, catalog, directory),
		Attendance:     controllers.NewAttendanceController(logger, ledger),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}

// openStore picks the snapshot backend from STORE_BACKEND. The returned
// cleanup closes the database connection for the postgres backend and is a
// no-op for the file backend.
func openStore(cfg *config.Config, logger *slog.Logger) (domain.SnapshotStore, func(), error) {
	if cfg.StoreBackend == "postgres" {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		if err := store.EnsureSchema(context.Background(), db); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("Connected to PostgreSQL successfully")
		return store.NewPostgresStore(db, store.DefaultSnapshotName), func() { db.Close() }, nil
	}

	logger.Info("Using file snapshot store", "path", cfg.DataFile)
	return store.NewFileStore(cfg.DataFile), func() {}, nil
}
