// @title Mergington High School Activities API
// @version 1.0
// @description Sign students up for and unregister them from extracurricular activities.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"mergingtonactivities/config"
	"mergingtonactivities/internal/adapters/email"
	deliveryhttp "mergingtonactivities/internal/delivery/http"
	"mergingtonactivities/internal/delivery/http/controllers"
	"mergingtonactivities/internal/delivery/http/middleware"
	"mergingtonactivities/internal/domain"
	"mergingtonactivities/internal/repository/memory"
	"mergingtonactivities/internal/repository/postgres"
	"mergingtonactivities/internal/services"
	"mergingtonactivities/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	activities, err := loadActivities(ctx, cfg)
	if err != nil {
		return err
	}
	store, err := services.NewEnrollmentStore(activities)
	if err != nil {
		return fmt.Errorf("build enrollment store: %w", err)
	}
	logger.Info("activity catalogue loaded", "source", cfg.SeedSource, "activities", len(activities))

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("build mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	store = services.NewNotifyingEnrollmentStore(store, emailService, logger)

	activityController := controllers.NewActivityController(logger, store)
	router := deliveryhttp.NewRouter(activityController, web.Static())
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, router))

	server := deliveryhttp.NewServer(deliveryhttp.DefaultServerConfig(cfg.Port), handler)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// loadActivities reads the seed catalogue from the configured source.
func loadActivities(ctx context.Context, cfg *config.Config) ([]*domain.Activity, error) {
	var source domain.ActivitySource
	switch cfg.SeedSource {
	case config.SeedSourceMemory:
		source = memory.NewActivitySource()
	case config.SeedSourcePostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			return nil, fmt.Errorf("ping database: %w", err)
		}
		source = postgres.NewActivitySource(db)
	default:
		return nil, fmt.Errorf("unknown activity seed source %q", cfg.SeedSource)
	}

	activities, err := source.LoadActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}
	return activities, nil
}
