// @title Youth Ministry Admin API
// @version 1.0
// @description Check-ins, attendance, events, students and roster for a youth ministry.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"youthministry/config"
	_ "youthministry/docs"
	"youthministry/internal/adapters/email"
	delivery "youthministry/internal/delivery/http"
	"youthministry/internal/delivery/http/controllers"
	"youthministry/internal/delivery/http/middleware"
	"youthministry/internal/repository/postgres"
	"youthministry/internal/repository/redisstore"
	"youthministry/internal/repository/surrealstore"
	"youthministry/internal/services"
)

const (
	startupTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	logger := config.NewLogger(os.Stdout)
	if err := run(logger); err != nil {
		logger.Error("api exited", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	db, err := postgres.Open(startCtx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	rdb, err := redisstore.Open(startCtx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	surreal, err := surrealstore.Open(startCtx, surrealstore.Config{
		URL:       cfg.SurrealURL,
		Namespace: cfg.SurrealNamespace,
		Database:  cfg.SurrealDatabase,
		Username:  cfg.SurrealUser,
		Password:  cfg.SurrealPassword,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := surreal.Close(context.Background()); err != nil {
			logger.Warn("close surrealdb", "err", err)
		}
	}()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.AWSSESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}

	// Repositories
	checkinSet := redisstore.NewCheckinSet(rdb, logger)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	eventTypeRepo := postgres.NewEventTypeRepository(db)
	studentRepo := postgres.NewStudentRepository(db)
	guardianRepo := postgres.NewGuardianRepository(db)
	groupRepo := postgres.NewGroupRepository(db)
	volunteerRepo := postgres.NewVolunteerRepository(db)
	noteRepo := surrealstore.NewNoteRepository(surreal)

	// Services
	alertService := services.NewAlertService(mailer, email.NewTemplateRenderer(), cfg.AlertEmail, logger)
	checkinService := services.NewCheckinService(checkinSet, cfg.StoreTimeout)
	reconciler := services.NewReconciler(checkinSet, attendanceRepo, alertService, logger, time.Now, cfg.StoreTimeout)
	eventService := services.NewEventService(eventRepo, eventTypeRepo, attendanceRepo, checkinSet, noteRepo, logger, cfg.StoreTimeout)
	studentService := services.NewStudentService(studentRepo, attendanceRepo, cfg.StoreTimeout)
	rosterService := services.NewRosterService(guardianRepo, groupRepo, volunteerRepo, cfg.StoreTimeout)

	router := delivery.NewRouter(delivery.Controllers{
		Checkins: controllers.NewCheckinController(logger, checkinService, reconciler),
		Events:   controllers.NewEventController(logger, eventService),
		Students: controllers.NewStudentController(logger, studentService),
		Roster:   controllers.NewRosterController(logger, rosterService),
	})

	var handler http.Handler = router
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.RequestID(handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api listening", "addr", server.Addr, "env", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
