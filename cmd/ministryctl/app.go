package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"youthministry/config"
	"youthministry/internal/adapters/email"
	"youthministry/internal/domain"
	"youthministry/internal/repository/postgres"
	"youthministry/internal/repository/redisstore"
	"youthministry/internal/services"
)

const connectTimeout = 10 * time.Second

// app holds the services the commands act on.
type app struct {
	checkins   domain.CheckinService
	reconciler domain.Reconciler
	close      func()
}

// opener builds an app. Commands call it lazily so --help needs no stores.
type opener func(ctx context.Context) (*app, error)

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := config.NewLogger(os.Stderr)

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	rdb, err := redisstore.Open(connectCtx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	db, err := postgres.Open(connectCtx, cfg.DBUrl)
	if err != nil {
		_ = rdb.Close()
		return nil, err
	}

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
		_ = db.Close()
		_ = rdb.Close()
		return nil, err
	}

	set := redisstore.NewCheckinSet(rdb, logger)
	alerts := services.NewAlertService(mailer, email.NewTemplateRenderer(), cfg.AlertEmail, logger)

	return &app{
		checkins:   services.NewCheckinService(set, cfg.StoreTimeout),
		reconciler: services.NewReconciler(set, postgres.NewAttendanceRepository(db), alerts, logger, time.Now, cfg.StoreTimeout),
		close: func() {
			_ = db.Close()
			_ = rdb.Close()
		},
	}, nil
}

func parseEventID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid event id %q: must be a positive integer", arg)
	}
	return id, nil
}
