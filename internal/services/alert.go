package services

import (
	"context"
	"fmt"
	"log/slog"

	"youthministry/internal/domain"
)

type alertService struct {
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	recipient string
	logger    *slog.Logger
}

// NewAlertService returns an AlertService that emails recipient. With an empty
// recipient alerts are only logged.
func NewAlertService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, recipient string, logger *slog.Logger) domain.AlertService {
	return &alertService{
		mailer:    mailer,
		renderer:  renderer,
		recipient: recipient,
		logger:    logger,
	}
}

// NotifyCheckinClearFailed sends the "checkin_clear_failed" template.
func (s *alertService) NotifyCheckinClearFailed(ctx context.Context, data *domain.CheckinClearFailedEmailData) error {
	if data == nil {
		return fmt.Errorf("checkin clear failed email data is nil")
	}
	if s.recipient == "" {
		s.logger.WarnContext(ctx, "no alert recipient configured, skipping email", "event_id", data.EventID)
		return nil
	}
	subject, htmlBody, textBody, err := s.renderer.Render("checkin_clear_failed", data)
	if err != nil {
		return fmt.Errorf("failed to render checkin_clear_failed template: %w", err)
	}
	if err := s.mailer.Send(ctx, s.recipient, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send checkin_clear_failed email: %w", err)
	}
	s.logger.InfoContext(ctx, "operator alert sent", "event_id", data.EventID, "to", s.recipient)
	return nil
}
