package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// CheckinClearFailedEmailData holds data for the operator alert sent when attendance was
// persisted but the event's check-in set could not be cleared.
type CheckinClearFailedEmailData struct {
	EventID        int64
	PersistedCount int
	Key            string
	Error          string
}

// AlertService notifies operators of states that need manual repair.
type AlertService interface {
	NotifyCheckinClearFailed(ctx context.Context, data *CheckinClearFailedEmailData) error
}
