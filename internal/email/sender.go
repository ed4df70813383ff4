// Package email sends transactional order emails over SMTP.
package email

import (
	"context"

	"pxplabs_backend/platform/config"
)

// OrderEmailData carries the order fields rendered into both order emails.
type OrderEmailData struct {
	OrderID       string
	Name          string
	Email         string
	Phone         string
	ServiceLabels []string
	Budget        string
	Details       string
	SubmittedAt   string
}

// Sender delivers the two order emails: a confirmation to the customer and an
// alert to the studio owner.
type Sender interface {
	SendOrderConfirmationEmail(ctx context.Context, toEmail string, data OrderEmailData) error
	SendOwnerOrderAlertEmail(ctx context.Context, toEmail string, data OrderEmailData) error
}

// NoopSender discards all emails. Used when email is disabled.
type NoopSender struct{}

func (NoopSender) SendOrderConfirmationEmail(ctx context.Context, toEmail string, data OrderEmailData) error {
	return nil
}

func (NoopSender) SendOwnerOrderAlertEmail(ctx context.Context, toEmail string, data OrderEmailData) error {
	return nil
}

// NewSender returns an SMTP-backed sender, or a NoopSender when email is
// disabled in configuration.
func NewSender(cfg config.EmailConfig, notif config.NotificationConfig) Sender {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}
	}

	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
		notif.GetStudioName(),
	)
}
