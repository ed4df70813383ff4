// Package notification sends the two order emails in response to domain
// events. The orders module publishes events without knowing about email
// providers or templates; this module subscribes and does the sending.
package notification

import (
	"context"
	"time"

	"pxplabs_backend/internal/email"
	"pxplabs_backend/internal/events"
	"pxplabs_backend/platform/config"
	"pxplabs_backend/platform/logger"

	"go.uber.org/multierr"
)

// Module handles notification-related event subscriptions.
type Module struct {
	sender email.Sender
	cfg    config.NotificationConfig
	log    *logger.Logger
}

// New creates a new notification module.
func New(sender email.Sender, cfg config.NotificationConfig, log *logger.Logger) *Module {
	return &Module{sender: sender, cfg: cfg, log: log}
}

// RegisterHandlers subscribes the module to the events it cares about.
func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.OrderCreated{}.EventName(), m)
	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.OrderCreated:
		return m.handleOrderCreated(ctx, e)
	default:
		return nil
	}
}

// handleOrderCreated sends the customer confirmation and the owner alert.
// Both are attempted even when the first fails; errors are aggregated for
// the caller to log (the publisher treats them as best-effort).
func (m *Module) handleOrderCreated(ctx context.Context, e events.OrderCreated) error {
	data := email.OrderEmailData{
		OrderID:       e.OrderID.String(),
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		ServiceLabels: e.ServiceLabels,
		Budget:        e.Budget,
		Details:       e.Details,
		SubmittedAt:   e.OccurredAt().Format(time.RFC822),
	}

	var errs error

	if err := m.sender.SendOrderConfirmationEmail(ctx, e.Email, data); err != nil {
		m.log.NotificationError("email", e.Email, err)
		errs = multierr.Append(errs, err)
	}

	ownerEmail := m.cfg.GetOwnerEmail()
	if ownerEmail != "" {
		if err := m.sender.SendOwnerOrderAlertEmail(ctx, ownerEmail, data); err != nil {
			m.log.NotificationError("email", ownerEmail, err)
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}
