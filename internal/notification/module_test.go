package notification

import (
	"context"
	"errors"
	"testing"

	"pxplabs_backend/internal/email"
	"pxplabs_backend/internal/events"
	"pxplabs_backend/platform/logger"

	"github.com/google/uuid"
)

type testNotificationConfig struct {
	ownerEmail string
}

func (c testNotificationConfig) GetStudioName() string { return "PXPLabs" }
func (c testNotificationConfig) GetOwnerEmail() string { return c.ownerEmail }

type testSender struct {
	confirmationCalls int
	ownerAlertCalls   int
	failConfirmation  bool
	lastOwnerEmail    string
}

func (s *testSender) SendOrderConfirmationEmail(_ context.Context, toEmail string, _ email.OrderEmailData) error {
	s.confirmationCalls++
	if s.failConfirmation {
		return errors.New("smtp timeout")
	}
	return nil
}

func (s *testSender) SendOwnerOrderAlertEmail(_ context.Context, toEmail string, _ email.OrderEmailData) error {
	s.ownerAlertCalls++
	s.lastOwnerEmail = toEmail
	return nil
}

func orderCreated() events.OrderCreated {
	return events.OrderCreated{
		BaseEvent:     events.NewBaseEvent(),
		OrderID:       uuid.New(),
		Name:          "Asha",
		Email:         "asha@example.com",
		Phone:         "+919381904726",
		ServiceLabels: []string{"Logo Design"},
		Budget:        "4000-10000",
	}
}

func TestHandleOrderCreatedSendsBothEmails(t *testing.T) {
	sender := &testSender{}
	m := New(sender, testNotificationConfig{ownerEmail: "owner@example.com"}, logger.New("development"))

	if err := m.Handle(context.Background(), orderCreated()); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if sender.confirmationCalls != 1 {
		t.Fatalf("expected 1 confirmation, got %d", sender.confirmationCalls)
	}
	if sender.ownerAlertCalls != 1 {
		t.Fatalf("expected 1 owner alert, got %d", sender.ownerAlertCalls)
	}
	if sender.lastOwnerEmail != "owner@example.com" {
		t.Fatalf("expected owner alert to configured address, got %s", sender.lastOwnerEmail)
	}
}

func TestHandleOrderCreatedStillAlertsOwnerWhenConfirmationFails(t *testing.T) {
	sender := &testSender{failConfirmation: true}
	m := New(sender, testNotificationConfig{ownerEmail: "owner@example.com"}, logger.New("development"))

	err := m.Handle(context.Background(), orderCreated())
	if err == nil {
		t.Fatal("expected aggregated error from failed confirmation")
	}
	if sender.ownerAlertCalls != 1 {
		t.Fatalf("expected owner alert despite confirmation failure, got %d", sender.ownerAlertCalls)
	}
}

func TestHandleOrderCreatedSkipsOwnerAlertWithoutAddress(t *testing.T) {
	sender := &testSender{}
	m := New(sender, testNotificationConfig{}, logger.New("development"))

	if err := m.Handle(context.Background(), orderCreated()); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if sender.ownerAlertCalls != 0 {
		t.Fatalf("expected no owner alert without configured address, got %d", sender.ownerAlertCalls)
	}
}

func TestHandleIgnoresUnknownEvents(t *testing.T) {
	sender := &testSender{}
	m := New(sender, testNotificationConfig{}, logger.New("development"))

	if err := m.Handle(context.Background(), fakeEvent{}); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if sender.confirmationCalls != 0 {
		t.Fatalf("expected no emails for unrelated event, got %d", sender.confirmationCalls)
	}
}

type fakeEvent struct{ events.BaseEvent }

func (fakeEvent) EventName() string { return "test.fake" }
