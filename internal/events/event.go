// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"pxplabs_backend/platform/events"
	"pxplabs_backend/platform/logger"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Orders Domain Events
// =============================================================================

// OrderCreated is published after an order has been persisted. Notification
// handlers are best-effort: a failing handler never rolls back the order.
type OrderCreated struct {
	BaseEvent
	OrderID       uuid.UUID `json:"orderId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ServiceLabels []string  `json:"serviceLabels"`
	Budget        string    `json:"budget"`
	Details       string    `json:"details"`
}

func (e OrderCreated) EventName() string { return "orders.order.created" }
