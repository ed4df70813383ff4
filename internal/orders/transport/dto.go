// Package transport contains the wire types of the orders module.
package transport

import "time"

// SubmitOrderRequest is the order submission body. Structural limits live
// here; field semantics (email shape, phone digits, budget brackets) are
// checked by the service.
type SubmitOrderRequest struct {
	Name       string   `json:"name" validate:"max=200"`
	Email      string   `json:"email" validate:"max=320"`
	Phone      string   `json:"phone" validate:"max=32"`
	ServiceIDs []string `json:"serviceIds" validate:"max=50,dive,required"`
	Budget     string   `json:"budget" validate:"max=32"`
	Details    string   `json:"details" validate:"max=2000"`
}

// SubmitOrderResponse confirms a persisted order and carries the hand-off.
type SubmitOrderResponse struct {
	OrderID     string    `json:"orderId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	Message     string    `json:"message"`
	WhatsAppURL string    `json:"whatsappUrl"`
}
