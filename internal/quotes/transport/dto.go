// Package transport contains the wire types of the quotes module.
package transport

// QuoteRequest is the shared request body for preview, message, and document
// endpoints. Visitor details are optional everywhere in this module.
type QuoteRequest struct {
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Budget     string   `json:"budget"`
	Details    string   `json:"details"`
	ServiceIDs []string `json:"serviceIds"`
}

// QuoteLineResponse is one priced line of a quote preview.
type QuoteLineResponse struct {
	ServiceID string `json:"serviceId"`
	Label     string `json:"label"`
	Price     *int64 `json:"price,omitempty"`
}

// PreviewResponse is the priced quote. Amounts are omitted in custom mode.
type PreviewResponse struct {
	Lines       []QuoteLineResponse `json:"lines"`
	Custom      bool                `json:"custom"`
	Subtotal    *int64              `json:"subtotal,omitempty"`
	DiscountBps *int64              `json:"discountBps,omitempty"`
	Discount    *int64              `json:"discount,omitempty"`
	Total       *int64              `json:"total,omitempty"`
}

// MessageResponse carries the rendered quote message and the WhatsApp link.
type MessageResponse struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl"`
}
