// Package service implements the quote builder: pricing a selection, turning
// it into the WhatsApp hand-off message, and rendering the scope document.
package service

import (
	"time"

	"pxplabs_backend/internal/pdf"
	"pxplabs_backend/internal/quotes/selection"
	"pxplabs_backend/internal/whatsapp"
	"pxplabs_backend/platform/apperr"
	"pxplabs_backend/platform/config"
)

// QuoteService wires the calculator, formatter and document generator.
type QuoteService struct {
	calc       *Calculator
	studioName string
	waNumber   string
	now        func() time.Time
}

// NewQuoteService creates the quote service.
func NewQuoteService(pricing config.PricingConfig, notif config.NotificationConfig, wa config.WhatsAppConfig) *QuoteService {
	return &QuoteService{
		calc:       NewCalculator(pricing.IsFixedPricing()),
		studioName: notif.GetStudioName(),
		waNumber:   wa.GetWhatsAppNumber(),
		now:        time.Now,
	}
}

// Preview prices the given selection without any side effects.
func (s *QuoteService) Preview(serviceIDs []string) (Quote, error) {
	set, err := selection.FromIDs(serviceIDs)
	if err != nil {
		return Quote{}, err
	}
	return s.calc.Calculate(set.Services()), nil
}

// BuildMessage renders the quote message and the WhatsApp deep link for the
// given inquiry and selection. An empty selection is allowed; the message
// simply carries no services.
func (s *QuoteService) BuildMessage(inq Inquiry, serviceIDs []string) (message, deepLink string, err error) {
	set, err := selection.FromIDs(serviceIDs)
	if err != nil {
		return "", "", err
	}

	quote := s.calc.Calculate(set.Services())
	message = FormatMessage(inq, set, quote)
	deepLink = whatsapp.DeepLink(s.waNumber, message)
	return message, deepLink, nil
}

// GenerateDocument renders the project scope PDF. Unlike the message, the
// document requires at least one selected service.
func (s *QuoteService) GenerateDocument(inq Inquiry, serviceIDs []string) ([]byte, error) {
	set, err := selection.FromIDs(serviceIDs)
	if err != nil {
		return nil, err
	}
	if set.Count() == 0 {
		return nil, apperr.Validation("select at least one service to generate a document")
	}

	quote := s.calc.Calculate(set.Services())

	items := make([]pdf.ScopeItem, 0, set.Count())
	for _, group := range set.ByCategory() {
		for _, svc := range group.Services {
			items = append(items, pdf.ScopeItem{
				CategoryLabel: group.Category.Label,
				ServiceLabel:  svc.Label,
				Price:         svc.BasePrice,
			})
		}
	}

	data := pdf.ProjectScopeData{
		StudioName:   s.studioName,
		CustomerName: inq.Name,
		GeneratedAt:  s.now(),
		Items:        items,
		Custom:       quote.Custom,
		Subtotal:     quote.Subtotal,
		DiscountBps:  quote.DiscountBps,
		Discount:     quote.Discount,
		Total:        quote.Total,
		FormatAmount: FormatINR,
	}

	bytes, err := pdf.GenerateProjectScope(data)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "could not generate document", err)
	}
	return bytes, nil
}
