// Package service implements the order submission pipeline: validate,
// persist, notify (best-effort), and hand off to WhatsApp.
package service

import (
	"context"
	"strings"
	"sync/atomic"

	"pxplabs_backend/internal/events"
	"pxplabs_backend/internal/orders/repository"
	"pxplabs_backend/internal/quotes/selection"
	quotesvc "pxplabs_backend/internal/quotes/service"
	"pxplabs_backend/internal/whatsapp"
	"pxplabs_backend/platform/apperr"
	"pxplabs_backend/platform/config"
	"pxplabs_backend/platform/logger"
	"pxplabs_backend/platform/phone"
	"pxplabs_backend/platform/sanitize"
)

// BudgetBrackets are the selectable budget ranges, in rupees.
var BudgetBrackets = []string{"4000-10000", "10000-20000", "20000+"}

// BudgetCustomQuote marks an order that asks for individual pricing instead
// of a bracket.
const BudgetCustomQuote = "custom-quote"

// SubmitParams holds a submission as received from the transport layer.
type SubmitParams struct {
	Name       string
	Email      string
	Phone      string
	ServiceIDs []string
	Budget     string
	Details    string
}

// SubmitResult is returned after a successful submission.
type SubmitResult struct {
	Order       repository.Order
	Message     string
	WhatsAppURL string
}

// OrderService runs the submission pipeline.
type OrderService struct {
	repo         repository.Repository
	bus          events.Bus
	quotes       *quotesvc.QuoteService
	gateway      *whatsapp.Client
	log          *logger.Logger
	studioNumber string
	fixedPricing bool

	// Guards against re-entrant submission while one is in flight.
	inFlight atomic.Bool
}

// NewOrderService creates the order service. gateway may be nil when no
// WhatsApp gateway is configured.
func NewOrderService(
	repo repository.Repository,
	bus events.Bus,
	quotes *quotesvc.QuoteService,
	gateway *whatsapp.Client,
	pricing config.PricingConfig,
	wa config.WhatsAppConfig,
	log *logger.Logger,
) *OrderService {
	return &OrderService{
		repo:         repo,
		bus:          bus,
		quotes:       quotes,
		gateway:      gateway,
		log:          log,
		studioNumber: wa.GetWhatsAppNumber(),
		fixedPricing: pricing.IsFixedPricing(),
	}
}

// Submit runs the full pipeline. Validation failures never reach any
// external collaborator; a persistence failure aborts before notification;
// notification failures are swallowed.
func (s *OrderService) Submit(ctx context.Context, params SubmitParams) (SubmitResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return SubmitResult{}, apperr.Conflict("a submission is already in progress")
	}
	defer s.inFlight.Store(false)

	set, err := s.validate(params)
	if err != nil {
		return SubmitResult{}, err
	}

	labels := make([]string, 0, set.Count())
	for _, svc := range set.Services() {
		labels = append(labels, svc.Label)
	}

	order, err := s.repo.Create(ctx, repository.CreateOrderParams{
		Name:          strings.TrimSpace(params.Name),
		Email:         strings.TrimSpace(params.Email),
		Phone:         phone.NormalizeE164(params.Phone),
		ServiceLabels: labels,
		Budget:        params.Budget,
		Details:       sanitize.Text(params.Details),
	})
	if err != nil {
		s.log.DatabaseError("create order", err)
		return SubmitResult{}, apperr.Wrap(apperr.KindUnavailable, "could not save your order, please try again", err)
	}

	// Best-effort: a failed notification never fails the submission.
	if err := s.bus.PublishSync(ctx, events.OrderCreated{
		BaseEvent:     events.NewBaseEvent(),
		OrderID:       order.ID,
		Name:          order.Name,
		Email:         order.Email,
		Phone:         order.Phone,
		ServiceLabels: order.ServiceLabels,
		Budget:        order.Budget,
		Details:       order.Details,
	}); err != nil {
		s.log.Warn("order notification failed", "order_id", order.ID.String(), "error", err.Error())
	}

	message, link, err := s.quotes.BuildMessage(quotesvc.Inquiry{
		Name:    order.Name,
		Phone:   order.Phone,
		Budget:  order.Budget,
		Details: order.Details,
	}, params.ServiceIDs)
	if err != nil {
		// Ids were validated above; treat this as internal rather than user error.
		return SubmitResult{}, apperr.Wrap(apperr.KindInternal, "could not build hand-off message", err)
	}

	// Server-side send delivers the inquiry straight to the studio's inbox;
	// also best-effort.
	if err := s.gateway.SendMessage(ctx, s.studioNumber, message); err != nil {
		s.log.NotificationError("whatsapp", s.studioNumber, err)
	}

	return SubmitResult{Order: order, Message: message, WhatsAppURL: link}, nil
}

// validate checks the submission and returns the resolved selection. All
// problems are collected into a single ValidationError listing each field.
func (s *OrderService) validate(params SubmitParams) (*selection.Set, error) {
	var problems []string

	if strings.TrimSpace(params.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !looksLikeEmail(params.Email) {
		problems = append(problems, "a valid email is required")
	}
	if !phone.LooksLikePhone(params.Phone) {
		problems = append(problems, "a valid phone number is required")
	}

	set, err := selection.FromIDs(params.ServiceIDs)
	if err != nil {
		problems = append(problems, err.Error())
	} else if set.Count() == 0 {
		problems = append(problems, "select at least one service")
	}

	if err := s.validateBudget(params.Budget); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return nil, apperr.Validation("invalid submission").WithDetails(problems)
	}
	return set, nil
}

func (s *OrderService) validateBudget(budget string) error {
	if budget == "" {
		if s.fixedPricing {
			return apperr.Validation("choose a budget range")
		}
		return nil
	}
	if budget == BudgetCustomQuote {
		return nil
	}
	for _, bracket := range BudgetBrackets {
		if budget == bracket {
			return nil
		}
	}
	return apperr.Validation("unknown budget range")
}

// looksLikeEmail is deliberately lax: an "@" with a dotted suffix after it.
// Deliverability is not checked.
func looksLikeEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
