// Package orders wires the order submission module.
package orders

import (
	"pxplabs_backend/internal/events"
	apphttp "pxplabs_backend/internal/http"
	"pxplabs_backend/internal/orders/handler"
	"pxplabs_backend/internal/orders/repository"
	"pxplabs_backend/internal/orders/service"
	quotesvc "pxplabs_backend/internal/quotes/service"
	"pxplabs_backend/internal/whatsapp"
	"pxplabs_backend/platform/config"
	"pxplabs_backend/platform/logger"
	"pxplabs_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module bundles the orders handler for route registration.
type Module struct {
	handler *handler.Handler
}

// NewModule creates the orders module with its full pipeline.
func NewModule(
	pool *pgxpool.Pool,
	bus events.Bus,
	quotes *quotesvc.QuoteService,
	gateway *whatsapp.Client,
	pricing config.PricingConfig,
	wa config.WhatsAppConfig,
	val *validator.Validator,
	log *logger.Logger,
) *Module {
	repo := repository.New(pool)
	svc := service.NewOrderService(repo, bus, quotes, gateway, pricing, wa, log)
	return &Module{handler: handler.NewHandler(svc, val)}
}

// Name returns the module name.
func (m *Module) Name() string { return "orders" }

// RegisterRoutes registers order routes. Submission sits behind the stricter
// per-IP rate limiter.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/orders")
	group.POST("", ctx.SubmitRateLimiter.RateLimit(), m.handler.Submit)
}

// Ensure Module implements the interface
var _ apphttp.Module = (*Module)(nil)
