// Package quotes wires the quote builder module.
package quotes

import (
	apphttp "pxplabs_backend/internal/http"
	"pxplabs_backend/internal/quotes/handler"
	"pxplabs_backend/internal/quotes/service"
)

// Module bundles the quotes handler for route registration.
type Module struct {
	handler *handler.Handler
}

// NewModule creates the quotes module. The quote service is shared with the
// orders module, so it is built by the composition root.
func NewModule(svc *service.QuoteService) *Module {
	return &Module{handler: handler.NewHandler(svc)}
}

// Name returns the module name.
func (m *Module) Name() string { return "quotes" }

// RegisterRoutes registers quote builder routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/quotes")
	group.POST("/preview", m.handler.Preview)
	group.POST("/message", m.handler.Message)
	group.POST("/document", m.handler.Document)
}

// Ensure Module implements the interface
var _ apphttp.Module = (*Module)(nil)
