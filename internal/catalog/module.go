package catalog

import (
	apphttp "pxplabs_backend/internal/http"
	"pxplabs_backend/platform/config"
)

// Module bundles the catalog handler for route registration.
type Module struct {
	handler *Handler
}

// NewModule creates the catalog module.
func NewModule(cfg config.PricingConfig) *Module {
	return &Module{handler: NewHandler(NewService(cfg))}
}

// Name returns the module name.
func (m *Module) Name() string { return "catalog" }

// RegisterRoutes registers catalog routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/catalog")
	group.GET("", m.handler.GetCatalog)
	group.GET("/categories/:id", m.handler.GetCategory)
}

// Ensure Module implements the interface
var _ apphttp.Module = (*Module)(nil)
