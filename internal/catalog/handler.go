package catalog

import (
	"pxplabs_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	service *CatalogService
}

// NewHandler creates a catalog handler.
func NewHandler(service *CatalogService) *Handler {
	return &Handler{service: service}
}

// GetCatalog handles GET /catalog.
func (h *Handler) GetCatalog(c *gin.Context) {
	httpkit.OK(c, h.service.Catalog())
}

// GetCategory handles GET /catalog/categories/:id.
func (h *Handler) GetCategory(c *gin.Context) {
	resp, err := h.service.Category(c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}
