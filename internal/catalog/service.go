package catalog

import (
	"pxplabs_backend/platform/apperr"
	"pxplabs_backend/platform/config"
)

// CatalogService serves the immutable catalog, shaping the response according
// to the configured pricing mode.
type CatalogService struct {
	cfg config.PricingConfig
}

// NewService creates a catalog service.
func NewService(cfg config.PricingConfig) *CatalogService {
	return &CatalogService{cfg: cfg}
}

// Catalog returns the full catalog in display order.
func (s *CatalogService) Catalog() CatalogResponse {
	mode := config.PricingModeCustom
	if s.cfg.IsFixedPricing() {
		mode = config.PricingModeFixed
	}

	out := CatalogResponse{
		PricingMode: mode,
		Categories:  make([]CategoryResponse, 0, len(Categories)),
	}
	for _, cat := range Categories {
		out.Categories = append(out.Categories, s.toCategoryResponse(cat))
	}
	return out
}

// Category returns a single category by id.
func (s *CatalogService) Category(id string) (CategoryResponse, error) {
	cat, ok := CategoryByID(id)
	if !ok {
		return CategoryResponse{}, apperr.NotFound("category not found")
	}
	return s.toCategoryResponse(*cat), nil
}

func (s *CatalogService) toCategoryResponse(cat Category) CategoryResponse {
	resp := CategoryResponse{
		ID:          cat.ID,
		Label:       cat.Label,
		Description: cat.Description,
		Services:    make([]ServiceResponse, 0, len(cat.Services)),
	}
	fixed := s.cfg.IsFixedPricing()
	for _, svc := range cat.Services {
		sr := ServiceResponse{ID: svc.ID, Label: svc.Label}
		if fixed {
			price := svc.BasePrice
			sr.BasePrice = &price
		}
		resp.Services = append(resp.Services, sr)
	}
	return resp
}
