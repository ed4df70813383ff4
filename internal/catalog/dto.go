package catalog

// ServiceResponse is the wire representation of a catalog service. BasePrice
// is omitted in custom-pricing mode, where per-service prices are not shown.
type ServiceResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	BasePrice *int64 `json:"basePrice,omitempty"`
}

// CategoryResponse is the wire representation of a catalog category.
type CategoryResponse struct {
	ID          string            `json:"id"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
	Services    []ServiceResponse `json:"services"`
}

// CatalogResponse is the full catalog payload.
type CatalogResponse struct {
	PricingMode string             `json:"pricingMode"`
	Categories  []CategoryResponse `json:"categories"`
}
