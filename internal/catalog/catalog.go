// Package catalog provides the service catalog bounded context. The catalog
// is a process-wide immutable constant loaded at startup; there are no
// mutation operations.
package catalog

// Service is a single purchasable offering. BasePrice is in whole rupees and
// only meaningful when the application runs in fixed-pricing mode.
type Service struct {
	ID        string
	Label     string
	BasePrice int64
}

// Category groups related services shown together during browsing.
type Category struct {
	ID          string
	Label       string
	Description string
	Services    []Service
}

// Categories is the full catalog in display order. Service order within a
// category is the canonical catalog order used when deriving selections.
var Categories = []Category{
	{
		ID:          "web",
		Label:       "Web Development",
		Description: "Custom websites and applications",
		Services: []Service{
			{ID: "single-page", Label: "Single Page Portfolio", BasePrice: 4000},
			{ID: "multi-page", Label: "Multi-Page Portfolio", BasePrice: 5000},
			{ID: "frontend", Label: "Frontend Website", BasePrice: 6000},
			{ID: "fullstack", Label: "Fullstack Website", BasePrice: 12000},
		},
	},
	{
		ID:          "automation",
		Label:       "Automation",
		Description: "Streamline your workflows",
		Services: []Service{
			{ID: "workflow", Label: "Automation Workflow", BasePrice: 3000},
			{ID: "email-automation", Label: "Email Automation", BasePrice: 4000},
		},
	},
	{
		ID:          "scraping",
		Label:       "Data Scraping",
		Description: "Extract data from the web",
		Services: []Service{
			{ID: "scraping", Label: "Data Scraping", BasePrice: 1500},
			{ID: "gmb-scraping", Label: "GMB Scraping (10 cities)", BasePrice: 8000},
			{ID: "website-scraping", Label: "Website Scrape (10 sites)", BasePrice: 5000},
		},
	},
	{
		ID:          "video",
		Label:       "Video Editing",
		Description: "Professional cuts and edits",
		Services: []Service{
			{ID: "reel", Label: "Short Reel", BasePrice: 800},
			{ID: "long-video", Label: "Long-Form Video", BasePrice: 3000},
			{ID: "podcast", Label: "Podcast / Interview", BasePrice: 4500},
			{ID: "promo", Label: "Promo Video", BasePrice: 3000},
			{ID: "montage", Label: "Montage", BasePrice: 1500},
			{ID: "content", Label: "Content Creation", BasePrice: 2000},
			{ID: "trailer", Label: "Trailer Cut", BasePrice: 4000},
			{ID: "doc", Label: "Documentary", BasePrice: 2000},
			{ID: "after-effects", Label: "Advanced After Effects", BasePrice: 3000},
		},
	},
	{
		ID:          "commercial",
		Label:       "Commercial",
		Description: "High-end commercial production",
		Services: []Service{
			{ID: "ad", Label: "Ad (Shoot + Edit)", BasePrice: 15000},
		},
	},
	{
		ID:          "design",
		Label:       "Design",
		Description: "Visual identity and graphics",
		Services: []Service{
			{ID: "logo", Label: "Logo Design", BasePrice: 200},
			{ID: "poster", Label: "Poster Design", BasePrice: 500},
			{ID: "social-templates", Label: "Social Media Templates", BasePrice: 500},
			{ID: "business-card", Label: "Business Card Design", BasePrice: 200},
			{ID: "thumbnail", Label: "YouTube Thumbnail", BasePrice: 300},
			{ID: "brochure", Label: "Brochure", BasePrice: 300},
		},
	},
}

// serviceIndex maps service id to its service and owning category for O(1)
// lookups. Built once at init; the catalog never changes afterwards.
type indexEntry struct {
	service  Service
	category *Category
}

var serviceIndex = buildIndex()

func buildIndex() map[string]indexEntry {
	idx := make(map[string]indexEntry)
	for i := range Categories {
		cat := &Categories[i]
		for _, svc := range cat.Services {
			idx[svc.ID] = indexEntry{service: svc, category: cat}
		}
	}
	return idx
}

// ServiceByID looks up a service by id.
func ServiceByID(id string) (Service, bool) {
	entry, ok := serviceIndex[id]
	return entry.service, ok
}

// CategoryOf returns the category owning the given service id.
func CategoryOf(serviceID string) (*Category, bool) {
	entry, ok := serviceIndex[serviceID]
	return entry.category, ok
}

// CategoryByID looks up a category by id.
func CategoryByID(id string) (*Category, bool) {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i], true
		}
	}
	return nil, false
}
