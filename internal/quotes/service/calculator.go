package service

import (
	"pxplabs_backend/internal/catalog"
)

// Discount tiers by number of selected services, in basis points of the
// subtotal. More than five services earns 30%, more than two earns 6%.
const (
	bulkTierMinCount  = 6
	bulkTierBps       = 3000
	multiTierMinCount = 3
	multiTierBps      = 600
)

// Quote is the priced result of a selection in fixed-pricing mode. All
// amounts are whole rupees. In custom mode amounts are zero and Custom is set.
type Quote struct {
	Services    []catalog.Service
	Subtotal    int64
	DiscountBps int64
	Discount    int64
	Total       int64
	Custom      bool
}

// Calculator prices a selection of services.
type Calculator struct {
	fixedPricing bool
}

// NewCalculator creates a calculator. When fixedPricing is false every quote
// is a custom quote with no amounts.
func NewCalculator(fixedPricing bool) *Calculator {
	return &Calculator{fixedPricing: fixedPricing}
}

// Calculate prices the given services. Discounts apply to the whole subtotal
// at the highest tier reached; they never stack.
func (c *Calculator) Calculate(services []catalog.Service) Quote {
	if !c.fixedPricing {
		return Quote{Services: services, Custom: true}
	}

	var subtotal int64
	for _, svc := range services {
		subtotal += svc.BasePrice
	}

	bps := discountBps(len(services))
	discount := subtotal * bps / 10000

	return Quote{
		Services:    services,
		Subtotal:    subtotal,
		DiscountBps: bps,
		Discount:    discount,
		Total:       subtotal - discount,
	}
}

func discountBps(count int) int64 {
	switch {
	case count >= bulkTierMinCount:
		return bulkTierBps
	case count >= multiTierMinCount:
		return multiTierBps
	default:
		return 0
	}
}
