package catalog

import "testing"

type testPricingConfig struct{ fixed bool }

func (c testPricingConfig) IsFixedPricing() bool { return c.fixed }

func TestServiceIndexCoversWholeCatalog(t *testing.T) {
	total := 0
	for _, cat := range Categories {
		for _, svc := range cat.Services {
			total++
			found, ok := ServiceByID(svc.ID)
			if !ok {
				t.Fatalf("service %s missing from index", svc.ID)
			}
			if found.Label != svc.Label {
				t.Fatalf("service %s: index label %q != catalog label %q", svc.ID, found.Label, svc.Label)
			}
			owner, ok := CategoryOf(svc.ID)
			if !ok || owner.ID != cat.ID {
				t.Fatalf("service %s: expected category %s", svc.ID, cat.ID)
			}
		}
	}
	if total != 25 {
		t.Fatalf("expected 25 services in catalog, got %d", total)
	}
}

func TestServiceByIDUnknown(t *testing.T) {
	if _, ok := ServiceByID("nope"); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}

func TestCatalogResponseOmitsPricesInCustomMode(t *testing.T) {
	svc := NewService(testPricingConfig{fixed: false})

	resp := svc.Catalog()
	if resp.PricingMode != "custom" {
		t.Fatalf("expected custom pricing mode, got %s", resp.PricingMode)
	}
	for _, cat := range resp.Categories {
		for _, s := range cat.Services {
			if s.BasePrice != nil {
				t.Fatalf("service %s: expected no price in custom mode", s.ID)
			}
		}
	}
}

func TestCatalogResponseIncludesPricesInFixedMode(t *testing.T) {
	svc := NewService(testPricingConfig{fixed: true})

	resp := svc.Catalog()
	if resp.PricingMode != "fixed" {
		t.Fatalf("expected fixed pricing mode, got %s", resp.PricingMode)
	}
	logo, err := svc.Category("design")
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if logo.Services[0].BasePrice == nil || *logo.Services[0].BasePrice != 200 {
		t.Fatalf("expected logo price 200, got %v", logo.Services[0].BasePrice)
	}
}

func TestCategoryUnknownID(t *testing.T) {
	svc := NewService(testPricingConfig{})
	if _, err := svc.Category("nope"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}
