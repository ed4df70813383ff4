package service

import (
	"testing"

	"pxplabs_backend/internal/catalog"
)

func services(prices ...int64) []catalog.Service {
	out := make([]catalog.Service, 0, len(prices))
	for i, p := range prices {
		out = append(out, catalog.Service{ID: string(rune('a' + i)), Label: "svc", BasePrice: p})
	}
	return out
}

func TestCalculate_ThreeServicesGetSixPercent(t *testing.T) {
	calc := NewCalculator(true)

	quote := calc.Calculate(services(300, 1000, 2000))

	if quote.Subtotal != 3300 {
		t.Fatalf("expected subtotal 3300, got %d", quote.Subtotal)
	}
	if quote.DiscountBps != 600 {
		t.Fatalf("expected 600 bps, got %d", quote.DiscountBps)
	}
	if quote.Discount != 198 {
		t.Fatalf("expected discount 198, got %d", quote.Discount)
	}
	if quote.Total != 3102 {
		t.Fatalf("expected total 3102, got %d", quote.Total)
	}
}

func TestCalculate_SixServicesGetThirtyPercent(t *testing.T) {
	calc := NewCalculator(true)

	quote := calc.Calculate(services(2000, 2000, 2000, 2000, 1000, 1000))

	if quote.Subtotal != 10000 {
		t.Fatalf("expected subtotal 10000, got %d", quote.Subtotal)
	}
	if quote.Discount != 3000 {
		t.Fatalf("expected discount 3000, got %d", quote.Discount)
	}
	if quote.Total != 7000 {
		t.Fatalf("expected total 7000, got %d", quote.Total)
	}
}

func TestCalculate_TierBoundaries(t *testing.T) {
	calc := NewCalculator(true)

	cases := []struct {
		count       int
		expectedBps int64
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 600},
		{5, 600},
		{6, 3000},
		{10, 3000},
	}

	for _, tc := range cases {
		prices := make([]int64, tc.count)
		for i := range prices {
			prices[i] = 1000
		}
		quote := calc.Calculate(services(prices...))
		if quote.DiscountBps != tc.expectedBps {
			t.Fatalf("count %d: expected %d bps, got %d", tc.count, tc.expectedBps, quote.DiscountBps)
		}
	}
}

func TestCalculate_DiscountNeverStacks(t *testing.T) {
	calc := NewCalculator(true)

	// Six services: only the 30% tier applies, not 30% + 6%.
	quote := calc.Calculate(services(1000, 1000, 1000, 1000, 1000, 1000))

	if quote.Discount != 1800 {
		t.Fatalf("expected discount 1800 (30%% of 6000), got %d", quote.Discount)
	}
}

func TestCalculate_CustomModeHasNoAmounts(t *testing.T) {
	calc := NewCalculator(false)

	quote := calc.Calculate(services(300, 1000, 2000))

	if !quote.Custom {
		t.Fatal("expected custom quote")
	}
	if quote.Subtotal != 0 || quote.Discount != 0 || quote.Total != 0 {
		t.Fatalf("expected zero amounts, got subtotal=%d discount=%d total=%d",
			quote.Subtotal, quote.Discount, quote.Total)
	}
}

func TestCalculate_EmptySelection(t *testing.T) {
	calc := NewCalculator(true)

	quote := calc.Calculate(nil)

	if quote.Subtotal != 0 || quote.Total != 0 || quote.DiscountBps != 0 {
		t.Fatalf("expected zero quote, got %+v", quote)
	}
}
