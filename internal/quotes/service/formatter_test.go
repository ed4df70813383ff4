package service

import (
	"strings"
	"testing"

	"pxplabs_backend/internal/quotes/selection"
)

func mustSet(t *testing.T, ids ...string) *selection.Set {
	t.Helper()
	set, err := selection.FromIDs(ids)
	if err != nil {
		t.Fatalf("from ids: %v", err)
	}
	return set
}

func TestFormatMessage_BlankFieldsRenderNotProvided(t *testing.T) {
	set := mustSet(t, "logo")
	quote := NewCalculator(true).Calculate(set.Services())

	msg := FormatMessage(Inquiry{}, set, quote)

	if !strings.Contains(msg, "Name: Not provided") {
		t.Fatalf("expected name placeholder, got:\n%s", msg)
	}
	if !strings.Contains(msg, "Details: Not provided") {
		t.Fatalf("expected details placeholder, got:\n%s", msg)
	}
}

func TestFormatMessage_EmptySelectionStillValid(t *testing.T) {
	set := mustSet(t)
	quote := NewCalculator(true).Calculate(set.Services())

	msg := FormatMessage(Inquiry{Name: "Asha"}, set, quote)

	if !strings.HasPrefix(msg, "New Project Inquiry") {
		t.Fatalf("expected inquiry header, got:\n%s", msg)
	}
	if !strings.Contains(msg, "Services: Not provided") {
		t.Fatalf("expected services placeholder, got:\n%s", msg)
	}
}

func TestFormatMessage_GroupsByCategory(t *testing.T) {
	set := mustSet(t, "logo", "reel", "poster")
	quote := NewCalculator(true).Calculate(set.Services())

	msg := FormatMessage(Inquiry{Name: "Asha"}, set, quote)

	videoIdx := strings.Index(msg, "Video Editing:")
	designIdx := strings.Index(msg, "Design:")
	if videoIdx == -1 || designIdx == -1 {
		t.Fatalf("expected both category headings, got:\n%s", msg)
	}
	if videoIdx > designIdx {
		t.Fatal("expected video group before design group")
	}
	if !strings.Contains(msg, "- Logo Design (₹200)") {
		t.Fatalf("expected priced service line, got:\n%s", msg)
	}
}

func TestFormatMessage_DiscountLineOnlyWhenEarned(t *testing.T) {
	single := mustSet(t, "logo")
	quote := NewCalculator(true).Calculate(single.Services())
	msg := FormatMessage(Inquiry{}, single, quote)
	if strings.Contains(msg, "Discount") {
		t.Fatalf("expected no discount line for one service, got:\n%s", msg)
	}

	three := mustSet(t, "logo", "poster", "reel")
	quote = NewCalculator(true).Calculate(three.Services())
	msg = FormatMessage(Inquiry{}, three, quote)
	if !strings.Contains(msg, "Discount (6%):") {
		t.Fatalf("expected 6%% discount line, got:\n%s", msg)
	}
}

func TestFormatMessage_CustomModeHasNoAmounts(t *testing.T) {
	set := mustSet(t, "logo", "poster", "reel")
	quote := NewCalculator(false).Calculate(set.Services())

	msg := FormatMessage(Inquiry{}, set, quote)

	if strings.Contains(msg, "₹") {
		t.Fatalf("expected no amounts in custom mode, got:\n%s", msg)
	}
	if !strings.Contains(msg, "priced individually") {
		t.Fatalf("expected custom pricing sentence, got:\n%s", msg)
	}
}

func TestFormatINR_IndianGrouping(t *testing.T) {
	cases := []struct {
		amount   int64
		expected string
	}{
		{0, "₹0"},
		{200, "₹200"},
		{3300, "₹3,300"},
		{10000, "₹10,000"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{-198, "-₹198"},
	}

	for _, tc := range cases {
		if got := FormatINR(tc.amount); got != tc.expected {
			t.Fatalf("amount %d: expected %s, got %s", tc.amount, tc.expected, got)
		}
	}
}
