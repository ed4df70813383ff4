package pdf

import (
	"bytes"
	"testing"
	"time"
)

func scopeData() ProjectScopeData {
	return ProjectScopeData{
		StudioName:   "PXPLabs",
		CustomerName: "Asha",
		GeneratedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Items: []ScopeItem{
			{CategoryLabel: "Design", ServiceLabel: "Logo Design", Price: 200},
			{CategoryLabel: "Design", ServiceLabel: "Poster Design", Price: 500},
		},
		Subtotal: 700,
		Total:    700,
	}
}

func TestGenerateProjectScopeProducesPDF(t *testing.T) {
	doc, err := GenerateProjectScope(scopeData())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatal("expected PDF magic bytes")
	}
}

func TestGenerateProjectScopeWithDiscount(t *testing.T) {
	data := scopeData()
	data.Subtotal = 700
	data.DiscountBps = 600
	data.Discount = 42
	data.Total = 658

	doc, err := GenerateProjectScope(data)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatal("expected PDF magic bytes")
	}
}

func TestGenerateProjectScopeRejectsEmptySelection(t *testing.T) {
	data := scopeData()
	data.Items = nil

	if _, err := GenerateProjectScope(data); err == nil {
		t.Fatal("expected error for empty selection")
	}
}

func TestGenerateProjectScopeCustomMode(t *testing.T) {
	data := scopeData()
	data.Custom = true
	data.Subtotal = 0
	data.Total = 0

	doc, err := GenerateProjectScope(data)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("expected non-empty document")
	}
}
