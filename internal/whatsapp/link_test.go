package whatsapp

import (
	"net/url"
	"strings"
	"testing"
)

func TestDeepLinkEncodesMessage(t *testing.T) {
	link := DeepLink("919381904726", "New Project Inquiry\nName: Asha")

	if !strings.HasPrefix(link, "https://api.whatsapp.com/send?") {
		t.Fatalf("unexpected link base: %s", link)
	}
	if !strings.Contains(link, "phone=919381904726") {
		t.Fatalf("expected phone parameter, got %s", link)
	}
	if strings.Contains(link, "+") {
		t.Fatalf("expected %%20 space encoding, found '+': %s", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if got := parsed.Query().Get("text"); got != "New Project Inquiry\nName: Asha" {
		t.Fatalf("message did not round-trip, got %q", got)
	}
}

func TestDeepLinkStripsPlusFromNumber(t *testing.T) {
	link := DeepLink("+919381904726", "hi")
	if !strings.Contains(link, "phone=919381904726") {
		t.Fatalf("expected leading + stripped, got %s", link)
	}
}
