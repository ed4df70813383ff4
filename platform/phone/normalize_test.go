package phone

import "testing"

func TestLooksLikePhone(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"9381904726", true},
		{"+91 93819 04726", true},
		{"93819-04726", true},
		{"(938) 190.4726", true},
		{"12345", false},
		{"", false},
		{"93819 0472a", false},
		{"9381+904726", false},
	}

	for _, tc := range cases {
		if got := LooksLikePhone(tc.input); got != tc.valid {
			t.Fatalf("%q: expected %v, got %v", tc.input, tc.valid, got)
		}
	}
}

func TestNormalizeE164PassesThroughUnparseable(t *testing.T) {
	if got := NormalizeE164("not-a-number"); got != "not-a-number" {
		t.Fatalf("expected pass-through, got %q", got)
	}
}

func TestNormalizeE164IndianMobile(t *testing.T) {
	if got := NormalizeE164("09381904726"); got != "+919381904726" {
		t.Fatalf("expected +919381904726, got %q", got)
	}
}
