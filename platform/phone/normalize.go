// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "IN"

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

// LooksLikePhone is a deliberately lax shape check: after stripping spaces,
// dashes, dots and parentheses, and an optional leading "+", the remainder
// must be at least 10 digits. No deliverability or region validation.
func LooksLikePhone(input string) bool {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.TrimPrefix(cleaned, "+")

	digits := 0
	for _, r := range cleaned {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
			// separator, ignore
		default:
			return false
		}
	}
	return digits >= 10
}
