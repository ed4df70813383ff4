// Package whatsapp builds the WhatsApp hand-off for finished quotes: a deep
// link the browser opens, and an optional server-side gateway send.
package whatsapp

import (
	"net/url"
	"strings"
)

const deepLinkBase = "https://api.whatsapp.com/send"

// DeepLink builds the click-to-chat URL that opens a WhatsApp conversation
// with the studio number, pre-filled with the quote message. The number is
// used without its leading "+"; spaces are encoded as %20 so the link works
// in both the app and the web client.
func DeepLink(number, message string) string {
	number = strings.TrimPrefix(strings.TrimSpace(number), "+")

	values := url.Values{}
	values.Set("phone", number)
	values.Set("text", message)

	// url.Values encodes spaces as "+", which WhatsApp's web client does not
	// decode inside the text parameter.
	query := strings.ReplaceAll(values.Encode(), "+", "%20")

	return deepLinkBase + "?" + query
}
