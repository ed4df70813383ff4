package service

import (
	"strconv"
	"strings"

	"pxplabs_backend/internal/quotes/selection"
)

// notProvided fills in optional inquiry fields the visitor left blank.
const notProvided = "Not provided"

// Inquiry carries the visitor details included in the quote message. Every
// field is optional at this stage; blanks render as "Not provided".
type Inquiry struct {
	Name    string
	Phone   string
	Budget  string
	Details string
}

// FormatMessage renders the plain-text quote message sent over WhatsApp.
// Selected services are grouped by catalog category; the pricing summary is
// appended in fixed-pricing mode only. An empty selection still yields a
// valid message.
func FormatMessage(inq Inquiry, set *selection.Set, quote Quote) string {
	var b strings.Builder

	b.WriteString("New Project Inquiry\n\n")
	writeField(&b, "Name", inq.Name)
	writeField(&b, "Contact", inq.Phone)
	writeField(&b, "Budget", inq.Budget)
	writeField(&b, "Details", inq.Details)

	groups := set.ByCategory()
	if len(groups) == 0 {
		writeField(&b, "Services", "")
	} else {
		b.WriteString("\nSelected Services:\n")
		for _, group := range groups {
			b.WriteString(group.Category.Label + ":\n")
			for _, svc := range group.Services {
				if quote.Custom {
					b.WriteString("- " + svc.Label + "\n")
				} else {
					b.WriteString("- " + svc.Label + " (" + FormatINR(svc.BasePrice) + ")\n")
				}
			}
		}
	}

	if quote.Custom {
		b.WriteString("\nEvery project is priced individually; we will follow up with a tailored quote.\n")
		return b.String()
	}

	b.WriteString("\nSubtotal: " + FormatINR(quote.Subtotal) + "\n")
	if quote.Discount > 0 {
		percent := strconv.FormatInt(quote.DiscountBps/100, 10)
		b.WriteString("Discount (" + percent + "%): -" + FormatINR(quote.Discount) + "\n")
	}
	b.WriteString("Total: " + FormatINR(quote.Total) + "\n")

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = notProvided
	}
	b.WriteString(label + ": " + value + "\n")
}

// FormatINR renders a rupee amount with Indian digit grouping, e.g. 1234567
// becomes ₹12,34,567.
func FormatINR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	// Last group of three, then groups of two.
	grouped := digits
	if len(digits) > 3 {
		grouped = groupIndian(digits[:len(digits)-3]) + "," + digits[len(digits)-3:]
	}

	if negative {
		return "-₹" + grouped
	}
	return "₹" + grouped
}

func groupIndian(head string) string {
	if len(head) <= 2 {
		return head
	}
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",")
}
