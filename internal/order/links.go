package order

import (
	"net/url"
	"strings"
)

// DigitsOnly strips everything but digits from a phone number, the
// form wa.me expects in its path.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppCheckoutLink builds the wa.me deep link for the cart
// checkout path. The message is percent-encoded in full.
func WhatsAppCheckoutLink(phone, message string) string {
	return "https://wa.me/" + DigitsOnly(phone) + "?text=" + url.QueryEscape(message)
}

// Link appends the pre-filled message to the business's configured
// WhatsApp link (single-product order path).
func Link(whatsappLink, message string) string {
	return whatsappLink + "?text=" + url.QueryEscape(message)
}

// TelLink builds the dial deep link from the configured phone number,
// symbols and all.
func TelLink(phone string) string {
	return "tel:" + phone
}
