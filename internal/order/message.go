// Package order turns cart contents or a filled order form into a
// pre-written WhatsApp message and the deep link that carries it.
// Nothing here touches the network; "sending" an order is a redirect
// to wa.me.
package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/castororo/Rajabakkiam-traders/internal/cart"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrBlankAddress = errors.New("delivery address is blank")
)

// CheckoutMessage renders the cart into the order text sent at
// checkout. A whitespace-only address counts as blank; both guard
// errors abort before any partial message is produced.
func CheckoutMessage(items []cart.Item, address string) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyCart
	}
	if strings.TrimSpace(address) == "" {
		return "", ErrBlankAddress
	}

	var b strings.Builder
	b.WriteString("Hello Raajabaackiam Traders, I would like to place an order:\n\n")
	for i, it := range items {
		name := it.Name
		if it.TamilName != "" {
			name += " (" + it.TamilName + ")"
		}
		fmt.Fprintf(&b, "%d. %s - %s x %d\n", i+1, name, it.Size, it.Quantity)
	}
	b.WriteString("\nDelivery Address:\n")
	b.WriteString(address)
	b.WriteString("\n\nPlease confirm availability and total price.")

	return b.String(), nil
}
