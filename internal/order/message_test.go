package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castororo/Rajabakkiam-traders/internal/cart"
)

func TestCheckoutMessageEmptyCart(t *testing.T) {
	_, err := CheckoutMessage(nil, "118 Bazaar Street, Salem")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutMessageBlankAddress(t *testing.T) {
	items := []cart.Item{{ID: "p1-5kg", ProductID: "p1", Name: "Ponni Rice", Size: "5kg", Quantity: 1}}

	for _, addr := range []string{"", "   ", "\n\t "} {
		_, err := CheckoutMessage(items, addr)
		assert.ErrorIs(t, err, ErrBlankAddress)
	}
}

func TestCheckoutMessageFormat(t *testing.T) {
	items := []cart.Item{
		{ID: "p1-5kg", ProductID: "p1", Name: "Ponni Rice", TamilName: "பொன்னி", Size: "5kg", Quantity: 2},
		{ID: "p2-1kg", ProductID: "p2", Name: "Basmati", Size: "1kg", Quantity: 1},
	}

	msg, err := CheckoutMessage(items, "12 Car Street, Salem")
	require.NoError(t, err)

	want := "Hello Raajabaackiam Traders, I would like to place an order:\n\n" +
		"1. Ponni Rice (பொன்னி) - 5kg x 2\n" +
		"2. Basmati - 1kg x 1\n" +
		"\nDelivery Address:\n12 Car Street, Salem\n\n" +
		"Please confirm availability and total price."
	assert.Equal(t, want, msg)
}

func TestCheckoutMessageNumbersLinesInOrder(t *testing.T) {
	items := []cart.Item{
		{ID: "a-1kg", ProductID: "a", Name: "A", Size: "1kg", Quantity: 1},
		{ID: "b-1kg", ProductID: "b", Name: "B", Size: "1kg", Quantity: 1},
		{ID: "c-1kg", ProductID: "c", Name: "C", Size: "1kg", Quantity: 1},
	}

	msg, err := CheckoutMessage(items, "addr")
	require.NoError(t, err)

	assert.Contains(t, msg, "1. A - 1kg x 1\n2. B - 1kg x 1\n3. C - 1kg x 1")
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "919443355596", DigitsOnly("+91 94433 55596"))
	assert.Equal(t, "123", DigitsOnly("(1) 2-3"))
	assert.Equal(t, "", DigitsOnly("abc"))
}

func TestWhatsAppCheckoutLink(t *testing.T) {
	link := WhatsAppCheckoutLink("+91 94433 55596", "Hello, order:\n1. Rice")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919443355596?text="), link)
	assert.NotContains(t, link, "\n")
	assert.NotContains(t, link, " ")
	assert.Contains(t, link, "%0A")
}

func TestLinkAppendsEncodedText(t *testing.T) {
	link := Link("https://wa.me/919443355596", "Hi, I'd like to order:")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919443355596?text="), link)
	assert.Contains(t, link, "Hi%2C")
}

func TestTelLink(t *testing.T) {
	assert.Equal(t, "tel:+91 94433 55596", TelLink("+91 94433 55596"))
}
