package order

import (
	"fmt"
	"strings"

	"github.com/castororo/Rajabakkiam-traders/internal/catalog"
)

// Units the quantity dropdown offers.
var Units = []string{"kg", "bags", "packet", "liter", "box"}

// Form collects the single-product order modal fields. It lives for
// one submission attempt and is never persisted.
type Form struct {
	Name          string `form:"name"`
	Phone         string `form:"phone"`
	Address       string `form:"address"`
	Product       string `form:"product"`
	QuantityValue string `form:"quantity_value"`
	QuantityUnit  string `form:"quantity_unit"`
	DeliveryDate  string `form:"delivery_date"`
	Notes         string `form:"notes"`
}

// ValidationError carries the single field failure surfaced to the
// visitor. Validation stops at the first missing field.
type ValidationError struct {
	Field   string
	Title   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks required fields in fixed order and reports the first
// failure. Notes are optional.
func (f Form) Validate() error {
	checks := []struct {
		value   string
		field   string
		title   string
		message string
	}{
		{f.Name, "name", "Missing Information", "Please fill in your name."},
		{f.Phone, "phone", "Missing Information", "Please fill in your phone number."},
		{f.Address, "address", "Address Required", "Please provide your delivery address."},
		{f.Product, "product", "Product Required", "Please select a product to order."},
		{f.QuantityValue, "quantity_value", "Quantity Required", "Please specify the quantity you need."},
		{f.DeliveryDate, "delivery_date", "Date Required", "Please pick a preferred delivery date."},
	}
	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" {
			return &ValidationError{Field: c.field, Title: c.title, Message: c.message}
		}
	}
	return nil
}

// Message renders the order form into the pre-filled WhatsApp text.
// The product line is enriched from the catalog when the selected name
// is still in the range; a stale selection falls back to the raw
// string.
func (f Form) Message() string {
	product := f.Product
	if p, ok := catalog.FindByName(f.Product); ok {
		product = p.Name
		if p.TamilName != "" {
			product += " (" + p.TamilName + ")"
		}
	}

	quantity := fmt.Sprintf("%s %s", f.QuantityValue, f.QuantityUnit)

	return fmt.Sprintf(
		"Hi, I'd like to order:\n\nName: %s\nProduct: %s\nQuantity: %s\nAddress: %s\nDelivery Date: %s\nNotes: %s",
		f.Name, product, quantity, f.Address, f.DeliveryDate, f.Notes,
	)
}
